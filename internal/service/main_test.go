package service

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testStore 只有設定 TEST_DATABASE_URL 時才會建立, 其餘測試使用 gomock
var testStore *db.Store
var testDBPool *pgxpool.Pool

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		if err := db.RunDBMigration(dsn); err != nil {
			log.Printf("test database migration failed: %v", err)
		} else if pool, err := pgxpool.New(context.Background(), dsn); err != nil {
			log.Printf("test database unavailable: %v", err)
		} else if err := pool.Ping(context.Background()); err != nil {
			log.Printf("test database unavailable: %v", err)
			pool.Close()
		} else {
			testDBPool = pool
			testStore = db.NewStore(pool)
		}
	}

	code := m.Run()

	if testDBPool != nil {
		testDBPool.Close()
	}
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testStore == nil {
		t.Skip("Database not configured, skipping")
	}
}
