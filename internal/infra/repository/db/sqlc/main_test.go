package sqlc

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/migrations"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
)

var testQueries *Queries
var testDBPool *pgxpool.Pool

// TestMain 需要 TEST_DATABASE_URL, 未設定或無法連線時相關測試會 skip
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		if err := setUpTestDB(dsn); err != nil {
			log.Printf("test database unavailable: %v", err)
		}
	}

	code := m.Run()

	if testDBPool != nil {
		testDBPool.Close()
	}
	os.Exit(code)
}

func setUpTestDB(dsn string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	migration, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return err
	}
	defer migration.Close()
	if err := migration.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return err
	}

	testDBPool = pool
	testQueries = New(pool)
	return nil
}

func requireDB(t *testing.T) {
	t.Helper()
	if testQueries == nil {
		t.Skip("Database not configured, skipping")
	}
}
