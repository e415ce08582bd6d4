package db

import (
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/migrations"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// RunDBMigration 以內嵌的 migration 檔案將資料庫更新到最新版本
func RunDBMigration(dbSource string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	migration, err := migrate.NewWithSourceInstance("iofs", source, dbSource)
	if err != nil {
		return fmt.Errorf("init migration: %w", err)
	}
	defer migration.Close()

	if err := migration.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migration: %w", err)
	}
	return nil
}
