package db

import (
	"context"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -package mockdb -destination mock/store.go github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db IStore

type IStore interface {
	sqlc.Querier
	ExecTx(ctx context.Context, fn func(sqlc.Querier) error) error
}

// Store 結構用來管理數據庫連接和交易
type Store struct {
	*sqlc.Queries
	db *pgxpool.Pool
}

// NewStore 創建一個新的 Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db:      db,
		Queries: sqlc.New(db),
	}
}

// ExecTx 執行一個交易
//
// fn 回傳錯誤或 panic 時 rollback, 否則 commit
func (s *Store) ExecTx(ctx context.Context, fn func(sqlc.Querier) error) (err error) {
	opts := pgx.TxOptions{
		IsoLevel:       pgx.ReadCommitted,
		AccessMode:     pgx.ReadWrite,
		DeferrableMode: pgx.NotDeferrable,
	}

	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err = fn(s.Queries.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %w, rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
