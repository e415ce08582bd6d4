package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	require.NoError(t, ClassifyError(nil, "x"))

	err := ClassifyError(fmt.Errorf("get: %w", pgx.ErrNoRows), "Product not found")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.NotFoundCode, appErr.Code)
	require.Equal(t, "Product not found", appErr.Message)

	err = ClassifyError(&pgconn.PgError{Code: UniqueViolation}, "")
	require.True(t, apperr.IsCode(err, apperr.ConflictCode))

	err = ClassifyError(&pgconn.PgError{Code: CheckViolation}, "")
	require.True(t, apperr.IsCode(err, apperr.ConflictCode))

	err = ClassifyError(errors.New("connection reset"), "")
	require.True(t, apperr.IsCode(err, apperr.InternalErrorCode))

	original := apperr.New(apperr.ForbiddenCode, "no")
	require.Equal(t, original, ClassifyError(original, ""))
}

func TestPoolConfigDSN(t *testing.T) {
	cfg := PoolConfig{Host: "localhost", Port: "5432", User: "shop", Password: "pw", Name: "shopcenter"}
	require.Equal(t, "postgres://shop:pw@localhost:5432/shopcenter?sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	require.Equal(t, "postgres://shop:pw@localhost:5432/shopcenter?sslmode=require", cfg.DSN())
}
