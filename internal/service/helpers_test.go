package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	mockdb "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/mock"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var errUniqueViolation = &pgconn.PgError{Code: "23505"}

// expectTx 讓 ExecTx 直接以 mock store 執行 fn
func expectTx(store *mockdb.MockIStore) *gomock.Call {
	return store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(sqlc.Querier) error) error {
			return fn(store)
		})
}

func requireAppErr(t *testing.T, err error, code apperr.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperr.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}

func randomUser(role string) *model.UserModel {
	return &model.UserModel{
		ID:          util.RandomInt(1, 100000),
		FirebaseUID: util.RandomString(28),
		Email:       util.RandomEmail(),
		FullName:    util.RandomString(8),
		Phone:       "0912345678",
		Role:        role,
		Status:      constants.UserStatusActive,
		CreatedAt:   time.Now(),
	}
}

func randomRepoUser() sqlc.User {
	return sqlc.User{
		ID:          util.RandomInt(1, 100000),
		FirebaseUid: util.RandomString(28),
		Email:       util.RandomEmail(),
		FullName:    util.RandomString(8),
		Phone:       "0912345678",
		Role:        constants.RoleBuyer,
		Status:      constants.UserStatusActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func randomProduct(sellerID int64) sqlc.Product {
	return sqlc.Product{
		ID:            util.RandomInt(1, 100000),
		SellerID:      sellerID,
		Name:          util.RandomString(10),
		Description:   util.RandomString(30),
		Price:         decimal.RequireFromString("19.99"),
		StockQuantity: 10,
		Category:      "books",
		Status:        constants.ProductStatusActive,
		Rating:        decimal.Zero,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func pagingFirst() util.Paging {
	return util.NewPaging("")
}
