package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	mockdb "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/mock"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAddReview_RecomputesRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)

	buyer := randomUser(constants.RoleBuyer)
	product := randomProduct(1)

	store.EXPECT().GetProductByID(gomock.Any(), product.ID).Return(product, nil)
	store.EXPECT().GetReviewByProductAndBuyer(gomock.Any(), sqlc.GetReviewByProductAndBuyerParams{ProductID: product.ID, BuyerID: buyer.ID}).
		Return(sqlc.Review{}, pgx.ErrNoRows)
	expectTx(store)
	store.EXPECT().CreateReview(gomock.Any(), sqlc.CreateReviewParams{ProductID: product.ID, BuyerID: buyer.ID, Rating: 4, Comment: "nice"}).
		Return(sqlc.Review{ID: 1, ProductID: product.ID, BuyerID: buyer.ID, Rating: 4, Comment: "nice"}, nil)
	store.EXPECT().GetProductReviewStats(gomock.Any(), product.ID).
		Return(sqlc.GetProductReviewStatsRow{AverageRating: decimal.RequireFromString("4.33"), TotalReviews: 3}, nil)
	store.EXPECT().UpdateProductRating(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p sqlc.UpdateProductRatingParams) error {
			require.Equal(t, product.ID, p.ID)
			require.True(t, p.Rating.Equal(decimal.RequireFromString("4.33")))
			require.Equal(t, int32(3), p.TotalReviews)
			return nil
		})

	review, err := NewReviewService(store).AddReview(context.Background(), buyer, &model.CreateReviewModel{ProductID: product.ID, Rating: 4, Comment: "nice"})
	require.NoError(t, err)
	require.Equal(t, buyer.FullName, review.ReviewerName)
	require.Equal(t, int16(4), review.Rating)
}

func TestAddReview_Errors(t *testing.T) {
	buyer := randomUser(constants.RoleBuyer)
	product := randomProduct(1)

	testCases := []struct {
		name       string
		buildStubs func(store *mockdb.MockIStore)
		code       apperr.ErrorCode
	}{
		{
			name: "ProductMissing",
			buildStubs: func(store *mockdb.MockIStore) {
				store.EXPECT().GetProductByID(gomock.Any(), product.ID).Return(sqlc.Product{}, pgx.ErrNoRows)
			},
			code: apperr.NotFoundCode,
		},
		{
			name: "AlreadyReviewed",
			buildStubs: func(store *mockdb.MockIStore) {
				store.EXPECT().GetProductByID(gomock.Any(), product.ID).Return(product, nil)
				store.EXPECT().GetReviewByProductAndBuyer(gomock.Any(), gomock.Any()).Return(sqlc.Review{ID: 1}, nil)
				store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).Times(0)
			},
			code: apperr.ConflictCode,
		},
		{
			name: "ConcurrentDuplicate",
			buildStubs: func(store *mockdb.MockIStore) {
				store.EXPECT().GetProductByID(gomock.Any(), product.ID).Return(product, nil)
				store.EXPECT().GetReviewByProductAndBuyer(gomock.Any(), gomock.Any()).Return(sqlc.Review{}, pgx.ErrNoRows)
				expectTx(store)
				store.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(sqlc.Review{}, errUniqueViolation)
				store.EXPECT().UpdateProductRating(gomock.Any(), gomock.Any()).Times(0)
			},
			code: apperr.ConflictCode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mockdb.NewMockIStore(ctrl)
			tc.buildStubs(store)

			_, err := NewReviewService(store).AddReview(context.Background(), buyer, &model.CreateReviewModel{ProductID: product.ID, Rating: 5, Comment: "ok"})
			requireAppErr(t, err, tc.code)
		})
	}
}

func TestDeleteReview(t *testing.T) {
	author := randomUser(constants.RoleBuyer)
	review := sqlc.Review{ID: 8, ProductID: 3, BuyerID: author.ID, Rating: 5}

	testCases := []struct {
		name   string
		caller *model.UserModel
		code   apperr.ErrorCode
	}{
		{name: "Author", caller: author},
		{name: "Admin", caller: randomUser(constants.RoleAdmin)},
		{name: "Stranger", caller: randomUser(constants.RoleBuyer), code: apperr.ForbiddenCode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mockdb.NewMockIStore(ctrl)
			store.EXPECT().GetReviewByID(gomock.Any(), review.ID).Return(review, nil)
			if tc.code == 0 {
				expectTx(store)
				store.EXPECT().DeleteReview(gomock.Any(), review.ID).Return(int64(1), nil)
				store.EXPECT().GetProductReviewStats(gomock.Any(), review.ProductID).
					Return(sqlc.GetProductReviewStatsRow{AverageRating: decimal.Zero, TotalReviews: 0}, nil)
				store.EXPECT().UpdateProductRating(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p sqlc.UpdateProductRatingParams) error {
						require.Equal(t, review.ProductID, p.ID)
						require.True(t, p.Rating.IsZero())
						require.Equal(t, int32(0), p.TotalReviews)
						return nil
					})
			}

			err := NewReviewService(store).DeleteReview(context.Background(), tc.caller, review.ID)
			if tc.code == 0 {
				require.NoError(t, err)
				return
			}
			requireAppErr(t, err, tc.code)
		})
	}
}

func TestDeleteReview_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)
	store.EXPECT().GetReviewByID(gomock.Any(), int64(1)).Return(sqlc.Review{}, pgx.ErrNoRows)

	err := NewReviewService(store).DeleteReview(context.Background(), randomUser(constants.RoleAdmin), 1)
	requireAppErr(t, err, apperr.NotFoundCode)
}
