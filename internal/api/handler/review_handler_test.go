package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/stretchr/testify/require"
)

type fakeReviewService struct {
	list   func(ctx context.Context, productID int64, paging util.Paging) ([]model.ReviewModel, error)
	add    func(ctx context.Context, caller *model.UserModel, arg *model.CreateReviewModel) (*model.ReviewModel, error)
	remove func(ctx context.Context, caller *model.UserModel, reviewID int64) error
}

func (f *fakeReviewService) ListProductReviews(ctx context.Context, productID int64, paging util.Paging) ([]model.ReviewModel, error) {
	return f.list(ctx, productID, paging)
}

func (f *fakeReviewService) AddReview(ctx context.Context, caller *model.UserModel, arg *model.CreateReviewModel) (*model.ReviewModel, error) {
	return f.add(ctx, caller, arg)
}

func (f *fakeReviewService) DeleteReview(ctx context.Context, caller *model.UserModel, reviewID int64) error {
	return f.remove(ctx, caller, reviewID)
}

func TestListProductReviews(t *testing.T) {
	svc := &fakeReviewService{
		list: func(_ context.Context, productID int64, _ util.Paging) ([]model.ReviewModel, error) {
			if productID != 3 {
				return nil, apperr.New(apperr.NotFoundCode, "Product not found")
			}
			return []model.ReviewModel{{ID: 1, ProductID: 3, Rating: 5, ReviewerName: "Jane Doe"}}, nil
		},
	}
	h := NewReviewHandler(svc, newRuleBook(t))

	rec := httptest.NewRecorder()
	h.ListProductReviews(rec, withURLParam(newRequest(t, http.MethodGet, "/api/products/3/reviews", nil), "id", "3"))
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Equal(t, "Reviews fetched successfully", env.Message)
	var res dto.ReviewListResponse
	decodeData(t, env, &res)
	require.Len(t, res.Reviews, 1)
	require.Equal(t, "Jane Doe", res.Reviews[0].FullName)

	rec = httptest.NewRecorder()
	h.ListProductReviews(rec, withURLParam(newRequest(t, http.MethodGet, "/api/products/4/reviews", nil), "id", "4"))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddReview(t *testing.T) {
	buyer := testUser(4, constants.RoleBuyer)

	testCases := []struct {
		name       string
		body       any
		add        func(ctx context.Context, caller *model.UserModel, arg *model.CreateReviewModel) (*model.ReviewModel, error)
		wantStatus int
		wantErrKey string
	}{
		{
			name: "Created",
			body: map[string]any{"rating": 4, "comment": "Great"},
			add: func(_ context.Context, caller *model.UserModel, arg *model.CreateReviewModel) (*model.ReviewModel, error) {
				require.Equal(t, int64(3), arg.ProductID)
				require.Equal(t, int16(4), arg.Rating)
				return &model.ReviewModel{ID: 1, ProductID: arg.ProductID, BuyerID: caller.ID, Rating: arg.Rating, Comment: arg.Comment}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "RatingTooHigh",
			body:       map[string]any{"rating": 6, "comment": "Great"},
			wantStatus: http.StatusUnprocessableEntity,
			wantErrKey: "rating",
		},
		{
			name:       "RatingNotInteger",
			body:       map[string]any{"rating": 4.5, "comment": "Great"},
			wantStatus: http.StatusUnprocessableEntity,
			wantErrKey: "rating",
		},
		{
			name:       "MissingComment",
			body:       map[string]any{"rating": 4},
			wantStatus: http.StatusUnprocessableEntity,
			wantErrKey: "comment",
		},
		{
			name: "AlreadyReviewed",
			body: map[string]any{"rating": 4, "comment": "Again"},
			add: func(context.Context, *model.UserModel, *model.CreateReviewModel) (*model.ReviewModel, error) {
				return nil, apperr.New(apperr.ConflictCode, "You have already reviewed this product")
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewReviewHandler(&fakeReviewService{add: tc.add}, newRuleBook(t))

			req := withURLParam(withUser(newRequest(t, http.MethodPost, "/api/products/3/reviews", tc.body), buyer), "id", "3")
			rec := httptest.NewRecorder()
			h.AddReview(rec, req)
			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantErrKey != "" {
				require.Contains(t, decodeEnvelope(t, rec).Errors, tc.wantErrKey)
			}
		})
	}
}

func TestDeleteReview(t *testing.T) {
	author := testUser(4, constants.RoleBuyer)
	svc := &fakeReviewService{
		remove: func(_ context.Context, caller *model.UserModel, reviewID int64) error {
			if caller.ID != author.ID && !caller.IsAdmin() {
				return apperr.New(apperr.ForbiddenCode, "You cannot delete this review")
			}
			return nil
		},
	}
	h := NewReviewHandler(svc, newRuleBook(t))

	rec := httptest.NewRecorder()
	h.DeleteReview(rec, withURLParam(withUser(newRequest(t, http.MethodDelete, "/api/reviews/1", nil), author), "id", "1"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Review deleted successfully", decodeEnvelope(t, rec).Message)

	other := testUser(5, constants.RoleBuyer)
	rec = httptest.NewRecorder()
	h.DeleteReview(rec, withURLParam(withUser(newRequest(t, http.MethodDelete, "/api/reviews/1", nil), other), "id", "1"))
	require.Equal(t, http.StatusForbidden, rec.Code)
}
