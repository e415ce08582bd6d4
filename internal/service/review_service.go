package service

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type IReviewService interface {
	ListProductReviews(ctx context.Context, productID int64, paging util.Paging) ([]model.ReviewModel, error)
	AddReview(ctx context.Context, caller *model.UserModel, arg *model.CreateReviewModel) (*model.ReviewModel, error)
	DeleteReview(ctx context.Context, caller *model.UserModel, reviewID int64) error
}

type ReviewService struct {
	dbDao db.IStore
}

func NewReviewService(dbDao db.IStore) *ReviewService {
	if dbDao == nil {
		panic("NewReviewService: dbDao cannot be nil")
	}
	return &ReviewService{
		dbDao: dbDao,
	}
}

func (r *ReviewService) ListProductReviews(ctx context.Context, productID int64, paging util.Paging) ([]model.ReviewModel, error) {
	if _, err := r.dbDao.GetProductByID(ctx, productID); err != nil {
		return nil, db.ClassifyError(err, "Product not found")
	}

	rows, err := r.dbDao.ListReviewsByProduct(ctx, sqlc.ListReviewsByProductParams{
		ProductID: productID,
		Limit:     paging.Limit(),
		Offset:    paging.Offset(),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return convertRepoReviewRowsToModel(rows), nil
}

// AddReview 新增評論並重新計算商品評分, 每位使用者對同一商品只能評論一次
// 錯誤:
//   - apperr.NotFoundCode 404: 商品不存在
//   - apperr.ConflictCode 409: 已評論過
func (r *ReviewService) AddReview(ctx context.Context, caller *model.UserModel, arg *model.CreateReviewModel) (*model.ReviewModel, error) {
	if _, err := r.dbDao.GetProductByID(ctx, arg.ProductID); err != nil {
		return nil, db.ClassifyError(err, "Product not found")
	}

	if _, err := r.dbDao.GetReviewByProductAndBuyer(ctx, sqlc.GetReviewByProductAndBuyerParams{
		ProductID: arg.ProductID,
		BuyerID:   caller.ID,
	}); err == nil {
		return nil, apperr.New(apperr.ConflictCode, "You have already reviewed this product")
	} else if !db.IsNoRows(err) {
		return nil, apperr.Internal(err)
	}

	var review sqlc.Review
	err := r.dbDao.ExecTx(ctx, func(q sqlc.Querier) error {
		var err error
		review, err = q.CreateReview(ctx, sqlc.CreateReviewParams{
			ProductID: arg.ProductID,
			BuyerID:   caller.ID,
			Rating:    arg.Rating,
			Comment:   arg.Comment,
		})
		if err != nil {
			if db.ErrorCode(err) == db.UniqueViolation {
				return apperr.Wrap(apperr.ConflictCode, err, "You have already reviewed this product")
			}
			return err
		}
		return recomputeProductRating(ctx, q, arg.ProductID)
	})
	if err != nil {
		return nil, db.ClassifyError(err, "")
	}

	res := convertRepoReviewToModel(&review)
	res.ReviewerName = caller.FullName
	res.ReviewerAvatarURL = caller.ProfileImageURL
	return res, nil
}

// DeleteReview 作者或 admin 可刪除
func (r *ReviewService) DeleteReview(ctx context.Context, caller *model.UserModel, reviewID int64) error {
	review, err := r.dbDao.GetReviewByID(ctx, reviewID)
	if err != nil {
		return db.ClassifyError(err, "Review not found")
	}
	if review.BuyerID != caller.ID && !caller.IsAdmin() {
		return apperr.New(apperr.ForbiddenCode, "You cannot delete this review")
	}

	err = r.dbDao.ExecTx(ctx, func(q sqlc.Querier) error {
		affected, err := q.DeleteReview(ctx, review.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.NotFoundCode, "Review not found")
		}
		return recomputeProductRating(ctx, q, review.ProductID)
	})
	return db.ClassifyError(err, "")
}

// recomputeProductRating 平均取到小數第二位
func recomputeProductRating(ctx context.Context, q sqlc.Querier, productID int64) error {
	stats, err := q.GetProductReviewStats(ctx, productID)
	if err != nil {
		return err
	}
	return q.UpdateProductRating(ctx, sqlc.UpdateProductRatingParams{
		ID:           productID,
		Rating:       stats.AverageRating.Round(2),
		TotalReviews: int32(stats.TotalReviews),
	})
}
