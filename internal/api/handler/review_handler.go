package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/RoyceAzure/lab/shopcenter/internal/validator"
)

type ReviewHandler struct {
	reviewService service.IReviewService
	rules         *validator.RuleBook
}

func NewReviewHandler(reviewService service.IReviewService, rules *validator.RuleBook) *ReviewHandler {
	if reviewService == nil {
		panic("reviewService cannot be nil")
	}
	if rules == nil {
		panic("rules cannot be nil")
	}
	return &ReviewHandler{
		reviewService: reviewService,
		rules:         rules,
	}
}

// @Summary list product reviews
// @Tags reviews
// @Produce json
// @Param id path int true "product id"
// @Param page query int false "page, default 1"
// @Success 200 {object} response.Response{data=dto.ReviewListResponse} "success"
// @Failure 404 {object} response.Response "product not found"
// @Router /products/{id}/reviews [get]
func (rh *ReviewHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	paging := util.NewPaging(r.URL.Query().Get("page"))

	reviews, err := rh.reviewService.ListProductReviews(r.Context(), productID, paging)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Reviews fetched successfully", dto.ReviewListResponse{
		Reviews: convertReviewModelsToDTO(reviews),
		Page:    paging.Page,
		Limit:   paging.PageSize,
	})
}

// @Summary add review
// @Description 每位使用者對同一商品只能評論一次, 新增後重算商品評分
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "product id"
// @Param review body dto.CreateReviewRequest true "review"
// @Success 201 {object} response.Response{data=dto.ReviewDTO} "success"
// @Failure 404 {object} response.Response "product not found"
// @Failure 409 {object} response.Response "already reviewed"
// @Failure 422 {object} response.Response "validation error"
// @Security ApiKeyAuth
// @Router /products/{id}/reviews [post]
func (rh *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	productID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	var req dto.CreateReviewRequest
	if err := bindForm(r, rh.rules, validator.FormReviewCreate, &req); err != nil {
		response.Error(w, err)
		return
	}

	rating, err := toInt16("rating", req.Rating)
	if err != nil {
		response.Error(w, err)
		return
	}

	review, err := rh.reviewService.AddReview(r.Context(), caller, &model.CreateReviewModel{
		ProductID: productID,
		BuyerID:   caller.ID,
		Rating:    rating,
		Comment:   req.Comment,
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Review added successfully", convertReviewModelToDTO(review))
}

// @Summary delete review
// @Description 作者或 admin 可刪除, 刪除後重算商品評分
// @Tags reviews
// @Produce json
// @Param id path int true "review id"
// @Success 200 {object} response.Response "success"
// @Failure 403 {object} response.Response "cannot delete this review"
// @Failure 404 {object} response.Response "review not found"
// @Security ApiKeyAuth
// @Router /reviews/{id} [delete]
func (rh *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	reviewID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := rh.reviewService.DeleteReview(r.Context(), caller, reviewID); err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Review deleted successfully", nil)
}
