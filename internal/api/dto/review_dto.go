package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateReviewRequest struct {
	Rating  decimal.Decimal `json:"rating" swaggertype:"integer"`
	Comment string          `json:"comment"`
}

type ReviewDTO struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"product_id"`
	BuyerID         int64     `json:"buyer_id"`
	Rating          int16     `json:"rating"`
	Comment         string    `json:"comment"`
	FullName        string    `json:"full_name"`
	ProfileImageURL *string   `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewDTO `json:"reviews"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
}
