package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// 數值欄位使用 decimal, 同時接受 JSON number 與數字字串
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" swaggertype:"number"`
	StockQuantity decimal.Decimal `json:"stock_quantity" swaggertype:"integer"`
	ImageURL      string          `json:"image_url"`
	Category      string          `json:"category"`
}

// UpdateProductRequest 未帶的欄位維持原值
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price" swaggertype:"number"`
	StockQuantity *decimal.Decimal `json:"stock_quantity" swaggertype:"integer"`
	ImageURL      *string          `json:"image_url"`
	Category      *string          `json:"category"`
	Status        *string          `json:"status" enums:"active,inactive"`
}

type ProductDTO struct {
	ID            int64           `json:"id"`
	SellerID      int64           `json:"seller_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" swaggertype:"string"`
	StockQuantity int32           `json:"stock_quantity"`
	ImageURL      *string         `json:"image_url"`
	Category      string          `json:"category"`
	Status        string          `json:"status"`
	Rating        decimal.Decimal `json:"rating" swaggertype:"string"`
	TotalReviews  int32           `json:"total_reviews"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductDTO `json:"products"`
	Page     int          `json:"page"`
	Limit    int          `json:"limit"`
}
