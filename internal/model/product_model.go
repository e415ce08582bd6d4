package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID            int64
	SellerID      int64
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int32
	ImageURL      *string
	Category      string
	Status        string
	Rating        decimal.Decimal
	TotalReviews  int32
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateProductModel struct {
	SellerID      int64
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int32
	ImageURL      *string
	Category      string
}

// UpdateProductModel nil 欄位維持原值
type UpdateProductModel struct {
	ID            int64
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	StockQuantity *int32
	ImageURL      *string
	Category      *string
	Status        *string
}
