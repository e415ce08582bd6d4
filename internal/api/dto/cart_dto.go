package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddCartItemRequest struct {
	ProductID decimal.Decimal `json:"product_id" swaggertype:"integer"`
	Quantity  decimal.Decimal `json:"quantity" swaggertype:"integer"`
}

type UpdateCartItemRequest struct {
	Quantity decimal.Decimal `json:"quantity" swaggertype:"integer"`
}

type CartDTO struct {
	CartID int64           `json:"cart_id"`
	Items  []CartLineDTO   `json:"items"`
	Total  decimal.Decimal `json:"total" swaggertype:"string"`
}

type CartLineDTO struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"product_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price" swaggertype:"string"`
	ImageURL      *string         `json:"image_url"`
	SellerID      int64           `json:"seller_id"`
	StockQuantity int32           `json:"stock_quantity"`
	Quantity      int32           `json:"quantity"`
	Subtotal      decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

type CartItemDTO struct {
	ID        int64     `json:"id"`
	CartID    int64     `json:"cart_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int32     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
