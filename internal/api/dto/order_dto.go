package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	ShippingAddress string  `json:"shipping_address"`
	ShippingCity    string  `json:"shipping_city"`
	ShippingZip     string  `json:"shipping_zip"`
	Notes           *string `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" enums:"pending,confirmed,shipped,delivered,cancelled"`
}

type CreateOrderResponse struct {
	OrderID     int64           `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string"`
}

type OrderDTO struct {
	ID              int64           `json:"id"`
	BuyerID         int64           `json:"buyer_id"`
	OrderNumber     string          `json:"order_number"`
	TotalAmount     decimal.Decimal `json:"total_amount" swaggertype:"string"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	ShippingCity    string          `json:"shipping_city"`
	ShippingZip     string          `json:"shipping_zip"`
	Notes           *string         `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItemDTO struct {
	ID              int64           `json:"id"`
	OrderID         int64           `json:"order_id"`
	ProductID       int64           `json:"product_id"`
	SellerID        int64           `json:"seller_id"`
	Quantity        int32           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Subtotal        decimal.Decimal `json:"subtotal" swaggertype:"string"`
	ProductName     string          `json:"product_name"`
	ProductImageURL *string         `json:"product_image_url"`
}

type OrderDetailResponse struct {
	Order OrderDTO       `json:"order"`
	Items []OrderItemDTO `json:"items"`
}

type OrderListResponse struct {
	Orders []OrderDTO `json:"orders"`
	Page   int        `json:"page"`
	Limit  int        `json:"limit"`
}
