package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderModel struct {
	ID              int64
	BuyerID         int64
	OrderNumber     string
	TotalAmount     decimal.Decimal
	Status          string
	ShippingAddress string
	ShippingCity    string
	ShippingZip     string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItemModel struct {
	ID              int64
	OrderID         int64
	ProductID       int64
	SellerID        int64
	Quantity        int32
	UnitPrice       decimal.Decimal
	Subtotal        decimal.Decimal
	ProductName     string
	ProductImageURL *string
}

type OrderDetailModel struct {
	Order OrderModel
	Items []OrderItemModel
}

type CreateOrderModel struct {
	BuyerID         int64
	ShippingAddress string
	ShippingCity    string
	ShippingZip     string
	Notes           *string
}

type CreateOrderResult struct {
	OrderID     int64
	OrderNumber string
	TotalAmount decimal.Decimal
}
