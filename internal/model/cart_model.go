package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartModel struct {
	CartID int64
	Items  []CartLineModel
	Total  decimal.Decimal
}

// CartLineModel 購物車項目與商品快照
type CartLineModel struct {
	ID            int64
	ProductID     int64
	Name          string
	Price         decimal.Decimal
	ImageURL      *string
	SellerID      int64
	StockQuantity int32
	Quantity      int32
	Subtotal      decimal.Decimal
}

type CartItemModel struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int32
	CreatedAt time.Time
}
