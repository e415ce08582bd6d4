package service

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/shopspring/decimal"
)

type ICartService interface {
	GetCart(ctx context.Context, userID int64) (*model.CartModel, error)
	AddItem(ctx context.Context, userID, productID int64, quantity int32) (*model.CartItemModel, error)
	UpdateItem(ctx context.Context, userID, itemID int64, quantity int32) (*model.CartItemModel, error)
	RemoveItem(ctx context.Context, userID, itemID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

type CartService struct {
	dbDao db.IStore
}

func NewCartService(dbDao db.IStore) *CartService {
	if dbDao == nil {
		panic("NewCartService: dbDao cannot be nil")
	}
	return &CartService{
		dbDao: dbDao,
	}
}

// GetCart 取得購物車, 不存在時建立
func (c *CartService) GetCart(ctx context.Context, userID int64) (*model.CartModel, error) {
	cart, err := c.dbDao.EnsureCart(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	rows, err := c.dbDao.ListCartItems(ctx, cart.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	res := &model.CartModel{
		CartID: cart.ID,
		Items:  make([]model.CartLineModel, 0, len(rows)),
		Total:  decimal.Zero,
	}
	for _, row := range rows {
		subtotal := row.Price.Mul(decimal.NewFromInt32(row.Quantity))
		res.Items = append(res.Items, model.CartLineModel{
			ID:            row.ID,
			ProductID:     row.ProductID,
			Name:          row.Name,
			Price:         row.Price,
			ImageURL:      util.PgTextToString(row.ImageUrl),
			SellerID:      row.SellerID,
			StockQuantity: row.StockQuantity,
			Quantity:      row.Quantity,
			Subtotal:      subtotal,
		})
		res.Total = res.Total.Add(subtotal)
	}
	return res, nil
}

// AddItem 加入商品, 已存在時累加數量
// 錯誤:
//   - apperr.NotFoundCode 404: 商品不存在或未上架
//   - apperr.ConflictCode 409: 累加後超過庫存
func (c *CartService) AddItem(ctx context.Context, userID, productID int64, quantity int32) (*model.CartItemModel, error) {
	product, err := c.dbDao.GetProductByID(ctx, productID)
	if err != nil {
		return nil, db.ClassifyError(err, "Product not found")
	}
	if product.Status != constants.ProductStatusActive {
		return nil, apperr.New(apperr.NotFoundCode, "Product not found")
	}

	cart, err := c.dbDao.EnsureCart(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	var inCart int32
	existing, err := c.dbDao.GetCartItemByProduct(ctx, sqlc.GetCartItemByProductParams{
		CartID:    cart.ID,
		ProductID: productID,
	})
	switch {
	case err == nil:
		inCart = existing.Quantity
	case !db.IsNoRows(err):
		return nil, apperr.Internal(err)
	}

	if int64(inCart)+int64(quantity) > int64(product.StockQuantity) {
		return nil, apperr.New(apperr.ConflictCode, "Insufficient stock")
	}

	item, err := c.dbDao.AddCartItem(ctx, sqlc.AddCartItemParams{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, db.ClassifyError(err, "")
	}
	return convertRepoCartItemToModel(&item), nil
}

// UpdateItem 設定項目數量, 項目必須屬於使用者的購物車
func (c *CartService) UpdateItem(ctx context.Context, userID, itemID int64, quantity int32) (*model.CartItemModel, error) {
	cart, err := c.dbDao.GetCartByUserID(ctx, userID)
	if err != nil {
		return nil, db.ClassifyError(err, "Cart item not found")
	}

	item, err := c.dbDao.GetCartItemByID(ctx, sqlc.GetCartItemByIDParams{ID: itemID, CartID: cart.ID})
	if err != nil {
		return nil, db.ClassifyError(err, "Cart item not found")
	}

	product, err := c.dbDao.GetProductByID(ctx, item.ProductID)
	if err != nil {
		return nil, db.ClassifyError(err, "Product not found")
	}
	if quantity > product.StockQuantity {
		return nil, apperr.New(apperr.ConflictCode, "Insufficient stock")
	}

	updated, err := c.dbDao.UpdateCartItemQuantity(ctx, sqlc.UpdateCartItemQuantityParams{
		ID:       item.ID,
		CartID:   cart.ID,
		Quantity: quantity,
	})
	if err != nil {
		return nil, db.ClassifyError(err, "Cart item not found")
	}
	return convertRepoCartItemToModel(&updated), nil
}

func (c *CartService) RemoveItem(ctx context.Context, userID, itemID int64) error {
	cart, err := c.dbDao.GetCartByUserID(ctx, userID)
	if err != nil {
		return db.ClassifyError(err, "Cart item not found")
	}

	affected, err := c.dbDao.DeleteCartItem(ctx, sqlc.DeleteCartItemParams{ID: itemID, CartID: cart.ID})
	if err != nil {
		return apperr.Internal(err)
	}
	if affected == 0 {
		return apperr.New(apperr.NotFoundCode, "Cart item not found")
	}
	return nil
}

// ClearCart 清空購物車, 重複呼叫不會出錯
func (c *CartService) ClearCart(ctx context.Context, userID int64) error {
	cart, err := c.dbDao.EnsureCart(ctx, userID)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := c.dbDao.ClearCart(ctx, cart.ID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
