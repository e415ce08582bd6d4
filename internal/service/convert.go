package service

import (
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

// 將 repository 模型轉換為服務層模型
func convertRepoUserToModel(u *sqlc.User) *model.UserModel {
	return &model.UserModel{
		ID:              u.ID,
		FirebaseUID:     u.FirebaseUid,
		Email:           u.Email,
		FullName:        u.FullName,
		Phone:           u.Phone,
		ProfileImageURL: util.PgTextToString(u.ProfileImageUrl),
		Role:            u.Role,
		Status:          u.Status,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func convertRepoProductToModel(p *sqlc.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:            p.ID,
		SellerID:      p.SellerID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		ImageURL:      util.PgTextToString(p.ImageUrl),
		Category:      p.Category,
		Status:        p.Status,
		Rating:        p.Rating,
		TotalReviews:  p.TotalReviews,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func convertRepoProductsToModel(products []sqlc.Product) []model.ProductModel {
	res := make([]model.ProductModel, 0, len(products))
	for i := range products {
		res = append(res, *convertRepoProductToModel(&products[i]))
	}
	return res
}

func convertRepoCartItemToModel(c *sqlc.CartItem) *model.CartItemModel {
	return &model.CartItemModel{
		ID:        c.ID,
		CartID:    c.CartID,
		ProductID: c.ProductID,
		Quantity:  c.Quantity,
		CreatedAt: c.CreatedAt,
	}
}

func convertRepoOrderToModel(o *sqlc.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		OrderNumber:     o.OrderNumber,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		ShippingCity:    o.ShippingCity,
		ShippingZip:     o.ShippingZip,
		Notes:           util.PgTextToString(o.Notes),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func convertRepoOrdersToModel(orders []sqlc.Order) []model.OrderModel {
	res := make([]model.OrderModel, 0, len(orders))
	for i := range orders {
		res = append(res, *convertRepoOrderToModel(&orders[i]))
	}
	return res
}

func convertRepoOrderItemsToModel(items []sqlc.ListOrderItemsRow) []model.OrderItemModel {
	res := make([]model.OrderItemModel, 0, len(items))
	for _, it := range items {
		res = append(res, model.OrderItemModel{
			ID:              it.ID,
			OrderID:         it.OrderID,
			ProductID:       it.ProductID,
			SellerID:        it.SellerID,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			Subtotal:        it.Subtotal,
			ProductName:     it.ProductName,
			ProductImageURL: util.PgTextToString(it.ProductImageUrl),
		})
	}
	return res
}

func convertRepoReviewToModel(r *sqlc.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:        r.ID,
		ProductID: r.ProductID,
		BuyerID:   r.BuyerID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func convertRepoReviewRowsToModel(rows []sqlc.ListReviewsByProductRow) []model.ReviewModel {
	res := make([]model.ReviewModel, 0, len(rows))
	for _, r := range rows {
		res = append(res, model.ReviewModel{
			ID:                r.ID,
			ProductID:         r.ProductID,
			BuyerID:           r.BuyerID,
			Rating:            r.Rating,
			Comment:           r.Comment,
			ReviewerName:      r.FullName,
			ReviewerAvatarURL: util.PgTextToString(r.ProfileImageUrl),
			CreatedAt:         r.CreatedAt,
		})
	}
	return res
}
