package handler

import (
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

// convertUserModelToDTO 將 UserModel 轉換為 UserDTO
func convertUserModelToDTO(m *model.UserModel) dto.UserDTO {
	return dto.UserDTO{
		ID:              m.ID,
		FirebaseUID:     m.FirebaseUID,
		Email:           m.Email,
		FullName:        m.FullName,
		Phone:           m.Phone,
		ProfileImageURL: m.ProfileImageURL,
		Role:            m.Role,
		Status:          m.Status,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func convertProductModelToDTO(m *model.ProductModel) dto.ProductDTO {
	return dto.ProductDTO{
		ID:            m.ID,
		SellerID:      m.SellerID,
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		StockQuantity: m.StockQuantity,
		ImageURL:      m.ImageURL,
		Category:      m.Category,
		Status:        m.Status,
		Rating:        m.Rating,
		TotalReviews:  m.TotalReviews,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func convertProductModelsToDTO(models []model.ProductModel) []dto.ProductDTO {
	res := make([]dto.ProductDTO, 0, len(models))
	for i := range models {
		res = append(res, convertProductModelToDTO(&models[i]))
	}
	return res
}

func convertCartModelToDTO(m *model.CartModel) dto.CartDTO {
	items := make([]dto.CartLineDTO, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, dto.CartLineDTO{
			ID:            it.ID,
			ProductID:     it.ProductID,
			Name:          it.Name,
			Price:         it.Price,
			ImageURL:      it.ImageURL,
			SellerID:      it.SellerID,
			StockQuantity: it.StockQuantity,
			Quantity:      it.Quantity,
			Subtotal:      it.Subtotal,
		})
	}
	return dto.CartDTO{
		CartID: m.CartID,
		Items:  items,
		Total:  m.Total,
	}
}

func convertCartItemModelToDTO(m *model.CartItemModel) dto.CartItemDTO {
	return dto.CartItemDTO{
		ID:        m.ID,
		CartID:    m.CartID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
	}
}

func convertOrderModelToDTO(m *model.OrderModel) dto.OrderDTO {
	return dto.OrderDTO{
		ID:              m.ID,
		BuyerID:         m.BuyerID,
		OrderNumber:     m.OrderNumber,
		TotalAmount:     m.TotalAmount,
		Status:          m.Status,
		ShippingAddress: m.ShippingAddress,
		ShippingCity:    m.ShippingCity,
		ShippingZip:     m.ShippingZip,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func convertOrderModelsToDTO(models []model.OrderModel) []dto.OrderDTO {
	res := make([]dto.OrderDTO, 0, len(models))
	for i := range models {
		res = append(res, convertOrderModelToDTO(&models[i]))
	}
	return res
}

func convertOrderDetailToDTO(m *model.OrderDetailModel) dto.OrderDetailResponse {
	items := make([]dto.OrderItemDTO, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, dto.OrderItemDTO{
			ID:              it.ID,
			OrderID:         it.OrderID,
			ProductID:       it.ProductID,
			SellerID:        it.SellerID,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			Subtotal:        it.Subtotal,
			ProductName:     it.ProductName,
			ProductImageURL: it.ProductImageURL,
		})
	}
	return dto.OrderDetailResponse{
		Order: convertOrderModelToDTO(&m.Order),
		Items: items,
	}
}

func convertReviewModelToDTO(m *model.ReviewModel) dto.ReviewDTO {
	return dto.ReviewDTO{
		ID:              m.ID,
		ProductID:       m.ProductID,
		BuyerID:         m.BuyerID,
		Rating:          m.Rating,
		Comment:         m.Comment,
		FullName:        m.ReviewerName,
		ProfileImageURL: m.ReviewerAvatarURL,
		CreatedAt:       m.CreatedAt,
	}
}

func convertReviewModelsToDTO(models []model.ReviewModel) []dto.ReviewDTO {
	res := make([]dto.ReviewDTO, 0, len(models))
	for i := range models {
		res = append(res, convertReviewModelToDTO(&models[i]))
	}
	return res
}
