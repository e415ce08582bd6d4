package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/validator"
)

type CartHandler struct {
	cartService service.ICartService
	rules       *validator.RuleBook
}

func NewCartHandler(cartService service.ICartService, rules *validator.RuleBook) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	if rules == nil {
		panic("rules cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
		rules:       rules,
	}
}

// @Summary get cart
// @Description 購物車不存在時自動建立
// @Tags cart
// @Produce json
// @Success 200 {object} response.Response{data=dto.CartDTO} "success"
// @Failure 401 {object} response.Response "authentication failed"
// @Security ApiKeyAuth
// @Router /cart [get]
func (c *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	cart, err := c.cartService.GetCart(r.Context(), caller.ID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Cart fetched successfully", convertCartModelToDTO(cart))
}

// @Summary add cart item
// @Description 同商品已在購物車時累加數量, 累加後不可超過庫存
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.AddCartItemRequest true "item"
// @Success 201 {object} response.Response{data=dto.CartItemDTO} "success"
// @Failure 404 {object} response.Response "product not found"
// @Failure 409 {object} response.Response "insufficient stock"
// @Failure 422 {object} response.Response "validation error"
// @Security ApiKeyAuth
// @Router /cart/items [post]
func (c *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var req dto.AddCartItemRequest
	if err := bindForm(r, c.rules, validator.FormCartAdd, &req); err != nil {
		response.Error(w, err)
		return
	}

	productID, err := toInt64("product_id", req.ProductID)
	if err != nil {
		response.Error(w, err)
		return
	}
	quantity, err := toInt32("quantity", req.Quantity)
	if err != nil {
		response.Error(w, err)
		return
	}

	item, err := c.cartService.AddItem(r.Context(), caller.ID, productID, quantity)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Item added to cart", convertCartItemModelToDTO(item))
}

// @Summary update cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "cart item id"
// @Param item body dto.UpdateCartItemRequest true "quantity"
// @Success 200 {object} response.Response{data=dto.CartItemDTO} "success"
// @Failure 404 {object} response.Response "cart item not found"
// @Failure 409 {object} response.Response "insufficient stock"
// @Failure 422 {object} response.Response "validation error"
// @Security ApiKeyAuth
// @Router /cart/items/{id} [put]
func (c *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	itemID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	var req dto.UpdateCartItemRequest
	if err := bindForm(r, c.rules, validator.FormCartUpdate, &req); err != nil {
		response.Error(w, err)
		return
	}

	quantity, err := toInt32("quantity", req.Quantity)
	if err != nil {
		response.Error(w, err)
		return
	}

	item, err := c.cartService.UpdateItem(r.Context(), caller.ID, itemID, quantity)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Item updated successfully", convertCartItemModelToDTO(item))
}

// @Summary remove cart item
// @Tags cart
// @Produce json
// @Param id path int true "cart item id"
// @Success 200 {object} response.Response "success"
// @Failure 404 {object} response.Response "cart item not found"
// @Security ApiKeyAuth
// @Router /cart/items/{id} [delete]
func (c *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	itemID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := c.cartService.RemoveItem(r.Context(), caller.ID, itemID); err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Item removed from cart", nil)
}

// @Summary clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} response.Response "success"
// @Security ApiKeyAuth
// @Router /cart [delete]
func (c *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := c.cartService.ClearCart(r.Context(), caller.ID); err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Cart cleared successfully", nil)
}
