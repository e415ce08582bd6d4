package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/RoyceAzure/lab/shopcenter/internal/validator"
)

type OrderHandler struct {
	orderService service.IOrderService
	rules        *validator.RuleBook
}

func NewOrderHandler(orderService service.IOrderService, rules *validator.RuleBook) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	if rules == nil {
		panic("rules cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
		rules:        rules,
	}
}

// @Summary checkout
// @Description 將購物車轉為訂單, 在同一個 transaction 中扣庫存並清空購物車
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "shipping info"
// @Success 201 {object} response.Response{data=dto.CreateOrderResponse} "success"
// @Failure 400 {object} response.Response "cart is empty"
// @Failure 404 {object} response.Response "cart not found"
// @Failure 409 {object} response.Response "insufficient stock"
// @Failure 422 {object} response.Response "validation error"
// @Security ApiKeyAuth
// @Router /orders [post]
func (o *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var req dto.CreateOrderRequest
	if err := bindForm(r, o.rules, validator.FormOrderCreate, &req); err != nil {
		response.Error(w, err)
		return
	}

	res, err := o.orderService.CreateOrder(r.Context(), &model.CreateOrderModel{
		BuyerID:         caller.ID,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingZip:     req.ShippingZip,
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Order created successfully", dto.CreateOrderResponse{
		OrderID:     res.OrderID,
		OrderNumber: res.OrderNumber,
		TotalAmount: res.TotalAmount,
	})
}

// @Summary list my orders
// @Tags orders
// @Produce json
// @Param page query int false "page, default 1"
// @Success 200 {object} response.Response{data=dto.OrderListResponse} "success"
// @Security ApiKeyAuth
// @Router /orders [get]
func (o *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	paging := util.NewPaging(r.URL.Query().Get("page"))

	orders, err := o.orderService.ListOrders(r.Context(), caller.ID, paging)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Orders fetched successfully", dto.OrderListResponse{
		Orders: convertOrderModelsToDTO(orders),
		Page:   paging.Page,
		Limit:  paging.PageSize,
	})
}

// @Summary order details
// @Description buyer, admin 或訂單中有商品的 seller 可查看
// @Tags orders
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} response.Response{data=dto.OrderDetailResponse} "success"
// @Failure 403 {object} response.Response "cannot view this order"
// @Failure 404 {object} response.Response "order not found"
// @Security ApiKeyAuth
// @Router /orders/{id} [get]
func (o *OrderHandler) GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	orderID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	detail, err := o.orderService.GetOrderDetails(r.Context(), caller, orderID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Order details fetched successfully", convertOrderDetailToDTO(detail))
}

// @Summary update order status
// @Description admin 或訂單中有商品的 seller 可更新
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param status body dto.UpdateOrderStatusRequest true "new status"
// @Success 200 {object} response.Response{data=dto.OrderDTO} "success"
// @Failure 403 {object} response.Response "cannot update this order"
// @Failure 404 {object} response.Response "order not found"
// @Failure 422 {object} response.Response "validation error"
// @Security ApiKeyAuth
// @Router /orders/{id}/status [put]
func (o *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	orderID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := bindForm(r, o.rules, validator.FormOrderStatus, &req); err != nil {
		response.Error(w, err)
		return
	}

	order, err := o.orderService.UpdateOrderStatus(r.Context(), caller, orderID, req.Status)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Order status updated successfully", convertOrderModelToDTO(order))
}

// @Summary list seller orders
// @Description 含有該 seller 商品的訂單, 僅限 seller
// @Tags orders
// @Produce json
// @Param page query int false "page, default 1"
// @Success 200 {object} response.Response{data=dto.OrderListResponse} "success"
// @Failure 403 {object} response.Response "only sellers can access this"
// @Security ApiKeyAuth
// @Router /seller/orders [get]
func (o *OrderHandler) ListSellerOrders(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	paging := util.NewPaging(r.URL.Query().Get("page"))

	orders, err := o.orderService.ListSellerOrders(r.Context(), caller, paging)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Orders fetched successfully", dto.OrderListResponse{
		Orders: convertOrderModelsToDTO(orders),
		Page:   paging.Page,
		Limit:  paging.PageSize,
	})
}
