package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/event"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// order number 重複時整筆交易重試的次數
const createOrderAttempts = 3

type IOrderService interface {
	CreateOrder(ctx context.Context, arg *model.CreateOrderModel) (*model.CreateOrderResult, error)
	ListOrders(ctx context.Context, buyerID int64, paging util.Paging) ([]model.OrderModel, error)
	GetOrderDetails(ctx context.Context, caller *model.UserModel, orderID int64) (*model.OrderDetailModel, error)
	UpdateOrderStatus(ctx context.Context, caller *model.UserModel, orderID int64, status string) (*model.OrderModel, error)
	ListSellerOrders(ctx context.Context, caller *model.UserModel, paging util.Paging) ([]model.OrderModel, error)
}

type OrderService struct {
	dbDao          db.IStore
	publisher      event.IOrderEventPublisher
	newOrderNumber func() string
}

func NewOrderService(dbDao db.IStore, publisher event.IOrderEventPublisher) *OrderService {
	if dbDao == nil {
		panic("NewOrderService: dbDao cannot be nil")
	}
	if publisher == nil {
		panic("NewOrderService: publisher cannot be nil")
	}
	return &OrderService{
		dbDao:          dbDao,
		publisher:      publisher,
		newOrderNumber: generateOrderNumber,
	}
}

// generateOrderNumber 格式 ORD-<unix seconds>-<4 位數>
func generateOrderNumber() string {
	return fmt.Sprintf("%s-%d-%04d", constants.OrderNumberPrefix, time.Now().Unix(), util.RandomInt(0, 9999))
}

/*
CreateOrder 將購物車轉為訂單

所有步驟在同一個交易中完成, 任一步驟失敗時不會留下訂單, 庫存與購物車維持原狀.
庫存以條件式 UPDATE 扣除, 同時下單不會超賣.

錯誤:
  - apperr.NotFoundCode 404: 購物車不存在
  - apperr.BadRequestCode 400: 購物車是空的
  - apperr.ConflictCode 409: 商品已下架或庫存不足
*/
func (o *OrderService) CreateOrder(ctx context.Context, arg *model.CreateOrderModel) (*model.CreateOrderResult, error) {
	var (
		order sqlc.Order
		lines []sqlc.ListCartItemsRow
		err   error
	)

	for attempt := 1; attempt <= createOrderAttempts; attempt++ {
		order, lines, err = o.createOrderTx(ctx, arg)
		if err == nil || db.ErrorCode(err) != db.UniqueViolation {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("order number collision, retrying")
	}
	if err != nil {
		return nil, db.ClassifyError(err, "")
	}

	o.publishOrderCreated(ctx, &order, lines)

	return &model.CreateOrderResult{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
	}, nil
}

func (o *OrderService) createOrderTx(ctx context.Context, arg *model.CreateOrderModel) (sqlc.Order, []sqlc.ListCartItemsRow, error) {
	var (
		order sqlc.Order
		lines []sqlc.ListCartItemsRow
	)

	err := o.dbDao.ExecTx(ctx, func(q sqlc.Querier) error {
		cart, err := q.GetCartByUserID(ctx, arg.BuyerID)
		if err != nil {
			return db.ClassifyError(err, "Cart not found")
		}

		lines, err = q.ListCartItems(ctx, cart.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.New(apperr.BadRequestCode, "Cart is empty")
		}

		total := decimal.Zero
		for _, line := range lines {
			if line.Status != constants.ProductStatusActive {
				return apperr.New(apperr.ConflictCode, fmt.Sprintf("Product %s is no longer available", line.Name))
			}
			total = total.Add(line.Price.Mul(decimal.NewFromInt32(line.Quantity)))
		}

		order, err = q.CreateOrder(ctx, sqlc.CreateOrderParams{
			BuyerID:         arg.BuyerID,
			OrderNumber:     o.newOrderNumber(),
			TotalAmount:     total,
			Status:          constants.OrderStatusPending,
			ShippingAddress: arg.ShippingAddress,
			ShippingCity:    arg.ShippingCity,
			ShippingZip:     arg.ShippingZip,
			Notes:           util.StringToPgText(arg.Notes),
		})
		if err != nil {
			return err
		}

		for _, line := range lines {
			if _, err := q.CreateOrderItem(ctx, sqlc.CreateOrderItemParams{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				SellerID:  line.SellerID,
				Quantity:  line.Quantity,
				UnitPrice: line.Price,
				Subtotal:  line.Price.Mul(decimal.NewFromInt32(line.Quantity)),
			}); err != nil {
				return err
			}

			affected, err := q.DecreaseStock(ctx, sqlc.DecreaseStockParams{
				Quantity: line.Quantity,
				ID:       line.ProductID,
			})
			if err != nil {
				return err
			}
			if affected == 0 {
				return apperr.New(apperr.ConflictCode, fmt.Sprintf("Insufficient stock for product %s", line.Name))
			}
		}

		return q.ClearCart(ctx, cart.ID)
	})
	return order, lines, err
}

func (o *OrderService) ListOrders(ctx context.Context, buyerID int64, paging util.Paging) ([]model.OrderModel, error) {
	orders, err := o.dbDao.ListOrdersByBuyer(ctx, sqlc.ListOrdersByBuyerParams{
		BuyerID: buyerID,
		Limit:   paging.Limit(),
		Offset:  paging.Offset(),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return convertRepoOrdersToModel(orders), nil
}

// GetOrderDetails buyer, admin 以及擁有訂單項目的 seller 可以查看
func (o *OrderService) GetOrderDetails(ctx context.Context, caller *model.UserModel, orderID int64) (*model.OrderDetailModel, error) {
	order, err := o.dbDao.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, db.ClassifyError(err, "Order not found")
	}

	if order.BuyerID != caller.ID && !caller.IsAdmin() {
		owns, err := o.sellerOwnsItems(ctx, order.ID, caller)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, apperr.New(apperr.ForbiddenCode, "You cannot view this order")
		}
	}

	items, err := o.dbDao.ListOrderItems(ctx, order.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &model.OrderDetailModel{
		Order: *convertRepoOrderToModel(&order),
		Items: convertRepoOrderItemsToModel(items),
	}, nil
}

// UpdateOrderStatus admin 可更新任何訂單, 其他人必須擁有至少一個訂單項目
func (o *OrderService) UpdateOrderStatus(ctx context.Context, caller *model.UserModel, orderID int64, status string) (*model.OrderModel, error) {
	if !isValidOrderStatus(status) {
		return nil, apperr.New(apperr.BadRequestCode, "Invalid order status")
	}

	order, err := o.dbDao.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, db.ClassifyError(err, "Order not found")
	}

	if !caller.IsAdmin() {
		count, err := o.dbDao.CountSellerOrderItems(ctx, sqlc.CountSellerOrderItemsParams{
			OrderID:  order.ID,
			SellerID: caller.ID,
		})
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if count == 0 {
			return nil, apperr.New(apperr.ForbiddenCode, "You cannot update this order")
		}
	}

	updated, err := o.dbDao.UpdateOrderStatus(ctx, sqlc.UpdateOrderStatusParams{
		ID:     order.ID,
		Status: status,
	})
	if err != nil {
		return nil, db.ClassifyError(err, "Order not found")
	}

	o.publish(ctx, func(ctx context.Context) error {
		return o.publisher.PublishOrderStatusChanged(ctx, event.OrderStatusChangedPayload{
			OrderID:     updated.ID,
			OrderNumber: updated.OrderNumber,
			Status:      updated.Status,
			ChangedBy:   caller.ID,
		})
	})

	return convertRepoOrderToModel(&updated), nil
}

func (o *OrderService) ListSellerOrders(ctx context.Context, caller *model.UserModel, paging util.Paging) ([]model.OrderModel, error) {
	if !caller.IsSeller() {
		return nil, apperr.New(apperr.ForbiddenCode, "Only sellers can access this")
	}

	orders, err := o.dbDao.ListOrdersBySeller(ctx, sqlc.ListOrdersBySellerParams{
		SellerID: caller.ID,
		Limit:    paging.Limit(),
		Offset:   paging.Offset(),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return convertRepoOrdersToModel(orders), nil
}

func (o *OrderService) sellerOwnsItems(ctx context.Context, orderID int64, caller *model.UserModel) (bool, error) {
	if !caller.IsSeller() {
		return false, nil
	}
	count, err := o.dbDao.CountSellerOrderItems(ctx, sqlc.CountSellerOrderItemsParams{
		OrderID:  orderID,
		SellerID: caller.ID,
	})
	if err != nil {
		return false, apperr.Internal(err)
	}
	return count > 0, nil
}

func (o *OrderService) publishOrderCreated(ctx context.Context, order *sqlc.Order, lines []sqlc.ListCartItemsRow) {
	items := make([]event.OrderItemPayload, 0, len(lines))
	for _, line := range lines {
		items = append(items, event.OrderItemPayload{
			ProductID: line.ProductID,
			SellerID:  line.SellerID,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
	}

	o.publish(ctx, func(ctx context.Context) error {
		return o.publisher.PublishOrderCreated(ctx, event.OrderCreatedPayload{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			BuyerID:     order.BuyerID,
			TotalAmount: order.TotalAmount,
			Items:       items,
		})
	})
}

// publish 訂單已經 commit, 發送失敗只記錄不回傳
func (o *OrderService) publish(ctx context.Context, fn func(ctx context.Context) error) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.EventPublishTimeout)
	defer cancel()

	if err := fn(pubCtx); err != nil {
		log.Error().Err(err).Str("request_id", util.GetRequestID(ctx)).Msg("publish order event")
	}
}

func isValidOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusPending,
		constants.OrderStatusConfirmed,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusCancelled:
		return true
	default:
		return false
	}
}
