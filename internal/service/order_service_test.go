package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/event"
	mockdb "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/mock"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu      sync.Mutex
	created []event.OrderCreatedPayload
	changed []event.OrderStatusChangedPayload
	err     error
}

func (p *recordingPublisher) PublishOrderCreated(_ context.Context, payload event.OrderCreatedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, payload)
	return p.err
}

func (p *recordingPublisher) PublishOrderStatusChanged(_ context.Context, payload event.OrderStatusChangedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changed = append(p.changed, payload)
	return p.err
}

func (p *recordingPublisher) Close() error {
	return nil
}

func newTestOrderService(store *mockdb.MockIStore, pub *recordingPublisher) *OrderService {
	svc := NewOrderService(store, pub)
	svc.newOrderNumber = func() string { return "ORD-1700000000-0042" }
	return svc
}

func cartLines() []sqlc.ListCartItemsRow {
	return []sqlc.ListCartItemsRow{
		{ID: 1, CartID: 3, ProductID: 10, Quantity: 2, Name: "pen", Price: decimal.RequireFromString("1.25"), SellerID: 5, StockQuantity: 10, Status: constants.ProductStatusActive},
		{ID: 2, CartID: 3, ProductID: 11, Quantity: 1, Name: "ink", Price: decimal.RequireFromString("3.10"), SellerID: 6, StockQuantity: 1, Status: constants.ProductStatusActive},
	}
}

func TestCreateOrder_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)
	pub := &recordingPublisher{}

	arg := &model.CreateOrderModel{BuyerID: 7, ShippingAddress: "1 Main St", ShippingCity: "Taipei", ShippingZip: "100"}
	total := decimal.RequireFromString("5.60")

	expectTx(store)
	store.EXPECT().GetCartByUserID(gomock.Any(), int64(7)).Return(sqlc.Cart{ID: 3, UserID: 7}, nil)
	store.EXPECT().ListCartItems(gomock.Any(), int64(3)).Return(cartLines(), nil)
	store.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p sqlc.CreateOrderParams) (sqlc.Order, error) {
			require.True(t, total.Equal(p.TotalAmount))
			require.Equal(t, constants.OrderStatusPending, p.Status)
			require.Equal(t, "ORD-1700000000-0042", p.OrderNumber)
			require.False(t, p.Notes.Valid)
			return sqlc.Order{ID: 100, BuyerID: 7, OrderNumber: p.OrderNumber, TotalAmount: p.TotalAmount, Status: p.Status}, nil
		})
	store.EXPECT().CreateOrderItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p sqlc.CreateOrderItemParams) (sqlc.OrderItem, error) {
			require.Equal(t, int64(100), p.OrderID)
			require.True(t, p.Subtotal.Equal(p.UnitPrice.Mul(decimal.NewFromInt32(p.Quantity))))
			return sqlc.OrderItem{}, nil
		}).Times(2)
	store.EXPECT().DecreaseStock(gomock.Any(), sqlc.DecreaseStockParams{Quantity: 2, ID: 10}).Return(int64(1), nil)
	store.EXPECT().DecreaseStock(gomock.Any(), sqlc.DecreaseStockParams{Quantity: 1, ID: 11}).Return(int64(1), nil)
	store.EXPECT().ClearCart(gomock.Any(), int64(3)).Return(nil)

	res, err := newTestOrderService(store, pub).CreateOrder(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, int64(100), res.OrderID)
	require.Equal(t, "ORD-1700000000-0042", res.OrderNumber)
	require.True(t, total.Equal(res.TotalAmount))

	require.Len(t, pub.created, 1)
	require.Equal(t, int64(100), pub.created[0].OrderID)
	require.Len(t, pub.created[0].Items, 2)
}

func TestCreateOrder_InsufficientStockRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)
	pub := &recordingPublisher{}

	expectTx(store)
	store.EXPECT().GetCartByUserID(gomock.Any(), int64(7)).Return(sqlc.Cart{ID: 3}, nil)
	store.EXPECT().ListCartItems(gomock.Any(), int64(3)).Return(cartLines(), nil)
	store.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(sqlc.Order{ID: 100}, nil)
	store.EXPECT().CreateOrderItem(gomock.Any(), gomock.Any()).Return(sqlc.OrderItem{}, nil).Times(2)
	store.EXPECT().DecreaseStock(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	store.EXPECT().DecreaseStock(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	store.EXPECT().ClearCart(gomock.Any(), gomock.Any()).Times(0)

	_, err := newTestOrderService(store, pub).CreateOrder(context.Background(), &model.CreateOrderModel{BuyerID: 7})
	requireAppErr(t, err, apperr.ConflictCode)
	appErr, _ := apperr.As(err)
	require.Equal(t, "Insufficient stock for product ink", appErr.Message)
	require.Empty(t, pub.created)
}

func TestCreateOrder_Preconditions(t *testing.T) {
	testCases := []struct {
		name       string
		buildStubs func(store *mockdb.MockIStore)
		code       apperr.ErrorCode
	}{
		{
			name: "NoCart",
			buildStubs: func(store *mockdb.MockIStore) {
				store.EXPECT().GetCartByUserID(gomock.Any(), gomock.Any()).Return(sqlc.Cart{}, pgx.ErrNoRows)
			},
			code: apperr.NotFoundCode,
		},
		{
			name: "EmptyCart",
			buildStubs: func(store *mockdb.MockIStore) {
				store.EXPECT().GetCartByUserID(gomock.Any(), gomock.Any()).Return(sqlc.Cart{ID: 3}, nil)
				store.EXPECT().ListCartItems(gomock.Any(), int64(3)).Return([]sqlc.ListCartItemsRow{}, nil)
			},
			code: apperr.BadRequestCode,
		},
		{
			name: "ProductNoLongerActive",
			buildStubs: func(store *mockdb.MockIStore) {
				lines := cartLines()
				lines[1].Status = constants.ProductStatusDeleted
				store.EXPECT().GetCartByUserID(gomock.Any(), gomock.Any()).Return(sqlc.Cart{ID: 3}, nil)
				store.EXPECT().ListCartItems(gomock.Any(), int64(3)).Return(lines, nil)
				store.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Times(0)
			},
			code: apperr.ConflictCode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mockdb.NewMockIStore(ctrl)
			expectTx(store)
			tc.buildStubs(store)

			_, err := newTestOrderService(store, &recordingPublisher{}).CreateOrder(context.Background(), &model.CreateOrderModel{BuyerID: 7})
			requireAppErr(t, err, tc.code)
		})
	}
}

func TestCreateOrder_RetriesOrderNumberCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)

	expectTx(store).Times(2)
	store.EXPECT().GetCartByUserID(gomock.Any(), gomock.Any()).Return(sqlc.Cart{ID: 3}, nil).Times(2)
	store.EXPECT().ListCartItems(gomock.Any(), int64(3)).Return(cartLines()[:1], nil).Times(2)
	gomock.InOrder(
		store.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(sqlc.Order{}, errUniqueViolation),
		store.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(sqlc.Order{ID: 101}, nil),
	)
	store.EXPECT().CreateOrderItem(gomock.Any(), gomock.Any()).Return(sqlc.OrderItem{}, nil)
	store.EXPECT().DecreaseStock(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	store.EXPECT().ClearCart(gomock.Any(), int64(3)).Return(nil)

	res, err := newTestOrderService(store, &recordingPublisher{}).CreateOrder(context.Background(), &model.CreateOrderModel{BuyerID: 7})
	require.NoError(t, err)
	require.Equal(t, int64(101), res.OrderID)
}

func TestCreateOrder_PublishFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)
	pub := &recordingPublisher{err: errors.New("broker down")}

	expectTx(store)
	store.EXPECT().GetCartByUserID(gomock.Any(), gomock.Any()).Return(sqlc.Cart{ID: 3}, nil)
	store.EXPECT().ListCartItems(gomock.Any(), gomock.Any()).Return(cartLines()[:1], nil)
	store.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(sqlc.Order{ID: 100}, nil)
	store.EXPECT().CreateOrderItem(gomock.Any(), gomock.Any()).Return(sqlc.OrderItem{}, nil)
	store.EXPECT().DecreaseStock(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	store.EXPECT().ClearCart(gomock.Any(), gomock.Any()).Return(nil)

	_, err := newTestOrderService(store, pub).CreateOrder(context.Background(), &model.CreateOrderModel{BuyerID: 7})
	require.NoError(t, err)
	require.Len(t, pub.created, 1)
}

func TestGetOrderDetails_Access(t *testing.T) {
	buyer := randomUser(constants.RoleBuyer)
	order := sqlc.Order{ID: 100, BuyerID: buyer.ID, Status: constants.OrderStatusPending}

	testCases := []struct {
		name       string
		caller     *model.UserModel
		buildStubs func(store *mockdb.MockIStore)
		code       apperr.ErrorCode
	}{
		{
			name:   "Buyer",
			caller: buyer,
			buildStubs: func(store *mockdb.MockIStore) {
				store.EXPECT().ListOrderItems(gomock.Any(), order.ID).Return([]sqlc.ListOrderItemsRow{{ID: 1, ProductName: "pen"}}, nil)
			},
		},
		{
			name:   "Admin",
			caller: randomUser(constants.RoleAdmin),
			buildStubs: func(store *mockdb.MockIStore) {
				store.EXPECT().ListOrderItems(gomock.Any(), order.ID).Return(nil, nil)
			},
		},
		{
			name:   "SellerWithItems",
			caller: randomUser(constants.RoleSeller),
			buildStubs: func(store *mockdb.MockIStore) {
				store.EXPECT().CountSellerOrderItems(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				store.EXPECT().ListOrderItems(gomock.Any(), order.ID).Return(nil, nil)
			},
		},
		{
			name:   "SellerWithoutItems",
			caller: randomUser(constants.RoleSeller),
			buildStubs: func(store *mockdb.MockIStore) {
				store.EXPECT().CountSellerOrderItems(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			code: apperr.ForbiddenCode,
		},
		{
			name:       "OtherBuyer",
			caller:     randomUser(constants.RoleBuyer),
			buildStubs: func(store *mockdb.MockIStore) {},
			code:       apperr.ForbiddenCode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mockdb.NewMockIStore(ctrl)
			store.EXPECT().GetOrderByID(gomock.Any(), order.ID).Return(order, nil)
			tc.buildStubs(store)

			detail, err := newTestOrderService(store, &recordingPublisher{}).GetOrderDetails(context.Background(), tc.caller, order.ID)
			if tc.code == 0 {
				require.NoError(t, err)
				require.Equal(t, order.ID, detail.Order.ID)
				return
			}
			requireAppErr(t, err, tc.code)
		})
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	order := sqlc.Order{ID: 100, BuyerID: 1, OrderNumber: "ORD-1-0001", Status: constants.OrderStatusPending}

	t.Run("SellerOwningItems", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockdb.NewMockIStore(ctrl)
		pub := &recordingPublisher{}
		seller := randomUser(constants.RoleSeller)

		store.EXPECT().GetOrderByID(gomock.Any(), order.ID).Return(order, nil)
		store.EXPECT().CountSellerOrderItems(gomock.Any(), sqlc.CountSellerOrderItemsParams{OrderID: order.ID, SellerID: seller.ID}).Return(int64(2), nil)
		store.EXPECT().UpdateOrderStatus(gomock.Any(), sqlc.UpdateOrderStatusParams{ID: order.ID, Status: constants.OrderStatusShipped}).
			Return(sqlc.Order{ID: order.ID, OrderNumber: order.OrderNumber, Status: constants.OrderStatusShipped}, nil)

		updated, err := newTestOrderService(store, pub).UpdateOrderStatus(context.Background(), seller, order.ID, constants.OrderStatusShipped)
		require.NoError(t, err)
		require.Equal(t, constants.OrderStatusShipped, updated.Status)
		require.Len(t, pub.changed, 1)
		require.Equal(t, seller.ID, pub.changed[0].ChangedBy)
	})

	t.Run("AdminSkipsOwnership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockdb.NewMockIStore(ctrl)

		store.EXPECT().GetOrderByID(gomock.Any(), order.ID).Return(order, nil)
		store.EXPECT().CountSellerOrderItems(gomock.Any(), gomock.Any()).Times(0)
		store.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()).Return(order, nil)

		_, err := newTestOrderService(store, &recordingPublisher{}).UpdateOrderStatus(context.Background(), randomUser(constants.RoleAdmin), order.ID, constants.OrderStatusConfirmed)
		require.NoError(t, err)
	})

	t.Run("Forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockdb.NewMockIStore(ctrl)

		store.EXPECT().GetOrderByID(gomock.Any(), order.ID).Return(order, nil)
		store.EXPECT().CountSellerOrderItems(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		store.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()).Times(0)

		_, err := newTestOrderService(store, &recordingPublisher{}).UpdateOrderStatus(context.Background(), randomUser(constants.RoleBuyer), order.ID, constants.OrderStatusCancelled)
		requireAppErr(t, err, apperr.ForbiddenCode)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockdb.NewMockIStore(ctrl)

		_, err := newTestOrderService(store, &recordingPublisher{}).UpdateOrderStatus(context.Background(), randomUser(constants.RoleAdmin), order.ID, "lost")
		requireAppErr(t, err, apperr.BadRequestCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockdb.NewMockIStore(ctrl)
		store.EXPECT().GetOrderByID(gomock.Any(), int64(404)).Return(sqlc.Order{}, pgx.ErrNoRows)

		_, err := newTestOrderService(store, &recordingPublisher{}).UpdateOrderStatus(context.Background(), randomUser(constants.RoleAdmin), 404, constants.OrderStatusShipped)
		requireAppErr(t, err, apperr.NotFoundCode)
	})
}

func TestListSellerOrders_SellerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)
	svc := newTestOrderService(store, &recordingPublisher{})

	_, err := svc.ListSellerOrders(context.Background(), randomUser(constants.RoleBuyer), pagingFirst())
	requireAppErr(t, err, apperr.ForbiddenCode)

	seller := randomUser(constants.RoleSeller)
	store.EXPECT().ListOrdersBySeller(gomock.Any(), sqlc.ListOrdersBySellerParams{SellerID: seller.ID, Limit: 20, Offset: 0}).
		Return([]sqlc.Order{{ID: 1}, {ID: 2}}, nil)

	orders, err := svc.ListSellerOrders(context.Background(), seller, pagingFirst())
	require.NoError(t, err)
	require.Len(t, orders, 2)
}
