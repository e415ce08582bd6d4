package cache

import (
	"context"
	"errors"
	"sync"
	"testing"

	mockdb "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/mock"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu      sync.Mutex
	items   map[int64]sqlc.Product
	getErr  error
	deleted []int64
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[int64]sqlc.Product{}}
}

func (c *memoryCache) Get(_ context.Context, id int64) (*sqlc.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	p, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *memoryCache) Set(_ context.Context, product sqlc.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[product.ID] = product
	return nil
}

func (c *memoryCache) Delete(_ context.Context, ids ...int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		delete(c.items, id)
		c.deleted = append(c.deleted, id)
	}
	return nil
}

func TestGetProductByIDCacheAside(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)
	mc := newMemoryCache()
	cached := NewCachedStore(store, mc)

	product := sqlc.Product{ID: 7, Name: "Lamp", Price: decimal.NewFromInt(30)}
	store.EXPECT().GetProductByID(gomock.Any(), int64(7)).Return(product, nil).Times(1)

	got, err := cached.GetProductByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "Lamp", got.Name)

	// 第二次命中快取, 不會再查資料庫
	got, err = cached.GetProductByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "Lamp", got.Name)
}

func TestGetProductByIDFallsBackOnCacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)
	mc := newMemoryCache()
	mc.getErr = errors.New("redis down")
	cached := NewCachedStore(store, mc)

	store.EXPECT().GetProductByID(gomock.Any(), int64(1)).Return(sqlc.Product{ID: 1}, nil).Times(2)

	for i := 0; i < 2; i++ {
		_, err := cached.GetProductByID(context.Background(), 1)
		require.NoError(t, err)
	}
}

func TestGetProductByIDDoesNotCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)
	mc := newMemoryCache()
	cached := NewCachedStore(store, mc)

	store.EXPECT().GetProductByID(gomock.Any(), int64(1)).Return(sqlc.Product{}, errors.New("no rows"))

	_, err := cached.GetProductByID(context.Background(), 1)
	require.Error(t, err)
	require.Empty(t, mc.items)
}

func TestMutationsInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)
	mc := newMemoryCache()
	cached := NewCachedStore(store, mc)
	ctx := context.Background()

	mc.items[1] = sqlc.Product{ID: 1}
	mc.items[2] = sqlc.Product{ID: 2}
	mc.items[3] = sqlc.Product{ID: 3}

	store.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).Return(sqlc.Product{ID: 1}, nil)
	store.EXPECT().SoftDeleteProduct(gomock.Any(), int64(2)).Return(int64(1), nil)
	store.EXPECT().UpdateProductRating(gomock.Any(), gomock.Any()).Return(nil)

	_, err := cached.UpdateProduct(ctx, sqlc.UpdateProductParams{ID: 1})
	require.NoError(t, err)
	_, err = cached.SoftDeleteProduct(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, cached.UpdateProductRating(ctx, sqlc.UpdateProductRatingParams{ID: 3}))

	require.Empty(t, mc.items)
}

func TestExecTxInvalidatesAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockIStore(ctrl)
	mc := newMemoryCache()
	cached := NewCachedStore(store, mc)
	ctx := context.Background()

	mc.items[5] = sqlc.Product{ID: 5}
	mc.items[6] = sqlc.Product{ID: 6}

	store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(sqlc.Querier) error) error {
			return fn(store)
		}).Times(2)
	store.EXPECT().DecreaseStock(gomock.Any(), sqlc.DecreaseStockParams{ID: 5, Quantity: 1}).Return(int64(1), nil)
	store.EXPECT().DecreaseStock(gomock.Any(), sqlc.DecreaseStockParams{ID: 6, Quantity: 1}).Return(int64(0), nil)

	err := cached.ExecTx(ctx, func(q sqlc.Querier) error {
		_, err := q.DecreaseStock(ctx, sqlc.DecreaseStockParams{ID: 5, Quantity: 1})
		return err
	})
	require.NoError(t, err)
	require.NotContains(t, mc.items, int64(5))

	errAbort := errors.New("insufficient")
	err = cached.ExecTx(ctx, func(q sqlc.Querier) error {
		_, _ = q.DecreaseStock(ctx, sqlc.DecreaseStockParams{ID: 6, Quantity: 1})
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)
	require.Contains(t, mc.items, int64(6))
}
