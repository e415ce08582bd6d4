package cache

import (
	"context"
	"sync"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/rs/zerolog/log"
)

/*
CachedStore 以 cache-aside 方式快取 GetProductByID

商品被修改時 (更新, 刪除, 扣庫存, 評分) 刪除快取,
交易內的修改會在 commit 成功後才刪除, rollback 時不動快取
快取失敗一律退回資料庫, 不影響請求結果
*/
type CachedStore struct {
	db.IStore
	cache ProductCache
}

func NewCachedStore(store db.IStore, cache ProductCache) *CachedStore {
	if store == nil {
		panic("NewCachedStore: store cannot be nil")
	}
	if cache == nil {
		panic("NewCachedStore: cache cannot be nil")
	}
	return &CachedStore{IStore: store, cache: cache}
}

func (s *CachedStore) GetProductByID(ctx context.Context, id int64) (sqlc.Product, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		log.Warn().Err(err).Int64("product_id", id).Msg("product cache get failed")
	} else if cached != nil {
		return *cached, nil
	}

	product, err := s.IStore.GetProductByID(ctx, id)
	if err != nil {
		return product, err
	}

	if err := s.cache.Set(ctx, product); err != nil {
		log.Warn().Err(err).Int64("product_id", id).Msg("product cache set failed")
	}
	return product, nil
}

func (s *CachedStore) UpdateProduct(ctx context.Context, arg sqlc.UpdateProductParams) (sqlc.Product, error) {
	product, err := s.IStore.UpdateProduct(ctx, arg)
	s.invalidate(ctx, arg.ID)
	return product, err
}

func (s *CachedStore) SoftDeleteProduct(ctx context.Context, id int64) (int64, error) {
	rows, err := s.IStore.SoftDeleteProduct(ctx, id)
	s.invalidate(ctx, id)
	return rows, err
}

func (s *CachedStore) DecreaseStock(ctx context.Context, arg sqlc.DecreaseStockParams) (int64, error) {
	rows, err := s.IStore.DecreaseStock(ctx, arg)
	s.invalidate(ctx, arg.ID)
	return rows, err
}

func (s *CachedStore) UpdateProductRating(ctx context.Context, arg sqlc.UpdateProductRatingParams) error {
	err := s.IStore.UpdateProductRating(ctx, arg)
	s.invalidate(ctx, arg.ID)
	return err
}

func (s *CachedStore) ExecTx(ctx context.Context, fn func(sqlc.Querier) error) error {
	touched := &touchedProducts{}
	err := s.IStore.ExecTx(ctx, func(q sqlc.Querier) error {
		return fn(&trackingQuerier{Querier: q, touched: touched})
	})
	if err == nil {
		s.invalidate(ctx, touched.list()...)
	}
	return err
}

func (s *CachedStore) invalidate(ctx context.Context, ids ...int64) {
	if len(ids) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, ids...); err != nil {
		log.Warn().Err(err).Ints64("product_ids", ids).Msg("product cache invalidate failed")
	}
}

type touchedProducts struct {
	mu  sync.Mutex
	ids []int64
}

func (t *touchedProducts) add(id int64) {
	t.mu.Lock()
	t.ids = append(t.ids, id)
	t.mu.Unlock()
}

func (t *touchedProducts) list() []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ids
}

// trackingQuerier 記錄交易中被修改的商品
type trackingQuerier struct {
	sqlc.Querier
	touched *touchedProducts
}

func (q *trackingQuerier) UpdateProduct(ctx context.Context, arg sqlc.UpdateProductParams) (sqlc.Product, error) {
	q.touched.add(arg.ID)
	return q.Querier.UpdateProduct(ctx, arg)
}

func (q *trackingQuerier) SoftDeleteProduct(ctx context.Context, id int64) (int64, error) {
	q.touched.add(id)
	return q.Querier.SoftDeleteProduct(ctx, id)
}

func (q *trackingQuerier) DecreaseStock(ctx context.Context, arg sqlc.DecreaseStockParams) (int64, error) {
	q.touched.add(arg.ID)
	return q.Querier.DecreaseStock(ctx, arg)
}

func (q *trackingQuerier) UpdateProductRating(ctx context.Context, arg sqlc.UpdateProductRatingParams) error {
	q.touched.add(arg.ID)
	return q.Querier.UpdateProductRating(ctx, arg)
}

var _ db.IStore = (*CachedStore)(nil)
