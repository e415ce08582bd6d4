package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/redis/go-redis/v9"
)

// ProductCache 商品快取, Get 未命中時回傳 (nil, nil)
type ProductCache interface {
	Get(ctx context.Context, id int64) (*sqlc.Product, error)
	Set(ctx context.Context, product sqlc.Product) error
	Delete(ctx context.Context, ids ...int64) error
}

type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProductCache(client *redis.Client, ttl time.Duration) *RedisProductCache {
	if client == nil {
		panic("NewRedisProductCache: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = constants.DefaultProductCacheTTL
	}
	return &RedisProductCache{client: client, ttl: ttl}
}

func productKey(id int64) string {
	return fmt.Sprintf("%s:%d", constants.ProductCacheKeyPrefix, id)
}

func (c *RedisProductCache) Get(ctx context.Context, id int64) (*sqlc.Product, error) {
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var product sqlc.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *RedisProductCache) Set(ctx context.Context, product sqlc.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productKey(product.ID), data, c.ttl).Err()
}

func (c *RedisProductCache) Delete(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, productKey(id))
	}
	return c.client.Del(ctx, keys...).Err()
}
