package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProductCacheTestSuite struct {
	suite.Suite
	client *redis.Client
	cache  *RedisProductCache
	ctx    context.Context
}

func (s *ProductCacheTestSuite) SetupSuite() {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		s.T().Skip("Redis not configured, skipping")
	}
	s.ctx = context.Background()

	client, err := NewRedisClient(s.ctx, addr)
	if err != nil {
		s.T().Skipf("Redis unavailable: %v", err)
	}
	s.client = client
	s.cache = NewRedisProductCache(client, time.Minute)
}

func (s *ProductCacheTestSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
}

func TestProductCacheSuite(t *testing.T) {
	suite.Run(t, new(ProductCacheTestSuite))
}

func newCachedProduct() sqlc.Product {
	return sqlc.Product{
		ID:            time.Now().UnixNano(),
		SellerID:      1,
		Name:          "Mug",
		Price:         decimal.RequireFromString("12.50"),
		StockQuantity: 4,
		ImageUrl:      pgtype.Text{String: "https://img.example.com/mug.png", Valid: true},
		Status:        "active",
		Rating:        decimal.RequireFromString("4.25"),
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func (s *ProductCacheTestSuite) TestRoundTrip() {
	product := newCachedProduct()
	s.T().Cleanup(func() { _ = s.cache.Delete(s.ctx, product.ID) })

	miss, err := s.cache.Get(s.ctx, product.ID)
	require.NoError(s.T(), err)
	require.Nil(s.T(), miss)

	require.NoError(s.T(), s.cache.Set(s.ctx, product))

	hit, err := s.cache.Get(s.ctx, product.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), hit)
	require.Equal(s.T(), product.Name, hit.Name)
	require.True(s.T(), product.Price.Equal(hit.Price))
	require.True(s.T(), product.Rating.Equal(hit.Rating))
	require.Equal(s.T(), product.ImageUrl, hit.ImageUrl)
	require.True(s.T(), product.CreatedAt.Equal(hit.CreatedAt))

	require.NoError(s.T(), s.cache.Delete(s.ctx, product.ID))
	gone, err := s.cache.Get(s.ctx, product.ID)
	require.NoError(s.T(), err)
	require.Nil(s.T(), gone)
}

func (s *ProductCacheTestSuite) TestTTL() {
	product := newCachedProduct()
	s.T().Cleanup(func() { _ = s.cache.Delete(s.ctx, product.ID) })

	require.NoError(s.T(), s.cache.Set(s.ctx, product))

	ttl, err := s.client.TTL(s.ctx, productKey(product.ID)).Result()
	require.NoError(s.T(), err)
	require.Greater(s.T(), ttl, time.Duration(0))
	require.LessOrEqual(s.T(), ttl, time.Minute)
}

func (s *ProductCacheTestSuite) TestDeleteMany() {
	a, b := newCachedProduct(), newCachedProduct()
	b.ID = a.ID + 1

	require.NoError(s.T(), s.cache.Set(s.ctx, a))
	require.NoError(s.T(), s.cache.Set(s.ctx, b))
	require.NoError(s.T(), s.cache.Delete(s.ctx, a.ID, b.ID))

	for _, id := range []int64{a.ID, b.ID} {
		got, err := s.cache.Get(s.ctx, id)
		require.NoError(s.T(), err)
		require.Nil(s.T(), got)
	}
}

func TestProductKey(t *testing.T) {
	require.Equal(t, "shopcenter:product:42", productKey(42))
}
