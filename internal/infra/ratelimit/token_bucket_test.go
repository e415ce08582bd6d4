package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	cur time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(d)
}

func newTestBucket(capacity int, rate float64) (*TokenBucket, *fakeClock) {
	clock := &fakeClock{cur: time.Unix(1700000000, 0)}
	bucket := NewTokenBucket(&LimiterConfig{Capacity: capacity, RatePS: rate})
	bucket.now = clock.Now
	bucket.lastRefilled.Store(clock.Now().UnixNano())
	return bucket, clock
}

func TestTokenBucket_Basic(t *testing.T) {
	bucket, _ := newTestBucket(5, 2)

	for i := 0; i < 5; i++ {
		require.True(t, bucket.Allow(), "應該允許第 %d 次請求", i+1)
	}
	require.False(t, bucket.Allow(), "超過容量限制應該被拒絕")
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket, clock := newTestBucket(2, 1)

	require.True(t, bucket.Allow())
	require.True(t, bucket.Allow())
	require.False(t, bucket.Allow())

	clock.Advance(1100 * time.Millisecond)
	require.True(t, bucket.Allow())
	require.False(t, bucket.Allow())

	// 前一次剩下的 100ms 需保留
	clock.Advance(900 * time.Millisecond)
	require.True(t, bucket.Allow())
}

func TestTokenBucket_Capacity(t *testing.T) {
	bucket, clock := newTestBucket(2, 10)

	bucket.Allow()
	bucket.Allow()
	clock.Advance(5 * time.Second)

	require.True(t, bucket.Allow())
	require.True(t, bucket.Allow())
	require.False(t, bucket.Allow())
}

func TestTokenBucket_Concurrent(t *testing.T) {
	bucket, _ := newTestBucket(50, 0)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if bucket.Allow() {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(50), allowed.Load())
	require.Equal(t, int64(0), bucket.Available())
}

func TestNewLimiter(t *testing.T) {
	l := NewLimiter(LimiterConfig{Capacity: 0})
	for i := 0; i < 1000; i++ {
		require.True(t, l.Allow())
	}

	_, ok := NewLimiter(LimiterConfig{Capacity: 1, RatePS: 1}).(*TokenBucket)
	require.True(t, ok)
}
