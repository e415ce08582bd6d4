package ratelimit

import (
	"sync/atomic"
	"time"
)

// ILimiter 判斷請求是否放行
type ILimiter interface {
	Allow() bool
}

// TokenBucket 每次 Allow 時依經過時間補充 token, 不需背景 goroutine
type TokenBucket struct {
	LimiterConfig
	current      atomic.Int64
	lastRefilled atomic.Int64
	now          func() time.Time
}

func NewTokenBucket(config *LimiterConfig) *TokenBucket {
	t := &TokenBucket{now: time.Now}

	if config != nil {
		t.LimiterConfig = *config
	} else {
		t.LimiterConfig = GetDefaultLimiterConfig()
	}

	t.current.Store(int64(t.Capacity))
	t.lastRefilled.Store(t.now().UnixNano())
	return t
}

func (t *TokenBucket) Allow() bool {
	t.refill(t.now().UnixNano())
	for {
		current := t.current.Load()
		if current <= 0 {
			return false
		}
		if t.current.CompareAndSwap(current, current-1) {
			return true
		}
	}
}

// Available 目前可用的 token 數, 不觸發補充
func (t *TokenBucket) Available() int64 {
	return t.current.Load()
}

func (t *TokenBucket) refill(now int64) {
	if t.RatePS <= 0 {
		return
	}
	last := t.lastRefilled.Load()
	elapsed := time.Duration(now - last)
	tokenToAdd := int64(elapsed.Seconds() * t.RatePS)
	if tokenToAdd <= 0 {
		return
	}

	// 只推進實際換成 token 的時間, 保留不足一個 token 的餘數
	consumed := int64(float64(tokenToAdd) / t.RatePS * float64(time.Second))
	if !t.lastRefilled.CompareAndSwap(last, last+consumed) {
		return
	}

	for {
		current := t.current.Load()
		newTokens := current + tokenToAdd
		if newTokens > int64(t.Capacity) {
			newTokens = int64(t.Capacity)
		}
		if t.current.CompareAndSwap(current, newTokens) {
			return
		}
	}
}

// Unlimited 關閉限流時使用
type Unlimited struct{}

func (Unlimited) Allow() bool {
	return true
}

// NewLimiter capacity <= 0 時回傳 Unlimited
func NewLimiter(config LimiterConfig) ILimiter {
	if config.Capacity <= 0 {
		return Unlimited{}
	}
	return NewTokenBucket(&config)
}
