package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/ratelimit"
)

// RateLimitMiddleware 全域 token bucket, 沒有 token 時回傳 429
func RateLimitMiddleware(limiter ratelimit.ILimiter) func(next http.Handler) http.Handler {
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				response.ErrorMessage(w, http.StatusTooManyRequests, apperr.ErrStrMap[apperr.TooManyRequestsCode])
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
