package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
)

const (
	allowedOrigin  = "*"
	allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	allowedHeaders = "Content-Type, Authorization"
)

// CORSMiddleware 所有回應都帶 CORS header, OPTIONS 直接回 200 不進入路由
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", allowedOrigin)
		h.Set("Access-Control-Allow-Methods", allowedMethods)
		h.Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == http.MethodOptions {
			response.NoContent(w, http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
