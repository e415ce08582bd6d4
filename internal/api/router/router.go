package router

import (
	"net/http"

	_ "github.com/RoyceAzure/lab/shopcenter/docs"
	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	m "github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/identity"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// 路徑上的 id 只接受數字, 其他一律 404
const idParam = "/{id:[0-9]+}"

func SetupRouter(
	server *api.Server,
	verifier identity.Verifier,
	authService service.IAuthService,
	limiter ratelimit.ILimiter,
	logger *zerolog.Logger,
) *chi.Mux {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)
	r.Use(m.CORSMiddleware)
	r.Use(m.RateLimitMiddleware(limiter))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.ErrorMessage(w, http.StatusNotFound, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.ErrorMessage(w, http.StatusMethodNotAllowed, apperr.ErrStrMap[apperr.MethodNotAllowCode])
	})

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	authenticated := []func(http.Handler) http.Handler{
		m.AuthMiddleware(verifier),
		m.UserMiddleware(authService, true),
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", server.AuthHandler.Register)
			r.Post("/login", server.AuthHandler.Login)
			r.Post("/refresh-token", server.AuthHandler.RefreshToken)
			r.Post("/forgot-password", server.AuthHandler.ForgotPassword)
			// 非 active 使用者仍可查看自己的資料
			r.With(m.AuthMiddleware(verifier), m.UserMiddleware(authService, false)).Get("/me", server.AuthHandler.Me)
		})

		// 公開讀取
		r.Group(func(r chi.Router) {
			r.Get("/products", server.ProductHandler.ListProducts)
			r.Get("/products"+idParam, server.ProductHandler.GetProduct)
			r.Get("/products"+idParam+"/reviews", server.ReviewHandler.ListProductReviews)
			r.Get("/sellers"+idParam+"/products", server.ProductHandler.ListSellerProducts)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticated...)

			r.Post("/products", server.ProductHandler.CreateProduct)
			r.Put("/products"+idParam, server.ProductHandler.UpdateProduct)
			r.Delete("/products"+idParam, server.ProductHandler.DeleteProduct)
			r.Post("/products"+idParam+"/reviews", server.ReviewHandler.AddReview)

			r.Get("/cart", server.CartHandler.GetCart)
			r.Delete("/cart", server.CartHandler.ClearCart)
			r.Post("/cart/items", server.CartHandler.AddItem)
			r.Put("/cart/items"+idParam, server.CartHandler.UpdateItem)
			r.Delete("/cart/items"+idParam, server.CartHandler.RemoveItem)

			r.Get("/orders", server.OrderHandler.ListOrders)
			r.Post("/orders", server.OrderHandler.CreateOrder)
			r.Get("/orders"+idParam, server.OrderHandler.GetOrderDetails)
			r.Put("/orders"+idParam+"/status", server.OrderHandler.UpdateOrderStatus)

			r.Get("/seller/orders", server.OrderHandler.ListSellerOrders)
			r.Delete("/reviews"+idParam, server.ReviewHandler.DeleteReview)
		})
	})

	// 在設置完所有路由後打印路由樹
	walkErr := chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		logger.Debug().Str("method", method).Str("route", route).Msg("route registered")
		return nil
	})
	if walkErr != nil {
		logger.Warn().Err(walkErr).Msg("walk routes")
	}
	return r
}
