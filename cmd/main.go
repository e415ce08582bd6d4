package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/handler"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/router"
	"github.com/RoyceAzure/lab/shopcenter/internal/appcontext"
	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"golang.org/x/sync/errgroup"
)

// @title shopcenter
// @version 1.0
// @description 電商後端: 商品, 購物車, 訂單與評論

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the firebase id token.

const shutdownTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cf, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatal(err)
	}

	app, err := appcontext.NewApplicationContext(ctx, cf)
	if err != nil {
		log.Fatal(err)
	}

	server := api.NewServer(
		handler.NewAuthHandler(app.AuthService, app.UserService, app.RuleBook),
		handler.NewProductHandler(app.ProductService, app.RuleBook),
		handler.NewCartHandler(app.CartService, app.RuleBook),
		handler.NewOrderHandler(app.OrderService, app.RuleBook),
		handler.NewReviewHandler(app.ReviewService, app.RuleBook),
	)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cf.ServerPort),
		Handler:           router.SetupRouter(server, app.Verifier, app.AuthService, app.Limiter, app.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.Logger.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		app.Logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// 先停止收請求, 再關閉 db / redis / kafka
		return errors.Join(srv.Shutdown(shutdownCtx), app.Shutdown(shutdownCtx))
	})

	if err := g.Wait(); err != nil {
		app.Logger.Fatal().Err(err).Msg("server stopped with error")
	}
	app.Logger.Info().Msg("server stopped")
}
