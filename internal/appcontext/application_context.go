package appcontext

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/event"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/identity"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/cache"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

type ApplicationContext struct {
	Cf             *config.Config
	Logger         *zerolog.Logger
	HttpClient     *http.Client
	DbConn         *pgxpool.Pool
	RedisClient    *redis.Client
	DbDao          db.IStore
	EventPublisher event.IOrderEventPublisher
	Verifier       identity.Verifier
	RuleBook       *validator.RuleBook
	Limiter        ratelimit.ILimiter
	UserService    service.IUserService
	AuthService    service.IAuthService
	ProductService service.IProductService
	CartService    service.ICartService
	OrderService   service.IOrderService
	ReviewService  service.IReviewService
}

func NewApplicationContext(ctx context.Context, cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}

	if err := app.Init(ctx); err != nil {
		// 已建立的連線需要釋放
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.Shutdown(shutdownCtx)
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init(ctx context.Context) error {
	steps := []func(ctx context.Context) error{
		app.setUpLogger,
		app.setUpHttpClient,
		app.setUpdbConn,
		app.setUpMigration,
		app.setUpdbDao,
		app.setUpEventPublisher,
		app.setUpVerifier,
		app.setUpRuleBook,
		app.setUpLimiter,
		app.setUpServices,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (app *ApplicationContext) setUpLogger(_ context.Context) error {
	log.Printf("Start setup logger")
	level, err := zerolog.ParseLevel(strings.ToLower(app.Cf.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var logger zerolog.Logger
	switch constants.ENV(app.Cf.Env) {
	case constants.Debug, constants.Dev:
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	default:
		logger = zerolog.New(os.Stdout)
	}
	logger = logger.With().Timestamp().Str("service", app.Cf.ServiceName).Logger()

	zlog.Logger = logger
	app.Logger = &logger
	log.Printf("Finish setup logger")
	return nil
}

func (app *ApplicationContext) setUpHttpClient(_ context.Context) error {
	log.Printf("Start setup HTTP client")
	app.HttpClient = &http.Client{Timeout: 30 * time.Second}
	log.Printf("Finish setup HTTP client")
	return nil
}

func (app *ApplicationContext) poolConfig() db.PoolConfig {
	return db.PoolConfig{
		Host:     app.Cf.DbHost,
		Port:     app.Cf.DbPort,
		User:     app.Cf.DbUser,
		Password: app.Cf.DbPas,
		Name:     app.Cf.DbName,
		SSLMode:  app.Cf.DbSSLMode,
		MaxConns: app.Cf.DbMaxConns,
	}
}

func (app *ApplicationContext) setUpdbConn(ctx context.Context) error {
	log.Printf("Start setup database connection")
	conn, err := db.NewPool(ctx, app.poolConfig())
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpMigration(_ context.Context) error {
	if !app.Cf.RunMigrations {
		log.Printf("Skip database migration")
		return nil
	}
	log.Printf("Start setup database migration")
	if err := db.RunDBMigration(app.poolConfig().DSN()); err != nil {
		return err
	}
	log.Printf("Finish setup database migration")
	return nil
}

// setUpdbDao REDIS_ADDR 有設定時以 redis 快取商品
func (app *ApplicationContext) setUpdbDao(ctx context.Context) error {
	log.Printf("Start setup database DAO")
	var store db.IStore = db.NewStore(app.DbConn)

	if app.Cf.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, app.Cf.RedisAddr,
			cache.WithPassword(app.Cf.RedisPassword),
			cache.WithDB(app.Cf.RedisDB),
		)
		if err != nil {
			return err
		}
		app.RedisClient = client
		store = cache.NewCachedStore(store, cache.NewRedisProductCache(client, app.Cf.ProductCacheTTL))
		log.Printf("Product cache enabled, ttl %s", app.Cf.ProductCacheTTL)
	}

	app.DbDao = store
	log.Printf("Finish setup database DAO")
	return nil
}

// setUpEventPublisher KAFKA_BROKERS 為空時不送出事件
func (app *ApplicationContext) setUpEventPublisher(_ context.Context) error {
	log.Printf("Start setup event publisher")
	brokers := app.Cf.KafkaBrokerList()
	if len(brokers) == 0 {
		app.EventPublisher = event.NewNoopPublisher()
		log.Printf("Kafka brokers not configured, order events disabled")
	} else {
		writer := event.NewKafkaWriter(brokers, app.Cf.KafkaOrderTopic)
		app.EventPublisher = event.NewKafkaPublisher(writer, app.Cf.KafkaOrderTopic, app.Cf.ServiceName)
	}
	log.Printf("Finish setup event publisher")
	return nil
}

func (app *ApplicationContext) setUpVerifier(_ context.Context) error {
	log.Printf("Start setup identity verifier")
	if !app.Cf.IdentityVerifySignature {
		app.Logger.Warn().Msg("identity signature verification is disabled, tokens are only decoded")
		app.Verifier = identity.NewPayloadDecoder()
		log.Printf("Finish setup identity verifier")
		return nil
	}

	projectID, err := identity.ResolveProjectID(app.Cf.FirebaseProjectID, app.Cf.FirebaseCredentialsPath)
	if err != nil {
		return err
	}
	verifier, err := identity.NewFirebaseVerifier(projectID, identity.NewCertKeySource(app.Cf.IdentityCertsURL, app.HttpClient))
	if err != nil {
		return err
	}
	app.Verifier = verifier
	log.Printf("Finish setup identity verifier")
	return nil
}

func (app *ApplicationContext) setUpRuleBook(_ context.Context) error {
	log.Printf("Start setup validation rules")
	rules, err := validator.NewRuleBook()
	if err != nil {
		return fmt.Errorf("load validation rules: %w", err)
	}
	app.RuleBook = rules
	log.Printf("Finish setup validation rules")
	return nil
}

func (app *ApplicationContext) setUpLimiter(_ context.Context) error {
	log.Printf("Start setup rate limiter")
	cfg := ratelimit.GetDefaultLimiterConfig()
	cfg.SetCapacity(app.Cf.RateLimitCapacity)
	cfg.SetRatePS(app.Cf.RateLimitPerSecond)
	app.Limiter = ratelimit.NewLimiter(cfg)
	log.Printf("Finish setup rate limiter")
	return nil
}

func (app *ApplicationContext) setUpServices(_ context.Context) error {
	log.Printf("Start setup services")
	app.UserService = service.NewUserService(app.DbDao)
	app.AuthService = service.NewAuthService(app.Verifier, app.UserService)
	app.ProductService = service.NewProductService(app.DbDao)
	app.CartService = service.NewCartService(app.DbDao)
	app.OrderService = service.NewOrderService(app.DbDao, app.EventPublisher)
	app.ReviewService = service.NewReviewService(app.DbDao)
	log.Printf("Finish setup services")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error, 1)
	go func() {
		defer close(done)

		if app.EventPublisher != nil {
			log.Printf("Closing event publisher...")
			if err := app.EventPublisher.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("event publisher shutdown error: %v", err)
			}
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis shutdown error: %v", err)
			}
		}

		// 關閉 DB
		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			app.DbConn.Close()
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
