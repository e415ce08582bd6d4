package appcontext

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/event"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/identity"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/ratelimit"
	mockdb "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/mock"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, mutate func(cf *config.Config)) *ApplicationContext {
	t.Helper()
	cf := &config.Config{
		Env:                     "test",
		LogLevel:                "debug",
		ServiceName:             "shopcenter",
		IdentityVerifySignature: true,
		IdentityCertsURL:        identity.DefaultCertsURL,
		KafkaOrderTopic:         "shopcenter.orders",
		RateLimitCapacity:       10,
		RateLimitPerSecond:      5,
	}
	if mutate != nil {
		mutate(cf)
	}
	app := &ApplicationContext{Cf: cf}
	require.NoError(t, app.setUpLogger(context.Background()))
	require.NoError(t, app.setUpHttpClient(context.Background()))
	return app
}

func TestSetUpLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	app := newTestApp(t, func(cf *config.Config) { cf.LogLevel = "warn" })
	require.NotNil(t, app.Logger)
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	newTestApp(t, func(cf *config.Config) { cf.LogLevel = "nonsense" })
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetUpEventPublisherWithoutBrokers(t *testing.T) {
	app := newTestApp(t, nil)
	require.NoError(t, app.setUpEventPublisher(context.Background()))
	require.IsType(t, &event.NoopPublisher{}, app.EventPublisher)
}

func TestSetUpEventPublisherWithBrokers(t *testing.T) {
	app := newTestApp(t, func(cf *config.Config) { cf.KafkaBrokers = "localhost:9092" })
	require.NoError(t, app.setUpEventPublisher(context.Background()))
	require.IsType(t, &event.KafkaPublisher{}, app.EventPublisher)
	require.NoError(t, app.EventPublisher.Close())
}

func TestSetUpVerifier(t *testing.T) {
	app := newTestApp(t, func(cf *config.Config) { cf.IdentityVerifySignature = false })
	require.NoError(t, app.setUpVerifier(context.Background()))
	require.IsType(t, &identity.PayloadDecoder{}, app.Verifier)

	app = newTestApp(t, func(cf *config.Config) { cf.FirebaseProjectID = "demo-shop" })
	require.NoError(t, app.setUpVerifier(context.Background()))
	require.IsType(t, &identity.FirebaseVerifier{}, app.Verifier)

	app = newTestApp(t, nil)
	require.Error(t, app.setUpVerifier(context.Background()))
}

func TestSetUpLimiter(t *testing.T) {
	app := newTestApp(t, nil)
	require.NoError(t, app.setUpLimiter(context.Background()))
	require.IsType(t, &ratelimit.TokenBucket{}, app.Limiter)

	app = newTestApp(t, func(cf *config.Config) { cf.RateLimitCapacity = 0 })
	require.NoError(t, app.setUpLimiter(context.Background()))
	require.IsType(t, ratelimit.Unlimited{}, app.Limiter)
}

func TestSetUpRuleBookAndServices(t *testing.T) {
	app := newTestApp(t, func(cf *config.Config) { cf.IdentityVerifySignature = false })
	ctx := context.Background()
	require.NoError(t, app.setUpRuleBook(ctx))
	require.NoError(t, app.setUpVerifier(ctx))
	require.NoError(t, app.setUpEventPublisher(ctx))
	require.NotNil(t, app.RuleBook)

	app.DbDao = mockdb.NewMockIStore(gomock.NewController(t))
	require.NoError(t, app.setUpServices(ctx))
	require.NotNil(t, app.AuthService)
	require.NotNil(t, app.OrderService)
	require.NotNil(t, app.ReviewService)
}

func TestShutdownWithoutResources(t *testing.T) {
	app := newTestApp(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, app.Shutdown(ctx))
}
