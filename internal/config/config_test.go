package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cf, err := LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, "development", cf.Env)
	require.Equal(t, "8080", cf.ServerPort)
	require.Equal(t, int32(10), cf.DbMaxConns)
	require.True(t, cf.RunMigrations)
	require.True(t, cf.IdentityVerifySignature)
	require.Equal(t, 30*time.Second, cf.ProductCacheTTL)
	require.Equal(t, "shopcenter.orders", cf.KafkaOrderTopic)
	require.Empty(t, cf.KafkaBrokerList())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "SERVER_PORT=9090\nDB_NAME=shop_test\nPRODUCT_CACHE_TTL=2m\nKAFKA_BROKERS=k1:9092, k2:9092\nRATE_LIMIT_CAPACITY=0\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cf, err := LoadConfig(envFile)
	require.NoError(t, err)
	require.Equal(t, "9090", cf.ServerPort)
	require.Equal(t, "shop_test", cf.DbName)
	require.Equal(t, 2*time.Minute, cf.ProductCacheTTL)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cf.KafkaBrokerList())
	require.Equal(t, 0, cf.RateLimitCapacity)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SERVER_PORT=9090\n"), 0o600))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("REDIS_DB", "3")

	cf, err := LoadConfig(envFile)
	require.NoError(t, err)
	require.Equal(t, "7070", cf.ServerPort)
	require.Equal(t, 3, cf.RedisDB)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cf, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.NotNil(t, cf)
}

func TestLoadConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown env", env: map[string]string{"ENV": "qa"}},
		{name: "zero ttl", env: map[string]string{"PRODUCT_CACHE_TTL": "0s"}},
		{name: "negative rate", env: map[string]string{"RATE_LIMIT_PER_SECOND": "-1"}},
		{name: "unverified prod", env: map[string]string{"ENV": "production", "IDENTITY_VERIFY_SIGNATURE": "false"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig("")
			require.Error(t, err)
		})
	}
}
