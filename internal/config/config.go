package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/identity"
	viper "github.com/spf13/viper"
)

type Config struct {
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	ServerPort  string `mapstructure:"SERVER_PORT"`
	ServiceName string `mapstructure:"SERVICE_NAME"`

	DbHost        string `mapstructure:"DB_HOST"`
	DbPort        string `mapstructure:"DB_PORT"`
	DbUser        string `mapstructure:"DB_USER"`
	DbPas         string `mapstructure:"DB_PASSWORD"`
	DbName        string `mapstructure:"DB_NAME"`
	DbSSLMode     string `mapstructure:"DB_SSLMODE"`
	DbMaxConns    int32  `mapstructure:"DB_MAX_CONNS"`
	RunMigrations bool   `mapstructure:"RUN_MIGRATIONS"`

	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsPath string `mapstructure:"FIREBASE_CREDENTIALS_PATH"`
	IdentityVerifySignature bool   `mapstructure:"IDENTITY_VERIFY_SIGNATURE"`
	IdentityCertsURL        string `mapstructure:"IDENTITY_CERTS_URL"`

	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int           `mapstructure:"REDIS_DB"`
	ProductCacheTTL time.Duration `mapstructure:"PRODUCT_CACHE_TTL"`

	KafkaBrokers    string `mapstructure:"KAFKA_BROKERS"`
	KafkaOrderTopic string `mapstructure:"KAFKA_ORDER_TOPIC"`

	RateLimitCapacity  int     `mapstructure:"RATE_LIMIT_CAPACITY"`
	RateLimitPerSecond float64 `mapstructure:"RATE_LIMIT_PER_SECOND"`
}

// 所有 key 都需要註冊 default, AutomaticEnv 才會在 Unmarshal 時讀到環境變數
var defaults = map[string]any{
	"ENV":                       string(constants.Dev),
	"LOG_LEVEL":                 "info",
	"SERVER_PORT":               "8080",
	"SERVICE_NAME":              "shopcenter",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "5432",
	"DB_USER":                   "postgres",
	"DB_PASSWORD":               "",
	"DB_NAME":                   "shopcenter",
	"DB_SSLMODE":                "disable",
	"DB_MAX_CONNS":              10,
	"RUN_MIGRATIONS":            true,
	"FIREBASE_PROJECT_ID":       "",
	"FIREBASE_CREDENTIALS_PATH": "",
	"IDENTITY_VERIFY_SIGNATURE": true,
	"IDENTITY_CERTS_URL":        identity.DefaultCertsURL,
	"REDIS_ADDR":                "",
	"REDIS_PASSWORD":            "",
	"REDIS_DB":                  0,
	"PRODUCT_CACHE_TTL":         constants.DefaultProductCacheTTL.String(),
	"KAFKA_BROKERS":             "",
	"KAFKA_ORDER_TOPIC":         "shopcenter.orders",
	"RATE_LIMIT_CAPACITY":       100,
	"RATE_LIMIT_PER_SECOND":     50.0,
}

/*
LoadConfig 讀取設定, 環境變數優先於 envFile

參數:
  - envFile: .env 檔路徑, 空字串或檔案不存在時只使用環境變數與預設值

錯誤:
  - envFile 存在但格式錯誤
  - 設定值型別錯誤
*/
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file %s: %w", envFile, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config file %s: %w", envFile, err)
		}
	}

	cf := &Config{}
	if err := v.Unmarshal(cf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cf.validate(); err != nil {
		return nil, err
	}
	return cf, nil
}

func (c *Config) validate() error {
	switch constants.ENV(c.Env) {
	case constants.Debug, constants.Dev, constants.Stag, constants.Prod:
	default:
		return fmt.Errorf("invalid ENV %q", c.Env)
	}
	if c.ServerPort == "" {
		return errors.New("SERVER_PORT is required")
	}
	if c.ProductCacheTTL <= 0 {
		return fmt.Errorf("invalid PRODUCT_CACHE_TTL %s", c.ProductCacheTTL)
	}
	if c.RateLimitCapacity < 0 || c.RateLimitPerSecond < 0 {
		return errors.New("rate limit settings must not be negative")
	}
	if !c.IdentityVerifySignature && constants.ENV(c.Env) == constants.Prod {
		return errors.New("IDENTITY_VERIFY_SIGNATURE cannot be disabled in production")
	}
	return nil
}

// KafkaBrokerList KAFKA_BROKERS 以逗號分隔
func (c *Config) KafkaBrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c *Config) IsProduction() bool {
	return constants.ENV(c.Env) == constants.Prod
}
