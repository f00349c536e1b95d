package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Comment store drivers.
const (
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
	DriverMongoDB  = "mongodb"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT" default:"8080"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	Catalog struct {
		URL              string        `envconfig:"CATALOG_URL"`
		Timeout          time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
		BreakerThreshold uint32        `envconfig:"CATALOG_BREAKER_THRESHOLD" default:"5"`
	}
	DB struct {
		Driver    string `envconfig:"DB_DRIVER" default:"postgres"`
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
	DynamoDB struct {
		Region        string `envconfig:"DDB_REGION"`
		Endpoint      string `envconfig:"DDB_ENDPOINT"`
		AccessKey     string `envconfig:"DDB_ACCESS_KEY"`
		SecretKey     string `envconfig:"DDB_SECRET_KEY"`
		SessionToken  string `envconfig:"DDB_SESSION_TOKEN"`
		CommentsTable string `envconfig:"DDB_COMMENTS_TABLE" default:"comments"`
	}
	Mongo struct {
		URI        string `envconfig:"MONGO_URI"`
		Database   string `envconfig:"MONGO_DATABASE" default:"moviehub"`
		Collection string `envconfig:"MONGO_COLLECTION" default:"comments"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	cfg.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.DB.Driver))
	switch cfg.DB.Driver {
	case DriverPostgres, DriverDynamoDB, DriverMongoDB:
	default:
		return nil, fmt.Errorf("load config error: unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	return cfg, nil
}

// Origins splits ALLOW_ORIGINS on commas. An empty setting allows any origin.
func (c *Config) Origins() []string {
	if strings.TrimSpace(c.AllowOrigins) == "" {
		return []string{"*"}
	}

	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
