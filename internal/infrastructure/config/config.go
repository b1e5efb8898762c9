package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	StoreBackendMemory   = "memory"
	StoreBackendDynamoDB = "dynamodb"
)

// Config is everything the API reads from the environment.
//
// Env vars (a .env file is loaded first by godotenv/autoload in main):
//   - HTTP_PORT (default: 8080)
//   - GIN_MODE (default: debug)
//   - STORE_BACKEND (memory | dynamodb, default: memory)
//   - SEED_PATH (optional; embedded seed when empty)
//   - JWT_SECRET (default: dev-secret-change-me)
//   - SESSION_TTL (default: 8h)
//   - LOG_LEVEL (default: info)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT, ESTIMATIONS_TABLE
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
}

type ServerConfig struct {
	Port    int    `mapstructure:"port" validate:"gt=0,lte=65535"`
	GinMode string `mapstructure:"gin_mode" validate:"oneof=debug release test"`
}

type StoreConfig struct {
	Backend  string `mapstructure:"backend" validate:"oneof=memory dynamodb"`
	SeedPath string `mapstructure:"seed_path"`
}

type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret" validate:"required"`
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"gt=0"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region" validate:"required"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Endpoint        string `mapstructure:"endpoint"`
	EstimationTable string `mapstructure:"estimation_table" validate:"required"`
}

var envBindings = map[string]string{
	"server.port":                "HTTP_PORT",
	"server.gin_mode":            "GIN_MODE",
	"store.backend":              "STORE_BACKEND",
	"store.seed_path":            "SEED_PATH",
	"auth.jwt_secret":            "JWT_SECRET",
	"auth.session_ttl":           "SESSION_TTL",
	"logging.level":              "LOG_LEVEL",
	"dynamodb.region":            "AWS_REGION",
	"dynamodb.access_key_id":     "AWS_ACCESS_KEY_ID",
	"dynamodb.secret_access_key": "AWS_SECRET_ACCESS_KEY",
	"dynamodb.endpoint":          "DYNAMODB_ENDPOINT",
	"dynamodb.estimation_table":  "ESTIMATIONS_TABLE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "debug")
	v.SetDefault("store.backend", StoreBackendMemory)
	v.SetDefault("store.seed_path", "")
	v.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	v.SetDefault("auth.session_ttl", "8h")
	v.SetDefault("logging.level", "info")
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "")
	v.SetDefault("dynamodb.secret_access_key", "")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.estimation_table", "estimations")
}

// Load reads the environment into a validated Config.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func (c Config) UsesDynamoDB() bool {
	return c.Store.Backend == StoreBackendDynamoDB
}
