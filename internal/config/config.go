package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/liutentor/tentor-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerPort int `env:"SERVER_PORT" envDefault:"4330"`

	// Environment mode, validated against the known set
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Database configuration (Supabase exposes the store as plain Postgres)
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	OpenAICfg  OpenAIConfig  `envPrefix:"OPENAI_"`
	StorageCfg StorageConfig `envPrefix:"STORAGE_"`

	// Request governance
	RateLimitCfg RateLimitConfig `envPrefix:"RATE_LIMIT_"`
	ChatCfg      ChatConfig      `envPrefix:"CHAT_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`
}

// OpenAIConfig holds model provider settings
type OpenAIConfig struct {
	APIKey  string `env:"API_KEY,notEmpty"`
	Model   string `env:"MODEL" envDefault:"gpt-4.1-nano"`
	BaseURL string `env:"BASE_URL"`
}

// StorageConfig holds settings for the PDF document store
type StorageConfig struct {
	HTTPClientConfig
	Retry    pkgRetry.RetryConfig `envPrefix:"RETRY_"`
	CacheTTL time.Duration        `env:"CACHE_TTL" envDefault:"15m"`
}

// HTTPClientConfig holds outbound HTTP client settings
type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"10s"`
	Token                 string        `env:"TOKEN"`
}

// RateLimitConfig holds per-client-identity request budgets
type RateLimitConfig struct {
	Window       time.Duration `env:"WINDOW" envDefault:"1m"`
	GeneralLimit int           `env:"GENERAL_PER_WINDOW" envDefault:"60"`
	ChatLimit    int           `env:"CHAT_PER_WINDOW" envDefault:"10"`
}

// ChatConfig bounds a single chat request
type ChatConfig struct {
	HistoryWindow  int           `env:"HISTORY_WINDOW" envDefault:"10"`
	MaxMessages    int           `env:"MAX_MESSAGES" envDefault:"50"`
	MaxBodyBytes   int64         `env:"MAX_BODY_BYTES" envDefault:"2097152"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"120s"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	switch cfg.Environment {
	case "development", "production", "test":
	default:
		errors = append(errors, fmt.Sprintf("ENVIRONMENT must be one of development, production, test; got %q", cfg.Environment))
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		errors = append(errors, fmt.Sprintf("SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort))
	}

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if cfg.RateLimitCfg.GeneralLimit < 1 {
		errors = append(errors, fmt.Sprintf("RATE_LIMIT_GENERAL_PER_WINDOW must be at least 1, got %d", cfg.RateLimitCfg.GeneralLimit))
	}

	if cfg.RateLimitCfg.ChatLimit < 1 {
		errors = append(errors, fmt.Sprintf("RATE_LIMIT_CHAT_PER_WINDOW must be at least 1, got %d", cfg.RateLimitCfg.ChatLimit))
	}

	if cfg.ChatCfg.HistoryWindow < 1 || cfg.ChatCfg.HistoryWindow > cfg.ChatCfg.MaxMessages {
		errors = append(errors, fmt.Sprintf("CHAT_HISTORY_WINDOW must be between 1 and CHAT_MAX_MESSAGES(%d), got %d", cfg.ChatCfg.MaxMessages, cfg.ChatCfg.HistoryWindow))
	}

	if cfg.ChatCfg.MaxBodyBytes < 1024 {
		errors = append(errors, fmt.Sprintf("CHAT_MAX_BODY_BYTES must be at least 1024, got %d", cfg.ChatCfg.MaxBodyBytes))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
