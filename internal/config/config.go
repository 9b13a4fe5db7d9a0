package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// RateLimitConfig содержит настройки ограничения частоты запросов
type RateLimitConfig struct {
	RequestsPerSecond int `env:"RATE_LIMIT_RPS"`
	Burst             int `env:"RATE_LIMIT_BURST"`
}

// Config содержит конфигурацию сервиса
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`
	// GRPCAddress адрес gRPC сервера, пустое значение отключает gRPC
	GRPCAddress string `env:"GRPC_ADDRESS"`
	// StaticDir каталог со сборкой wasm клиента
	StaticDir       string          `env:"STATIC_DIR"`
	LogLevel        string          `env:"LOG_LEVEL"`
	ShutdownTimeout time.Duration   `env:"SHUTDOWN_TIMEOUT"`
	RateLimit       RateLimitConfig

	// LambdaFunctionName выставляется окружением AWS Lambda
	LambdaFunctionName string `env:"AWS_LAMBDA_FUNCTION_NAME"`
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "", Port: 8080},
		StaticDir:       "./web/dist",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

// IsLambda сообщает, запущен ли сервис внутри AWS Lambda
func (c *Config) IsLambda() bool {
	return c.LambdaFunctionName != ""
}

// Load загружает конфигурацию из флагов командной строки и переменных окружения
func Load(args []string) (*Config, error) {
	// .env файл может отсутствовать
	_ = godotenv.Load()

	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "address to run gRPC server")
	fs.StringVar(&cfg.StaticDir, "s", cfg.StaticDir, "directory with the built wasm client")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.IntVar(&cfg.RateLimit.RequestsPerSecond, "r", cfg.RateLimit.RequestsPerSecond, "requests per second per client")
	fs.IntVar(&cfg.RateLimit.Burst, "b", cfg.RateLimit.Burst, "burst size per client")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.RateLimit.RequestsPerSecond <= 0 || cfg.RateLimit.Burst <= 0 {
		return nil, fmt.Errorf("%w: rate limit must be positive", ErrInvalidConfig)
	}

	return cfg, nil
}
