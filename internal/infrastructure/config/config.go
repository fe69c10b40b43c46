package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET, default=nexa_agro_secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=168h"`

	Postgres  PostgresConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type PostgresConfig struct {
	URI string `env:"POSTGRES_URI, default=postgres://localhost:5432/nexa_agro"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig throttles the credential endpoints per client IP.
type RateLimitConfig struct {
	Attempts int           `env:"LOGIN_RATE_LIMIT,  default=10"`
	Window   time.Duration `env:"LOGIN_RATE_WINDOW, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
