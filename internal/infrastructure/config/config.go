package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

const (
	// SessionBackendFile keeps the session record in a local JSON file.
	SessionBackendFile = "file"
	// SessionBackendRedis keeps the session record under a single Redis key.
	SessionBackendRedis = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Backend  string `env:"SESSION_BACKEND, default=file"`
	FilePath string `env:"SESSION_FILE,    default=.timetracker/session.json"`
	Key      string `env:"SESSION_KEY,     default=session:current"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Session.Backend != SessionBackendFile && cfg.Session.Backend != SessionBackendRedis {
		return nil, fmt.Errorf("config: unknown session backend %q", cfg.Session.Backend)
	}
	return &cfg, nil
}
