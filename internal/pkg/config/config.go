package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"        validate:"required,numeric"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Admin   AdminConfig
	Data    DataConfig
	Session SessionConfig
	Redis   RedisConfig
}

// AdminConfig holds the single admin account. Leaving either value empty
// disables admin login.
type AdminConfig struct {
	User string `env:"ADMIN_USER"`
	Pass string `env:"ADMIN_PASS"`
}

type DataConfig struct {
	ContactsFile string `env:"CONTACTS_FILE, default=data/contactos.json" validate:"required"`
	ServicesFile string `env:"SERVICES_FILE, default=data/services.json"  validate:"required"`
	StaticDir    string `env:"STATIC_DIR,    default=static"              validate:"required"`
	WatchCatalog bool   `env:"CATALOG_WATCH, default=true"`
}

type SessionConfig struct {
	Secret  string        `env:"SESSION_SECRET,  default=secret"     validate:"required"`
	Backend string        `env:"SESSION_BACKEND, default=memory"     validate:"oneof=memory redis"`
	TTL     time.Duration `env:"SESSION_TTL,     default=24h"        validate:"gt=0"`
	Cookie  string        `env:"SESSION_COOKIE,  default=integra.sid" validate:"required"`
	Secure  bool          `env:"SESSION_SECURE,  default=false"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"              validate:"gte=0"`
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through l, then validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return &cfg, nil
}
