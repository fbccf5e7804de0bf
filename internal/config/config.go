package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	App        AppConfig
	Cache      CacheConfig
	Clicks     ClicksConfig
	RateLimit  RateLimitConfig
	Pprof      PprofConfig
	Secrets    SecretsConfig
	Validation ValidationConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"shortlink"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int    `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type AppConfig struct {
	BaseURL            string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	SplashCountdownSec int    `env:"SPLASH_COUNTDOWN_SECONDS" envDefault:"5"`
	DefaultLoadingText string `env:"SPLASH_LOADING_TEXT" envDefault:"Loading…"`
}

type CacheConfig struct {
	MaxSizePow2 int `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
}

type ClicksConfig struct {
	Enabled      bool `env:"CLICKS_ENABLED" envDefault:"true"`
	BufferSize   int  `env:"CLICKS_BUFFER_SIZE" envDefault:"4096"`
	WriteTimeout int  `env:"CLICKS_WRITE_TIMEOUT_MS" envDefault:"2000"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET" envDefault:""`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET" envDefault:""`
}

type SecretsConfig struct {
	// EncryptionKey decrypts legacy AES-encoded link passwords. New
	// links always store bcrypt hashes.
	EncryptionKey string `env:"LINK_ENCRYPTION_KEY" envDefault:""`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"MAX_URL_LENGTH" envDefault:"2048"`
	AllowPrivateIPs    bool   `env:"ALLOW_PRIVATE_IPS" envDefault:"false"`
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments use the environment.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
