package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string `env:"APP_ADDR" envDefault:":8080"`
	Source    string `env:"CATALOG_SOURCE" envDefault:"libs.json"`
	SiteDir   string `env:"SITE_DIR" envDefault:"site"`
	Strict    bool   `env:"CATALOG_STRICT" envDefault:"true"`
	PageTitle string `env:"PAGE_TITLE" envDefault:"Library Downloads"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	UserAgent string `env:"SOURCE_USER_AGENT" envDefault:"libcatalog/1.0"`
	HTTP      HTTP
}

type HTTP struct {
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
	EnableHSTS     bool    `env:"ENABLE_HSTS" envDefault:"false"`
	TrustProxy     bool    `env:"TRUST_PROXY" envDefault:"false"`
}

// LoadEnvFiles reads .env and .env.local without overriding variables that
// are already set by the runtime.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func Load() (*Config, error) {
	LoadEnvFiles()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
