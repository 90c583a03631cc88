package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"file"`
	CatalogPath   string `env:"CATALOG_PATH" envDefault:"data/projects.yaml"`

	DBHost     string `env:"DB_HOST"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBURL      string `env:"DB_URL"`

	JWTSecret         string `env:"JWT_SECRET"`
	AdminUsername     string `env:"ADMIN_USERNAME"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	CORSOrigin        string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
	InternalSecretKey string `env:"INTERNAL_SECRET_KEY"`
}

// AdminEnabled reports whether the admin login and reload endpoints can be served.
func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminUsername != "" && c.AdminPasswordHash != ""
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.CatalogSource {
	case SourceFile:
		if c.CatalogPath == "" {
			return errors.New("CATALOG_PATH is required for the file catalog")
		}
	case SourcePostgres:
		if c.DBHost == "" && c.DBURL == "" {
			return errors.New("DB_HOST or DB_URL is required for the postgres catalog")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q (use %q or %q)", c.CatalogSource, SourceFile, SourcePostgres)
	}
	return nil
}

// LoadConfig is Load for binaries: it exits when the environment is unusable.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Environment variables not loaded properly: %v", err)
	}
	return cfg
}
