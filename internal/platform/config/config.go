package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort     = "8080"
	DefaultTokenTTL = 7 * 24 * time.Hour
)

// Config agrupa toda la configuración del servicio (solo env vars).
type Config struct {
	Port      string
	Env       string // development | production
	DBDSN     string // vacío => storage in-memory
	JWTSecret string
	TokenTTL  time.Duration
	LogLevel  string
	Seed      bool // solo aplica al storage in-memory
}

// Load lee .env (si existe) y arma la config desde el entorno.
func Load() (Config, error) {
	// .env es opcional; en prod las vars vienen del entorno directamente.
	_ = godotenv.Load()

	cfg := Config{
		Port:      getenv("PORT", DefaultPort),
		Env:       getenv("APP_ENV", "development"),
		DBDSN:     os.Getenv("DB_DSN"),
		JWTSecret: getenv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:  DefaultTokenTTL,
		LogLevel:  getenv("LOG_LEVEL", "info"),
		Seed:      parseBool(getenv("SEED_DATA", "true")),
	}

	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil || h <= 0 {
			return Config{}, errors.New("TOKEN_TTL_HOURS must be a positive integer")
		}
		cfg.TokenTTL = time.Duration(h) * time.Hour
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	// En prod no se acepta el secret de dev ni secrets cortos.
	if c.IsProduction() {
		if c.JWTSecret == "dev-secret-change-me" {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return b
}
