package config

import (
	"errors"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	HTTPAddr string

	StorageBackend string // file | postgres | redis
	RecordsFile    string
	PostgresDSN    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	JWTSecret   string
	CORSOrigins []string

	// MockSeed makes the mock data service deterministic when non-zero.
	MockSeed int64
	// MockLatency toggles the artificial per-route response delays.
	MockLatency bool

	ShutdownTimeout time.Duration
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:             getEnv("APP_ENV", "development"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			HTTPAddr:        getEnv("HTTP_ADDR", ":8088"),
			StorageBackend:  getEnv("STORAGE_BACKEND", "file"),
			RecordsFile:     getEnv("RECORDS_FILE", "data/records.json"),
			PostgresDSN:     getEnv("POSTGRES_DSN", ""),
			RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword:   getEnv("REDIS_PASSWORD", ""),
			RedisDB:         getEnvInt("REDIS_DB", 0),
			JWTSecret:       getEnv("JWT_SECRET", "fitos-dev-secret"),
			CORSOrigins:     []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
			MockSeed:        int64(getEnvInt("MOCK_SEED", 0)),
			MockLatency:     getEnv("MOCK_LATENCY", "on") != "off",
			ShutdownTimeout: 10 * time.Second,
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case "file":
		if c.RecordsFile == "" {
			return errors.New("RECORDS_FILE is required when STORAGE_BACKEND=file")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "redis":
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required when STORAGE_BACKEND=redis")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: file, postgres, redis")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env == "production" && c.JWTSecret == "fitos-dev-secret" {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
