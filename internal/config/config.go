package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/DrummDaddy/Event_service/internal/models"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Mongo       MongoConfig
	Redis       RedisConfig
	Policy      models.Policy
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// RedisConfig configures the event cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Load reads the configuration from the environment. Outside production the
// .env.local and .env files are loaded first; variables already set win.
// A missing MONGODB_URI is a ConfigurationError.
func Load() (*Config, error) {
	env := getEnv("GO_ENV", "development")
	if env != "production" {
		for _, file := range []string{".env.local", ".env"} {
			if _, err := os.Stat(file); err != nil {
				continue
			}
			if err := godotenv.Load(file); err != nil {
				slog.Warn("could not load env file", "file", file, "error", err)
			}
		}
	}

	cfg := &Config{
		Environment: env,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Mongo: MongoConfig{
			URI:            os.Getenv("MONGODB_URI"),
			Database:       getEnv("MONGODB_DATABASE", "eventhub"),
			ConnectTimeout: time.Duration(getEnvInt("MONGODB_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvInt("EVENT_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Policy: models.Policy{
			UniqueBookingPerEmail: getEnvBool("BOOKING_UNIQUE_PER_EMAIL", true),
		},
	}

	if cfg.Mongo.URI == "" {
		return nil, &models.ConfigurationError{
			Key: "MONGODB_URI",
			Msg: "please define the MONGODB_URI environment variable inside .env.local",
		}
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
