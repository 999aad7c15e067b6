package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Contact store backends.
const (
	StoreRedis  = "redis"
	StoreDynamo = "dynamo"
)

type Config struct {
	Server    ServerConfig
	Contact   ContactConfig
	Database  DatabaseConfig
	Starfield StarfieldConfig
	App       AppConfig
}

type ServerConfig struct {
	Port string
}

// ContactConfig selects and configures the managed store that contact
// submissions are written to.
type ContactConfig struct {
	Store     string // redis | dynamo
	Table     string
	RedisAddr string
	RedisDB   int
	AWSRegion string
	// RatePerMinute bounds POST /api/contact per client IP. Zero disables.
	RatePerMinute int
}

type DatabaseConfig struct {
	// URL is the Postgres DSN for the content catalog. Empty means the
	// embedded seed content is served instead.
	URL string
}

type StarfieldConfig struct {
	Width  int
	Height int
	FPS    int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Contact: ContactConfig{
			Store:         getEnv("CONTACT_STORE", StoreRedis),
			Table:         getEnv("CONTACT_TABLE", "contact_submissions"),
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			AWSRegion:     getEnv("AWS_REGION", ""),
			RatePerMinute: getEnvAsInt("CONTACT_RATE_PER_MINUTE", 10),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Starfield: StarfieldConfig{
			Width:  getEnvAsInt("STARFIELD_WIDTH", 1920),
			Height: getEnvAsInt("STARFIELD_HEIGHT", 1080),
			FPS:    getEnvAsInt("STARFIELD_FPS", 60),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Contact.Table == "" {
		return fmt.Errorf("CONTACT_TABLE is required")
	}

	// The store address and region are deliberately never defaulted: the
	// backend must be told where it is writing.
	switch c.Contact.Store {
	case StoreRedis:
		if c.Contact.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CONTACT_STORE=redis")
		}
	case StoreDynamo:
		if c.Contact.AWSRegion == "" {
			return fmt.Errorf("AWS_REGION is required when CONTACT_STORE=dynamo")
		}
	default:
		return fmt.Errorf("CONTACT_STORE must be %q or %q, got %q", StoreRedis, StoreDynamo, c.Contact.Store)
	}

	if c.Starfield.Width <= 0 || c.Starfield.Height <= 0 {
		return fmt.Errorf("STARFIELD_WIDTH and STARFIELD_HEIGHT must be positive")
	}
	if c.Starfield.FPS <= 0 {
		return fmt.Errorf("STARFIELD_FPS must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
