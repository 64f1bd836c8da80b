package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"wealthview/internal/validator"
)

// Config holds application configuration
type Config struct {
	// Server
	Env         string
	Port        string `validate:"required,numeric"`
	LogLevel    string `validate:"omitempty,oneof=debug info warn error"`
	APIPrefix   string `validate:"required,startswith=/"`
	CORSOrigins []string

	// Database
	DatabaseURL string
	DBDriver    string `validate:"db_driver"`
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	SQLitePath  string

	// Seeding
	SeedFile      string `validate:"required,seed_location"`
	SeedBatchSize int    `validate:"min=1,max=1000"`
	SeedSchedule  string
	SeedOnStartup bool

	// S3 seed sources
	SeedS3Region    string
	SeedS3Endpoint  string
	SeedS3PathStyle bool
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Env:         getEnv("ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    strings.ToLower(os.Getenv("LOG_LEVEL")),
		APIPrefix:   getEnv("API_V1_PREFIX", "/api/v1"),
		CORSOrigins: parseOrigins(getEnv("CORS_ORIGINS", "*")),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "wealth_user"),
		DBPassword:  getEnv("DB_PASSWORD", "wealth_password"),
		DBName:      getEnv("DB_NAME", "wealth_assets"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		SQLitePath:  getEnv("SQLITE_PATH", "wealth_assets.db"),

		// Seeding
		SeedFile:     getEnv("SEED_FILE", "data/assets.json"),
		SeedSchedule: os.Getenv("SEED_SCHEDULE"),

		// S3
		SeedS3Region:   getEnv("SEED_S3_REGION", "us-east-1"),
		SeedS3Endpoint: os.Getenv("SEED_S3_ENDPOINT"),
	}

	var err error
	if config.SeedBatchSize, err = parseInt(getEnv("SEED_BATCH_SIZE", "100")); err != nil {
		return nil, fmt.Errorf("invalid SEED_BATCH_SIZE: %w", err)
	}
	if config.SeedOnStartup, err = parseBool(os.Getenv("SEED_ON_STARTUP"), false); err != nil {
		return nil, fmt.Errorf("invalid SEED_ON_STARTUP value: %w", err)
	}
	if config.SeedS3PathStyle, err = parseBool(os.Getenv("SEED_S3_PATH_STYLE"), false); err != nil {
		return nil, fmt.Errorf("invalid SEED_S3_PATH_STYLE value: %w", err)
	}

	if err := validator.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseOrigins splits a comma-separated origin list; "*" allows every origin.
func parseOrigins(s string) []string {
	if strings.TrimSpace(s) == "*" {
		return []string{"*"}
	}
	var origins []string
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("must be an integer, got %q", s)
	}
	return n, nil
}

func parseBool(s string, defaultVal bool) (bool, error) {
	if s == "" {
		return defaultVal, nil
	}
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("must be true, false, 1, or 0, got %q", s)
	}
}
