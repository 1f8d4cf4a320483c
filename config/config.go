package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the console and the development backend read from the environment.
type Config struct {
	APIBaseURL  string
	WebPort     string
	APIPort     string
	DB          DBConfig
	BannerTTL   time.Duration
	SessionIdle time.Duration
}

type DBConfig struct {
	Driver string // mysql | postgres
	DSN    string
}

const (
	DefaultAPIBaseURL = "http://localhost:8000"
	defaultDSN        = "root:@tcp(127.0.0.1:3306)/hrms_dev?charset=utf8mb4&parseTime=True&loc=Local"
)

// Load reads the configuration. Call godotenv.Load first if a .env file should be honored.
func Load() *Config {
	return &Config{
		APIBaseURL: strings.TrimRight(GetEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
		WebPort:    GetEnv("WEB_PORT", "3000"),
		APIPort:    GetEnv("API_PORT", "8000"),
		DB: DBConfig{
			Driver: strings.ToLower(GetEnv("DB_DRIVER", "mysql")),
			DSN:    GetEnv("DB_DSN", defaultDSN),
		},
		BannerTTL:   time.Duration(GetEnvAsInt("BANNER_SECONDS", 5)) * time.Second,
		SessionIdle: time.Duration(GetEnvAsInt("SESSION_IDLE_MINUTES", 30)) * time.Minute,
	}
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil && value > 0 {
		return value
	}
	return fallback
}
