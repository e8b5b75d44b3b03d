package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode   string
	Port      string
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessTokenHours int
	RefreshTokenDays int
}

// RateLimitConfig holds rate limiter configuration
type RateLimitConfig struct {
	Window time.Duration
	Max    int
}

// RedisConfig holds redis configuration for the queue-info cache
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:   appMode,
		Port:      getEnv("PORT", "3000"),
		Database:  loadDatabaseConfig(),
		JWT:       loadJWTConfig(),
		RateLimit: loadRateLimitConfig(),
		Redis:     loadRedisConfig(),
	}

	AppConfig = config

	log.Printf("Configuration loaded [MODE: %s]", appMode)
	return config, nil
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "smartlining"),
	}
}

func loadJWTConfig() JWTConfig {
	accessHours, _ := strconv.Atoi(getEnv("JWT_EXPIRES_HOURS", "24"))
	refreshDays, _ := strconv.Atoi(getEnv("REFRESH_TOKEN_DAYS", "7"))

	return JWTConfig{
		Secret:           getEnv("JWT_SECRET", "change-me-in-production"),
		AccessTokenHours: accessHours,
		RefreshTokenDays: refreshDays,
	}
}

func loadRateLimitConfig() RateLimitConfig {
	windowMs, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_MS", "900000"))
	max, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX_REQUESTS", "100"))
	if windowMs < 1000 {
		windowMs = 1000
	}
	if max < 1 {
		max = 1
	}

	return RateLimitConfig{
		Window: time.Duration(windowMs) * time.Millisecond,
		Max:    max,
	}
}

func loadRedisConfig() RedisConfig {
	dbNum, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       dbNum,
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("CORS_ORIGIN", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:5173"
	}
	return origins
}
