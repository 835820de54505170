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

type Config struct {
	Server     ServerConfig
	Auth       AuthConfig
	RateLimit  RateLimitConfig
	Generation GenerationConfig
	Deployment DeploymentConfig
	App        AppConfig
}

type ServerConfig struct {
	Port         string
	MaxBodyBytes int64
	CORSOrigins  []string
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
	Audience  string
}

type RateLimitConfig struct {
	MaxRequests   int64
	Window        time.Duration
	Store         string // "memory" or "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type GenerationConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type DeploymentConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			MaxBodyBytes: int64(getEnvAsInt("MAX_BODY_BYTES", 15<<20)),
			CORSOrigins:  splitAndTrim(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", "design-forge"),
			Audience:  getEnv("JWT_AUDIENCE", "design-forge-api"),
		},
		RateLimit: RateLimitConfig{
			MaxRequests:   int64(getEnvAsInt("RATE_LIMIT_MAX", 10)),
			Window:        time.Duration(getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
			Store:         getEnv("RATE_LIMIT_STORE", "memory"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
		},
		Generation: GenerationConfig{
			BaseURL: getEnv("GENERATION_BASE_URL", "https://api.anthropic.com/v1"),
			APIKey:  getEnv("GENERATION_API_KEY", ""),
			Model:   getEnv("GENERATION_MODEL", ""),
			Timeout: time.Duration(getEnvAsInt("GENERATION_TIMEOUT_SECONDS", 90)) * time.Second,
		},
		Deployment: DeploymentConfig{
			BaseURL: getEnv("DEPLOYMENT_BASE_URL", "https://api.vercel.com"),
			Token:   getEnv("DEPLOYMENT_TOKEN", ""),
			Timeout: time.Duration(getEnvAsInt("DEPLOYMENT_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
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

	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit max and window must be positive")
	}

	if c.RateLimit.Store != "memory" && c.RateLimit.Store != "redis" {
		return fmt.Errorf("RATE_LIMIT_STORE must be memory or redis")
	}

	// Missing secrets are not fatal at boot: the relevant component reports
	// a configuration error at request time instead, so the rest of the API
	// stays usable.
	if c.Auth.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set, authenticated endpoints will reject all requests")
	}
	if c.Generation.APIKey == "" {
		log.Println("Warning: GENERATION_API_KEY not set, generation endpoints will fail")
	}
	if c.Deployment.Token == "" {
		log.Println("Warning: DEPLOYMENT_TOKEN not set, deploy endpoint will fail")
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

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
