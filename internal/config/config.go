package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	TCR      TCRConfig
	HubSpot  HubSpotConfig
	Security SecurityConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port        string
	Env         string
	CORSOrigins string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// TCREnvironment holds credentials for one registry environment
type TCREnvironment struct {
	BaseURL   string
	APIKey    string
	APISecret string
}

// TCRConfig holds compliance registry configuration for both environments
type TCRConfig struct {
	Staging    TCREnvironment
	Production TCREnvironment
	Timeout    time.Duration
}

// HubSpotConfig holds CRM configuration
type HubSpotConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// SecurityConfig holds security encryption keys
type SecurityConfig struct {
	SessionEncryptionKey string
	SessionExpiry        time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "3001"),
			Env:         getEnv("SERVER_ENV", "development"),
			CORSOrigins: getEnv("CORS_ORIGIN", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "percytext"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-this-in-production"),
			Expiry: getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
		},
		TCR: TCRConfig{
			Staging: TCREnvironment{
				BaseURL:   getEnv("TCR_STAGING_URL", "https://csp-api-staging.campaignregistry.com/v2"),
				APIKey:    getEnv("TCR_STAGING_API_KEY", ""),
				APISecret: getEnv("TCR_STAGING_API_SECRET", ""),
			},
			Production: TCREnvironment{
				BaseURL:   getEnv("TCR_PRODUCTION_URL", "https://csp-api.campaignregistry.com/v2"),
				APIKey:    getEnv("TCR_PRODUCTION_API_KEY", ""),
				APISecret: getEnv("TCR_PRODUCTION_API_SECRET", ""),
			},
			Timeout: getEnvAsDuration("TCR_TIMEOUT", 30*time.Second),
		},
		HubSpot: HubSpotConfig{
			BaseURL: getEnv("HUBSPOT_BASE_URL", "https://api.hubapi.com"),
			APIKey:  getEnv("HUBSPOT_API_KEY", ""),
			Timeout: getEnvAsDuration("HUBSPOT_TIMEOUT", 30*time.Second),
		},
		Security: SecurityConfig{
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
			SessionExpiry:        getEnvAsDuration("SESSION_EXPIRY", 24*time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
