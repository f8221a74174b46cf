package config

import (
	"errors"
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
	Session  SessionConfig
	SMS      SMSConfig
	LLM      LLMConfig
	Storage  StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
	// PublicBaseURL is the externally reachable origin used to build the
	// accept deep links sent in SOS alerts.
	PublicBaseURL string
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
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SessionConfig holds session storage settings
type SessionConfig struct {
	EncryptionKey string
	TTL           time.Duration
}

// SMSConfig holds the outbound SMS gateway credentials. All values are
// injected; nothing here may be hardcoded elsewhere.
type SMSConfig struct {
	AccountSID     string
	AuthToken      string
	FromNumber     string
	AlertRecipient string
	BaseURL        string
}

// LLMConfig holds the eligibility classifier settings
type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// StorageConfig holds report store settings. When Minio endpoint is empty
// uploads land in LocalDir.
type StorageConfig struct {
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	LocalDir       string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:          getEnv("SERVER_PORT", "8080"),
			Env:           getEnv("SERVER_ENV", "development"),
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "bloodlink"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Session: SessionConfig{
			EncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", ""),
			TTL:           getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
		SMS: SMSConfig{
			AccountSID:     getEnv("SMS_ACCOUNT_SID", ""),
			AuthToken:      getEnv("SMS_AUTH_TOKEN", ""),
			FromNumber:     getEnv("SMS_FROM_NUMBER", ""),
			AlertRecipient: getEnv("SMS_ALERT_RECIPIENT", ""),
			BaseURL:        getEnv("SMS_BASE_URL", ""),
		},
		LLM: LLMConfig{
			APIKey:  getEnv("LLM_API_KEY", ""),
			BaseURL: getEnv("LLM_BASE_URL", ""),
			Model:   getEnv("LLM_MODEL", "gpt-4o-mini"),
		},
		Storage: StorageConfig{
			MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
			MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
			MinioBucket:    getEnv("MINIO_BUCKET", "medical-reports"),
			MinioUseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
			LocalDir:       getEnv("UPLOAD_DIR", "uploads"),
		},
	}
}

// Validate rejects configurations that cannot serve: secrets must be set
// explicitly, never defaulted.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Session.EncryptionKey == "" {
		return errors.New("SESSION_ENCRYPTION_KEY is required")
	}
	if len(c.Session.EncryptionKey) != 64 {
		return errors.New("SESSION_ENCRYPTION_KEY must be 64 hex characters")
	}
	if c.SMS.AccountSID == "" || c.SMS.AuthToken == "" {
		return errors.New("SMS_ACCOUNT_SID and SMS_AUTH_TOKEN are required")
	}
	if c.SMS.FromNumber == "" || c.SMS.AlertRecipient == "" {
		return errors.New("SMS_FROM_NUMBER and SMS_ALERT_RECIPIENT are required")
	}
	if c.LLM.APIKey == "" {
		return errors.New("LLM_API_KEY is required")
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
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
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
