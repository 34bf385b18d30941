package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Payroll   PayrollConfig
	Timeclock TimeclockConfig
	StaffSync StaffSyncConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PayrollConfig holds credentials for the payroll/HR platform API.
// Tokens are acquired through the OAuth2 client-credentials flow.
type PayrollConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	TokenURL     string
	WebhookToken string
}

// TimeclockConfig holds credentials for the time-tracking platform API.
type TimeclockConfig struct {
	BaseURL      string
	APIKey       string
	WebhookToken string
}

// StaffSyncConfig controls the periodic staff re-sync job.
type StaffSyncConfig struct {
	Enabled  bool
	Interval time.Duration
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "facil"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll platform configuration
	config.Payroll = PayrollConfig{
		BaseURL:      getEnv("PAYROLL_BASE_URL", ""),
		ClientID:     getEnv("PAYROLL_CLIENT_ID", ""),
		ClientSecret: getEnv("PAYROLL_CLIENT_SECRET", ""),
		TokenURL:     getEnv("PAYROLL_TOKEN_URL", ""),
		WebhookToken: getEnv("PAYROLL_WEBHOOK_TOKEN", ""),
	}

	// Time-tracking platform configuration
	config.Timeclock = TimeclockConfig{
		BaseURL:      getEnv("TIMECLOCK_BASE_URL", ""),
		APIKey:       getEnv("TIMECLOCK_API_KEY", ""),
		WebhookToken: getEnv("TIMECLOCK_WEBHOOK_TOKEN", ""),
	}

	// Staff sync job configuration
	syncInterval, err := time.ParseDuration(getEnv("STAFF_SYNC_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid STAFF_SYNC_INTERVAL: %w", err)
	}
	config.StaffSync = StaffSyncConfig{
		Enabled:  getEnv("STAFF_SYNC_ENABLED", "true") == "true",
		Interval: syncInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	// The webhook routes are always served; an empty token would verify any
	// request carrying an empty header.
	if c.Payroll.WebhookToken == "" {
		return fmt.Errorf("PAYROLL_WEBHOOK_TOKEN is required")
	}
	if c.Timeclock.WebhookToken == "" {
		return fmt.Errorf("TIMECLOCK_WEBHOOK_TOKEN is required")
	}
	if c.StaffSync.Enabled {
		if c.Payroll.BaseURL == "" {
			return fmt.Errorf("PAYROLL_BASE_URL is required when staff sync is enabled")
		}
		if c.Timeclock.BaseURL == "" {
			return fmt.Errorf("TIMECLOCK_BASE_URL is required when staff sync is enabled")
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
