package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Backend      BackendConfig
	Notification NotificationConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Logging      LoggingConfig
}

type BackendConfig struct {
	BaseURL string
	// RequestTimeout of zero leaves requests without a deadline.
	RequestTimeout      time.Duration
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
	BreakerHalfOpenSucc int
	Paths               EndpointPaths
}

// EndpointPaths are joined onto BaseURL.
type EndpointPaths struct {
	Upload           string
	MerchantAnalysis string
	TransactionByID  string
	PatternAnalysis  string
}

type NotificationConfig struct {
	DismissAfter time.Duration
}

type ServerConfig struct {
	Enabled            bool
	Address            string
	Environment        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	RateLimitPerSecond int
	MaxUploadBytes     int64
}

type DatabaseConfig struct {
	Driver          string
	SQLitePath      string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	MigrationsPath  string
	// JournalRetention of zero keeps journal rows forever.
	JournalRetention time.Duration
}

type LoggingConfig struct {
	Format string
	Level  slog.Level
	File   string
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Load reads configuration from the environment after merging an optional
// .env file. Variables already set in the environment win over the file.
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{
		Backend: BackendConfig{
			BaseURL:             strings.TrimRight(getEnv("BACKEND_URL", getEnv("NEXT_PUBLIC_BACKEND_URL", "http://localhost:8000")), "/"),
			RequestTimeout:      getDurationEnv("BACKEND_REQUEST_TIMEOUT", 0),
			BreakerMaxFailures:  getIntEnv("BACKEND_BREAKER_MAX_FAILURES", 0),
			BreakerResetTimeout: getDurationEnv("BACKEND_BREAKER_RESET_TIMEOUT", 30*time.Second),
			BreakerHalfOpenSucc: getIntEnv("BACKEND_BREAKER_HALF_OPEN_SUCCESSES", 1),
			Paths: EndpointPaths{
				Upload:           getEnv("BACKEND_UPLOAD_PATH", "/transaction-upload/upload"),
				MerchantAnalysis: getEnv("BACKEND_MERCHANT_PATH", "/transfer-normalizer/analyze"),
				TransactionByID:  getEnv("BACKEND_TRANSACTION_PATH", "/transfer-normalizer/transactions"),
				PatternAnalysis:  getEnv("BACKEND_PATTERN_PATH", "/pattern-analyzer/analyze"),
			},
		},
		Notification: NotificationConfig{
			DismissAfter: getDurationEnv("NOTIFICATION_DISMISS_AFTER", 3*time.Second),
		},
		Server: ServerConfig{
			Enabled:            getBoolEnv("CONTROL_SERVER_ENABLED", true),
			Address:            getEnv("CONTROL_SERVER_ADDR", ":8090"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			MaxUploadBytes:     int64(getIntEnv("MAX_UPLOAD_BYTES", 10<<20)),
		},
		Database: DatabaseConfig{
			Driver:           strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			SQLitePath:       getEnv("DB_SQLITE_PATH", "transaction-analyzer.db"),
			Host:             getEnv("DB_HOST", "localhost"),
			Port:             getEnv("DB_PORT", "5432"),
			User:             getEnv("DB_USER", "analyzer"),
			Password:         getEnv("DB_PASSWORD", "analyzer"),
			Name:             getEnv("DB_NAME", "transaction_analyzer"),
			SSLMode:          getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:   getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:     getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime:  getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:      getBoolEnv("DB_AUTO_MIGRATE", true),
			MigrationsPath:   getEnv("DB_MIGRATIONS_PATH", "db/migrations"),
			JournalRetention: getDurationEnv("JOURNAL_RETENTION", 30*24*time.Hour),
		},
		Logging: LoggingConfig{
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
			Level:  getLevelEnv("LOG_LEVEL", slog.LevelInfo),
			File:   getEnv("LOG_FILE", "transaction-analyzer.log"),
		},
	}

	return config
}

// Validate reports settings that would make the dashboard unusable.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_URL must be set")
	}
	if !strings.HasPrefix(c.Backend.BaseURL, "http://") && !strings.HasPrefix(c.Backend.BaseURL, "https://") {
		return fmt.Errorf("BACKEND_URL must be an http(s) URL, got %q", c.Backend.BaseURL)
	}
	if c.Backend.RequestTimeout < 0 {
		return fmt.Errorf("BACKEND_REQUEST_TIMEOUT must not be negative")
	}
	if c.Notification.DismissAfter <= 0 {
		return fmt.Errorf("NOTIFICATION_DISMISS_AFTER must be positive")
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.Database.Driver)
	}
	if c.IsProduction() && c.Database.Driver == DriverPostgres && c.Database.SSLMode == "disable" {
		return fmt.Errorf("DB_SSL_MODE must not be \"disable\" in production environments")
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrationURL is the golang-migrate database URL for the postgres journal.
func (c *DatabaseConfig) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *BackendConfig) BreakerEnabled() bool {
	return c.BreakerMaxFailures > 0
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getLevelEnv(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
