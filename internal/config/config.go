package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/franciscosanchezn/edu-match/internal/database"
	"github.com/sirupsen/logrus"
)

// log is the process-wide logger configured by logging.Setup
var log = logrus.StandardLogger()

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	DBDriver       string `json:"db_driver"`
	DatabaseURL    string `json:"database_url"`
	DBHost         string `json:"db_host"`
	DBPort         string `json:"db_port"`
	DBName         string `json:"db_name"`
	DBUser         string `json:"db_user"`
	DBPassword     string `json:"db_password"`
	DBSSLMode      string `json:"db_sslmode"`
	DBPath         string `json:"db_path"`
	DBMaxOpenConns int    `json:"db_max_open_conns"`
	DBMaxIdleConns int    `json:"db_max_idle_conns"`

	// Logging configuration
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DatabaseURL: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, LogLevel: %s, LogFile: %s}",
		c.Environment, c.Port, c.Host, c.DBDriver, maskDatabaseURL(c.DatabaseURL), c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPath, c.LogLevel, c.LogFile)
}

// Database returns the connection settings for the database package
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:       c.DBDriver,
		URL:          c.DatabaseURL,
		Host:         c.DBHost,
		Port:         c.DBPort,
		User:         c.DBUser,
		Password:     c.DBPassword,
		Name:         c.DBName,
		SSLMode:      c.DBSSLMode,
		Path:         c.DBPath,
		MaxOpenConns: c.DBMaxOpenConns,
		MaxIdleConns: c.DBMaxIdleConns,
	}
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// DATABASE_URL is optional; when present it must be a valid URL and takes precedence over the DB_* fields
// Returns an error if any environment variable holds an invalid value
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL != "" {
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL format: %w", err)
		}
	}

	config := &Config{
		Environment:    GetEnvWithDefault("APP_ENV", "development"),
		Port:           port,
		Host:           GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:       GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DatabaseURL:    dbURL,
		DBHost:         GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:         GetEnvWithDefault("DB_PORT", "5432"),
		DBName:         GetEnvWithDefault("DB_NAME", "edumatch"),
		DBUser:         GetEnvWithDefault("DB_USER", "edumatch"),
		DBPassword:     GetEnvWithDefault("DB_PASSWORD", "edumatch"),
		DBSSLMode:      GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:         GetEnvWithDefault("DB_PATH", "edumatch.sqlite"),
		DBMaxOpenConns: GetEnvAsType("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: GetEnvAsType("DB_MAX_IDLE_CONNS", 5),
		LogLevel:       GetEnvWithDefault("LOG_LEVEL", "info"),
		LogFile:        GetEnvWithDefault("LOG_FILE", ""),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue
	}
}
