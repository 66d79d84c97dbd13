package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"wedding_venue_backend/pkg/utils"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Log       LogConfig
	Reporting ReportingConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
	ReleaseMode        bool
}

// DatabaseConfig holds the PostgreSQL connection settings.
type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SchemaPath string
	MaxOpen    int
}

// DSN renders the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// AuthConfig enables the bearer token guard on report routes when Secret is set.
type AuthConfig struct {
	JWTSecret    string
	AllowedRoles []string
}

// Enabled reports whether report routes require a token.
func (a AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

// LogConfig selects the zerolog level and output format.
type LogConfig struct {
	Level  string
	Pretty bool
}

// ReportingConfig tunes report assembly.
type ReportingConfig struct {
	Timezone string
	TopN     int
	Location *time.Location
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine when configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	topN, err := getenvInt("REPORT_TOP_N", 5)
	if err != nil {
		return nil, err
	}
	maxOpen, err := getenvInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return nil, err
	}
	pretty, err := strconv.ParseBool(utils.Getenv("LOG_PRETTY", "true"))
	if err != nil {
		return nil, fmt.Errorf("LOG_PRETTY must be a boolean: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               utils.Getenv("PORT", "8080"),
			CORSAllowedOrigins: utils.SplitAndTrim(utils.Getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001"), ","),
			ReleaseMode:        utils.Getenv("GIN_MODE", "") == "release",
		},
		Database: DatabaseConfig{
			Host:       utils.Getenv("DB_HOST", "localhost"),
			Port:       utils.Getenv("DB_PORT", "5432"),
			User:       utils.Getenv("DB_USER", "wedding_venue_user"),
			Password:   utils.Getenv("DB_PASSWORD", "wedding_venue_password"),
			Name:       utils.Getenv("DB_NAME", "wedding_venue_db"),
			SSLMode:    utils.Getenv("DB_SSLMODE", "disable"),
			SchemaPath: utils.Getenv("DB_SCHEMA_PATH", ""),
			MaxOpen:    maxOpen,
		},
		Auth: AuthConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			AllowedRoles: utils.SplitAndTrim(utils.Getenv("REPORT_ALLOWED_ROLES", "Admin,Manager"), ","),
		},
		Log: LogConfig{
			Level:  utils.Getenv("LOG_LEVEL", "info"),
			Pretty: pretty,
		},
		Reporting: ReportingConfig{
			Timezone: utils.Getenv("REPORT_TIMEZONE", "UTC"),
			TopN:     topN,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated and resolves the
// reporting time zone.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("PORT must be provided")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Server.Port)
	}

	switch {
	case c.Database.Host == "":
		return errors.New("DB_HOST must be provided")
	case c.Database.Name == "":
		return errors.New("DB_NAME must be provided")
	case c.Database.User == "":
		return errors.New("DB_USER must be provided")
	}
	if c.Database.MaxOpen <= 0 {
		return errors.New("DB_MAX_OPEN_CONNS must be positive")
	}

	if c.Auth.Enabled() && len(c.Auth.AllowedRoles) == 0 {
		return errors.New("REPORT_ALLOWED_ROLES must list at least one role when JWT_SECRET is set")
	}

	if c.Reporting.TopN <= 0 {
		return errors.New("REPORT_TOP_N must be positive")
	}
	loc, err := time.LoadLocation(c.Reporting.Timezone)
	if err != nil {
		return fmt.Errorf("REPORT_TIMEZONE %q is not a known time zone: %w", c.Reporting.Timezone, err)
	}
	c.Reporting.Location = loc

	return nil
}

func getenvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}
