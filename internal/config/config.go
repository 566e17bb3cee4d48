package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/report"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Engine   EngineConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	CORSOrigins []string
}

// EngineConfig holds the worked-hours engine settings. Thresholds are in
// seconds to match what the reports expose.
type EngineConfig struct {
	Timezone            string
	DailyThresholdSecs  int
	WeeklyThresholdSecs int
	RoundingUnitSecs    int
	RoundingMode        string
	WeeklyWindow        string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "control_acceso"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
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
		CORSOrigins: getEnvSlice("CORS_ORIGINS", "http://localhost:3000"),
	}

	// Engine configuration
	dailyThreshold, err := strconv.Atoi(getEnv("DAILY_THRESHOLD_SECONDS", "28800"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_THRESHOLD_SECONDS: %w", err)
	}
	weeklyThreshold, err := strconv.Atoi(getEnv("WEEKLY_THRESHOLD_SECONDS", "172800"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEEKLY_THRESHOLD_SECONDS: %w", err)
	}
	roundingUnit, err := strconv.Atoi(getEnv("ROUNDING_UNIT_SECONDS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid ROUNDING_UNIT_SECONDS: %w", err)
	}

	config.Engine = EngineConfig{
		Timezone:            getEnv("TIMEZONE", "America/Bogota"),
		DailyThresholdSecs:  dailyThreshold,
		WeeklyThresholdSecs: weeklyThreshold,
		RoundingUnitSecs:    roundingUnit,
		RoundingMode:        getEnv("ROUNDING_MODE", "nearest"),
		WeeklyWindow:        getEnv("WEEKLY_WINDOW", "calendar"),
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
	switch c.Engine.RoundingMode {
	case string(report.RoundNearest), string(report.RoundDown), string(report.RoundUp):
	default:
		return fmt.Errorf("ROUNDING_MODE must be nearest, down or up")
	}
	switch c.Engine.WeeklyWindow {
	case string(report.WeeklyWindowCalendar), string(report.WeeklyWindowRolling):
	default:
		return fmt.Errorf("WEEKLY_WINDOW must be calendar or rolling")
	}
	if c.Engine.DailyThresholdSecs < 0 || c.Engine.WeeklyThresholdSecs < 0 {
		return fmt.Errorf("thresholds must not be negative")
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

// Rules resolves the engine configuration into the immutable rule set the
// services run with.
func (c *Config) Rules() (report.Rules, error) {
	loc, err := time.LoadLocation(c.Engine.Timezone)
	if err != nil {
		return report.Rules{}, fmt.Errorf("invalid TIMEZONE %q: %w", c.Engine.Timezone, err)
	}
	return report.Rules{
		Location:        loc,
		DailyThreshold:  time.Duration(c.Engine.DailyThresholdSecs) * time.Second,
		WeeklyThreshold: time.Duration(c.Engine.WeeklyThresholdSecs) * time.Second,
		Rounding: report.Rounding{
			Unit: time.Duration(c.Engine.RoundingUnitSecs) * time.Second,
			Mode: report.RoundingMode(c.Engine.RoundingMode),
		},
		WeeklyWindow: report.WeeklyWindow(c.Engine.WeeklyWindow),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
