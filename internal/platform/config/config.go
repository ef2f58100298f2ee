package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Redis backs the pre-computed report snapshots.
	RedisAddr         string
	RedisPassword     string
	EnableReportCache bool

	// DefaultCurrency selects the report currency when a request names none.
	DefaultCurrency string
	// StoreTimezone anchors calendar-day boundaries for every store.
	StoreTimezone *time.Location

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("ENABLE_REPORT_CACHE", true)
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("STORE_TIMEZONE", "Africa/Mogadishu")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.EnableReportCache = viper.GetBool("ENABLE_REPORT_CACHE")

	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")

	tzName := viper.GetString("STORE_TIMEZONE")
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Warning: invalid STORE_TIMEZONE %q, falling back to UTC\n", tzName)
		tz = time.UTC
	}
	cfg.StoreTimezone = tz

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
