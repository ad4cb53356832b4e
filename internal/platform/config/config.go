package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort            = "8080"
	defaultJWTSecret       = "a-very-secret-key-should-be-longer-and-random"
	defaultCurrencyAPIURL  = "https://api.currencyapi.com/v3"
	defaultDatetimeFormat  = "2006-01-02"
	defaultRateLimit       = "120-M"
	defaultMigrationsPath  = "file://migrations"
	defaultAdminPageSize   = 10
	defaultCurrencyTimeout = "0s"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// currencyapi.com
	CurrencyAPIKey     string
	CurrencyAPIBaseURL string
	CurrencyAPITimeout time.Duration // zero means no client-side timeout

	// DatetimeFormat is the Go layout used to serialise history dates.
	DatetimeFormat string

	RateLimit          string // ulule/limiter formatted rate, e.g. "120-M"
	CORSAllowedOrigins []string
	MigrationsPath     string
	AdminPageSize      int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("CURRENCY_API_KEY", "")
	viper.SetDefault("CURRENCY_API_BASE_URL", defaultCurrencyAPIURL)
	viper.SetDefault("CURRENCY_API_TIMEOUT", defaultCurrencyTimeout)
	viper.SetDefault("DATETIME_FORMAT", defaultDatetimeFormat)
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("ADMIN_PAGE_SIZE", defaultAdminPageSize)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		CurrencyAPIKey:     viper.GetString("CURRENCY_API_KEY"),
		CurrencyAPIBaseURL: viper.GetString("CURRENCY_API_BASE_URL"),
		DatetimeFormat:     viper.GetString("DATETIME_FORMAT"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		MigrationsPath:     viper.GetString("MIGRATIONS_PATH"),
		AdminPageSize:      viper.GetInt("ADMIN_PAGE_SIZE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.CurrencyAPIKey == "" {
		log.Println("Warning: CURRENCY_API_KEY not set. Currency import and rate fetching will fail.")
	}

	timeoutStr := viper.GetString("CURRENCY_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout < 0 {
		log.Printf("Warning: Invalid value for CURRENCY_API_TIMEOUT ('%s'). Defaulting to no timeout.\n", timeoutStr)
		timeout = 0
	}
	cfg.CurrencyAPITimeout = timeout

	if cfg.DatetimeFormat == "" {
		cfg.DatetimeFormat = defaultDatetimeFormat
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}
	if cfg.AdminPageSize <= 0 {
		log.Printf("Warning: Invalid ADMIN_PAGE_SIZE. Defaulting to %d.\n", defaultAdminPageSize)
		cfg.AdminPageSize = defaultAdminPageSize
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
