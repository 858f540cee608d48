package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upstream budget service
	BudgetAPIBaseURL  string `mapstructure:"BUDGET_API_BASE_URL"`
	BudgetAPIToken    string `mapstructure:"BUDGET_API_TOKEN"`
	DefaultBudgetID   string `mapstructure:"DEFAULT_BUDGET_ID"`
	HTTPClientTimeout time.Duration

	// Rate limiting, in ulule/limiter format (e.g. "100-M" for 100 req/min)
	RateLimit string `mapstructure:"RATE_LIMIT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BUDGET_API_BASE_URL", "https://api.ynab.com/v1")
	viper.SetDefault("BUDGET_API_TOKEN", "")
	viper.SetDefault("DEFAULT_BUDGET_ID", "")
	viper.SetDefault("HTTP_CLIENT_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT", "100-M")

	// Environment variables override defaults and any .env values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.BudgetAPIBaseURL = viper.GetString("BUDGET_API_BASE_URL")
	if cfg.BudgetAPIBaseURL == "" {
		cfg.BudgetAPIBaseURL = "https://api.ynab.com/v1"
		log.Printf("Warning: BUDGET_API_BASE_URL not set. Defaulting to %s\n", cfg.BudgetAPIBaseURL)
	}

	cfg.BudgetAPIToken = viper.GetString("BUDGET_API_TOKEN")
	if cfg.BudgetAPIToken == "" {
		log.Println("Warning: BUDGET_API_TOKEN not set. Requests to the budget service will be unauthorized.")
	}

	cfg.DefaultBudgetID = viper.GetString("DEFAULT_BUDGET_ID")
	if cfg.DefaultBudgetID == "" {
		log.Println("Warning: DEFAULT_BUDGET_ID not set. Requests must carry an explicit budget_id.")
	}

	// Load HTTP client timeout (e.g., "30s", "1m")
	timeoutStr := viper.GetString("HTTP_CLIENT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second // Default to 30 seconds
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for HTTP_CLIENT_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
		}
	}
	cfg.HTTPClientTimeout = timeout

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	return cfg, nil
}
