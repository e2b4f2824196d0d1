package config

import (
	"os"

	"github.com/shopspring/decimal"
)

// Config holds all application configuration
type Config struct {
	Port        string
	DeliveryFee decimal.Decimal
	CatalogFile string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DeliveryFee: getDecimalEnv("DELIVERY_FEE", "5.00"),
		CatalogFile: getEnv("CATALOG_FILE", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDecimalEnv retrieves a decimal environment variable, falling back to the
// default when the variable is unset or not a valid decimal.
func getDecimalEnv(key, defaultValue string) decimal.Decimal {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(defaultValue)
}
