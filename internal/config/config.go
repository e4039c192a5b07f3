package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port               string
	LogLevel           string
	AppPassword        string
	LeadsAPIURL        string
	APIKey             string
	ProgramID          string
	HTTPTimeout        time.Duration
	DefaultCountryCode string
	DefaultLeadStatus  string
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables")
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "30s"))
	if err != nil {
		timeout = 30 * time.Second
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		AppPassword:        getEnv("APP_PASSWORD", ""),
		LeadsAPIURL:        getEnv("API_URL", "https://api.financeads.net/tm/v2/leads"),
		APIKey:             getEnv("API_KEY", ""),
		ProgramID:          getEnv("PROGRAM_ID", ""),
		HTTPTimeout:        timeout,
		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "+49"),
		DefaultLeadStatus:  getEnv("DEFAULT_LEAD_STATUS", "confirmed"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
