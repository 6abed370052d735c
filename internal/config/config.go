package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"invoicegen/internal/logger"
	"invoicegen/pkg/models"
)

type Config struct {
	// Company identity printed on every document
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string
	CompanyWebsite string
	CompanyNumber  string
	CompanyVAT     string

	// Storage paths
	CounterFile string
	LedgerFile  string
	OutputDir   string

	// Currency conversion (USD -> GBP) used for ledger totals
	USDToGBPRate string

	// Optional: OpenAI Configuration for AI-generated descriptions
	OpenAIAPIKey string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		CompanyName:    getEnv("COMPANY_NAME", "UPLOAD FOR SOFTWARE LTD"),
		CompanyAddress: getEnv("COMPANY_ADDRESS", "71-75 Shelton Street, Covent Garden, London, WC2H 9JQ, United Kingdom"),
		CompanyEmail:   getEnv("COMPANY_EMAIL", "Support@uploadforsoftware.com"),
		CompanyPhone:   getEnv("COMPANY_PHONE", ""),
		CompanyWebsite: getEnv("COMPANY_WEBSITE", "uploadforsoftware.com"),
		CompanyNumber:  getEnv("COMPANY_NUMBER", "16009190"),
		CompanyVAT:     getEnv("COMPANY_VAT", ""),
		CounterFile:    getEnv("COUNTER_FILE", "data/invoice_counter.json"),
		LedgerFile:     getEnv("LEDGER_FILE", "data/ledger_totals.json"),
		OutputDir:      getEnv("OUTPUT_DIR", "output"),
		USDToGBPRate:   getEnv("USD_GBP_RATE", "0.79"),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:  getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:      getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.CompanyName == "" {
		return fmt.Errorf("COMPANY_NAME is required")
	}
	if c.CounterFile == "" {
		return fmt.Errorf("COUNTER_FILE is required")
	}
	if c.LedgerFile == "" {
		return fmt.Errorf("LEDGER_FILE is required")
	}
	if _, err := decimal.NewFromString(c.USDToGBPRate); err != nil {
		return fmt.Errorf("USD_GBP_RATE must be a decimal number: %w", err)
	}
	return nil
}

// Company returns the company identity block for document assembly.
func (c *Config) Company() models.Company {
	return models.Company{
		Name:    c.CompanyName,
		Address: c.CompanyAddress,
		Email:   c.CompanyEmail,
		Phone:   c.CompanyPhone,
		Website: c.CompanyWebsite,
		Number:  c.CompanyNumber,
		VAT:     c.CompanyVAT,
	}
}

// USDRate returns the USD->GBP conversion rate as a decimal.
// Load has already validated the string form.
func (c *Config) USDRate() decimal.Decimal {
	rate, _ := decimal.NewFromString(c.USDToGBPRate)
	return rate
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
