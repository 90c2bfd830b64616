package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"finanzassistent/internal/core"
	"finanzassistent/internal/data"
)

type Config struct {
	// HTTP Server
	Port string

	// Data sources
	DataBackend      string
	DataDir          string
	TransactionsFile string
	PreferencesFile  string
	FitnessFile      string

	// Savings plan defaults shown in the dashboard and used by the
	// report CLI.
	SavingsGoal    decimal.Decimal
	SavingsHorizon int

	// Mail relay (optional; report sending is disabled when the host is
	// empty)
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailTo       string
}

func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8081"),

		DataBackend:      getEnv("DATA_BACKEND", "files"),
		DataDir:          getEnv("DATA_DIR", "./data"),
		TransactionsFile: getEnv("TRANSACTIONS_FILE", "bankdaten.json"),
		PreferencesFile:  getEnv("PREFERENCES_FILE", "praeferenzen.json"),
		FitnessFile:      getEnv("FITNESS_FILE", "fitnessdaten.json"),

		SavingsGoal:    getEnvDecimal("SAVINGS_GOAL", decimal.NewFromInt(1200)),
		SavingsHorizon: getEnvInt("SAVINGS_HORIZON_MONTHS", 12),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", ""),
		MailTo:       getEnv("MAIL_TO", ""),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if err := c.BackendConfig().Validate(); err != nil {
		errors = append(errors, err.Error())
	}

	if c.SavingsGoal.IsNegative() {
		errors = append(errors, fmt.Sprintf("invalid savings goal %s: must not be negative", c.SavingsGoal))
	}
	if c.SavingsHorizon < 1 {
		errors = append(errors, fmt.Sprintf("invalid savings horizon %d: must be at least 1 month", c.SavingsHorizon))
	}

	if c.MailEnabled() {
		if c.SMTPPort < 1 || c.SMTPPort > 65535 {
			errors = append(errors, fmt.Sprintf("invalid SMTP port %d: must be between 1 and 65535", c.SMTPPort))
		}
		if c.MailFrom == "" {
			errors = append(errors, "MAIL_FROM cannot be empty when SMTP_HOST is set")
		}
		if c.MailTo == "" {
			errors = append(errors, "MAIL_TO cannot be empty when SMTP_HOST is set")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// DefaultPlan returns the savings plan built from the configured
// defaults.
func (c *Config) DefaultPlan() core.SavingsPlan {
	return core.SavingsPlan{
		Goal:          c.SavingsGoal,
		HorizonMonths: c.SavingsHorizon,
	}
}

// MailEnabled reports whether a mail relay is configured.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

// BackendConfig maps the flat env config onto the data-layer backend
// configuration.
func (c *Config) BackendConfig() data.Config {
	return data.Config{
		Type:             data.BackendType(c.DataBackend),
		TransactionsPath: filepath.Join(c.DataDir, c.TransactionsFile),
		PreferencesPath:  filepath.Join(c.DataDir, c.PreferencesFile),
		FitnessPath:      filepath.Join(c.DataDir, c.FitnessFile),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}
