package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds CLI configuration.
type Config struct {
	CompanyName  string // Printed on report headers
	AccountsFile string // Chart-of-accounts CSV path
	JournalFile  string // Journal CSV path
	LogFormat    string // "json" or "text"
	LogLevel     string // "debug", "info", "warn", "error"
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Every setting has a default; configuration is never required.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("COMPANY_NAME", "Almacén El Planeador")
	viper.SetDefault("ACCOUNTS_FILE", "")
	viper.SetDefault("JOURNAL_FILE", "")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_LEVEL", "warn")

	viper.AutomaticEnv()

	return &Config{
		CompanyName:  viper.GetString("COMPANY_NAME"),
		AccountsFile: viper.GetString("ACCOUNTS_FILE"),
		JournalFile:  viper.GetString("JOURNAL_FILE"),
		LogFormat:    viper.GetString("LOG_FORMAT"),
		LogLevel:     viper.GetString("LOG_LEVEL"),
	}, nil
}
