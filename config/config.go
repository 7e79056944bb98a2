package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the upstream market-data endpoint, and the logo tool.
//
// Example YAML/ENV equivalent:
//
//	SERVER_HOST=127.0.0.1
//	SERVER_PORT=9820
//	MARKET_BASE_URL=https://query1.finance.yahoo.com
//	MARKET_TIMEOUT_SECONDS=10
//	LOGO_BASE_URL=https://a.espncdn.com/i/teamlogos
//	LOGO_SIZE=25
type Config struct {
	Server ServerConfig // HTTP server configuration
	Market MarketConfig // Upstream market-data provider settings
	Logo   LogoConfig   // Logo fetch tool settings
}

// ServerConfig holds HTTP server settings such as the bind address.
type ServerConfig struct {
	Host string // Interface to bind (e.g., "127.0.0.1")
	Port string // The TCP port the HTTP server will listen on (e.g., "9820")
}

// MarketConfig defines how the service reaches the market-data provider.
//
// Fields:
//   - BaseURL: root of the provider's chart API (no trailing slash).
//   - TimeoutSeconds: per-call HTTP client timeout.
type MarketConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// LogoConfig defines defaults for the offline logo fetch mode.
type LogoConfig struct {
	BaseURL   string // Root of the logo CDN (no trailing slash)
	Size      int    // Side length in pixels of the resized square logo
	OutputDir string // Directory where .ppm files are written
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All packages should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_HOST", "127.0.0.1")
	viper.SetDefault("SERVER_PORT", "9820")

	viper.SetDefault("MARKET_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("MARKET_TIMEOUT_SECONDS", 10)

	viper.SetDefault("LOGO_BASE_URL", "https://a.espncdn.com/i/teamlogos")
	viper.SetDefault("LOGO_SIZE", 25)
	viper.SetDefault("LOGO_OUTPUT_DIR", ".")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Host: viper.GetString("SERVER_HOST"),
			Port: viper.GetString("SERVER_PORT"),
		},
		Market: MarketConfig{
			BaseURL:        viper.GetString("MARKET_BASE_URL"),
			TimeoutSeconds: viper.GetInt("MARKET_TIMEOUT_SECONDS"),
		},
		Logo: LogoConfig{
			BaseURL:   viper.GetString("LOGO_BASE_URL"),
			Size:      viper.GetInt("LOGO_SIZE"),
			OutputDir: viper.GetString("LOGO_OUTPUT_DIR"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Host == "" {
		missing = append(missing, "SERVER_HOST")
	}
	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Market.BaseURL == "" {
		missing = append(missing, "MARKET_BASE_URL")
	}
	if AppConfig.Market.TimeoutSeconds <= 0 {
		missing = append(missing, "MARKET_TIMEOUT_SECONDS")
	}
	if AppConfig.Logo.BaseURL == "" {
		missing = append(missing, "LOGO_BASE_URL")
	}
	if AppConfig.Logo.Size <= 0 {
		missing = append(missing, "LOGO_SIZE")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
