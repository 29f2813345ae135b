package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server
	ServerPort string

	// Paths
	DatabaseFile  string // $DATA_DIR/moviarr.db
	AccessLogFile string // $DATA_DIR/access.log

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Setup viper FIRST to load .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("LOG_LEVEL", "info")

	// NOW read DATA_DIR from viper (which has loaded .env file)
	dataDir := viper.GetString("DATA_DIR")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".config", "moviarr")
	} else {
		// Convert relative path to absolute path
		absPath, err := filepath.Abs(dataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for DATA_DIR: %w", err)
		}
		dataDir = absPath
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	config := &Config{
		// Server
		ServerPort: viper.GetString("SERVER_PORT"),

		// Paths
		DatabaseFile:  filepath.Join(dataDir, "moviarr.db"),
		AccessLogFile: filepath.Join(dataDir, "access.log"),

		// Logging
		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	return config, nil
}
