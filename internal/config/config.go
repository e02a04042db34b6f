package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file. Every
// knob has a sensible local default, so nothing is required.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	return Config{
		DataFile:  getEnv("BOXSCORE_FILE", "players_data.txt"),
		CSVDir:    getEnv("BOXSCORE_CSV_DIR", "."),
		LogLevel:  getEnv("BOXSCORE_LOG_LEVEL", "info"),
		LogFormat: getEnv("BOXSCORE_LOG_FORMAT", "text"),
	}
}
