package game

import (
	"os"

	"github.com/samdwyer/lavamaze/internal/gamedata"
)

// Environment variables read by LoadConfig.
const (
	EnvLanguage         = "LAVAMAZE_LANG"
	EnvLogFile          = "LAVAMAZE_LOG_FILE"
	EnvLogLevel         = "LAVAMAZE_LOG_LEVEL"
	EnvHoneycombAPIKey  = "LAVAMAZE_HONEYCOMB_API_KEY"
	EnvHoneycombDataset = "LAVAMAZE_HONEYCOMB_DATASET"
)

// Config holds game configuration options.
// Map size, terrain odds and starting lives are fixed and not part of it.
type Config struct {
	// Language selects the UI translation ("en" or "es").
	Language string
	// LogFile receives logs. Empty means logs are discarded.
	LogFile string
	// LogLevel is a logrus level name.
	LogLevel string
	// HoneycombAPIKey enables trace export when set.
	HoneycombAPIKey string
	// HoneycombDataset names the Honeycomb dataset.
	HoneycombDataset string
}

// LoadConfig reads the configuration from the environment, applying defaults.
// Call godotenv.Load first to pick up a local .env file.
func LoadConfig() Config {
	return Config{
		Language:         getenv(EnvLanguage, gamedata.DefaultLanguage),
		LogFile:          os.Getenv(EnvLogFile),
		LogLevel:         getenv(EnvLogLevel, "info"),
		HoneycombAPIKey:  os.Getenv(EnvHoneycombAPIKey),
		HoneycombDataset: getenv(EnvHoneycombDataset, "lavamaze"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
