package relang

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Config holds parsed connection string parameters
type Config struct {
	FilePath    string // Page file path
	LogLevel    string // Log level: debug, info, warn, error (default: warn)
	SyncOnWrite bool   // Fsync after every page write (default: false)
}

// DefaultConfig returns default configuration
func DefaultConfig(filePath string) *Config {
	return &Config{
		FilePath: filePath,
		LogLevel: "warn",
	}
}

// ParseConnectionString parses a connection string with optional query parameters.
//
// Format: /path/to/pages.db?param1=value1&param2=value2
//
// Supported parameters:
//   - log_level=debug|info|warn|error : Set logging level (default: warn)
//   - sync=true|false : Fsync after every page write (default: false)
//
// Examples:
//   - "./my.db"                        : Default settings
//   - "./my.db?sync=true"              : Durable writes
//   - "./my.db?log_level=debug&sync=1" : Both settings
func ParseConnectionString(connStr string) (*Config, error) {
	parts := strings.SplitN(connStr, "?", 2)

	if parts[0] == "" {
		return nil, fmt.Errorf("connection string has no file path: %q", connStr)
	}

	config := DefaultConfig(parts[0])

	if len(parts) == 1 {
		return config, nil
	}

	queryParams, err := url.ParseQuery(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid connection string query parameters: %w", err)
	}

	if logLevel := queryParams.Get("log_level"); logLevel != "" {
		logLevel = strings.ToLower(logLevel)
		switch logLevel {
		case "debug", "info", "warn", "error":
			config.LogLevel = logLevel
		default:
			return nil, fmt.Errorf("invalid log_level parameter: must be 'debug', 'info', 'warn', or 'error', got %q", logLevel)
		}
	}

	if syncStr := queryParams.Get("sync"); syncStr != "" {
		syncOnWrite, err := strconv.ParseBool(syncStr)
		if err != nil {
			return nil, fmt.Errorf("invalid sync parameter: must be 'true' or 'false', got %q", syncStr)
		}
		config.SyncOnWrite = syncOnWrite
	}

	return config, nil
}

// GetZapLevel converts log level string to zap.Level
func (c *Config) GetZapLevel() zap.AtomicLevel {
	switch c.LogLevel {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	}
}
