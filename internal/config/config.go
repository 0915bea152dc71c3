package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/devanshm/tiffin/internal/store"
)

// Config holds process-level settings. User preferences (price, reminders)
// live in the database; this is only where the files are and how we log.
type Config struct {
	DBPath  string
	LogPath string
	AppEnv  string // "production" or "development"
}

// Load reads an optional .env file and environment overrides, falling back
// to paths under the user config directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPath := os.Getenv("TIFFIN_DB")
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve db path: %w", err)
		}
		dbPath = p
	}

	logPath := os.Getenv("TIFFIN_LOG")
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "tiffin.log")
	}

	env := os.Getenv("TIFFIN_ENV")
	if env == "" {
		env = "production"
	}

	return &Config{
		DBPath:  dbPath,
		LogPath: logPath,
		AppEnv:  env,
	}, nil
}

// NewLogger builds a file-backed zap logger. The terminal belongs to the
// TUI, so nothing is ever written to stdout or stderr.
func (c *Config) NewLogger() (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(c.LogPath), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	var zc zap.Config
	if c.AppEnv == "development" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.OutputPaths = []string{c.LogPath}
	zc.ErrorOutputPaths = []string{c.LogPath}

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
