package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/joho/godotenv/autoload"
)

const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"
)

// Config keeps runtime settings for the task list.
type Config struct {
	Env            string        `env:"TODO_ENV" env-default:"local"`
	Storage        string        `env:"TODO_STORAGE" env-default:"sqlite"`
	DatabaseURL    string        `env:"TODO_DATABASE_URL" env-default:"daily_tasks.db"`
	DataDir        string        `env:"TODO_DATA_DIR" env-default:".todo"`
	ReportInterval time.Duration `env:"TODO_REPORT_INTERVAL" env-default:"0s"`
	ReportAt       string        `env:"TODO_REPORT_AT"`
}

// Load reads configuration from environment variables (and a .env file, if
// present) with sane defaults.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}

	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	cfg.ReportAt = strings.TrimSpace(cfg.ReportAt)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values cleanenv cannot express through tags.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StorageFile, StorageMemory:
	default:
		return fmt.Errorf("TODO_STORAGE must be one of sqlite, file, memory, got %q", c.Storage)
	}
	if c.ReportInterval < 0 {
		return fmt.Errorf("TODO_REPORT_INTERVAL must not be negative")
	}
	return nil
}
