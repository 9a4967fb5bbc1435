package cliparse

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabasePGX      = "pgx"
)

const defaultSQLitePath = "delegates.db"

type Config struct {
	Port          int    `env:"PORT" envDefault:"3318"`
	DatabaseURL   string `env:"DATABASE_URL"`
	DatabaseType  string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	StateData     string `env:"STATE_DATA"`
	EditKeySalt   string `env:"EDIT_KEY_SALT"`
	ShareSlugSalt string `env:"SHARE_SLUG_SALT"`
}

// ParseFlags reads the environment first, then lets flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	fs := flag.NewFlagSet("delegate-tracker", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite, postgres or pgx)")
	fs.StringVar(&cfg.StateData, "data", cfg.StateData, "State dataset directory or URL (empty for bundled data)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.EditKeySalt, "edit-salt", cfg.EditKeySalt, "Scenario edit key salt (prefer env)")
	fs.StringVar(&cfg.ShareSlugSalt, "slug-salt", cfg.ShareSlugSalt, "Scenario share slug salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	switch cfg.DatabaseType {
	case DatabaseSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = defaultSQLitePath
		}
	case DatabasePostgres, DatabasePGX:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.EditKeySalt == "" {
		return Config{}, errors.New("EDIT_KEY_SALT required")
	}
	if cfg.ShareSlugSalt == "" {
		return Config{}, errors.New("SHARE_SLUG_SALT required")
	}

	return cfg, nil
}
