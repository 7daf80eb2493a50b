package config

import (
	"github.com/caarlos0/env/v11"

	"anonvote/internal/config/configs"
)

// Config aggregates all configuration sections. Fields are populated from
// environment variables with caarlos0/env; each nested section has its own
// prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP is populated from HTTP_* variables.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log is populated from LOG_* variables.
	Log configs.Logger `envPrefix:"LOG_"`

	// Storage is populated from STORAGE_* variables.
	Storage configs.Storage `envPrefix:"STORAGE_"`

	// Psql is populated from PSQL_* variables. Only read when the storage
	// driver is postgres.
	Psql configs.Postgres `envPrefix:"PSQL_"`
}

// Load reads configuration from the environment, applying defaults for
// unset variables, and validates the storage driver.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if _, err := cfg.Storage.Kind(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
