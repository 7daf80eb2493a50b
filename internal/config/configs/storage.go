package configs

import (
	"fmt"
	"strings"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Storage selects where campaigns and anonymous groups live. "memory"
// keeps everything in process; "postgres" uses the Psql section.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
	// Seed creates demo campaigns on startup when none exist.
	Seed bool `env:"SEED" envDefault:"false"`
}

// Kind returns the normalised driver name or an error for unknown drivers.
func (c Storage) Kind() (string, error) {
	switch d := strings.ToLower(strings.TrimSpace(c.Driver)); d {
	case StorageMemory, StoragePostgres:
		return d, nil
	default:
		return "", fmt.Errorf("unknown storage driver %q", c.Driver)
	}
}
