package configs

import "strings"

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Store selects the event store backing the planner. Driver is "postgres"
// (default) or "memory"; the memory store is lost on restart and is meant
// for demos and local runs. Seed loads the demo calendar on startup.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	Seed   bool   `env:"SEED" envDefault:"false"`
}

// NormalizedDriver returns the lower-cased driver name. Unknown names fall
// back to postgres.
func (c Store) NormalizedDriver() string {
	switch strings.ToLower(strings.TrimSpace(c.Driver)) {
	case StoreDriverMemory:
		return StoreDriverMemory
	default:
		return StoreDriverPostgres
	}
}
