// Package store holds the local key-value backends the journal persists to.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Keys of the three independent entries the journal keeps.
const (
	KeyDays     = "calendarTrackerData"
	KeyTasks    = "calendarTrackerTasks"
	KeyWellness = "calendarTrackerWellness"
)

// ErrNotFound is returned by Read when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// KV is a string-keyed store of opaque values. Writes overwrite the whole
// value; there is no compare-and-swap.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Keys(ctx context.Context) []string
	Close() error
}

// Watcher is implemented by backends that can report writes made by other
// processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Backend names accepted by Open.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open creates the KV selected by cfg. A nil cfg loads the default config.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		fc, err := LoadConfig("")
		if err != nil {
			return nil, err
		}
		cfg = fc
	}

	switch b := cfg.Backend(); b {
	case "", BackendDiskv:
		return OpenDiskv(cfg.BasePath())
	case BackendSQLite:
		return OpenSQLite(cfg.BasePath())
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", b)
	}
}
