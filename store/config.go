package store

import (
	"fmt"

	"github.com/enginekit/containers/codec"
)

// Config holds store initialization parameters.
type Config struct {
	Path   string `json:"path,omitempty"`   // FileStore root directory; empty disables persistence.
	Format string `json:"format,omitempty"` // Codec name; defaults to json.
}

// DefaultConfig returns the default store configuration (disabled, JSON).
func DefaultConfig() Config {
	return Config{Format: codec.JSON{}.Name()}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Path != "" {
		c.Path = source.Path
	}
	if source.Format != "" {
		c.Format = source.Format
	}
}

// NewStore creates a Store from configuration. Returns nil Store when Path
// is empty, indicating persistence is disabled.
func NewStore(cfg *Config) (Store, error) {
	if cfg.Path == "" {
		return nil, nil
	}

	format := cfg.Format
	if format == "" {
		format = codec.JSON{}.Name()
	}
	c, ok := codec.Lookup(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return NewFileStore(cfg.Path, c), nil
}
