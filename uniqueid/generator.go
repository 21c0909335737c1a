// Package uniqueid issues unique string identifiers for host objects, with
// an optional registry that guarantees uniqueness across ids claimed from
// elsewhere (hand-written ids in persisted data, ids minted by other
// generators).
package uniqueid

import (
	"strings"

	"github.com/google/uuid"
)

// Generator mints string identifiers. Ids are UUIDv7-backed so they sort
// roughly by creation time. The zero value is a ready-to-use generator
// with no prefix.
type Generator struct {
	prefix string
	short  bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithPrefix prepends "prefix-" to every generated id.
func WithPrefix(prefix string) Option {
	return func(g *Generator) { g.prefix = prefix }
}

// WithShort truncates ids to the final UUID group (12 hex chars of random
// bits). Short ids are friendlier in editors but carry less entropy; pair
// them with a Registry when collisions matter.
func WithShort() Option {
	return func(g *Generator) { g.short = true }
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewID returns a freshly generated identifier.
func (g *Generator) NewID() string {
	id := uuid.Must(uuid.NewV7()).String()
	if g.short {
		groups := strings.Split(id, "-")
		id = groups[len(groups)-1]
	}
	if g.prefix != "" {
		id = g.prefix + "-" + id
	}
	return id
}
