// Package store persists named record sequences through a codec. It is the
// owning-context side of the save/load lifecycle: Save runs the
// dictionary's before-save hook, Load feeds decoded records to the
// after-load hook.
package store

import (
	"context"

	"github.com/enginekit/containers/codec"
	"github.com/enginekit/containers/dict"
)

// Store persists record sequences by name. Implementations are stateless;
// they perform I/O on each call without caching.
type Store interface {
	// List returns the names of all persisted sequences.
	List(ctx context.Context) ([]string, error)
	// Load retrieves and decodes the sequence with the given name.
	Load(ctx context.Context, name string) ([]codec.Record, error)
	// Save encodes and persists the sequence, creating or overwriting.
	Save(ctx context.Context, name string, records []codec.Record) error
	// Delete removes the sequence. Missing names are ignored.
	Delete(ctx context.Context, name string) error
}

// SaveDict persists a dictionary under name, reconciling its
// representations first via BeforeSave.
func SaveDict(ctx context.Context, s Store, name string, d *dict.Dict[string, any]) error {
	return s.Save(ctx, name, d.BeforeSave())
}

// LoadDict loads a persisted dictionary by name. The returned dictionary
// has been through AfterLoad; its index is rebuilt on first read.
func LoadDict(ctx context.Context, s Store, name string) (*dict.Dict[string, any], error) {
	records, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	d := dict.New[string, any]()
	d.AfterLoad(records)
	return d, nil
}
