package codec

import (
	"encoding/json"
	"fmt"

	"github.com/enginekit/containers/dict"
)

// JSON persists a record sequence as a JSON array of {key, value} objects.
type JSON struct{}

func (JSON) Name() string      { return "json" }
func (JSON) Extension() string { return ".json" }

func (JSON) Encode(records []Record) ([]byte, error) {
	return EncodeJSON(records)
}

func (JSON) Decode(data []byte) ([]Record, error) {
	return DecodeJSON[string, any](data)
}

// EncodeJSON serializes any typed entry slice as an indented JSON array.
func EncodeJSON[K comparable, V any](entries []dict.Entry[K, V]) ([]byte, error) {
	if entries == nil {
		entries = []dict.Entry[K, V]{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a JSON array of {key, value} objects into typed
// entries, skipping null elements.
func DecodeJSON[K comparable, V any](data []byte) ([]dict.Entry[K, V], error) {
	var loaded []*dict.Entry[K, V]
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return dropNil(loaded), nil
}

func dropNil[K comparable, V any](loaded []*dict.Entry[K, V]) []dict.Entry[K, V] {
	entries := make([]dict.Entry[K, V], 0, len(loaded))
	for _, e := range loaded {
		if e == nil {
			continue
		}
		entries = append(entries, *e)
	}
	return entries
}
