package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/enginekit/containers/dict"
)

// YAML persists a record sequence as a YAML sequence of key/value mappings.
type YAML struct{}

func (YAML) Name() string      { return "yaml" }
func (YAML) Extension() string { return ".yaml" }

func (YAML) Encode(records []Record) ([]byte, error) {
	return EncodeYAML(records)
}

func (YAML) Decode(data []byte) ([]Record, error) {
	return DecodeYAML[string, any](data)
}

// EncodeYAML serializes any typed entry slice as a YAML sequence.
func EncodeYAML[K comparable, V any](entries []dict.Entry[K, V]) ([]byte, error) {
	if entries == nil {
		entries = []dict.Entry[K, V]{}
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return data, nil
}

// DecodeYAML parses a YAML sequence of key/value mappings into typed
// entries, skipping null elements.
func DecodeYAML[K comparable, V any](data []byte) ([]dict.Entry[K, V], error) {
	var loaded []*dict.Entry[K, V]
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return dropNil(loaded), nil
}
