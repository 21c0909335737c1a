// Package codec serializes record sequences — ordered lists of key-value
// entries — to bytes and back. It is the boundary between the containers in
// this module and whatever a host actually persists: dictionaries hand
// their entries to a Codec before saving and receive decoded entries after
// loading.
//
// Decoders tolerate null records in persisted input by skipping them, so a
// load survives partially-corrupt data. Malformed non-null records still
// fail.
package codec

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/enginekit/containers/dict"
)

// Record is a string-keyed entry with a free-form value, the shape stores
// and tools exchange. Typed callers use the generic Encode/Decode helpers
// instead.
type Record = dict.Entry[string, any]

// Codec encodes and decodes a record sequence.
type Codec interface {
	// Name identifies the codec ("json", "yaml", "pb").
	Name() string
	// Extension returns the file extension including the dot.
	Extension() string
	// Encode serializes the records in order.
	Encode(records []Record) ([]byte, error)
	// Decode parses records, skipping null entries.
	Decode(data []byte) ([]Record, error)
}

var codecs = map[string]Codec{
	JSON{}.Name(): JSON{},
	YAML{}.Name(): YAML{},
	Proto{}.Name(): Proto{},
}

// Lookup returns the codec with the given name.
func Lookup(name string) (Codec, bool) {
	c, ok := codecs[strings.ToLower(name)]
	return c, ok
}

// ByExtension returns the codec matching the path's file extension.
func ByExtension(path string) (Codec, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range codecs {
		if c.Extension() == ext {
			return c, true
		}
	}
	return nil, false
}

// Names returns all registered codec names, sorted.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
