package dict

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON serializes the dictionary as its record sequence: a JSON
// array of {key, value} objects in iteration order.
func (d *Dict[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.BeforeSave())
}

// UnmarshalJSON loads the dictionary from a JSON array of {key, value}
// objects. Null entries are skipped rather than failing, keeping loads
// resilient to partially-corrupt data. Duplicate keys are tolerated and
// collapse last-write-wins on the next read.
func (d *Dict[K, V]) UnmarshalJSON(data []byte) error {
	var loaded []*Entry[K, V]
	if err := json.Unmarshal(data, &loaded); err != nil {
		return err
	}
	d.AfterLoad(compact(loaded))
	return nil
}

// MarshalYAML serializes the dictionary as its record sequence, matching
// the JSON shape.
func (d *Dict[K, V]) MarshalYAML() (any, error) {
	return d.BeforeSave(), nil
}

// UnmarshalYAML loads the dictionary from a YAML sequence of key/value
// mappings, skipping null entries like UnmarshalJSON.
func (d *Dict[K, V]) UnmarshalYAML(node *yaml.Node) error {
	var loaded []*Entry[K, V]
	if err := node.Decode(&loaded); err != nil {
		return err
	}
	d.AfterLoad(compact(loaded))
	return nil
}

func compact[K comparable, V any](loaded []*Entry[K, V]) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(loaded))
	for _, e := range loaded {
		if e == nil {
			continue
		}
		entries = append(entries, *e)
	}
	return entries
}
