package dict

// Entry is one key-value association in a record sequence. Entries are the
// persisted form of a Dict: hosts that can only serialize ordered sequences
// of plain records store a Dict as its entry slice.
type Entry[K comparable, V any] struct {
	Key   K `json:"key" yaml:"key"`
	Value V `json:"value" yaml:"value"`
}
