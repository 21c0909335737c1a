// Package dict provides a list-backed associative container for hosts whose
// persistence layer can only serialize ordered sequences of plain records.
// A Dict keeps an ordered record Sequence (the persisted form) in sync with
// a derived hash index (never persisted) so lookups stay O(1) average while
// the externally visible representation remains a plain entry list.
package dict

import "fmt"

// Dict is an ordered dictionary backed by a record Sequence. Iteration
// follows insertion order; Set on an existing key updates the value in
// place without moving the entry.
//
// The lookup index is rebuilt lazily: it is considered stale when it has
// never been built or when its cardinality disagrees with the sequence
// length, and any read reconciles the two before answering. Duplicate keys
// can only enter through AfterLoad (an external loader bypassing Add/Set);
// the next rebuild collapses them last-write-wins, keeping the first
// occurrence's position.
//
// A Dict is not safe for concurrent use; callers serialize access.
// The zero value is an empty dictionary ready to use.
type Dict[K comparable, V any] struct {
	seq   Sequence[K, V]
	index map[K]V
	pos   map[K]int
	built bool
}

// New creates an empty Dict backed by the default slice sequence.
func New[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{seq: NewSliceSequence[K, V]()}
}

// NewWithSequence creates an empty Dict on top of the given backing
// sequence. Any entries already in seq are adopted as loaded records.
func NewWithSequence[K comparable, V any](seq Sequence[K, V]) *Dict[K, V] {
	return &Dict[K, V]{seq: seq}
}

// FromEntries creates a Dict holding the given entries, duplicates and all,
// as if they had been loaded from persisted form.
func FromEntries[K comparable, V any](entries []Entry[K, V]) *Dict[K, V] {
	d := New[K, V]()
	d.AfterLoad(entries)
	return d
}

func (d *Dict[K, V]) sequence() Sequence[K, V] {
	if d.seq == nil {
		d.seq = NewSliceSequence[K, V]()
	}
	return d.seq
}

func (d *Dict[K, V]) stale() bool {
	return !d.built || len(d.index) != d.sequence().Len()
}

// rebuild reconciles the index with the sequence in one pass, later
// occurrences of a key overwriting earlier ones. When duplicates are found
// the sequence is compacted to match: the first occurrence keeps its
// position and takes the surviving value.
func (d *Dict[K, V]) rebuild() {
	seq := d.sequence()
	n := seq.Len()

	d.index = make(map[K]V, n)
	d.pos = make(map[K]int, n)

	order := make([]K, 0, n)
	for i := 0; i < n; i++ {
		k := seq.Key(i)
		if _, seen := d.index[k]; !seen {
			order = append(order, k)
		}
		d.index[k] = seq.Value(i)
	}

	if len(order) != n {
		compacted := make([]Entry[K, V], len(order))
		for i, k := range order {
			compacted[i] = Entry[K, V]{Key: k, Value: d.index[k]}
		}
		seq.Replace(compacted)
	}

	for i, k := range order {
		d.pos[k] = i
	}
	d.built = true
}

func (d *Dict[K, V]) sync() {
	if d.stale() {
		d.rebuild()
	}
}

// Get returns the value for key, or ErrKeyNotFound if absent.
func (d *Dict[K, V]) Get(key K) (V, error) {
	d.sync()
	v, ok := d.index[key]
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// Lookup returns the value for key and whether it was present. Absent keys
// yield the zero value and false; Lookup never fails.
func (d *Dict[K, V]) Lookup(key K) (V, bool) {
	d.sync()
	v, ok := d.index[key]
	return v, ok
}

// GetOr returns the value for key, or fallback if absent.
func (d *Dict[K, V]) GetOr(key K, fallback V) V {
	if v, ok := d.Lookup(key); ok {
		return v
	}
	return fallback
}

// Has reports whether key is present.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.Lookup(key)
	return ok
}

// Set updates the value for key in place when present, preserving its
// sequence position, and appends a new entry otherwise.
func (d *Dict[K, V]) Set(key K, value V) {
	d.sync()
	if i, ok := d.pos[key]; ok {
		d.sequence().SetValue(i, value)
		d.index[key] = value
		return
	}
	d.append(key, value)
}

// Add appends a new entry, failing with ErrDuplicateKey when the key is
// already present. Set is the non-failing alternative.
func (d *Dict[K, V]) Add(key K, value V) error {
	d.sync()
	if _, ok := d.index[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	d.append(key, value)
	return nil
}

func (d *Dict[K, V]) append(key K, value V) {
	seq := d.sequence()
	d.pos[key] = seq.Len()
	seq.Append(key, value)
	d.index[key] = value
}

// Remove deletes the entry for key, preserving the order of the remaining
// entries, and reports whether a removal occurred. Removing an absent key
// is a no-op returning false.
func (d *Dict[K, V]) Remove(key K) bool {
	d.sync()
	i, ok := d.pos[key]
	if !ok {
		return false
	}

	seq := d.sequence()
	seq.RemoveAt(i)
	delete(d.index, key)
	delete(d.pos, key)
	for j := i; j < seq.Len(); j++ {
		d.pos[seq.Key(j)] = j
	}
	return true
}

// Clear empties both the sequence and the index.
func (d *Dict[K, V]) Clear() {
	d.sequence().Clear()
	d.index = make(map[K]V)
	d.pos = make(map[K]int)
	d.built = true
}

// Len returns the number of distinct keys.
func (d *Dict[K, V]) Len() int {
	d.sync()
	return len(d.index)
}

// Keys returns all keys in sequence order.
func (d *Dict[K, V]) Keys() []K {
	d.sync()
	seq := d.sequence()
	keys := make([]K, seq.Len())
	for i := range keys {
		keys[i] = seq.Key(i)
	}
	return keys
}

// Values returns all values in sequence order.
func (d *Dict[K, V]) Values() []V {
	d.sync()
	seq := d.sequence()
	values := make([]V, seq.Len())
	for i := range values {
		values[i] = seq.Value(i)
	}
	return values
}

// Entries returns a copy of the record sequence in order.
func (d *Dict[K, V]) Entries() []Entry[K, V] {
	d.sync()
	return d.sequence().Entries()
}

// All iterates entries in sequence order. Mutating the Dict during
// iteration is not supported.
func (d *Dict[K, V]) All(yield func(K, V) bool) {
	d.sync()
	seq := d.sequence()
	for i := 0; i < seq.Len(); i++ {
		if !yield(seq.Key(i), seq.Value(i)) {
			return
		}
	}
}

// BeforeSave reconciles both representations and returns the entries to
// persist. The owning context calls it immediately before handing the
// record sequence to the host serializer.
func (d *Dict[K, V]) BeforeSave() []Entry[K, V] {
	return d.Entries()
}

// AfterLoad installs a sequence produced by an external loader, duplicates
// and all, and marks the index stale so the next read rebuilds it. The
// owning context calls it immediately after deserialization, before first
// use.
func (d *Dict[K, V]) AfterLoad(entries []Entry[K, V]) {
	d.sequence().Replace(entries)
	d.built = false
}
