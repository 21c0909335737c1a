package dict

import "slices"

// Sequence is the backing-storage capability set a Dict needs from its
// record sequence. The default slice-backed implementation suits most
// callers; hosts with their own serializable list types implement Sequence
// to let a Dict ride on top of them.
//
// Index arguments must be in [0, Len()). Implementations are not expected
// to be safe for concurrent use.
type Sequence[K comparable, V any] interface {
	// Len returns the number of entries, including duplicates.
	Len() int
	// Key returns the key at position i.
	Key(i int) K
	// Value returns the value at position i.
	Value(i int) V
	// SetValue overwrites the value at position i, leaving the key and
	// position untouched.
	SetValue(i int, value V)
	// Append adds an entry at the end.
	Append(key K, value V)
	// RemoveAt deletes the entry at position i, shifting later entries back.
	RemoveAt(i int)
	// Clear removes all entries.
	Clear()
	// Entries returns a copy of the sequence in order.
	Entries() []Entry[K, V]
	// Replace swaps the whole sequence for the given entries.
	Replace(entries []Entry[K, V])
}

type sliceSequence[K comparable, V any] struct {
	entries []Entry[K, V]
}

// NewSliceSequence returns the default slice-backed Sequence.
func NewSliceSequence[K comparable, V any]() Sequence[K, V] {
	return &sliceSequence[K, V]{}
}

func (s *sliceSequence[K, V]) Len() int {
	return len(s.entries)
}

func (s *sliceSequence[K, V]) Key(i int) K {
	return s.entries[i].Key
}

func (s *sliceSequence[K, V]) Value(i int) V {
	return s.entries[i].Value
}

func (s *sliceSequence[K, V]) SetValue(i int, value V) {
	s.entries[i].Value = value
}

func (s *sliceSequence[K, V]) Append(key K, value V) {
	s.entries = append(s.entries, Entry[K, V]{Key: key, Value: value})
}

func (s *sliceSequence[K, V]) RemoveAt(i int) {
	s.entries = slices.Delete(s.entries, i, i+1)
}

func (s *sliceSequence[K, V]) Clear() {
	s.entries = nil
}

func (s *sliceSequence[K, V]) Entries() []Entry[K, V] {
	return slices.Clone(s.entries)
}

func (s *sliceSequence[K, V]) Replace(entries []Entry[K, V]) {
	s.entries = slices.Clone(entries)
}
