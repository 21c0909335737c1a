// Package bitmask wraps an integer bit field with flag operations and a
// stable serialized form, plus a Field type that names individual bits and
// round-trips them as flag-name lists.
package bitmask

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Mask is a 64-bit flag set. It serializes as its integer value, so hosts
// persist it like any other number. The zero value is the empty mask.
type Mask uint64

// Bit returns the mask with only bit i set. i must be in [0, 64).
func Bit(i int) Mask {
	if i < 0 || i >= 64 {
		panic("bitmask: bit index " + strconv.Itoa(i) + " out of range [0, 64)")
	}
	return 1 << i
}

// Of returns the union of the masks for the given bit indexes.
func Of(indexes ...int) Mask {
	var m Mask
	for _, i := range indexes {
		m |= Bit(i)
	}
	return m
}

// Set turns the given flags on.
func (m *Mask) Set(flags Mask) { *m |= flags }

// Clear turns the given flags off.
func (m *Mask) Clear(flags Mask) { *m &^= flags }

// Toggle flips the given flags.
func (m *Mask) Toggle(flags Mask) { *m ^= flags }

// Has reports whether all of the given flags are set.
func (m Mask) Has(flags Mask) bool { return m&flags == flags }

// Any reports whether at least one of the given flags is set.
func (m Mask) Any(flags Mask) bool { return m&flags != 0 }

// Count returns the number of set bits.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// IsEmpty reports whether no bits are set.
func (m Mask) IsEmpty() bool { return m == 0 }

// Bits returns the indexes of all set bits, ascending.
func (m Mask) Bits() []int {
	indexes := make([]int, 0, m.Count())
	for v := uint64(m); v != 0; {
		i := bits.TrailingZeros64(v)
		indexes = append(indexes, i)
		v &^= 1 << i
	}
	return indexes
}

// String renders the mask as a hex literal with the set bit indexes, for
// diagnostics.
func (m Mask) String() string {
	if m == 0 {
		return "0x0"
	}
	parts := make([]string, 0, m.Count())
	for _, i := range m.Bits() {
		parts = append(parts, strconv.Itoa(i))
	}
	return fmt.Sprintf("0x%x[%s]", uint64(m), strings.Join(parts, " "))
}
