package bitmask

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/enginekit/containers/dict"
)

// Field couples a Mask with an ordered table of flag names, assigning one
// bit per name in declaration order. It serializes as the list of set flag
// names, which survives reordering of the mask's raw bits across versions
// as long as the names stay stable.
//
// Like the containers it is built on, a Field is not safe for concurrent
// mutation.
type Field struct {
	mask  Mask
	names *dict.Dict[string, Mask]
}

// NewField declares a flag table with one bit per name, in order.
// Fails with ErrDuplicateFlag on repeated names and ErrTooManyFlags past 64.
func NewField(names ...string) (*Field, error) {
	if len(names) > 64 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyFlags, len(names))
	}

	table := dict.New[string, Mask]()
	for i, name := range names {
		if err := table.Add(name, Bit(i)); err != nil {
			if errors.Is(err, dict.ErrDuplicateKey) {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateFlag, name)
			}
			return nil, err
		}
	}
	return &Field{names: table}, nil
}

func (f *Field) flag(name string) (Mask, error) {
	m, ok := f.names.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownFlag, name)
	}
	return m, nil
}

// Set turns the named flag on. Fails with ErrUnknownFlag for undeclared
// names.
func (f *Field) Set(name string) error {
	m, err := f.flag(name)
	if err != nil {
		return err
	}
	f.mask.Set(m)
	return nil
}

// Clear turns the named flag off.
func (f *Field) Clear(name string) error {
	m, err := f.flag(name)
	if err != nil {
		return err
	}
	f.mask.Clear(m)
	return nil
}

// Has reports whether the named flag is set. Undeclared names are false.
func (f *Field) Has(name string) bool {
	m, err := f.flag(name)
	return err == nil && f.mask.Has(m)
}

// Mask returns the raw mask value.
func (f *Field) Mask() Mask { return f.mask }

// Names returns the set flag names in declaration order.
func (f *Field) Names() []string {
	var set []string
	for name, m := range f.names.All {
		if f.mask.Has(m) {
			set = append(set, name)
		}
	}
	return set
}

// Declared returns every flag name in declaration order, set or not.
func (f *Field) Declared() []string {
	return f.names.Keys()
}

// MarshalJSON serializes the field as the JSON array of set flag names.
func (f *Field) MarshalJSON() ([]byte, error) {
	names := f.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

// UnmarshalJSON resets the mask and sets each named flag from a JSON array
// of names. Unknown names fail with ErrUnknownFlag; the mask is left
// unchanged on error.
func (f *Field) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	var mask Mask
	for _, name := range names {
		m, err := f.flag(name)
		if err != nil {
			return err
		}
		mask.Set(m)
	}
	f.mask = mask
	return nil
}
