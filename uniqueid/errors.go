package uniqueid

import "errors"

// Sentinel errors for the id registry.
var (
	ErrEmptyID = errors.New("id is empty")
	ErrIDTaken = errors.New("id already taken")
)
