package bitmask

import "errors"

// Sentinel errors for named flag fields.
var (
	ErrUnknownFlag   = errors.New("unknown flag")
	ErrDuplicateFlag = errors.New("duplicate flag name")
	ErrTooManyFlags  = errors.New("more than 64 flags")
)
