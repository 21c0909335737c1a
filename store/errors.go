package store

import "errors"

// Sentinel errors for store operations.
var (
	ErrNotFound      = errors.New("sequence not found")
	ErrLoadFailed    = errors.New("load failed")
	ErrSaveFailed    = errors.New("save failed")
	ErrUnknownFormat = errors.New("unknown format")
)
