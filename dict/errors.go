package dict

import "errors"

// Sentinel errors for dictionary operations.
var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrDuplicateKey = errors.New("duplicate key")
)
