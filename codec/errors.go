package codec

import "errors"

// Sentinel errors for encode/decode failures.
var (
	ErrMalformed        = errors.New("malformed record sequence")
	ErrUnsupportedValue = errors.New("unsupported value type")
)
