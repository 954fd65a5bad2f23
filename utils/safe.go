package utils

import (
	"errors"
	"math"
)

// Limits applied when deserializing untrusted key or ciphertext bytes.
const (
	// MaxMatrixElements is the maximum allowed number of elements in a
	// deserialized matrix.
	MaxMatrixElements = 1 << 20

	// MaxBlockCount is the maximum allowed number of blocks L.
	MaxBlockCount = 1 << 16
)

var (
	// ErrInvalidLength indicates an invalid length value.
	ErrInvalidLength = errors.New("invalid length")

	// ErrExceedsLimit indicates a value exceeds the allowed limit.
	ErrExceedsLimit = errors.New("value exceeds allowed limit")
)

// SafeReadLength reads a uint32 length from data at offset, validates it
// against maxAllowed, and returns the value with the advanced offset.
func SafeReadLength(data []byte, offset, maxAllowed int) (length int, newOffset int, err error) {
	if offset < 0 || offset+4 > len(data) {
		return 0, offset, errors.New("truncated length field")
	}
	raw := uint32(data[offset]) | uint32(data[offset+1])<<8 | uint32(data[offset+2])<<16 | uint32(data[offset+3])<<24
	if raw > uint32(maxAllowed) || (maxAllowed > math.MaxInt32 && int(raw) < 0) {
		return 0, offset, ErrExceedsLimit
	}
	return int(raw), offset + 4, nil
}

// ValidateSliceAccess checks that accessing data[offset:offset+size] is safe.
func ValidateSliceAccess(data []byte, offset, size int) error {
	if offset < 0 || size < 0 {
		return ErrInvalidLength
	}
	if offset+size < offset {
		return errors.New("integer overflow")
	}
	if offset+size > len(data) {
		return errors.New("slice access out of bounds")
	}
	return nil
}
