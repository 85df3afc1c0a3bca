package serialization

import "errors"

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrGridTooLarge       = errors.New("grid dimensions exceed element limit")
	ErrDTypeMismatch      = errors.New("element type does not match file dtype")
	ErrDataSizeMismatch   = errors.New("data section size does not match dimensions")
)
