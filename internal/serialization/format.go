package serialization

import (
	"time"
)

// Format constants.
const (
	MagicBytes      = "GRD2"
	FormatVersion   = 1
	HeaderAlignment = 64               // Align element data to 64 bytes
	MaxHeaderSize   = 10 * 1024 * 1024 // 10MB - maximum header size
)

// Flags for the .grd2 format.
const (
	FlagHasMetadata uint32 = 1 << 0 // bit 0: custom metadata included
)

// Data type string constants for serialization.
const (
	DTypeUint8   = "uint8"
	DTypeUint16  = "uint16"
	DTypeUint32  = "uint32"
	DTypeUint64  = "uint64"
	DTypeInt8    = "int8"
	DTypeInt16   = "int16"
	DTypeInt32   = "int32"
	DTypeInt64   = "int64"
	DTypeFloat32 = "float32"
	DTypeFloat64 = "float64"
	DTypeBool    = "bool"
)

// Header represents the JSON header in a .grd2 file.
type Header struct {
	FormatVersion  int               `json:"format_version"` // Version of the .grd2 format
	Grid2DVersion  string            `json:"grid2d_version"` // Version of grid2d that created this file
	DType          string            `json:"dtype"`          // Element type (e.g., "float64")
	Width          int64             `json:"width"`          // Grid width
	Height         int64             `json:"height"`         // Grid height
	CreatedAt      time.Time         `json:"created_at"`     // When the file was created
	Checksum       string            `json:"checksum"`       // Hex SHA-256 of the data section
	Metadata       map[string]string `json:"metadata"`       // Custom metadata
}

// dtypeName returns the string tag for a DType element type.
// Panics for named types outside the built-in set.
func dtypeName[T DType]() string {
	var dummy T
	switch any(dummy).(type) {
	case uint8:
		return DTypeUint8
	case uint16:
		return DTypeUint16
	case uint32:
		return DTypeUint32
	case uint64:
		return DTypeUint64
	case int8:
		return DTypeInt8
	case int16:
		return DTypeInt16
	case int32:
		return DTypeInt32
	case int64:
		return DTypeInt64
	case float32:
		return DTypeFloat32
	case float64:
		return DTypeFloat64
	case bool:
		return DTypeBool
	default:
		panic("unsupported type")
	}
}

// dtypeSize returns the encoded byte size for a dtype string tag.
func dtypeSize(s string) (int, bool) {
	switch s {
	case DTypeUint8, DTypeInt8, DTypeBool:
		return 1, true
	case DTypeUint16, DTypeInt16:
		return 2, true
	case DTypeUint32, DTypeInt32, DTypeFloat32:
		return 4, true
	case DTypeUint64, DTypeInt64, DTypeFloat64:
		return 8, true
	default:
		return 0, false
	}
}
