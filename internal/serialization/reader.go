package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/grid2d-go/grid2d/internal/grid"
)

// Reader reads .grd2 files. It parses and validates the header on
// open; element data is read on demand.
type Reader struct {
	file       *os.File
	header     Header
	flags      uint32
	dataOffset int64 // Offset where element data starts
	dataSize   int64 // Size of the data section
	closed     bool
}

// NewReader opens a .grd2 file and parses its header.
func NewReader(path string) (*Reader, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for grid loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := &Reader{file: file}
	if err := r.parseHeader(); err != nil {
		_ = file.Close() // Best effort close on error
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	fileInfo, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	r.dataSize = fileInfo.Size() - r.dataOffset

	if err := r.validate(); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return r, nil
}

// parseHeader reads and parses the .grd2 file header.
func (r *Reader) parseHeader() error {
	// Read magic bytes
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r.file, magic); err != nil {
		return fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return ErrInvalidMagic
	}

	// Read version
	var version uint32
	if err := binary.Read(r.file, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("failed to read version: %w", err)
	}
	if version != FormatVersion {
		return fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	// Read flags
	if err := binary.Read(r.file, binary.LittleEndian, &r.flags); err != nil {
		return fmt.Errorf("failed to read flags: %w", err)
	}

	// Read header size
	var headerSize uint64
	if err := binary.Read(r.file, binary.LittleEndian, &headerSize); err != nil {
		return fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	// Read header JSON
	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r.file, headerBytes); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	if err := json.Unmarshal(headerBytes, &r.header); err != nil {
		return fmt.Errorf("failed to parse header JSON: %w", err)
	}

	// Calculate data offset (with alignment padding)
	currentPos := int64(4+4+4+8) + int64(headerSize)
	padding := (HeaderAlignment - (currentPos % HeaderAlignment)) % HeaderAlignment
	r.dataOffset = currentPos + padding

	return nil
}

// validate cross-checks the parsed header against the data section.
func (r *Reader) validate() error {
	h := r.header
	if h.Width < 0 || h.Height < 0 {
		return fmt.Errorf("negative dimensions (%d, %d)", h.Width, h.Height)
	}
	if err := checkDims(uint64(h.Width), uint64(h.Height)); err != nil {
		return err
	}

	size, ok := dtypeSize(h.DType)
	if !ok {
		return fmt.Errorf("unsupported dtype: %s", h.DType)
	}

	expected := h.Width * h.Height * int64(size)
	if r.dataSize != expected {
		return fmt.Errorf("%w: data section is %d bytes, dimensions (%d, %d) of %s require %d",
			ErrDataSizeMismatch, r.dataSize, h.Width, h.Height, h.DType, expected)
	}

	return nil
}

// Header returns the file header.
func (r *Reader) Header() Header {
	return r.header
}

// Metadata returns the metadata map from the header.
func (r *Reader) Metadata() map[string]string {
	return r.header.Metadata
}

// Width returns the stored grid width.
func (r *Reader) Width() int {
	return int(r.header.Width)
}

// Height returns the stored grid height.
func (r *Reader) Height() int {
	return int(r.header.Height)
}

// ReadData reads the raw element data section and verifies its
// checksum against the header.
func (r *Reader) ReadData() ([]byte, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}

	if _, err := r.file.Seek(r.dataOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to data: %w", err)
	}

	data := make([]byte, r.dataSize)
	if _, err := io.ReadFull(r.file, data); err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	if err := ValidateChecksum(data, r.header.Checksum); err != nil {
		return nil, err
	}

	return data, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}

// Load reads a grid of element type T from a .grd2 file at path.
// The file's dtype must match T exactly; a mismatch is reported as
// ErrDTypeMismatch rather than reinterpreting the data.
func Load[T DType](path string) (g *grid.Grid[T], err error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if want := dtypeName[T](); r.header.DType != want {
		return nil, fmt.Errorf("%w: file holds %s, requested %s", ErrDTypeMismatch, r.header.DType, want)
	}

	raw, err := r.ReadData()
	if err != nil {
		return nil, err
	}

	w, h := r.Width(), r.Height()
	data := make([]T, w*h)
	elem := Binary[T]()
	buf := bytes.NewReader(raw)
	for i := range data {
		v, err := elem.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to decode element %d: %w", i, err)
		}
		data[i] = v
	}

	return grid.FromSlice(data, w, h)
}
