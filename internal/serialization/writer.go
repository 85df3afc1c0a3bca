package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/grid2d-go/grid2d/internal/grid"
)

const grid2dVersion = "0.1.0" // Current grid2d version

// Save writes g to path in .grd2 format.
//
// The element data is encoded with the built-in little-endian codec
// and checksummed with SHA-256; the checksum is stored in the JSON
// header so Load can detect corruption. metadata may be nil.
func Save[T DType](path string, g *grid.Grid[T], metadata map[string]string) (err error) {
	// Encode the data section up front to compute its checksum.
	var data bytes.Buffer
	data.Grow(g.Len())
	elem := Binary[T]()
	for i, v := range g.Data() {
		if err := elem.Write(&data, v); err != nil {
			return fmt.Errorf("failed to encode element %d: %w", i, err)
		}
	}

	if metadata == nil {
		metadata = make(map[string]string)
	}

	header := Header{
		FormatVersion: FormatVersion,
		Grid2DVersion: grid2dVersion,
		DType:         dtypeName[T](),
		Width:         int64(g.Width()),
		Height:        int64(g.Height()),
		CreatedAt:     time.Now().UTC(),
		Checksum:      ChecksumHex(data.Bytes()),
		Metadata:      metadata,
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	//nolint:gosec // G304: File path comes from user input, which is expected for grid saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	// Write magic bytes
	if _, err := file.WriteString(MagicBytes); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}

	// Write version
	if err := binary.Write(file, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}

	// Write flags
	flags := uint32(0)
	if len(metadata) > 0 {
		flags |= FlagHasMetadata
	}
	if err := binary.Write(file, binary.LittleEndian, flags); err != nil {
		return fmt.Errorf("failed to write flags: %w", err)
	}

	// Write header size
	headerSize := uint64(len(headerJSON))
	if err := binary.Write(file, binary.LittleEndian, headerSize); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}

	// Write header JSON
	if _, err := file.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// Pad to alignment
	currentPos := int64(4+4+4+8) + int64(headerSize)
	padding := (HeaderAlignment - (currentPos % HeaderAlignment)) % HeaderAlignment
	if padding > 0 {
		if _, err := file.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	// Write element data
	if _, err := file.Write(data.Bytes()); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	return nil
}
