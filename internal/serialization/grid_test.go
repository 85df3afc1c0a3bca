package serialization

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grid2d-go/grid2d/internal/grid"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := grid.New(3, 2, int32(0))
	for p, v := range g.Pointers() {
		*v = int32(p.X*100 + p.Y)
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, g, Binary[int32]()))

	got, err := Decode(&buf, Binary[int32]())
	require.NoError(t, err)

	assert.Equal(t, 3, got.Width())
	assert.Equal(t, 2, got.Height())
	assert.Empty(t, cmp.Diff(g.Data(), got.Data()))
}

func TestEncodeDecodeFloat64(t *testing.T) {
	g := grid.New(4, 3, 0.0)
	for p, v := range g.Pointers() {
		*v = float64(p.X) + float64(p.Y)/10
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, g, Binary[float64]()))

	got, err := Decode(&buf, Binary[float64]())
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(g.Data(), got.Data()))
}

func TestEncodeWireLayout(t *testing.T) {
	g := grid.New(3, 2, uint8(0))
	// Distinct values so the element order is visible on the wire.
	for p, v := range g.Pointers() {
		*v = uint8(p.X*10 + p.Y)
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, g, Binary[uint8]()))

	want := []byte{
		3, 0, 0, 0, 0, 0, 0, 0, // width as uint64 LE
		2, 0, 0, 0, 0, 0, 0, 0, // height as uint64 LE
		0, 1, 10, 11, 20, 21, // elements in x-major order
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestEncodeDecodeEmpty(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"zero by zero", 0, 0},
		{"zero width", 0, 5},
		{"zero height", 5, 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.New(tt.w, tt.h, int64(0))

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, g, Binary[int64]()))
			assert.Equal(t, 16, buf.Len(), "empty grid should encode as dimensions only")

			got, err := Decode(&buf, Binary[int64]())
			require.NoError(t, err)
			assert.Equal(t, tt.w, got.Width())
			assert.Equal(t, tt.h, got.Height())
		})
	}
}

func TestDecodeShortStream(t *testing.T) {
	g := grid.New(3, 2, uint32(7))
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, g, Binary[uint32]()))

	// Truncate mid-element: decoding must fail, not return a partial grid.
	truncated := buf.Bytes()[:buf.Len()-2]
	got, err := Decode(bytes.NewReader(truncated), Binary[uint32]())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecodeEmptyStream(t *testing.T) {
	got, err := Decode(bytes.NewReader(nil), Binary[uint32]())
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestDecodeHostileDimensions(t *testing.T) {
	var buf bytes.Buffer
	g := grid.New(0, 0, uint8(0))
	require.NoError(t, Encode(&buf, g, Binary[uint8]()))

	// Rewrite the width prefix to an absurd value.
	raw := buf.Bytes()
	raw[7] = 0x40 // width = 1 << 62
	raw[8] = 0x01 // height = 1

	got, err := Decode(bytes.NewReader(raw), Binary[uint8]())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrGridTooLarge)
}

// errWriter fails after n successful writes.
type errWriter struct {
	n int
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errors.New("sink full")
	}
	w.n--
	return len(p), nil
}

func TestEncodeWriteFailurePropagates(t *testing.T) {
	g := grid.New(3, 2, uint8(1))

	// Fail on the width prefix, then once mid-element stream.
	err := Encode(&errWriter{n: 0}, g, Binary[uint8]())
	assert.ErrorContains(t, err, "failed to write width")

	err = Encode(&errWriter{n: 3}, g, Binary[uint8]())
	assert.ErrorContains(t, err, "failed to write element")
}

func TestGridCodecNesting(t *testing.T) {
	inner := GridCodec[int16]{Elem: Binary[int16]()}

	outer := grid.New(2, 2, (*grid.Grid[int16])(nil))
	for p, v := range outer.Pointers() {
		cell := grid.New(2, 1, int16(0))
		cell.Set(0, 0, int16(p.X))
		cell.Set(1, 0, int16(p.Y))
		*v = cell
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, outer, inner))

	got, err := Decode(&buf, inner)
	require.NoError(t, err)
	require.Equal(t, 2, got.Width())
	require.Equal(t, 2, got.Height())

	for p, cell := range got.All() {
		require.NotNil(t, cell)
		assert.Equal(t, int16(p.X), cell.At(0, 0))
		assert.Equal(t, int16(p.Y), cell.At(1, 0))
	}
}

func TestBinaryBoolRoundTrip(t *testing.T) {
	g := grid.New(2, 2, false)
	g.Set(0, 1, true)
	g.Set(1, 0, true)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, g, Binary[bool]()))

	got, err := Decode(&buf, Binary[bool]())
	require.NoError(t, err)
	assert.True(t, grid.Equal(g, got))
}
