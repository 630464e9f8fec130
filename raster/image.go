package raster

import (
	"fmt"

	"github.com/cwbudde/algo-raster/core"
)

// RGB is the channel count of images produced by FromImage.
const RGB = 3

// Image is a rows × cols raster with Channels interleaved 8-bit samples per
// pixel. Pix holds the samples row-major; the sample for channel c of the
// pixel at (i, j) lives at Pix[(i*Cols+j)*Channels+c].
type Image struct {
	Rows     int
	Cols     int
	Channels int
	Pix      []uint8
}

// New returns a zero-filled image with the given shape.
func New(rows, cols, channels int) (*Image, error) {
	if err := validateDimensions(rows, cols, channels); err != nil {
		return nil, err
	}
	return &Image{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Pix:      make([]uint8, rows*cols*channels),
	}, nil
}

// FromPix wraps pix without copying. Mutations to pix are visible through
// the Image and vice versa.
func FromPix(rows, cols, channels int, pix []uint8) (*Image, error) {
	if err := validateDimensions(rows, cols, channels); err != nil {
		return nil, err
	}
	if want := rows * cols * channels; len(pix) != want {
		return nil, fmt.Errorf("%w: pix has %d samples, want %d", ErrDimensionMismatch, len(pix), want)
	}
	return &Image{Rows: rows, Cols: cols, Channels: channels, Pix: pix}, nil
}

// Validate reports whether m is a well-formed image.
func (m *Image) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidDimensions)
	}
	if err := validateDimensions(m.Rows, m.Cols, m.Channels); err != nil {
		return err
	}
	if want := m.Rows * m.Cols * m.Channels; len(m.Pix) != want {
		return fmt.Errorf("%w: pix has %d samples, want %d", ErrDimensionMismatch, len(m.Pix), want)
	}
	return nil
}

// Offset returns the index in Pix of channel 0 of the pixel at (i, j).
func (m *Image) Offset(i, j int) int {
	return (i*m.Cols + j) * m.Channels
}

// At returns channel c of the pixel at (i, j). The coordinates must be in bounds.
func (m *Image) At(i, j, c int) uint8 {
	return m.Pix[m.Offset(i, j)+c]
}

// Set writes channel c of the pixel at (i, j). The coordinates must be in bounds.
func (m *Image) Set(i, j, c int, v uint8) {
	m.Pix[m.Offset(i, j)+c] = v
}

// Resolve maps a possibly out-of-bounds coordinate to the nearest in-bounds
// one by clamping each axis independently.
func (m *Image) Resolve(i, j int) (int, int) {
	return core.ClampIndex(i, m.Rows), core.ClampIndex(j, m.Cols)
}

// Sample returns channel c at (i, j) with edge replication for coordinates
// outside the image.
func (m *Image) Sample(i, j, c int) uint8 {
	i, j = m.Resolve(i, j)
	return m.Pix[m.Offset(i, j)+c]
}

// SameShape reports whether m and o have equal rows, cols and channels.
func (m *Image) SameShape(o *Image) bool {
	return m.Rows == o.Rows && m.Cols == o.Cols && m.Channels == o.Channels
}

// NewLike returns a zero-filled image with the shape of m.
func (m *Image) NewLike() *Image {
	return &Image{
		Rows:     m.Rows,
		Cols:     m.Cols,
		Channels: m.Channels,
		Pix:      make([]uint8, len(m.Pix)),
	}
}

// Clone returns a deep copy of m.
func (m *Image) Clone() *Image {
	out := m.NewLike()
	copy(out.Pix, m.Pix)
	return out
}

// Plane copies channel c into dst as float64 values, row-major, and returns
// dst resized to rows*cols, reusing its capacity. c must be in [0, Channels).
func (m *Image) Plane(dst []float64, c int) []float64 {
	dst = core.EnsureLen(dst, m.Rows*m.Cols)
	for p := range dst {
		dst[p] = float64(m.Pix[p*m.Channels+c])
	}
	return dst
}
