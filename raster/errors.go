package raster

import (
	"errors"
	"fmt"
)

// Errors returned by raster constructors and validation.
var (
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")
	ErrDimensionMismatch = errors.New("raster: dimension mismatch")
	ErrInvalidChannel    = errors.New("raster: channel out of range")
)

func validateDimensions(rows, cols, channels int) error {
	if rows <= 0 || cols <= 0 || channels <= 0 {
		return fmt.Errorf("%w: rows=%d cols=%d channels=%d", ErrInvalidDimensions, rows, cols, channels)
	}
	return nil
}

func (m *Image) validateChannel(c int) error {
	if c < 0 || c >= m.Channels {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidChannel, c, m.Channels)
	}
	return nil
}
