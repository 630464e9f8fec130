package spatial

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-raster/core"
	"github.com/cwbudde/algo-raster/kernel"
	"github.com/cwbudde/algo-raster/raster"
)

// Errors returned by the engine.
var (
	ErrInvalidMode = errors.New("spatial: invalid reduction mode")
)

func validateImage(src *raster.Image) error {
	if err := src.Validate(); err != nil {
		return fmt.Errorf("spatial: %w", err)
	}
	return nil
}

func validateWindow(src *raster.Image, size int, cfg core.ProcessorConfig) error {
	if err := kernel.ValidateSize(size); err != nil {
		return fmt.Errorf("spatial: %w", err)
	}
	if cfg.StrictBounds && (size > src.Rows || size > src.Cols) {
		return fmt.Errorf("spatial: %w: kernel size %d exceeds image %dx%d",
			raster.ErrDimensionMismatch, size, src.Rows, src.Cols)
	}
	return nil
}
