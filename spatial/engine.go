package spatial

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-raster/core"
	"github.com/cwbudde/algo-raster/kernel"
	"github.com/cwbudde/algo-raster/raster"
)

// bandsPerWorker oversubscribes the pool so uneven bands still balance.
const bandsPerWorker = 4

// Apply correlates every channel of src with k and returns a new image of
// the same shape. The kernel's top-left weight multiplies the top-left
// sample of each window.
func Apply(src *raster.Image, k *kernel.Kernel, opts ...core.ProcessorOption) (*raster.Image, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if err := validateImage(src); err != nil {
		return nil, err
	}
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("spatial: %w", err)
	}
	if err := validateWindow(src, k.Size(), cfg); err != nil {
		return nil, err
	}

	if cfg.Strategy.Resolve(k.Size()) == core.StrategyFFT {
		return applyFFT(src, k, cfg)
	}
	return run(src, func() reducer { return newWeightedSum(k) }, cfg)
}

// Reduce applies a kernel-free reduction (ModeMean, ModeMedian or
// ModePrewitt) over size × size windows. ModePrewitt requires size >= 3.
func Reduce(src *raster.Image, size int, mode Mode, opts ...core.ProcessorOption) (*raster.Image, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if err := validateImage(src); err != nil {
		return nil, err
	}
	if err := validateWindow(src, size, cfg); err != nil {
		return nil, err
	}
	if mode == ModePrewitt && size < 3 {
		return nil, fmt.Errorf("spatial: %w: prewitt needs size >= 3: %d", kernel.ErrInvalidKernelSize, size)
	}

	newReducer, err := reducerFactory(size, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", err, mode)
	}
	return run(src, newReducer, cfg)
}

type band struct {
	start, end int
}

// splitRows partitions [0, rows) into contiguous bands.
func splitRows(rows, workers int) []band {
	n := workers * bandsPerWorker
	if n > rows {
		n = rows
	}
	if n < 1 {
		n = 1
	}

	bands := make([]band, 0, n)
	per := (rows + n - 1) / n
	for start := 0; start < rows; start += per {
		end := start + per
		if end > rows {
			end = rows
		}
		bands = append(bands, band{start: start, end: end})
	}
	return bands
}

// run drives one reducer per band over every pixel and channel. Reads come
// only from src and writes go only to a fresh image.
func run(src *raster.Image, newReducer func() reducer, cfg core.ProcessorConfig) (*raster.Image, error) {
	dst := src.NewLike()

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for _, b := range splitRows(src.Rows, cfg.Workers) {
		g.Go(func() error {
			r := newReducer()
			for x := b.start; x < b.end; x++ {
				for y := 0; y < src.Cols; y++ {
					o := dst.Offset(x, y)
					for c := 0; c < src.Channels; c++ {
						dst.Pix[o+c] = pixelAt(r, src, x, y, c)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}
