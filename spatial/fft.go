package spatial

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-raster/core"
	"github.com/cwbudde/algo-raster/kernel"
	"github.com/cwbudde/algo-raster/raster"
)

// minFFTSize keeps degenerate one-row or one-column planes away from
// trivial plan sizes.
const minFFTSize = 8

// fftShape returns the transform size for src padded by span on every side.
func fftShape(src *raster.Image, span int) (rows, cols int) {
	rows = max(minFFTSize, nextPowerOf2(src.Rows+2*span))
	cols = max(minFFTSize, nextPowerOf2(src.Cols+2*span))
	return rows, cols
}

// kernelSpectrum returns the conjugated 2D spectrum of k zero-padded to the
// plan size. Multiplying by it turns convolution into correlation.
func kernelSpectrum(plan *algofft.Plan2D[complex128], k *kernel.Kernel) ([]complex128, error) {
	cols := plan.Cols()
	spectrum := make([]complex128, plan.Len())
	for i := 0; i < k.Size(); i++ {
		for j := 0; j < k.Size(); j++ {
			spectrum[i*cols+j] = complex(k.At(i, j), 0)
		}
	}
	if err := plan.Forward(spectrum, spectrum); err != nil {
		return nil, fmt.Errorf("spatial: kernel FFT failed: %w", err)
	}
	for i, v := range spectrum {
		spectrum[i] = cmplx.Conj(v)
	}
	return spectrum, nil
}

// loadPadded writes channel c of src into grid (row stride cols) with span
// replicated samples on every side. The rest of grid is zeroed. plane is
// scratch for the channel samples and is returned for reuse.
func loadPadded(grid []complex128, plane []float64, src *raster.Image, c, span, cols int) []float64 {
	plane = src.Plane(plane, c)
	clear(grid)
	for a := 0; a < src.Rows+2*span; a++ {
		row := plane[core.ClampIndex(a-span, src.Rows)*src.Cols:]
		for b := 0; b < src.Cols+2*span; b++ {
			grid[a*cols+b] = complex(row[core.ClampIndex(b-span, src.Cols)], 0)
		}
	}
	return plane
}

// applyFFT evaluates the same correlation as the direct weighted sum. Each
// channel is padded by the kernel span with replicated edges, transformed,
// multiplied by the conjugate kernel spectrum and transformed back. The
// padded grid is large enough that no circular wrap reaches the output.
func applyFFT(src *raster.Image, k *kernel.Kernel, cfg core.ProcessorConfig) (*raster.Image, error) {
	span := k.Span()
	rows, cols := fftShape(src, span)

	plan, err := algofft.NewPlan2D64(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("spatial: failed to create FFT plan: %w", err)
	}
	spectrum, err := kernelSpectrum(plan, k)
	if err != nil {
		return nil, err
	}

	dst := src.NewLike()
	workers := min(cfg.Workers, src.Channels)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		// Plans keep internal scratch, so every worker gets its own.
		p := plan.Clone()
		g.Go(func() error {
			grid := make([]complex128, rows*cols)
			var plane []float64
			for c := w; c < src.Channels; c += workers {
				plane = loadPadded(grid, plane, src, c, span, cols)

				if err := p.Forward(grid, grid); err != nil {
					return fmt.Errorf("spatial: FFT failed: %w", err)
				}
				for i := range grid {
					grid[i] *= spectrum[i]
				}
				if err := p.Inverse(grid, grid); err != nil {
					return fmt.Errorf("spatial: inverse FFT failed: %w", err)
				}

				for x := 0; x < src.Rows; x++ {
					for y := 0; y < src.Cols; y++ {
						dst.Set(x, y, c, core.ToPixel(real(grid[x*cols+y])))
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

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
