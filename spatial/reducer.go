package spatial

import (
	"slices"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-raster/core"
	"github.com/cwbudde/algo-raster/kernel"
	"github.com/cwbudde/algo-raster/raster"
)

// Mode selects how a window of samples is reduced to one value.
type Mode int

const (
	ModeWeightedSum Mode = iota
	ModeMean
	ModeMedian
	ModePrewitt
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeWeightedSum:
		return "weighted-sum"
	case ModeMean:
		return "mean"
	case ModeMedian:
		return "median"
	case ModePrewitt:
		return "prewitt"
	default:
		return "unknown"
	}
}

// reducer computes the response at (x, y) for channel c. Implementations
// own scratch space and must not be shared between goroutines.
type reducer interface {
	reduce(src *raster.Image, x, y, c int) float64
}

type weightedSum struct {
	k      *kernel.Kernel
	window []float64
}

func newWeightedSum(k *kernel.Kernel) *weightedSum {
	return &weightedSum{k: k, window: make([]float64, k.Size()*k.Size())}
}

func (r *weightedSum) reduce(src *raster.Image, x, y, c int) float64 {
	size, span := r.k.Size(), r.k.Span()

	n := 0
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			r.window[n] = float64(src.Sample(x-span+i, y-span+j, c))
			n++
		}
	}

	return vecmath.DotProduct(r.window, r.k.Weights())
}

type mean struct {
	size int
}

func (r mean) reduce(src *raster.Image, x, y, c int) float64 {
	span := (r.size - 1) / 2
	area := float64(r.size * r.size)

	value := 0.0
	for i := x - span; i <= x+span; i++ {
		for j := y - span; j <= y+span; j++ {
			value += float64(src.Sample(i, j, c)) / area
		}
	}
	return value
}

type median struct {
	size   int
	values []uint8
}

func newMedian(size int) *median {
	return &median{size: size, values: make([]uint8, 0, size*size)}
}

func (r *median) reduce(src *raster.Image, x, y, c int) float64 {
	span := (r.size - 1) / 2

	r.values = r.values[:0]
	for i := x - span; i <= x+span; i++ {
		for j := y - span; j <= y+span; j++ {
			r.values = append(r.values, src.Sample(i, j, c))
		}
	}
	slices.Sort(r.values)
	return float64(r.values[len(r.values)/2])
}

type prewitt struct {
	size int
}

func (r prewitt) reduce(src *raster.Image, x, y, c int) float64 {
	span := (r.size - 1) / 2
	norm := float64(r.size * span)

	value := 0.0
	for i := x - span; i <= x+span; i++ {
		for j := y - span; j <= y+span; j++ {
			var sign float64
			switch {
			case j < y:
				sign = 1
			case j > y:
				sign = -1
			default:
				continue
			}
			value += sign * float64(src.Sample(i, j, c)) / norm
		}
	}
	return value
}

// reducerFactory returns a constructor for per-band reducers.
func reducerFactory(size int, mode Mode) (func() reducer, error) {
	switch mode {
	case ModeMean:
		return func() reducer { return mean{size: size} }, nil
	case ModeMedian:
		return func() reducer { return newMedian(size) }, nil
	case ModePrewitt:
		return func() reducer { return prewitt{size: size} }, nil
	default:
		return nil, ErrInvalidMode
	}
}

// pixelAt reduces one window and converts the response to a sample.
func pixelAt(r reducer, src *raster.Image, x, y, c int) uint8 {
	return core.ToPixel(r.reduce(src, x, y, c))
}
