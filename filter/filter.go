package filter

import (
	"github.com/cwbudde/algo-raster/core"
	"github.com/cwbudde/algo-raster/kernel"
	"github.com/cwbudde/algo-raster/raster"
	"github.com/cwbudde/algo-raster/spatial"
)

// Mean replaces every sample with the average of its size × size window.
func Mean(src *raster.Image, size int, opts ...core.ProcessorOption) (*raster.Image, error) {
	return spatial.Reduce(src, size, spatial.ModeMean, opts...)
}

// Median replaces every sample with the median of its size × size window.
func Median(src *raster.Image, size int, opts ...core.ProcessorOption) (*raster.Image, error) {
	return spatial.Reduce(src, size, spatial.ModeMedian, opts...)
}

// Prewitt computes a horizontal directional difference: columns left of
// center add, columns right of center subtract. size must be at least 3.
func Prewitt(src *raster.Image, size int, opts ...core.ProcessorOption) (*raster.Image, error) {
	return spatial.Reduce(src, size, spatial.ModePrewitt, opts...)
}

// Convolve applies a caller-supplied kernel as a weighted sum.
func Convolve(src *raster.Image, k *kernel.Kernel, opts ...core.ProcessorOption) (*raster.Image, error) {
	return spatial.Apply(src, k, opts...)
}

// Gaussian blurs src with a normalized Gaussian kernel of sigma 1.
func Gaussian(src *raster.Image, size int, opts ...core.ProcessorOption) (*raster.Image, error) {
	k, err := kernel.Gaussian(size)
	if err != nil {
		return nil, err
	}
	return spatial.Apply(src, k, opts...)
}

// Laplacian applies the Laplacian kernel of the given size.
func Laplacian(src *raster.Image, size int, opts ...core.ProcessorOption) (*raster.Image, error) {
	k, err := kernel.Laplacian(size)
	if err != nil {
		return nil, err
	}
	return spatial.Apply(src, k, opts...)
}

// Sobel applies the tabulated Sobel stencil of size 3, 5, 7 or 9 in the
// given orientation.
func Sobel(src *raster.Image, size int, o kernel.Orientation, opts ...core.ProcessorOption) (*raster.Image, error) {
	k, err := kernel.Sobel(size, o)
	if err != nil {
		return nil, err
	}
	return spatial.Apply(src, k, opts...)
}

// LoG applies Gaussian and then Laplacian, both of the given size. Both
// kernels are built before the first pass so invalid sizes fail without
// doing any work.
func LoG(src *raster.Image, size int, opts ...core.ProcessorOption) (*raster.Image, error) {
	g, err := kernel.Gaussian(size)
	if err != nil {
		return nil, err
	}
	l, err := kernel.Laplacian(size)
	if err != nil {
		return nil, err
	}

	blurred, err := spatial.Apply(src, g, opts...)
	if err != nil {
		return nil, err
	}
	return spatial.Apply(blurred, l, opts...)
}
