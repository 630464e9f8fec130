// Package spatial implements the neighborhood-reduction engine behind every
// filter in this module.
//
// For each output pixel and channel the engine gathers the size × size
// window of input samples centered on that pixel, reading out-of-bounds
// coordinates through edge replication, and reduces the window to one
// value:
//
//   - ModeWeightedSum: correlation with a [kernel.Kernel] (no flipping)
//   - ModeMean: uniform weight 1/size² per sample
//   - ModeMedian: the element at index size²/2 of the sorted window
//   - ModePrewitt: +1 left of center, 0 on the center column, -1 right,
//     each sample scaled by 1/(size·span)
//
// The response is truncated toward zero and saturated to [0, 255].
//
// # Usage
//
//	out, err := spatial.Apply(img, k)                      // weighted sum
//	out, err := spatial.Reduce(img, 5, spatial.ModeMedian) // median 5×5
//
// Inputs are never modified; every call returns a new image of the same
// shape. Rows are split into bands processed concurrently; the number of
// bands in flight is bounded by [core.WithWorkers]. Results do not depend
// on the worker count.
//
// # Algorithm Selection
//
// Weighted sums are evaluated directly by default. With
// core.WithStrategy(core.StrategyFFT) each channel is correlated with the
// kernel through 2D FFTs over the edge-replicated plane, which costs
// O(N log N) per channel regardless of kernel size. core.StrategyAuto
// switches to the FFT path for kernels of size core.AutoFFTMinSize and
// above. Both paths agree to within floating-point rounding before
// truncation.
package spatial
