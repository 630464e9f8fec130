// Package kernel provides square weight kernels and the generators that
// build them for spatial filtering.
//
// A [Kernel] is an odd-sized, row-major grid of float64 weights. The weight
// at row i, column j multiplies the input sample at offset
// (i-span, j-span) from the output pixel; kernels are applied as
// correlations and are never flipped.
//
// # Generators
//
//	g, err := kernel.Gaussian(5)                           // sigma 1, sums to 1
//	l, err := kernel.Laplacian(3)                          // negative center
//	s, err := kernel.Sobel(3, kernel.Horizontal)           // fixed stencil
//	s, err := kernel.Sobel(5, kernel.Vertical, kernel.WithSingleNormalization())
//
// # Normalization
//
// Laplacian and Sobel kernels divide every weight by (size²-1) a second
// time after their primary normalization. The extra division keeps results
// compatible with the filters these kernels were first written for; pass
// [WithSingleNormalization] to skip it.
//
// The Gaussian generator normalizes its weights to sum to one, so the
// constant denominator of the Gaussian density has no effect on the result.
package kernel
