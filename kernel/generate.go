package kernel

import "math"

// Gaussian returns a size × size Gaussian kernel normalized to sum to one.
// The weight at offset (x, y) from the center is proportional to
// exp(-(x²+y²) / (2σ²)).
func Gaussian(size int, opts ...Option) (*Kernel, error) {
	cfg := applyOptions(opts)
	if err := validateSigma(cfg.sigma); err != nil {
		return nil, err
	}
	k, err := New(size)
	if err != nil {
		return nil, err
	}

	span := k.Span()
	s := 2 * cfg.sigma * cfg.sigma
	sum := 0.0
	for x := -span; x <= span; x++ {
		for y := -span; y <= span; y++ {
			r := float64(x*x + y*y)
			w := math.Exp(-r/s) / (math.Pi * s)
			k.Set(x+span, y+span, w)
			sum += w
		}
	}

	return k.Scale(1 / sum), nil
}

// Laplacian returns a size × size Laplacian kernel: every surround weight is
// 1/(size²-1) and the center is -1, so the weights sum to zero. All weights
// are then divided by (size²-1) once more unless WithSingleNormalization is
// given.
//
// Size 1 has no surround and yields the single weight -1.
func Laplacian(size int, opts ...Option) (*Kernel, error) {
	cfg := applyOptions(opts)
	k, err := New(size)
	if err != nil {
		return nil, err
	}

	span := k.Span()
	n := float64(size*size - 1)
	if n == 0 {
		k.Set(0, 0, -1)
		return k, nil
	}

	for i := range k.weights {
		k.weights[i] = 1 / n
	}
	k.Set(span, span, -1)

	if !cfg.singleNorm {
		k.Scale(1 / n)
	}
	return k, nil
}
