package kernel

// DefaultSigma is the Gaussian standard deviation used when none is given.
const DefaultSigma = 1.0

// Option configures kernel generation.
type Option func(*config)

type config struct {
	sigma      float64
	singleNorm bool
}

func defaultConfig() config {
	return config{sigma: DefaultSigma}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSigma sets the Gaussian standard deviation. Non-positive values make
// Gaussian return ErrInvalidSigma.
func WithSigma(sigma float64) Option {
	return func(cfg *config) {
		cfg.sigma = sigma
	}
}

// WithSingleNormalization skips the extra division by (size²-1) applied by
// Laplacian and Sobel.
func WithSingleNormalization() Option {
	return func(cfg *config) {
		cfg.singleNorm = true
	}
}
