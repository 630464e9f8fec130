package core

import "runtime"

// Strategy selects how weighted-sum filters evaluate their kernel.
type Strategy int

const (
	// StrategyDirect gathers every window and reduces it in the spatial domain.
	StrategyDirect Strategy = iota

	// StrategyFFT correlates each channel with the kernel through 2D FFTs.
	StrategyFFT

	// StrategyAuto picks StrategyFFT for kernels of at least AutoFFTMinSize
	// and StrategyDirect otherwise.
	StrategyAuto
)

// AutoFFTMinSize is the smallest kernel size StrategyAuto hands to the FFT path.
const AutoFFTMinSize = 15

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyFFT:
		return "fft"
	case StrategyAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Resolve returns the concrete strategy used for a kernel of the given size.
func (s Strategy) Resolve(kernelSize int) Strategy {
	if s != StrategyAuto {
		return s
	}
	if kernelSize >= AutoFFTMinSize {
		return StrategyFFT
	}
	return StrategyDirect
}

// ProcessorConfig defines common filter processing settings.
type ProcessorConfig struct {
	// Workers bounds the number of row bands processed concurrently.
	Workers int

	// Strategy selects direct or FFT evaluation for weighted-sum kernels.
	Strategy Strategy

	// StrictBounds rejects kernels larger than the image instead of
	// silently replicating edge samples.
	StrictBounds bool
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns one worker per usable CPU, direct
// evaluation and permissive bounds.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		Workers:  runtime.GOMAXPROCS(0),
		Strategy: StrategyDirect,
	}
}

// WithWorkers sets the maximum number of concurrent row bands.
func WithWorkers(workers int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithStrategy sets the weighted-sum evaluation strategy.
func WithStrategy(strategy Strategy) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if strategy >= StrategyDirect && strategy <= StrategyAuto {
			cfg.Strategy = strategy
		}
	}
}

// WithStrictBounds makes filters fail when the kernel is larger than the image.
func WithStrictBounds() ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.StrictBounds = true
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
