package kernel

import (
	"errors"
	"fmt"
)

// Errors returned by kernel constructors and generators.
var (
	ErrInvalidKernelSize  = errors.New("kernel: invalid kernel size")
	ErrInvalidOrientation = errors.New("kernel: invalid orientation")
	ErrInvalidSigma       = errors.New("kernel: invalid sigma")
	ErrWeightMismatch     = errors.New("kernel: weight count does not match size")
)

// ValidateSize reports whether size is a positive odd kernel size.
func ValidateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: size must be > 0: %d", ErrInvalidKernelSize, size)
	}
	if size%2 == 0 {
		return fmt.Errorf("%w: size must be odd: %d", ErrInvalidKernelSize, size)
	}
	return nil
}

func validateSigma(sigma float64) error {
	if !(sigma > 0) {
		return fmt.Errorf("%w: sigma must be > 0: %v", ErrInvalidSigma, sigma)
	}
	return nil
}
