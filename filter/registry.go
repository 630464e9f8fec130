package filter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-raster/core"
	"github.com/cwbudde/algo-raster/kernel"
	"github.com/cwbudde/algo-raster/raster"
)

// ErrUnknownFilter is returned by ByName for names not in the registry.
var ErrUnknownFilter = errors.New("filter: unknown filter")

// Func is the common signature of the named filters.
type Func func(src *raster.Image, size int, opts ...core.ProcessorOption) (*raster.Image, error)

func sobel(o kernel.Orientation) Func {
	return func(src *raster.Image, size int, opts ...core.ProcessorOption) (*raster.Image, error) {
		return Sobel(src, size, o, opts...)
	}
}

var registry = map[string]Func{
	"mean":      Mean,
	"median":    Median,
	"prewitt":   Prewitt,
	"gaussian":  Gaussian,
	"laplacian": Laplacian,
	"sobel-h":   sobel(kernel.Horizontal),
	"sobel-v":   sobel(kernel.Vertical),
	"log":       LoG,
}

// ByName returns the filter registered under name (case-insensitive).
func ByName(name string) (Func, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return f, nil
}

// Names returns the registered filter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
