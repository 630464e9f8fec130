package kernel

import "fmt"

// Orientation selects the gradient direction of a Sobel kernel.
type Orientation int

const (
	// Vertical uses the transposed stencil.
	Vertical Orientation = iota
	// Horizontal uses the stencil as tabulated.
	Horizontal
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// OrientationFromInt maps the integer convention h=1 (horizontal) and
// h=0 (vertical) to an Orientation.
func OrientationFromInt(h int) (Orientation, error) {
	switch h {
	case 1:
		return Horizontal, nil
	case 0:
		return Vertical, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidOrientation, h)
	}
}

// StencilSize enumerates the sizes with a tabulated Sobel stencil.
type StencilSize int

const (
	Stencil3 StencilSize = iota
	Stencil5
	Stencil7
	Stencil9
)

type stencil struct {
	size    int
	divisor float64
	table   [][]float64
}

// The 3×3 table keeps a +1 in its bottom-right cell; results computed with
// it are not antisymmetric.
var sobelStencils = [...]stencil{
	Stencil3: {
		size:    3,
		divisor: 8,
		table: [][]float64{
			{1, 2, 1},
			{0, 0, 0},
			{-1, -2, 1},
		},
	},
	Stencil5: {
		size:    5,
		divisor: 128,
		table: [][]float64{
			{1, 4, 6, 4, 1},
			{2, 8, 12, 8, 2},
			{0, 0, 0, 0, 0},
			{-2, -8, -12, -8, -2},
			{-1, -4, -6, -4, -1},
		},
	},
	Stencil7: {
		size:    7,
		divisor: 2048,
		table: [][]float64{
			{1, 6, 15, 20, 15, 6, 1},
			{4, 24, 60, 80, 60, 24, 4},
			{5, 30, 75, 100, 75, 30, 5},
			{0, 0, 0, 0, 0, 0, 0},
			{-5, -30, -75, -100, -75, -30, -5},
			{-4, -24, -60, -80, -60, -24, -4},
			{-1, -6, -15, -20, -15, -6, -1},
		},
	},
	Stencil9: {
		size:    9,
		divisor: 32768,
		table: [][]float64{
			{1, 8, 28, 56, 70, 56, 28, 8, 1},
			{6, 48, 168, 336, 420, 336, 168, 48, 6},
			{14, 112, 392, 784, 980, 784, 392, 112, 14},
			{14, 112, 392, 784, 980, 784, 392, 112, 14},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{-14, -112, -392, -784, -980, -784, -392, -112, -14},
			{-14, -112, -392, -784, -980, -784, -392, -112, -14},
			{-6, -48, -168, -336, -420, -336, -168, -48, -6},
			{-1, -8, -28, -56, -70, -56, -28, -8, -1},
		},
	},
}

// StencilFor returns the StencilSize for a kernel size of 3, 5, 7 or 9.
func StencilFor(size int) (StencilSize, error) {
	for s, st := range sobelStencils {
		if st.size == size {
			return StencilSize(s), nil
		}
	}
	return 0, fmt.Errorf("%w: no sobel stencil for size %d", ErrInvalidKernelSize, size)
}

// Size returns the kernel size of the stencil.
func (s StencilSize) Size() int {
	return sobelStencils[s].size
}

// Divisor returns the normalization divisor of the stencil.
func (s StencilSize) Divisor() float64 {
	return sobelStencils[s].divisor
}

// SobelSizes lists the kernel sizes accepted by Sobel.
func SobelSizes() []int {
	sizes := make([]int, len(sobelStencils))
	for i, st := range sobelStencils {
		sizes[i] = st.size
	}
	return sizes
}

// Sobel returns the tabulated Sobel stencil of the given size divided by its
// divisor, transposed for Vertical. Every weight is then divided by
// (size²-1) unless WithSingleNormalization is given.
func Sobel(size int, o Orientation, opts ...Option) (*Kernel, error) {
	cfg := applyOptions(opts)
	if o != Horizontal && o != Vertical {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(o))
	}
	s, err := StencilFor(size)
	if err != nil {
		return nil, err
	}

	st := sobelStencils[s]
	k, err := FromRows(st.table)
	if err != nil {
		return nil, err
	}
	if o == Vertical {
		k = k.Transpose()
	}
	k.Scale(1 / st.divisor)

	if !cfg.singleNorm {
		k.Scale(1 / float64(size*size-1))
	}
	return k, nil
}
