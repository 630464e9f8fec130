package kernel

import "fmt"

// Kernel is a square size × size grid of weights stored row-major.
type Kernel struct {
	size    int
	weights []float64
}

// New returns a zero-filled kernel of the given odd size.
func New(size int) (*Kernel, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	return &Kernel{size: size, weights: make([]float64, size*size)}, nil
}

// FromWeights copies row-major weights into a new kernel.
func FromWeights(size int, weights []float64) (*Kernel, error) {
	k, err := New(size)
	if err != nil {
		return nil, err
	}
	if len(weights) != size*size {
		return nil, fmt.Errorf("%w: got %d weights for size %d", ErrWeightMismatch, len(weights), size)
	}
	copy(k.weights, weights)
	return k, nil
}

// FromRows copies a square table of weights into a new kernel.
func FromRows(rows [][]float64) (*Kernel, error) {
	size := len(rows)
	k, err := New(size)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d weights, want %d", ErrWeightMismatch, i, len(row), size)
		}
		copy(k.weights[i*size:], row)
	}
	return k, nil
}

// Identity returns a kernel with 1 at the center and 0 elsewhere.
func Identity(size int) (*Kernel, error) {
	k, err := New(size)
	if err != nil {
		return nil, err
	}
	s := k.Span()
	k.Set(s, s, 1)
	return k, nil
}

// Box returns a uniform kernel whose weights are 1/size².
func Box(size int) (*Kernel, error) {
	k, err := New(size)
	if err != nil {
		return nil, err
	}
	w := 1 / float64(size*size)
	for i := range k.weights {
		k.weights[i] = w
	}
	return k, nil
}

// Size returns the kernel width and height.
func (k *Kernel) Size() int {
	return k.size
}

// Span returns the half-width (size-1)/2.
func (k *Kernel) Span() int {
	return (k.size - 1) / 2
}

// At returns the weight at row i, column j.
func (k *Kernel) At(i, j int) float64 {
	return k.weights[i*k.size+j]
}

// Set writes the weight at row i, column j.
func (k *Kernel) Set(i, j int, w float64) {
	k.weights[i*k.size+j] = w
}

// Weights returns the underlying row-major weights. Callers must not
// modify the slice while the kernel is in use by a filter.
func (k *Kernel) Weights() []float64 {
	return k.weights
}

// Rows returns a copy of the weights as a table of rows.
func (k *Kernel) Rows() [][]float64 {
	out := make([][]float64, k.size)
	for i := range out {
		out[i] = append([]float64(nil), k.weights[i*k.size:(i+1)*k.size]...)
	}
	return out
}

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 {
	sum := 0.0
	for _, w := range k.weights {
		sum += w
	}
	return sum
}

// Scale multiplies every weight by f in place and returns k.
func (k *Kernel) Scale(f float64) *Kernel {
	for i := range k.weights {
		k.weights[i] *= f
	}
	return k
}

// Transpose returns a new kernel with rows and columns swapped.
func (k *Kernel) Transpose() *Kernel {
	out := &Kernel{size: k.size, weights: make([]float64, len(k.weights))}
	for i := 0; i < k.size; i++ {
		for j := 0; j < k.size; j++ {
			out.weights[j*k.size+i] = k.weights[i*k.size+j]
		}
	}
	return out
}

// Clone returns a deep copy of k.
func (k *Kernel) Clone() *Kernel {
	return &Kernel{size: k.size, weights: append([]float64(nil), k.weights...)}
}

// Validate reports whether k has an odd positive size and size² weights.
func (k *Kernel) Validate() error {
	if k == nil {
		return fmt.Errorf("%w: nil kernel", ErrInvalidKernelSize)
	}
	if err := ValidateSize(k.size); err != nil {
		return err
	}
	if len(k.weights) != k.size*k.size {
		return fmt.Errorf("%w: got %d weights for size %d", ErrWeightMismatch, len(k.weights), k.size)
	}
	return nil
}
