package spatial

import (
	"math"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-raster/core"
	"github.com/cwbudde/algo-raster/internal/testutil"
	"github.com/cwbudde/algo-raster/kernel"
)

func TestFFTMatchesDirect(t *testing.T) {
	src := testutil.DeterministicNoise(7, 23, 17, 3)

	kernels := map[string]*kernel.Kernel{
		"gaussian-5": mustKernel(kernel.Gaussian(5)),
		"gaussian-9": mustKernel(kernel.Gaussian(9, kernel.WithSigma(2))),
		"box-3":      mustKernel(kernel.Box(3)),
		"sobel-5":    mustKernel(kernel.Sobel(5, kernel.Vertical, kernel.WithSingleNormalization())),
	}

	for name, k := range kernels {
		t.Run(name, func(t *testing.T) {
			direct, err := Apply(src, k, core.WithStrategy(core.StrategyDirect))
			if err != nil {
				t.Fatalf("direct: %v", err)
			}
			viaFFT, err := Apply(src, k, core.WithStrategy(core.StrategyFFT))
			if err != nil {
				t.Fatalf("fft: %v", err)
			}

			// Truncation can only disagree when a response sits within
			// rounding error of an integer.
			d, err := testutil.MaxAbsDiff(direct, viaFFT)
			if err != nil {
				t.Fatalf("MaxAbsDiff: %v", err)
			}
			if d > 1 {
				t.Fatalf("max difference %d exceeds 1", d)
			}
		})
	}
}

func TestFFTRawResponse(t *testing.T) {
	src := testutil.DeterministicNoise(8, 6, 10, 1)
	k := mustKernel(kernel.Gaussian(3))

	span := k.Span()
	rows, cols := fftShape(src, span)
	plan, err := algofft.NewPlan2D64(rows, cols)
	if err != nil {
		t.Fatalf("NewPlan2D64: %v", err)
	}
	spectrum, err := kernelSpectrum(plan, k)
	if err != nil {
		t.Fatalf("kernelSpectrum: %v", err)
	}

	grid := make([]complex128, rows*cols)
	loadPadded(grid, nil, src, 0, span, cols)
	if err := plan.Forward(grid, grid); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	for i := range grid {
		grid[i] *= spectrum[i]
	}
	if err := plan.Inverse(grid, grid); err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	r := newWeightedSum(k)
	for x := 0; x < src.Rows; x++ {
		for y := 0; y < src.Cols; y++ {
			want := r.reduce(src, x, y, 0)
			if got := real(grid[x*cols+y]); math.Abs(got-want) > 1e-9 {
				t.Fatalf("(%d,%d): fft %v, direct %v", x, y, got, want)
			}
		}
	}
}

func TestLoadPaddedReplicatesEdges(t *testing.T) {
	src := testutil.DeterministicNoise(4, 3, 4, 2)
	span := 2
	rows, cols := fftShape(src, span)
	grid := make([]complex128, rows*cols)
	for i := range grid {
		grid[i] = complex(-1, 0)
	}

	plane := loadPadded(grid, nil, src, 1, span, cols)
	if len(plane) != src.Rows*src.Cols {
		t.Fatalf("plane length = %d, want %d", len(plane), src.Rows*src.Cols)
	}

	for a := 0; a < rows; a++ {
		for b := 0; b < cols; b++ {
			got := grid[a*cols+b]
			var want complex128
			if a < src.Rows+2*span && b < src.Cols+2*span {
				want = complex(float64(src.Sample(a-span, b-span, 1)), 0)
			}
			if got != want {
				t.Fatalf("grid(%d,%d) = %v, want %v", a, b, got, want)
			}
		}
	}

	// A second channel reuses the scratch plane.
	again := loadPadded(grid, plane, src, 0, span, cols)
	if &again[0] != &plane[0] {
		t.Fatal("scratch plane was reallocated")
	}
}

func TestFFTSingleWorkerManyChannels(t *testing.T) {
	src := testutil.DeterministicNoise(11, 9, 13, 4)
	k := mustKernel(kernel.Gaussian(5))

	one, err := Apply(src, k, core.WithStrategy(core.StrategyFFT), core.WithWorkers(1))
	if err != nil {
		t.Fatalf("fft 1 worker: %v", err)
	}
	many, err := Apply(src, k, core.WithStrategy(core.StrategyFFT), core.WithWorkers(8))
	if err != nil {
		t.Fatalf("fft 8 workers: %v", err)
	}
	testutil.RequireImagesEqual(t, one, many)
}

func TestAutoStrategyLargeKernel(t *testing.T) {
	src := testutil.DeterministicNoise(9, 20, 20, 3)
	k := mustKernel(kernel.Gaussian(core.AutoFFTMinSize, kernel.WithSigma(3)))

	auto, err := Apply(src, k, core.WithStrategy(core.StrategyAuto))
	if err != nil {
		t.Fatalf("auto: %v", err)
	}
	direct, err := Apply(src, k)
	if err != nil {
		t.Fatalf("direct: %v", err)
	}
	d, _ := testutil.MaxAbsDiff(auto, direct)
	if d > 1 {
		t.Fatalf("max difference %d exceeds 1", d)
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct{ in, want int }{{0, 1}, {1, 1}, {2, 2}, {3, 4}, {17, 32}, {64, 64}}
	for _, tt := range tests {
		if got := nextPowerOf2(tt.in); got != tt.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
