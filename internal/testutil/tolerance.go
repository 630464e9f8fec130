package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-raster/core"
	"github.com/cwbudde/algo-raster/raster"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is not core.NearlyEqual within eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !core.NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireSameShape fails t if got and want differ in rows, cols or channels.
func RequireSameShape(t *testing.T, got, want *raster.Image) {
	t.Helper()
	if got.Rows != want.Rows || got.Cols != want.Cols || got.Channels != want.Channels {
		t.Fatalf("shape mismatch: got %dx%dx%d, want %dx%dx%d",
			got.Rows, got.Cols, got.Channels, want.Rows, want.Cols, want.Channels)
	}
	if len(got.Pix) != len(want.Pix) {
		t.Fatalf("pix length mismatch: got %d, want %d", len(got.Pix), len(want.Pix))
	}
}

// RequireImagesEqual fails t with a diff if got and want are not identical.
func RequireImagesEqual(t *testing.T, got, want *raster.Image) {
	t.Helper()
	RequireSameShape(t, got, want)
	if diff := cmp.Diff(want.Pix, got.Pix); diff != "" {
		t.Fatalf("pixels differ (-want +got):\n%s", diff)
	}
}

// RequireUniform fails t unless every sample of img equals v.
func RequireUniform(t *testing.T, img *raster.Image, v uint8) {
	t.Helper()
	for p, s := range img.Pix {
		if s != v {
			px := p / img.Channels
			t.Fatalf("pixel (%d,%d) channel %d = %d, want %d", px/img.Cols, px%img.Cols, p%img.Channels, s, v)
		}
	}
}

// MaxAbsDiff returns the largest absolute sample difference between two
// images of the same shape.
func MaxAbsDiff(a, b *raster.Image) (int, error) {
	if !a.SameShape(b) {
		return 0, fmt.Errorf("shape mismatch: %dx%dx%d vs %dx%dx%d",
			a.Rows, a.Cols, a.Channels, b.Rows, b.Cols, b.Channels)
	}
	maxDiff := 0
	for i := range a.Pix {
		d := int(a.Pix[i]) - int(b.Pix[i])
		if d < 0 {
			d = -d
		}
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
