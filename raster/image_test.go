package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewValidatesDimensions(t *testing.T) {
	tests := []struct {
		name                 string
		rows, cols, channels int
	}{
		{"zero rows", 0, 3, 3},
		{"negative cols", 3, -1, 3},
		{"zero channels", 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows, tt.cols, tt.channels)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}

func TestFromPixLengthMismatch(t *testing.T) {
	_, err := FromPix(2, 2, 3, make([]uint8, 11))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	var nilImg *Image
	if err := nilImg.Validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("nil image: expected ErrInvalidDimensions, got %v", err)
	}

	img := &Image{Rows: 2, Cols: 2, Channels: 1, Pix: make([]uint8, 3)}
	if err := img.Validate(); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("short pix: expected ErrDimensionMismatch, got %v", err)
	}
}

func TestInterleavedLayout(t *testing.T) {
	img, err := New(2, 3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img.Set(1, 2, 1, 99)
	if got := img.Pix[(1*3+2)*3+1]; got != 99 {
		t.Fatalf("Pix at (1,2,1) = %d, want 99", got)
	}
	if got := img.At(1, 2, 1); got != 99 {
		t.Fatalf("At(1,2,1) = %d, want 99", got)
	}
}

func TestSampleClampsEachAxis(t *testing.T) {
	img, _ := New(3, 4, 1)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			img.Set(i, j, 0, uint8(i*10+j))
		}
	}

	tests := []struct {
		name         string
		i, j         int
		wantI, wantJ int
	}{
		{"inside", 1, 2, 1, 2},
		{"above", -5, 2, 0, 2},
		{"below", 9, 1, 2, 1},
		{"left", 1, -1, 1, 0},
		{"right", 1, 4, 1, 3},
		{"top-left corner", -2, -2, 0, 0},
		{"bottom-right corner", 3, 4, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ri, rj := img.Resolve(tt.i, tt.j)
			if ri != tt.wantI || rj != tt.wantJ {
				t.Fatalf("Resolve(%d,%d) = (%d,%d), want (%d,%d)", tt.i, tt.j, ri, rj, tt.wantI, tt.wantJ)
			}
			if got, want := img.Sample(tt.i, tt.j, 0), img.At(tt.wantI, tt.wantJ, 0); got != want {
				t.Fatalf("Sample(%d,%d) = %d, want %d", tt.i, tt.j, got, want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	img, _ := New(2, 2, 3)
	img.Pix[0] = 5

	c := img.Clone()
	c.Pix[0] = 6
	if img.Pix[0] != 5 {
		t.Fatal("Clone shares storage with the original")
	}
	if !c.SameShape(img) {
		t.Fatal("Clone changed shape")
	}
}

func TestPlane(t *testing.T) {
	img, _ := New(1, 2, 2)
	copy(img.Pix, []uint8{1, 2, 3, 4})

	got := img.Plane(nil, 1)
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("Plane(1) = %v, want [2 4]", got)
	}
}

func TestImageRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 0xff})

	img, err := FromImage(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Rows != 2 || img.Cols != 3 || img.Channels != RGB {
		t.Fatalf("shape = %dx%dx%d, want 2x3x3", img.Rows, img.Cols, img.Channels)
	}
	if img.At(1, 2, 0) != 10 || img.At(1, 2, 1) != 20 || img.At(1, 2, 2) != 30 {
		t.Fatalf("pixel (1,2) = %v", img.Pix[img.Offset(1, 2):img.Offset(1, 2)+3])
	}

	back := img.ToRGBA()
	if got := back.RGBAAt(2, 1); got != (color.RGBA{R: 10, G: 20, B: 30, A: 0xff}) {
		t.Fatalf("RGBAAt(2,1) = %v", got)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.Set(6, 5, color.NRGBA{R: 200, G: 100, B: 50, A: 0xff})

	img, err := FromImage(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Rows != 1 || img.Cols != 2 {
		t.Fatalf("shape = %dx%d, want 1x2", img.Rows, img.Cols)
	}
	if img.At(0, 1, 0) != 200 || img.At(0, 1, 2) != 50 {
		t.Fatalf("pixel (0,1) = %v", img.Pix[3:6])
	}
}

func TestGrayRoundTrip(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.SetGray(1, 0, color.Gray{Y: 77})

	img, err := FromGray(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Channels != 1 || img.At(0, 1, 0) != 77 {
		t.Fatalf("FromGray: %+v", img)
	}

	back, err := img.ToGray(0)
	if err != nil {
		t.Fatalf("ToGray: %v", err)
	}
	if back.GrayAt(1, 0).Y != 77 {
		t.Fatalf("ToGray lost value: %v", back.Pix)
	}
}

func TestToGrayChannelOutOfRange(t *testing.T) {
	img, _ := New(2, 2, 3)
	for _, c := range []int{-1, 3, 4} {
		if _, err := img.ToGray(c); !errors.Is(err, ErrInvalidChannel) {
			t.Fatalf("ToGray(%d): expected ErrInvalidChannel, got %v", c, err)
		}
	}
	if _, err := img.ToGray(2); err != nil {
		t.Fatalf("ToGray(2): %v", err)
	}
}

func TestPlaneReusesBuffer(t *testing.T) {
	img, _ := New(2, 2, 1)
	copy(img.Pix, []uint8{1, 2, 3, 4})

	buf := make([]float64, 0, 8)
	got := img.Plane(buf, 0)
	if &got[:1][0] != &buf[:1][0] {
		t.Fatal("Plane allocated despite sufficient capacity")
	}
	if got[3] != 4 {
		t.Fatalf("Plane(0)[3] = %v, want 4", got[3])
	}
}
