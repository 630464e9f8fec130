package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-raster/raster"
)

// Uniform returns an image whose samples all equal v.
func Uniform(rows, cols, channels int, v uint8) *raster.Image {
	img := mustNew(rows, cols, channels)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// DeterministicNoise returns an image of uniformly distributed samples from
// a fixed seed.
func DeterministicNoise(seed int64, rows, cols, channels int) *raster.Image {
	img := mustNew(rows, cols, channels)
	rng := rand.New(rand.NewSource(seed))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	return img
}

// Gradient returns a diagonal ramp: channel c at (i, j) is
// (i*step + j*step + c*32) mod 256.
func Gradient(rows, cols, channels, step int) *raster.Image {
	img := mustNew(rows, cols, channels)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			for c := 0; c < channels; c++ {
				img.Set(i, j, c, uint8((i*step+j*step+c*32)%256))
			}
		}
	}
	return img
}

// Impulse returns a zero image with value v at (i, j) in every channel.
func Impulse(rows, cols, channels, i, j int, v uint8) *raster.Image {
	img := mustNew(rows, cols, channels)
	for c := 0; c < channels; c++ {
		img.Set(i, j, c, v)
	}
	return img
}

// VerticalEdge returns an image that is lo left of column edge and hi from
// column edge onward.
func VerticalEdge(rows, cols, channels, edge int, lo, hi uint8) *raster.Image {
	img := mustNew(rows, cols, channels)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := lo
			if j >= edge {
				v = hi
			}
			for c := 0; c < channels; c++ {
				img.Set(i, j, c, v)
			}
		}
	}
	return img
}

func mustNew(rows, cols, channels int) *raster.Image {
	img, err := raster.New(rows, cols, channels)
	if err != nil {
		panic(err)
	}
	return img
}
