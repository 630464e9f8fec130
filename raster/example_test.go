package raster_test

import (
	"fmt"

	"github.com/cwbudde/algo-raster/raster"
)

func ExampleImage_Sample() {
	img, _ := raster.New(2, 2, 1)
	copy(img.Pix, []uint8{1, 2, 3, 4})

	// Out-of-bounds reads replicate the nearest edge pixel.
	fmt.Println(img.Sample(-1, -1, 0), img.Sample(0, 5, 0), img.Sample(7, 0, 0), img.Sample(9, 9, 0))

	// Output:
	// 1 2 3 4
}
