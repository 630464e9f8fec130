// Package filter provides the named spatial filters of this module as plain
// function calls. Each filter validates its arguments before touching any
// pixel, never modifies its input and returns a new image of the same shape.
//
//	blurred, err := filter.Gaussian(img, 5)
//	edges, err := filter.Sobel(img, 3, kernel.Horizontal)
//	clean, err := filter.Median(img, 3, core.WithWorkers(2))
//
// Laplacian-of-Gaussian is computed as two full passes, Gaussian followed
// by Laplacian, so its output equals chaining the two filters by hand.
package filter
