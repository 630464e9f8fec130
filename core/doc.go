// Package core holds the small numeric helpers and processing options shared
// by the raster, kernel, spatial and filter packages.
//
// Filters in this module take their tuning through [ProcessorOption] values:
//
//	out, err := filter.Gaussian(img, 5, core.WithWorkers(4))
//	out, err := spatial.Apply(img, k, core.WithStrategy(core.StrategyFFT))
//
// Options with invalid values are ignored and the default is kept.
package core
