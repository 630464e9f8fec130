// Package raster provides the in-memory image type consumed and produced by
// the filters in this module.
//
// An [Image] is a rows × cols grid of pixels with a fixed number of
// interleaved 8-bit channels. Coordinates follow matrix convention: the
// first index is the row, the second the column.
//
// # Border Handling
//
// All neighborhood operations read through [Image.Sample], which resolves
// out-of-bounds coordinates by clamping each axis to the nearest edge
// (edge replication). This is the only boundary policy:
//
//	v := img.Sample(-2, 7, 0) // same as img.At(0, 7, 0) when cols > 7
//
// # Conversion
//
// [FromImage] and [Image.ToRGBA] bridge to the standard image package for
// callers that decode or display images elsewhere. No file formats are
// handled here.
package raster
