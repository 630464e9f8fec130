package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromImage converts img to a 3-channel RGB raster. Alpha is discarded
// after compositing over black, matching how draw.Src flattens into RGBA.
func FromImage(img image.Image) (*Image, error) {
	b := img.Bounds()
	out, err := New(b.Dy(), b.Dx(), RGB)
	if err != nil {
		return nil, err
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	for i := 0; i < out.Rows; i++ {
		row := rgba.Pix[i*rgba.Stride:]
		for j := 0; j < out.Cols; j++ {
			o := out.Offset(i, j)
			copy(out.Pix[o:o+RGB], row[j*4:j*4+RGB])
		}
	}
	return out, nil
}

// ToRGBA converts m to an opaque *image.RGBA. One-channel images are
// expanded to gray, images with 3 or more channels use the first three as
// R, G and B. Two-channel images use channel 0 as gray.
func (m *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, m.Cols, m.Rows))
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			o := m.Offset(i, j)
			var c color.RGBA
			if m.Channels >= RGB {
				c = color.RGBA{R: m.Pix[o], G: m.Pix[o+1], B: m.Pix[o+2], A: 0xff}
			} else {
				g := m.Pix[o]
				c = color.RGBA{R: g, G: g, B: g, A: 0xff}
			}
			out.SetRGBA(j, i, c)
		}
	}
	return out
}

// FromGray converts a grayscale image to a 1-channel raster.
func FromGray(img *image.Gray) (*Image, error) {
	b := img.Bounds()
	out, err := New(b.Dy(), b.Dx(), 1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.Rows; i++ {
		copy(out.Pix[i*out.Cols:(i+1)*out.Cols], img.Pix[img.PixOffset(b.Min.X, b.Min.Y+i):])
	}
	return out, nil
}

// ToGray converts channel c of m to a grayscale image. It fails with
// ErrInvalidChannel unless 0 <= c < m.Channels.
func (m *Image) ToGray(c int) (*image.Gray, error) {
	if err := m.validateChannel(c); err != nil {
		return nil, err
	}
	out := image.NewGray(image.Rect(0, 0, m.Cols, m.Rows))
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Pix[i*out.Stride+j] = m.At(i, j, c)
		}
	}
	return out, nil
}
