package raster

import (
	"image"
)

// Buffer is an immutable RGBA snapshot of an image.
//
// A Buffer is built once per extraction via FromImage and never modified
// afterwards. Pixel data is stored as a flat byte slice, 4 bytes per pixel
// in RGBA order, row-major from the top-left corner.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// FromImage copies the pixels of img into a new Buffer.
//
// The source image's bounds origin is normalized away: Buffer coordinates
// always start at (0, 0) regardless of img.Bounds().Min.
//
// *image.RGBA and *image.NRGBA sources are copied row by row; other image
// types fall back to the generic At() accessor with 16-bit to 8-bit
// conversion.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	b := &Buffer{
		width:  w,
		height: h,
		pix:    make([]uint8, w*h*4),
	}

	switch src := img.(type) {
	case *image.RGBA:
		for y := 0; y < h; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(b.pix[y*w*4:(y+1)*w*4], src.Pix[off:off+w*4])
		}
	case *image.NRGBA:
		// Non-premultiplied layout matches what extraction needs; copy as-is.
		for y := 0; y < h; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(b.pix[y*w*4:(y+1)*w*4], src.Pix[off:off+w*4])
		}
	default:
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, bl, a := img.At(x, y).RGBA()
				b.pix[i] = uint8(r >> 8)
				b.pix[i+1] = uint8(g >> 8)
				b.pix[i+2] = uint8(bl >> 8)
				b.pix[i+3] = uint8(a >> 8)
				i += 4
			}
		}
	}

	return b
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Contains reports whether (x, y) lies inside the buffer.
func (b *Buffer) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// PixelAt returns the RGBA channels of the pixel at (x, y).
// The caller must ensure the coordinate is in bounds.
func (b *Buffer) PixelAt(x, y int) (r, g, bl, a uint8) {
	i := (y*b.width + x) * 4
	return b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3]
}

// RGBAt returns the color channels at (x, y) as an RGB value, dropping alpha.
func (b *Buffer) RGBAt(x, y int) RGB {
	i := (y*b.width + x) * 4
	return RGB{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2]}
}
