package raster

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// PrepareOptions configures optional preprocessing applied before a raster
// snapshot is taken.
type PrepareOptions struct {
	// BlurRadius applies a Gaussian blur with the given radius before
	// extraction. Smoothing suppresses sensor noise and JPEG speckle that
	// would otherwise fragment the flood fill or spawn tiny false holes.
	// Zero disables blurring.
	BlurRadius float64

	// MaxDimension caps the working resolution: if either image dimension
	// exceeds it, the image is scaled down (preserving aspect ratio) so the
	// longer side equals MaxDimension. Extraction cost is linear in pixel
	// count, so halving the resolution quarters the work. Zero disables
	// downscaling.
	MaxDimension int
}

// Prepare applies the configured preprocessing steps to img and returns the
// result. With zero-valued options the input is returned unchanged.
//
// Downscaling changes the pixel coordinate space: seeds and polygons passed
// to the extractor must be expressed in the prepared image's coordinates,
// and extracted regions come back in the same space. The caller owns the
// transform back to full resolution.
func Prepare(img image.Image, opts PrepareOptions) image.Image {
	if opts.MaxDimension > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > opts.MaxDimension || bounds.Dy() > opts.MaxDimension {
			img = imaging.Fit(img, opts.MaxDimension, opts.MaxDimension, imaging.Lanczos)
		}
	}
	if opts.BlurRadius > 0 {
		img = blur.Gaussian(img, opts.BlurRadius)
	}
	return img
}
