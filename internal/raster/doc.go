// Package raster provides pixel access, loading, and color comparison for
// the region extraction engine.
//
// The central type is Buffer, an immutable RGBA snapshot of a decoded image.
// Extraction algorithms read millions of pixels per call, so Buffer copies
// pixel data into a flat byte slice once instead of going through the
// image.Image interface on every read.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Color Comparison
//
// Two similarity modes are provided:
//   - CompareRGB: per-channel box test. Pixels match when every one of the
//     R, G, B channels differs by at most the tolerance. Alpha is ignored.
//   - CompareLab: perceptual test in CIE-Lab space. Better suited to
//     photographs, where shading pushes RGB channels apart even though the
//     surface reads as one color to the eye.
//
// # Thread Safety
//
// The Cache type is safe for concurrent use. Buffer is immutable after
// construction and may be shared freely.
package raster
