package raster

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents an opaque color with 8-bit components.
//
// Each component ranges from 0 to 255. Alpha is deliberately absent: the
// flood-fill similarity predicate ignores transparency, matching how users
// perceive painted areas on a reference photo.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// CompareMode selects the color similarity predicate used by flood fill.
type CompareMode int

const (
	// CompareRGB matches when each of R, G, B differs by at most the
	// tolerance. This is the default mode.
	CompareRGB CompareMode = iota

	// CompareLab matches on perceptual distance in CIE-Lab space, with the
	// tolerance mapped linearly onto the Lab distance range.
	CompareLab
)

// SimilarRGB reports whether colors a and b match under the per-channel box
// test: every one of the R, G, B channels must differ by at most tolerance.
//
// The predicate is reflexive for any tolerance >= 0 and symmetric by
// construction. A per-channel difference equal to the tolerance matches;
// tolerance+1 does not.
func SimilarRGB(a, b RGB, tolerance int) bool {
	return absDiff(a.R, b.R) <= tolerance &&
		absDiff(a.G, b.G) <= tolerance &&
		absDiff(a.B, b.B) <= tolerance
}

// SimilarLab reports whether colors a and b match perceptually.
//
// Both colors are converted to CIE-Lab and compared by Euclidean distance.
// The integer tolerance (0-255) is mapped onto [0, 1], which is roughly the
// range of Lab distances between ordinary colors in go-colorful's
// normalized Lab space. A tolerance of 0 matches only identical colors.
func SimilarLab(a, b RGB, tolerance int) bool {
	if a == b {
		return true
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceLab(cb) <= float64(tolerance)/255
}

// Similar dispatches to the predicate selected by mode.
// Unknown modes fall back to CompareRGB.
func Similar(mode CompareMode, a, b RGB, tolerance int) bool {
	if mode == CompareLab {
		return SimilarLab(a, b, tolerance)
	}
	return SimilarRGB(a, b, tolerance)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
