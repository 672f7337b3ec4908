package region

import (
	"errors"

	"github.com/ironsheep/garden-regions/internal/raster"
)

// ErrNoRegionFound indicates the flood fill produced fewer than 3 pixels:
// the tolerance is too low for the surrounding colors, or the seed pixel is
// isolated. The caller should prompt for an adjusted tolerance.
var ErrNoRegionFound = errors.New("no region found around seed")

// ErrDegenerateRegion indicates boundary tracing and simplification could
// not produce a usable polygon of at least 3 vertices.
var ErrDegenerateRegion = errors.New("region boundary is degenerate")

// Options configures one extraction. All thresholds are exposed rather
// than embedded so the engine stays testable across image scales.
type Options struct {
	// Tolerance is the color similarity tolerance in [0, 255].
	Tolerance int

	// MaxPixels is the flood-fill pixel budget. Hitting it truncates the
	// fill and sets Region.Partial.
	MaxPixels int

	// CompareMode selects the similarity predicate (RGB box or Lab).
	CompareMode raster.CompareMode

	// SimplifyEpsilon is the RDP tolerance, in pixel units, applied to the
	// outer contour and hole contours.
	SimplifyEpsilon float64

	// PresampleLimit bounds contour length before RDP. Zero means the
	// default of DefaultPresampleLimit points.
	PresampleLimit int

	// Holes carries the hole-detection thresholds.
	Holes HoleOptions
}

// DefaultOptions returns sensible defaults for extraction from a
// full-resolution reference photo.
func DefaultOptions() Options {
	return Options{
		Tolerance:       32,
		MaxPixels:       200000,
		CompareMode:     raster.CompareRGB,
		SimplifyEpsilon: 2.0,
		Holes:           DefaultHoleOptions(),
	}
}

// Extract derives the region of similarly-colored pixels around a seed.
//
// It is a pure function from (raster, seed, parameters) to a Region or an
// error; nothing is rendered, persisted, or cached. The exclude list holds
// existing canvas polygons (same pixel coordinate space as buf) that the
// new region must not overlap; pass nil to allow overlap.
//
// Failure taxonomy, all surfaced as wrapped sentinel errors:
//   - ErrOutOfBounds / ErrSeedExcluded: invalid seed.
//   - ErrNoRegionFound: flood fill matched fewer than 3 pixels.
//   - ErrDegenerateRegion: no usable outer polygon could be traced.
//
// A flood fill that hits its pixel budget is NOT an error; the Region is
// returned with Partial set so the caller can flag the result as likely
// incomplete. Holes below the size thresholds and holes nested in other
// holes are silently dropped (documented policy).
func Extract(buf *raster.Buffer, seedX, seedY int, exclude [][]Vertex, opts Options) (*Region, error) {
	var excluded []bool
	if len(exclude) > 0 {
		excluded = RasterizePolygons(buf.Width(), buf.Height(), exclude)
	}

	mask, truncated, err := FloodFill(buf, seedX, seedY, opts.Tolerance, opts.MaxPixels, opts.CompareMode, excluded)
	if err != nil {
		return nil, err
	}
	if mask.Count() < 3 {
		return nil, ErrNoRegionFound
	}

	contour, err := TraceBoundary(mask)
	if err != nil {
		return nil, err
	}

	raw := contourVertices(contour)
	outer := Simplify(raw, opts.SimplifyEpsilon, opts.PresampleLimit)
	outer = dropClosingVertex(outer, opts.SimplifyEpsilon)
	if len(outer) < 3 {
		// Simplification collapsed the boundary; fall back to the raw trace.
		outer = raw
	}
	if len(outer) < 3 {
		return nil, ErrDegenerateRegion
	}

	holeOpts := opts.Holes
	if holeOpts.SimplifyEpsilon == 0 {
		holeOpts.SimplifyEpsilon = opts.SimplifyEpsilon
	}
	if holeOpts.PresampleLimit == 0 {
		holeOpts.PresampleLimit = opts.PresampleLimit
	}
	holes := FilterNested(DetectHoles(mask, holeOpts))

	return &Region{
		Outer:   outer,
		Holes:   holes,
		Partial: truncated,
	}, nil
}
