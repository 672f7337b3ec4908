package region

import "errors"

// ErrEmptyMask indicates boundary tracing was asked to trace a mask with no
// filled pixels.
var ErrEmptyMask = errors.New("cannot trace empty mask")

// mooreOffsets lists the 8 neighbors of a pixel in clockwise order
// (screen coordinates, y grows downward), starting due east.
var mooreOffsets = [8]Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// TraceBoundary walks the outer boundary of a filled mask and returns it as
// an ordered closed contour, using Moore-Neighbor tracing.
//
// The start pixel is the filled pixel with the smallest (y, x), top row
// first then leftmost, whose pixel directly above is unfilled or
// off-grid. From there the tracer repeatedly scans the 8 neighbors of the
// current pixel clockwise, resuming just past the direction it arrived
// from, and steps to the first filled neighbor it finds.
//
// The trace is complete when it steps back onto the start pixel after
// recording at least 2 points. A safety cap of 4x the mask size bounds the
// walk on pathological topologies (single-pixel-wide spurs can revisit
// pixels); if the cap is hit the partial contour accumulated so far is
// returned rather than an error. Callers must still check that the contour
// has at least 3 points before using it as a polygon.
//
// An isolated pixel with no filled neighbor yields a one-point contour.
func TraceBoundary(m *Mask) (Contour, error) {
	if m.Count() == 0 {
		return nil, ErrEmptyMask
	}

	start, ok := findStartPixel(m)
	if !ok {
		return nil, ErrEmptyMask
	}

	contour := Contour{start}
	current := start
	look := 0
	maxSteps := 4 * m.Count()

	for step := 0; step < maxSteps; step++ {
		next, dir, found := nextBoundaryPixel(m, current, look)
		if !found {
			// Isolated pixel: nothing to walk to.
			break
		}
		if next == start && len(contour) >= 2 {
			return contour, nil
		}
		contour = append(contour, next)
		current = next
		look = dir
	}

	return contour, nil
}

// findStartPixel returns the filled pixel with smallest (y, x) whose
// northern neighbor is unfilled or off-grid.
func findStartPixel(m *Mask) (Point, bool) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Contains(x, y) && !m.Contains(x, y-1) {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// nextBoundaryPixel scans the Moore neighborhood of p clockwise starting at
// (look+5) mod 8, where look is the offset index of the previous move. That
// start position is one step clockwise past the backtrack direction, so the
// scan sweeps the exterior side first and hugs the boundary instead of
// cutting into the mask interior. Returns the first filled neighbor along
// with the offset index it was found at.
func nextBoundaryPixel(m *Mask, p Point, look int) (Point, int, bool) {
	for k := 0; k < 8; k++ {
		i := (look + 5 + k) % 8
		n := Point{X: p.X + mooreOffsets[i].X, Y: p.Y + mooreOffsets[i].Y}
		if m.Contains(n.X, n.Y) {
			return n, i, true
		}
	}
	return Point{}, 0, false
}
