package region

// Point is a 2D coordinate on the pixel grid.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Contour is an ordered sequence of grid points forming a conceptually
// closed loop. The first point is not repeated at the end. A contour needs
// at least 3 points to be usable as a polygon; shorter contours can occur
// (an isolated pixel traces to a single point) and are discarded by
// callers.
type Contour []Point

// Vertex is a 2D coordinate in continuous pixel space. Simplified polygons
// use float64 vertices so later editing on the canvas is not snapped to the
// pixel grid.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Region is the terminal result of an extraction: a simplified outer
// boundary plus zero or more interior holes, all in raster pixel
// coordinates.
//
// Invariants: Outer and every hole have at least 3 vertices with implicit
// closure (first vertex != last), and holes are pairwise non-nested. A
// Region owns no raster or mask data; those are discarded once extraction
// completes.
type Region struct {
	// Outer is the simplified outer boundary polygon.
	Outer []Vertex `json:"outer"`

	// Holes are enclosed unfilled areas inside the outer boundary, such as
	// islands in a pond. Each is independently simplified.
	Holes [][]Vertex `json:"holes,omitempty"`

	// Partial is set when the flood fill hit its pixel budget. The region
	// is valid but may cover only part of the true connected area.
	Partial bool `json:"partial,omitempty"`
}

// contourVertices converts a grid contour to continuous vertices.
func contourVertices(c Contour) []Vertex {
	vs := make([]Vertex, len(c))
	for i, p := range c {
		vs[i] = Vertex{X: float64(p.X), Y: float64(p.Y)}
	}
	return vs
}
