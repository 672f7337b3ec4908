package region

// Mask is a set of filled pixels over a width x height grid, stored densely
// as one bool per pixel at flat index x + y*width.
//
// A Mask is built once by a flood fill and read-only afterwards; it is
// owned exclusively by the extraction call that created it.
type Mask struct {
	Width  int
	Height int

	filled []bool
	count  int
}

// NewMask creates an empty mask for a width x height grid.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		filled: make([]bool, width*height),
	}
}

// Add marks the pixel at flat index idx as filled.
// Adding an already-filled pixel is a no-op.
func (m *Mask) Add(idx int) {
	if !m.filled[idx] {
		m.filled[idx] = true
		m.count++
	}
}

// Contains reports whether (x, y) is filled. Coordinates outside the grid
// are never filled.
func (m *Mask) Contains(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.filled[y*m.Width+x]
}

// ContainsIndex reports whether the pixel at flat index idx is filled.
func (m *Mask) ContainsIndex(idx int) bool {
	return m.filled[idx]
}

// Count returns the number of filled pixels.
func (m *Mask) Count() int { return m.count }
