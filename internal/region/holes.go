package region

// HoleOptions configures the thresholds used by DetectHoles. The defaults
// suit full-resolution reference photos; scale them down alongside the
// image when extracting at reduced working resolution.
type HoleOptions struct {
	// MinComponent is the smallest candidate component (in pixels) kept
	// for expansion. Smaller clusters are boundary noise.
	MinComponent int

	// MinHoleSize is the smallest expanded hole (in pixels) reported.
	MinHoleSize int

	// ExpansionCap bounds the flood that grows a candidate component into
	// the full enclosed region. An expansion exceeding the cap is discarded
	// as too large to be a genuine hole.
	ExpansionCap int

	// ExteriorScanCap bounds the corner flood that classifies unfilled
	// pixels as exterior. The effective cap is the smaller of this value
	// and half the pixel count.
	ExteriorScanCap int

	// SimplifyEpsilon is the RDP tolerance applied to traced hole contours.
	SimplifyEpsilon float64

	// PresampleLimit is passed through to Simplify. Zero means the default.
	PresampleLimit int
}

// DefaultHoleOptions returns the thresholds used by the extractor unless
// overridden.
func DefaultHoleOptions() HoleOptions {
	return HoleOptions{
		MinComponent:    20,
		MinHoleSize:     500,
		ExpansionCap:    200000,
		ExteriorScanCap: 500000,
		SimplifyEpsilon: 2.0,
	}
}

// DetectHoles finds enclosed unfilled pockets inside a filled mask and
// returns their simplified contours, in raster pixel coordinates.
//
// A hole is a connected unfilled area that cannot reach the image border
// without crossing filled pixels: an island in a pond, a shed in a lawn.
// Holes nested inside other holes are NOT removed here; see FilterNested.
//
// # Algorithm
//
//  1. Candidate collection: every unfilled pixel 4-adjacent to a filled
//     pixel becomes a hole candidate.
//  2. Exterior marking: a bounded 4-connected flood from all four image
//     corners, stopping at filled pixels, marks everything it reaches as
//     exterior. Interior holes are by definition unreachable from outside
//     the mask, so any candidate reached this way is discarded. This
//     classifies "outside" with purely local computation, without global
//     topology analysis.
//  3. Component grouping: surviving candidates are grouped into
//     4-connected components (candidates only, never crossing the mask),
//     and components below MinComponent are dropped as noise.
//  4. Region expansion: from one seed per surviving component, a flood
//     bounded by the mask grows into the entire enclosed unfilled region.
//     Expansions above ExpansionCap or below MinHoleSize are dropped.
//  5. Tracing: each surviving region is traced from its topmost-leftmost
//     pixel and simplified with SimplifyEpsilon.
//  6. Deduplication: two candidate components bordering the same cavity
//     expand to the same region; holes whose simplified contour starts at
//     an identical first vertex are collapsed to one.
//
// Undersized and oversized holes are silently dropped; this is documented
// policy, not an error condition.
func DetectHoles(m *Mask, opts HoleOptions) [][]Vertex {
	w, h := m.Width, m.Height
	total := w * h
	if total == 0 || m.Count() == 0 {
		return nil
	}

	candidate := collectCandidates(m)
	exterior := markExterior(m, opts.ExteriorScanCap)

	// Interior candidates only.
	for idx := range candidate {
		if candidate[idx] && exterior[idx] {
			candidate[idx] = false
		}
	}

	components := groupCandidates(candidate, w, h)

	var holes [][]Vertex
	seen := make(map[Vertex]bool)

	for _, comp := range components {
		if len(comp) < opts.MinComponent {
			continue
		}

		pixels, ok := expandHole(m, comp[0], opts.ExpansionCap)
		if !ok || len(pixels) < opts.MinHoleSize {
			continue
		}

		holeMask := NewMask(w, h)
		for _, idx := range pixels {
			holeMask.Add(idx)
		}
		contour, err := TraceBoundary(holeMask)
		if err != nil || len(contour) < 3 {
			continue
		}

		simplified := Simplify(contourVertices(contour), opts.SimplifyEpsilon, opts.PresampleLimit)
		simplified = dropClosingVertex(simplified, opts.SimplifyEpsilon)
		if len(simplified) < 3 {
			continue
		}

		if seen[simplified[0]] {
			continue
		}
		seen[simplified[0]] = true
		holes = append(holes, simplified)
	}

	return holes
}

// collectCandidates marks every unfilled pixel that touches a filled pixel
// on one of its 4 sides.
func collectCandidates(m *Mask) []bool {
	w, h := m.Width, m.Height
	candidate := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.Contains(x, y) {
				continue
			}
			if m.Contains(x+1, y) || m.Contains(x-1, y) || m.Contains(x, y+1) || m.Contains(x, y-1) {
				candidate[y*w+x] = true
			}
		}
	}
	return candidate
}

// markExterior floods inward from the four image corners across unfilled
// pixels, marking everything reached as exterior. The flood is 4-connected,
// stops at filled pixels, and visits at most min(cap, w*h/2) pixels.
func markExterior(m *Mask, scanCap int) []bool {
	w, h := m.Width, m.Height
	exterior := make([]bool, w*h)

	limit := w * h / 2
	if scanCap < limit {
		limit = scanCap
	}

	stack := make([]int, 0, 4)
	for _, p := range [4]Point{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		idx := p.Y*w + p.X
		if !m.ContainsIndex(idx) && !exterior[idx] {
			exterior[idx] = true
			stack = append(stack, idx)
		}
	}

	visited := len(stack)
	for len(stack) > 0 && visited < limit {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x := idx % w
		y := idx / w

		for _, d := range [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := x+d.X, y+d.Y
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			nidx := ny*w + nx
			if exterior[nidx] || m.ContainsIndex(nidx) {
				continue
			}
			exterior[nidx] = true
			visited++
			stack = append(stack, nidx)
		}
	}

	return exterior
}

// groupCandidates splits the candidate set into 4-connected components.
// The flood walks candidate pixels only; it never crosses the mask or
// plain unfilled pixels.
func groupCandidates(candidate []bool, w, h int) [][]int {
	visited := make([]bool, len(candidate))
	var components [][]int

	for start, isCand := range candidate {
		if !isCand || visited[start] {
			continue
		}

		comp := []int{start}
		visited[start] = true
		stack := []int{start}

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x := idx % w
			y := idx / w

			for _, d := range [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d.X, y+d.Y
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				nidx := ny*w + nx
				if !candidate[nidx] || visited[nidx] {
					continue
				}
				visited[nidx] = true
				comp = append(comp, nidx)
				stack = append(stack, nidx)
			}
		}

		components = append(components, comp)
	}

	return components
}

// expandHole grows a candidate seed into the entire enclosed unfilled
// region, bounded on all sides by the filled mask. Returns false when the
// expansion exceeds limit pixels, which means the "hole" is open to some
// larger cavity and cannot be trusted.
func expandHole(m *Mask, seed, limit int) ([]int, bool) {
	w, h := m.Width, m.Height
	visited := make([]bool, w*h)
	visited[seed] = true
	pixels := []int{seed}
	stack := []int{seed}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x := idx % w
		y := idx / w

		for _, d := range [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := x+d.X, y+d.Y
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			nidx := ny*w + nx
			if visited[nidx] || m.ContainsIndex(nidx) {
				continue
			}
			visited[nidx] = true
			pixels = append(pixels, nidx)
			if len(pixels) > limit {
				return nil, false
			}
			stack = append(stack, nidx)
		}
	}

	return pixels, true
}

// dropClosingVertex removes a trailing vertex that sits within epsilon of
// the first vertex. Traced contours close implicitly; without this the last
// step of the boundary walk survives simplification as a near-duplicate of
// the starting corner.
func dropClosingVertex(points []Vertex, epsilon float64) []Vertex {
	if len(points) < 2 {
		return points
	}
	first := points[0]
	last := points[len(points)-1]
	dx := last.X - first.X
	dy := last.Y - first.Y
	if dx*dx+dy*dy <= epsilon*epsilon {
		return points[:len(points)-1]
	}
	return points
}
