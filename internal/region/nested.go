package region

// FilterNested removes holes contained within other holes.
//
// Regions render with the even-odd fill rule, under which a hole nested
// inside another hole would cancel back to filled and look wrong on the
// canvas. Only top-level holes are kept. Containment is tested by ray
// casting the candidate hole's first vertex against every other hole.
func FilterNested(holes [][]Vertex) [][]Vertex {
	if len(holes) <= 1 {
		return holes
	}

	kept := make([][]Vertex, 0, len(holes))
	for i, hole := range holes {
		if len(hole) == 0 {
			continue
		}
		nested := false
		for j, other := range holes {
			if i == j {
				continue
			}
			if pointInPolygon(hole[0], other) {
				nested = true
				break
			}
		}
		if !nested {
			kept = append(kept, hole)
		}
	}
	return kept
}

// pointInPolygon reports whether p lies inside poly using the ray-casting
// parity test: a horizontal ray from p crossing the polygon's edges an odd
// number of times means inside.
func pointInPolygon(p Vertex, poly []Vertex) bool {
	if len(poly) < 3 {
		return false
	}

	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		if (yi > p.Y) != (yj > p.Y) && p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
