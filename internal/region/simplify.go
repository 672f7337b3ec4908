package region

import "math"

// DefaultPresampleLimit is the point count above which Simplify uniformly
// subsamples its input before running Ramer-Douglas-Peucker.
const DefaultPresampleLimit = 2000

// Simplify reduces the vertex count of a polyline using the
// Ramer-Douglas-Peucker algorithm: any point within epsilon perpendicular
// distance of the chord between its neighbors' survivors is dropped.
//
// Inputs longer than presampleLimit are first uniformly subsampled down to
// exactly that many points (output index i maps to input index
// floor(i*n/limit), with the final sample pinned to the last input point).
// This bounds RDP's worst-case quadratic blowup on very long traced
// contours, at a cost: points dropped during pre-sampling carry no
// epsilon-deviation guarantee. Pass presampleLimit <= 0 to use
// DefaultPresampleLimit.
//
// The first and last input points always survive. Inputs of 2 or fewer
// points are returned unchanged.
func Simplify(points []Vertex, epsilon float64, presampleLimit int) []Vertex {
	if len(points) <= 2 {
		return points
	}
	if presampleLimit <= 0 {
		presampleLimit = DefaultPresampleLimit
	}
	if len(points) > presampleLimit {
		sampled := make([]Vertex, presampleLimit)
		for i := 0; i < presampleLimit; i++ {
			sampled[i] = points[i*len(points)/presampleLimit]
		}
		// The index map never lands on the final input point; pin it so
		// the endpoints survive sampling as well as RDP.
		sampled[presampleLimit-1] = points[len(points)-1]
		points = sampled
	}
	return douglasPeucker(points, epsilon)
}

// douglasPeucker recursively simplifies points between the first and last
// entries. Recursion depth is bounded by the pre-sampled input length.
func douglasPeucker(points []Vertex, epsilon float64) []Vertex {
	if len(points) <= 2 {
		return points
	}

	dmax := 0.0
	index := 0
	end := len(points) - 1

	for i := 1; i < end; i++ {
		d := perpendicularDistance(points[i], points[0], points[end])
		if d > dmax {
			dmax = d
			index = i
		}
	}

	if dmax > epsilon {
		left := douglasPeucker(points[:index+1], epsilon)
		right := douglasPeucker(points[index:], epsilon)

		// Concatenate, dropping the duplicated split point.
		result := make([]Vertex, 0, len(left)+len(right)-1)
		result = append(result, left[:len(left)-1]...)
		result = append(result, right...)
		return result
	}

	return []Vertex{points[0], points[end]}
}

// perpendicularDistance calculates the perpendicular distance from point p
// to the line through a and b. If a and b coincide it degrades to the
// point-to-point distance.
func perpendicularDistance(p, a, b Vertex) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}

	num := math.Abs(dy*p.X - dx*p.Y + b.X*a.Y - b.Y*a.X)
	return num / math.Hypot(dx, dy)
}
