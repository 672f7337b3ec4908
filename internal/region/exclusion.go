package region

import (
	"math"
	"sort"
)

// RasterizePolygons renders a set of polygons into a boolean per-pixel
// mask: true where a pixel center falls inside any polygon under the
// even-odd rule, false elsewhere. An empty polygon list yields an all-false
// mask.
//
// The mask is used to fence flood fill out of areas already claimed by
// existing canvas polygons, so a new extraction abuts its neighbors instead
// of overlapping them.
//
// Rasterization is standard scanline polygon fill: for each pixel row, the
// crossings of every polygon edge with the row's center line are collected,
// sorted, and filled pairwise. Polygons with fewer than 3 vertices are
// skipped.
func RasterizePolygons(width, height int, polygons [][]Vertex) []bool {
	mask := make([]bool, width*height)
	if len(polygons) == 0 {
		return mask
	}

	crossings := make([]float64, 0, 16)

	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}

		minY, maxY := polyRowSpan(poly, height)
		for y := minY; y <= maxY; y++ {
			cy := float64(y) + 0.5
			crossings = crossings[:0]

			j := len(poly) - 1
			for i := 0; i < len(poly); i++ {
				a, b := poly[j], poly[i]
				j = i
				if (a.Y > cy) == (b.Y > cy) {
					continue
				}
				x := a.X + (cy-a.Y)/(b.Y-a.Y)*(b.X-a.X)
				crossings = append(crossings, x)
			}

			sort.Float64s(crossings)
			for k := 0; k+1 < len(crossings); k += 2 {
				x0 := int(math.Ceil(crossings[k] - 0.5))
				x1 := int(math.Floor(crossings[k+1] - 0.5))
				if x0 < 0 {
					x0 = 0
				}
				if x1 >= width {
					x1 = width - 1
				}
				for x := x0; x <= x1; x++ {
					mask[y*width+x] = true
				}
			}
		}
	}

	return mask
}

// polyRowSpan returns the inclusive range of pixel rows a polygon can
// touch, clamped to the grid.
func polyRowSpan(poly []Vertex, height int) (int, int) {
	minY, maxY := poly[0].Y, poly[0].Y
	for _, v := range poly[1:] {
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	lo := int(math.Floor(minY))
	hi := int(math.Ceil(maxY))
	if lo < 0 {
		lo = 0
	}
	if hi >= height {
		hi = height - 1
	}
	return lo, hi
}
