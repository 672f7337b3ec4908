// Package region implements automatic region extraction from raster images.
//
// Given a seed pixel and a color-similarity tolerance, the engine derives a
// closed polygon (with possible interior holes) describing the connected
// area of similarly-colored pixels around the seed. The result is suitable
// as an editable boundary on a planning canvas: a user clicks the lawn on a
// garden photo and gets back a polygon tracing the lawn, with islands such
// as flower beds or pond rocks reported as holes.
//
// # Pipeline
//
// Extract composes the stages in order:
//
//  1. Exclusion mask: existing polygons are rasterized (scanline, even-odd)
//     into a per-pixel mask so a new fill cannot claim already-owned area.
//  2. Flood fill: 4-connected traversal from the seed under the tolerance
//     predicate, bounded by a pixel budget.
//  3. Boundary trace: Moore-Neighbor tracing converts the filled mask into
//     an ordered closed contour.
//  4. Hole detection: enclosed unfilled pockets inside the mask are found
//     and traced; the unbounded exterior is ruled out by flooding inward
//     from the image corners.
//  5. Simplification: Ramer-Douglas-Peucker reduces traced contours
//     (often thousands of points) to an editable vertex count.
//  6. Nested-hole filtering: holes contained in other holes are dropped so
//     the result renders correctly under the even-odd fill rule.
//
// # Bounded Resource Usage
//
// Every potentially unbounded loop carries an explicit pixel or step cap:
// the flood-fill budget, the exterior corner scan, hole expansion, and the
// tracing step limit. Hitting a cap degrades the result (Region.Partial, a
// truncated contour, a dropped hole) but never loops forever. All traversal
// uses explicit stacks, never recursion, so large contiguous fills cannot
// exhaust the call stack.
//
// # Concurrency
//
// One extraction is a single-threaded, synchronous computation. Each call
// allocates its own masks and buffers, so independent extractions may run
// concurrently on different goroutines without locking.
package region
