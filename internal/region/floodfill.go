package region

import (
	"errors"
	"fmt"

	"github.com/ironsheep/garden-regions/internal/raster"
)

// ErrOutOfBounds indicates the seed coordinate lies outside the raster.
var ErrOutOfBounds = errors.New("seed outside raster bounds")

// ErrSeedExcluded indicates the seed pixel is covered by the exclusion
// mask, i.e. it already belongs to an existing polygon.
var ErrSeedExcluded = errors.New("seed pixel is excluded")

// FloodFill fills the connected region of pixels similar to the seed color.
//
// The target color is fixed to the seed pixel's color; it is not recomputed
// as the fill spreads. Traversal is 4-connected using an explicit LIFO
// stack (never recursion, which would blow the call stack on large
// contiguous regions). A popped coordinate is skipped if it is out of
// bounds, already filled, excluded, or dissimilar from the target;
// otherwise it joins the mask and its four neighbors are pushed.
//
// Parameters:
//   - buf: the raster to fill over.
//   - seedX, seedY: seed coordinate in raster pixels.
//   - tolerance: similarity tolerance passed to the compare mode.
//   - maxPixels: pixel budget. Traversal stops once this many pixels have
//     been added. This is deliberate truncation, not a failure: the
//     returned mask is valid but may be a proper subset of the true
//     connected region. Which pixels survive truncation depends on stack
//     order and is implementation-defined. A region whose true size equals
//     the budget exactly is complete and not reported truncated.
//   - mode: color comparison predicate (RGB box or Lab distance).
//   - excluded: optional per-pixel exclusion mask (nil means no exclusion).
//     No excluded pixel ever enters the result.
//
// Returns the mask, a flag indicating the budget cut the fill short, and an
// error only for an invalid seed (ErrOutOfBounds, ErrSeedExcluded).
func FloodFill(buf *raster.Buffer, seedX, seedY, tolerance, maxPixels int, mode raster.CompareMode, excluded []bool) (*Mask, bool, error) {
	w, h := buf.Width(), buf.Height()
	if seedX < 0 || seedX >= w || seedY < 0 || seedY >= h {
		return nil, false, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, seedX, seedY, w, h)
	}
	seedIdx := seedY*w + seedX
	if excluded != nil && excluded[seedIdx] {
		return nil, false, fmt.Errorf("%w: (%d,%d)", ErrSeedExcluded, seedX, seedY)
	}

	target := buf.RGBAt(seedX, seedY)
	mask := NewMask(w, h)
	truncated := false

	stack := make([]int, 0, 1024)
	stack = append(stack, seedIdx)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if mask.ContainsIndex(idx) {
			continue
		}
		if excluded != nil && excluded[idx] {
			continue
		}
		x := idx % w
		y := idx / w
		if !raster.Similar(mode, buf.RGBAt(x, y), target, tolerance) {
			continue
		}

		mask.Add(idx)

		if x+1 < w {
			stack = append(stack, idx+1)
		}
		if x > 0 {
			stack = append(stack, idx-1)
		}
		if y+1 < h {
			stack = append(stack, idx+w)
		}
		if y > 0 {
			stack = append(stack, idx-w)
		}

		if mask.Count() >= maxPixels {
			// A region that fits the budget exactly is complete, not
			// truncated. Drain the stack to see whether any admissible
			// pixel was actually left behind.
			for len(stack) > 0 {
				idx := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if mask.ContainsIndex(idx) {
					continue
				}
				if excluded != nil && excluded[idx] {
					continue
				}
				if raster.Similar(mode, buf.RGBAt(idx%w, idx/w), target, tolerance) {
					truncated = true
					break
				}
			}
			break
		}
	}

	return mask, truncated, nil
}
