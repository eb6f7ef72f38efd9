// SPDX-License-Identifier: MIT

package geometry

import "math"

// DirectedHausdorff returns D(a, b): for every point of a, the distance to
// the closest point on any segment of b; D is the largest of these minima.
//
// A single-point polyline b is measured as one zero-length segment.
// Two empty polylines are at distance 0; if only one is empty the result is
// ErrEmptyPolyline.
//
// Complexity: O(|a|·|b|).
func DirectedHausdorff(a, b Polyline) (float64, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}
	return directed(a, b), nil
}

// Hausdorff returns max(D(a, b), D(b, a)), the symmetric Hausdorff distance
// between two polylines. It tolerates different sampling densities while
// penalizing genuine shape or position divergence.
//
// Errors:
//   - ErrEmptyPolyline:     exactly one polyline is empty.
//   - ErrDimensionMismatch: points do not share one dimension.
func Hausdorff(a, b Polyline) (float64, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}
	return math.Max(directed(a, b), directed(b, a)), nil
}

// check validates emptiness and dimensions for a pair of polylines.
func check(a, b Polyline) error {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyPolyline
	}
	dim := a.Dim()
	if err := a.validate(dim); err != nil {
		return err
	}
	return b.validate(dim)
}

// directed assumes both polylines are non-empty and share one dimension.
func directed(a, b Polyline) float64 {
	var worst float64
	for _, p := range a {
		best := math.Inf(1)
		if len(b) == 1 {
			best = dist(p, b[0])
		}
		for j := 1; j < len(b); j++ {
			if d := pointSegment(p, b[j-1], b[j]); d < best {
				best = d
			}
		}
		if best > worst {
			worst = best
		}
	}
	return worst
}
