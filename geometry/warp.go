// SPDX-License-Identifier: MIT

package geometry

import "math"

// WarpOption configures WarpDistance.
type WarpOption func(*warpOptions)

type warpOptions struct {
	window  int
	penalty float64
	err     error
}

// WithWindow limits alignments to |i-j| <= w (Sakoe-Chiba band). w <= 0
// means no band.
func WithWindow(w int) WarpOption {
	return func(o *warpOptions) { o.window = w }
}

// WithSlopePenalty adds p to every non-diagonal step. A negative or NaN
// penalty is surfaced as ErrOptionViolation by WarpDistance.
func WithSlopePenalty(p float64) WarpOption {
	return func(o *warpOptions) {
		if p < 0 || math.IsNaN(p) {
			o.err = ErrOptionViolation
			return
		}
		o.penalty = p
	}
}

// WarpDistance returns the dynamic time warping cost between two
// polylines: the minimal sum of point distances over a monotone alignment
// of their points. Unlike Hausdorff it follows the point order, so two
// axes traced in opposite directions are far apart.
//
// Empty polylines follow the Hausdorff rules. A band narrower than the
// length difference leaves no alignment and yields +Inf.
//
// Complexity: O(|a|·|b|) time, O(|b|) memory.
func WarpDistance(a, b Polyline, opts ...WarpOption) (float64, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}
	var o warpOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if o.window > 0 && absInt(i-j) > o.window {
				curr[j] = inf
				continue
			}
			best := math.Min(prev[j-1], math.Min(prev[j], curr[j-1])+o.penalty)
			curr[j] = dist(a[i-1], b[j-1]) + best
		}
		prev, curr = curr, prev
	}
	return prev[m], nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
