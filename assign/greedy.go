// SPDX-License-Identifier: MIT

package assign

import (
	"fmt"
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring"
	"github.com/katalvlaran/rootmatch/matrix"
)

// candidate is one flattened (i, j) cell of the distance matrix.
type candidate struct {
	i, j int
	d    float64
}

// Greedy selects a one-to-one matching from distance matrix d.
//
// Algorithm:
//  1. Flatten every finite (i, j) cell in row-major order.
//  2. Stable-sort by ascending distance; ties keep row-major order.
//  3. Scan: stop once the distance exceeds the cutoff or either side is
//     fully matched; skip pairs whose row or column is already used;
//     accept the rest.
//  4. Rows and columns never accepted are reported as unmatched.
//
// +Inf entries mean "no edge" and are never accepted. Without
// WithMaxDistance the cutoff is the largest finite entry.
//
// Errors:
//   - ErrNilMatrix, ErrNegativeDistance, ErrNaNDistance, ErrOptionViolation.
//   - index errors from d.At, wrapped.
func Greedy(d matrix.Matrix, opts ...Option) (*Result, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n1, n2 := d.Rows(), d.Cols()
	cands := make([]candidate, 0, n1*n2)
	var i, j int
	for i = 0; i < n1; i++ {
		for j = 0; j < n2; j++ {
			v, err := d.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("assign: read (%d,%d): %w", i, j, err)
			}
			switch {
			case math.IsNaN(v):
				return nil, fmt.Errorf("assign: (%d,%d): %w", i, j, ErrNaNDistance)
			case v < 0:
				return nil, fmt.Errorf("assign: (%d,%d)=%g: %w", i, j, v, ErrNegativeDistance)
			case math.IsInf(v, 1):
				continue
			}
			cands = append(cands, candidate{i: i, j: j, d: v})
		}
	}
	sort.SliceStable(cands, func(a, b int) bool { return cands[a].d < cands[b].d })

	cutoff := o.MaxDistance
	if !o.HasMaxDistance && len(cands) > 0 {
		cutoff = cands[len(cands)-1].d
	}

	rows, cols := roaring.New(), roaring.New()
	res := &Result{}
	for _, c := range cands {
		if c.d > cutoff || int(rows.GetCardinality()) == n1 || int(cols.GetCardinality()) == n2 {
			break
		}
		if rows.Contains(uint32(c.i)) || cols.Contains(uint32(c.j)) {
			continue
		}
		rows.Add(uint32(c.i))
		cols.Add(uint32(c.j))
		res.Matched = append(res.Matched, Pair{I: c.i, J: c.j, Distance: c.d})
	}

	res.UnmatchedRows = complement(rows, n1)
	res.UnmatchedCols = complement(cols, n2)

	return res, nil
}

// complement returns, ascending, the indices in [0, n) absent from used.
func complement(used *roaring.Bitmap, n int) []int {
	all := roaring.New()
	all.AddRange(0, uint64(n))
	all.AndNot(used)
	out := make([]int, 0, all.GetCardinality())
	it := all.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}
