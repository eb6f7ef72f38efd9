// SPDX-License-Identifier: MIT

package geometry

import "errors"

// MinSegmentLength is the floor applied to a segment length before its
// direction vector is normalized.
const MinSegmentLength = 1e-12

var (
	// ErrEmptyPolyline indicates that exactly one of two compared polylines is empty.
	ErrEmptyPolyline = errors.New("geometry: polyline is empty")

	// ErrDimensionMismatch indicates points of different dimension were combined.
	ErrDimensionMismatch = errors.New("geometry: point dimension mismatch")

	// ErrOptionViolation is returned when an invalid WarpOption is supplied.
	ErrOptionViolation = errors.New("geometry: invalid option supplied")
)

// Point is a position in 2D or 3D space. All points combined in one
// operation must share the same dimension.
type Point []float64

// Dim returns the number of coordinates of p.
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	return append(Point(nil), p...)
}

// Equal reports whether p and q have the same dimension and coordinates.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Polyline is an ordered sequence of points tracing an axis from its start
// (or attachment point) to its tip.
type Polyline []Point

// Clone returns a deep copy of pl.
func (pl Polyline) Clone() Polyline {
	if pl == nil {
		return nil
	}
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[i] = p.Clone()
	}
	return out
}

// Dim returns the dimension of the first point, or 0 for an empty polyline.
func (pl Polyline) Dim() int {
	if len(pl) == 0 {
		return 0
	}
	return len(pl[0])
}

// validate checks that every point of pl has dimension dim.
func (pl Polyline) validate(dim int) error {
	for _, p := range pl {
		if len(p) != dim {
			return ErrDimensionMismatch
		}
	}
	return nil
}
