// SPDX-License-Identifier: MIT

package geometry

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	return dist(a, b), nil
}

// PointSegmentDistance returns the distance from p to the closest point of
// segment [a, b]. The closest point is the orthogonal projection of p onto
// the segment line, clamped to the segment extent.
func PointSegmentDistance(p, a, b Point) (float64, error) {
	if len(p) != len(a) || len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	return pointSegment(p, a, b), nil
}

// dist is Distance without the dimension check.
func dist(a, b Point) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}

// pointSegment is PointSegmentDistance without the dimension check.
//
//	u = (b-a)/max(|b-a|, MinSegmentLength)
//	t = clamp((p-a)·u, 0, |b-a|)
//	d = |p - (a + t·u)|
func pointSegment(p, a, b Point) float64 {
	var seg float64
	for i := range a {
		d := b[i] - a[i]
		seg += d * d
	}
	seg = math.Sqrt(seg)
	norm := math.Max(seg, MinSegmentLength)

	var t float64
	for i := range a {
		t += (p[i] - a[i]) * (b[i] - a[i]) / norm
	}
	if t < 0 {
		t = 0
	} else if t > seg {
		t = seg
	}

	var s float64
	for i := range a {
		c := a[i] + t*(b[i]-a[i])/norm
		d := p[i] - c
		s += d * d
	}
	return math.Sqrt(s)
}
