// SPDX-License-Identifier: MIT

package geometry

// Length returns the sum of segment lengths along pl. Polylines with fewer
// than two points have length 0.
func Length(pl Polyline) (float64, error) {
	cum, err := CumulativeLength(pl)
	if err != nil || len(cum) == 0 {
		return 0, err
	}
	return cum[len(cum)-1], nil
}

// CumulativeLength returns the arc length from pl[0] to each point:
// out[0] = 0 and out[i] = out[i-1] + |pl[i] - pl[i-1]|.
func CumulativeLength(pl Polyline) ([]float64, error) {
	if len(pl) == 0 {
		return nil, nil
	}
	if err := pl.validate(pl.Dim()); err != nil {
		return nil, err
	}
	out := make([]float64, len(pl))
	for i := 1; i < len(pl); i++ {
		out[i] = out[i-1] + dist(pl[i-1], pl[i])
	}
	return out, nil
}

// Mean returns the coordinate-wise mean of pts.
func Mean(pts []Point) (Point, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyPolyline
	}
	if err := Polyline(pts).validate(len(pts[0])); err != nil {
		return nil, err
	}
	out := make(Point, len(pts[0]))
	for _, p := range pts {
		for i, v := range p {
			out[i] += v
		}
	}
	n := float64(len(pts))
	for i := range out {
		out[i] /= n
	}
	return out, nil
}
