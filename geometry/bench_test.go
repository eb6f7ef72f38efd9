// SPDX-License-Identifier: MIT

package geometry_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootmatch/geometry"
)

// spiral builds an n-point 3D polyline with a deterministic shape.
func spiral(n int, phase float64) geometry.Polyline {
	pl := make(geometry.Polyline, n)
	for i := 0; i < n; i++ {
		a := float64(i)*0.1 + phase
		pl[i] = geometry.Point{math.Cos(a), math.Sin(a), float64(i) * 0.01}
	}
	return pl
}

func benchmarkHausdorff(b *testing.B, n, m int) {
	a, c := spiral(n, 0), spiral(m, 0.05)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := geometry.Hausdorff(a, c); err != nil {
			b.Fatalf("Hausdorff failed: %v", err)
		}
	}
}

func BenchmarkHausdorff_Small(b *testing.B)  { benchmarkHausdorff(b, 20, 20) }
func BenchmarkHausdorff_Medium(b *testing.B) { benchmarkHausdorff(b, 200, 150) }
