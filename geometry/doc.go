// SPDX-License-Identifier: MIT

// Package geometry provides the point and polyline primitives shared by the
// tree model and the matcher.
//
// What it offers:
//   - Point / Polyline: coordinates of any equal dimension (2D and 3D in practice)
//   - PointSegmentDistance: distance to the clamped orthogonal projection on a segment
//   - DirectedHausdorff / Hausdorff: worst-case nearest-point distance between polylines
//   - Length / CumulativeLength / Mean: small aggregations used by measure and matching
//
// Degenerate segments (coincident consecutive points) never divide by zero:
// segment lengths are floored at MinSegmentLength before normalizing.
//
// Complexity:
//
//   - DirectedHausdorff(A, B): O(|A|·|B|)
//   - Hausdorff(A, B):         O(|A|·|B|)
package geometry
