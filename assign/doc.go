// SPDX-License-Identifier: MIT

// Package assign computes one-to-one correspondences over a rectangular
// distance matrix.
//
// Greedy is a nearest-neighbor heuristic: every (i, j) pair is sorted by
// ascending distance and accepted when neither side is used yet and the
// distance does not exceed the cutoff. It does not guarantee a globally
// minimal total distance; branch correspondence is expected to be locally
// unambiguous, which is where the heuristic is exact.
//
// Callers that need a different solver (e.g. a minimum-cost bipartite
// matching) can pass any function of type Assigner in place of Greedy.
//
// ⚙️ Usage:
//
//	d, _ := matrix.NewFromRows([][]float64{{0, 4}, {3, 1}})
//	res, err := assign.Greedy(d, assign.WithMaxDistance(2))
//	// res.Matched == [{0 0 0} {1 1 1}]
//
// Complexity:
//
//   - Time:   O(n·m·log(n·m)) for the sort, O(n·m) for the scan
//   - Memory: O(n·m) candidates + two bitmaps
package assign
