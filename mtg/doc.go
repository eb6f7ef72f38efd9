// SPDX-License-Identifier: MIT

// Package mtg defines the multi-scale tree graph (MTG) that every other
// rootmatch package operates on.
//
// A Tree is an arena of nodes addressed by integer NodeID. Links are stored
// as identifiers, never as pointers:
//
//   - Parent:  same-scale parent (axis → axis, segment → segment), NoNode for roots.
//   - Complex: container one scale coarser (segment → axis → plant → scene).
//
// Scales:
//
//	Scene (0) ── Plant (1) ── Axis (2) ── Segment (3, discrete encoding only)
//
// Edge types follow MTG conventions: '/' decomposition (first component of a
// complex), '<' successor (next segment of the same axis), '+' branch (first
// node of a lateral).
//
// Determinism:
//   - Children and Components keep insertion order.
//   - Vertices(scale) returns IDs ascending.
//
// Concurrency:
//   - A Tree is not safe for concurrent mutation. Callers that convert or
//     re-convert the same tree from several goroutines must serialize access,
//     or work on Clone()s.
package mtg
