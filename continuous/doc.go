// SPDX-License-Identifier: MIT

// Package continuous converts a tree between its two encodings, in place.
//
//   - Discrete: every axis is a chain of Segment nodes ('<' successors), the
//     first segment of a lateral hanging on a segment of its parent axis ('+').
//   - Continuous: every axis carries a Geometry polyline; a lateral carries
//     ParentNode, the index of its branch point in the parent geometry, and
//     that point is repeated as the first point of its own geometry.
//
// Both directions follow one rule: compute the full visit order first, then
// mutate. DiscreteToContinuous walks axes in reverse topological order so
// that removing a segment chain never removes segments of an axis still to
// be processed; ContinuousToDiscrete walks forward so a parent axis is
// rebuilt before any lateral attaches to it.
//
// A failed conversion returns a *ConversionError and leaves the tree
// partially converted; convert a Clone when the original must survive.
package continuous
