// SPDX-License-Identifier: MIT

// Package matching finds correspondences between the plants and root axes
// of two continuous trees, typically two observations of the same root
// system at different times.
//
// Matching runs in two levels:
//
//   - Plants: each plant is reduced to a seed, the mean of the first point
//     of its primary axes; seeds are paired by Euclidean distance.
//   - Axes: starting from every matched plant pair, the child axes of each
//     matched pair are paired by Hausdorff distance between geometries (or
//     any Metric given with WithAxisMetric), and each new pair is queued
//     so its own children are compared next.
//
// Both levels delegate the one-to-one selection to an assign.Assigner,
// assign.Greedy by default. An axis can only be matched once its parent
// (axis or plant) has been matched; children of an unmatched axis are
// never visited and never reported.
//
// Inputs must be in continuous encoding (see package continuous). Axes
// without geometry and plants without a seed are kept at +Inf distance and
// end up unmatched.
package matching
