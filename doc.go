// SPDX-License-Identifier: MIT

// Package rootmatch converts and matches root system architectures captured
// as multi-scale tree graphs (MTG).
//
// A root system is stored as an ordered tree with four scales:
//
//	Scene ─┬─ Plant ─┬─ Axis (root) ─┬─ Segment
//	       │         │               └─ Segment ...
//	       │         └─ Axis ...
//	       └─ Plant ...
//
// Sub-packages:
//
//	mtg/        arena-backed multi-scale tree (nodes, scales, parent/complex links)
//	geometry/   points, polylines, Hausdorff and warping distances
//	matrix/     dense row-major distance matrices
//	assign/     greedy one-to-one assignment under a distance cutoff
//	continuous/ discrete (segment chain) <-> continuous (polyline) conversion
//	matching/   plant-level then axis-level correspondence between two trees
//	measure/    axis lengths, orders, branching positions
//	mtgjson/    JSON node-table documents
//	store/      SQLite persistence and CSV export of match runs
//
// Typical flow:
//
//	t1, _ := mtgjson.ReadFile("day1.json")
//	t2, _ := mtgjson.ReadFile("day2.json")
//	_ = continuous.DiscreteToContinuous(t1)
//	_ = continuous.DiscreteToContinuous(t2)
//	m, err := matching.Match(t1, t2, matching.WithMaxDistance(5))
//	// m.Plants and m.Axes hold the two result levels
//
// Logging is silent by default; see SetLogger.
package rootmatch
