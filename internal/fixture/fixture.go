// SPDX-License-Identifier: MIT

// Package fixture builds small deterministic trees for tests across
// rootmatch packages.
//
// Purpose:
//   - One place for the reference discrete tree and its expected continuous form.
//   - Builders for discrete axes (segment chains) and continuous axes (polylines).
//   - A seeded random discrete tree generator for round-trip properties.
package fixture

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rootmatch/geometry"
	"github.com/katalvlaran/rootmatch/mtg"
	"github.com/stretchr/testify/require"
)

// Simple holds the reference tree and the identifiers of its nodes.
//
//	a1: (1,1,0) (1,2,0) (1,3,0) (1,4,0)
//	a2: branches at a1 segment 2 → (0,2,0) (0,3,0)
//	a3: branches at a1 segment 3 → (2,3,0)
type Simple struct {
	Tree       *mtg.Tree
	Plant      mtg.NodeID
	A1, A2, A3 mtg.NodeID
}

// SimpleDiscrete builds the reference tree in discrete encoding.
func SimpleDiscrete(tb testing.TB) Simple {
	tb.Helper()
	t := mtg.New()
	p, err := t.AddComponent(t.Root())
	require.NoError(tb, err)

	a1, err := t.AddComponent(p)
	require.NoError(tb, err)
	s1 := DiscreteAxis(tb, t, a1, mtg.NoNode, []geometry.Point{{1, 1, 0}, {1, 2, 0}, {1, 3, 0}, {1, 4, 0}})

	a2, err := t.AddChild(a1, mtg.WithEdge(mtg.EdgeBranch))
	require.NoError(tb, err)
	DiscreteAxis(tb, t, a2, s1[1], []geometry.Point{{0, 2, 0}, {0, 3, 0}})

	a3, err := t.AddChild(a1, mtg.WithEdge(mtg.EdgeBranch))
	require.NoError(tb, err)
	DiscreteAxis(tb, t, a3, s1[2], []geometry.Point{{2, 3, 0}})

	return Simple{Tree: t, Plant: p, A1: a1, A2: a2, A3: a3}
}

// SimpleGeometry returns the expected continuous geometry of the reference tree.
func SimpleGeometry(s Simple) map[mtg.NodeID]geometry.Polyline {
	return map[mtg.NodeID]geometry.Polyline{
		s.A1: {{1, 1, 0}, {1, 2, 0}, {1, 3, 0}, {1, 4, 0}},
		s.A2: {{1, 2, 0}, {0, 2, 0}, {0, 3, 0}},
		s.A3: {{1, 3, 0}, {2, 3, 0}},
	}
}

// DiscreteAxis appends a segment chain to axis. When branchFrom is a
// segment of another axis, the first segment is attached to it with a '+'
// edge. It returns the segment identifiers in chain order.
func DiscreteAxis(tb testing.TB, t *mtg.Tree, axis, branchFrom mtg.NodeID, pts []geometry.Point) []mtg.NodeID {
	tb.Helper()
	if len(pts) == 0 {
		return nil
	}
	first, err := t.AddComponent(axis, mtg.WithPosition(pts[0]))
	require.NoError(tb, err)
	if branchFrom != mtg.NoNode {
		require.NoError(tb, t.AttachChild(branchFrom, first, mtg.EdgeBranch))
	}
	segs := []mtg.NodeID{first}
	for _, p := range pts[1:] {
		next, err := t.AddChild(segs[len(segs)-1], mtg.WithPosition(p))
		require.NoError(tb, err)
		segs = append(segs, next)
	}
	return segs
}

// ContinuousAxis adds an axis carrying geometry pl. With parent == NoNode
// the axis is a primary axis of plant; otherwise it is a lateral of parent.
// A non-negative parentNode is stored as the branching index.
func ContinuousAxis(tb testing.TB, t *mtg.Tree, plant, parent mtg.NodeID, pl geometry.Polyline, parentNode int) mtg.NodeID {
	tb.Helper()
	opts := []mtg.NodeOption{mtg.WithGeometry(pl)}
	if parentNode >= 0 {
		opts = append(opts, mtg.WithParentNode(parentNode))
	}
	var (
		id  mtg.NodeID
		err error
	)
	if parent == mtg.NoNode {
		id, err = t.AddComponent(plant, opts...)
	} else {
		id, err = t.AddChild(parent, append(opts, mtg.WithEdge(mtg.EdgeBranch))...)
	}
	require.NoError(tb, err)
	return id
}

// Plant adds an empty plant to t.
func Plant(tb testing.TB, t *mtg.Tree) mtg.NodeID {
	tb.Helper()
	p, err := t.AddComponent(t.Root())
	require.NoError(tb, err)
	return p
}

// RandomDiscrete builds a discrete tree with up to maxPlants plants, each
// with a primary axis and laterals branching at random segments, to depth 3.
// The same seed always yields the same tree.
func RandomDiscrete(tb testing.TB, seed int64, maxPlants int) *mtg.Tree {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	t := mtg.New()
	n := 1 + rng.Intn(maxPlants)
	for p := 0; p < n; p++ {
		plant := Plant(tb, t)
		axis, err := t.AddComponent(plant)
		require.NoError(tb, err)
		origin := geometry.Point{float64(p) * 10, 0, 0}
		segs := DiscreteAxis(tb, t, axis, mtg.NoNode, randomWalk(rng, origin, 2+rng.Intn(6)))
		grow(tb, rng, t, axis, segs, 1)
	}
	return t
}

func grow(tb testing.TB, rng *rand.Rand, t *mtg.Tree, axis mtg.NodeID, segs []mtg.NodeID, depth int) {
	if depth > 3 || len(segs) == 0 {
		return
	}
	for k := rng.Intn(3); k > 0; k-- {
		at := segs[rng.Intn(len(segs))]
		lat, err := t.AddChild(axis, mtg.WithEdge(mtg.EdgeBranch))
		require.NoError(tb, err)
		start := t.Node(at).Position
		kid := DiscreteAxis(tb, t, lat, at, randomWalk(rng, start, 1+rng.Intn(4)))
		grow(tb, rng, t, lat, kid, depth+1)
	}
}

// randomWalk returns n points stepping away from start (start excluded).
func randomWalk(rng *rand.Rand, start geometry.Point, n int) []geometry.Point {
	pts := make([]geometry.Point, 0, n)
	cur := start.Clone()
	for i := 0; i < n; i++ {
		next := geometry.Point{cur[0] + rng.Float64() - 0.5, cur[1] + rng.Float64(), cur[2] + rng.Float64() - 0.5}
		pts = append(pts, next)
		cur = next
	}
	return pts
}
