// SPDX-License-Identifier: MIT

package continuous

import (
	"fmt"

	"github.com/katalvlaran/rootmatch"
	"github.com/katalvlaran/rootmatch/geometry"
	"github.com/katalvlaran/rootmatch/mtg"
)

// DiscreteToContinuous replaces the segment chains of t with per-axis
// geometry, in place.
//
// For every axis holding segments, in reverse topological order:
//  1. The single component root segment starts the chain. If its parent
//     lies on the parent axis, that parent's position is the branch point
//     and becomes geometry[0]. A chain hanging on the branch segment of the
//     parent axis branches at index 0; any other owner is a broken chain.
//  2. The '<' chain is walked; each position is appended and its geometry
//     index remembered.
//  3. The chain is removed with RemoveTree.
//
// ParentNode of every lateral is then resolved from the remembered index
// of its branch segment. Axes without segments are left untouched, so a
// continuous tree converts to itself.
//
// Errors: *ConversionError wrapping ErrBrokenChain, ErrCycle,
// ErrMissingPosition or ErrUnresolvedParentNode.
//
// Complexity: O(S + A) for S segments and A axes.
func DiscreteToContinuous(t *mtg.Tree) error {
	log := rootmatch.Logger()
	axes := TopOrder(t, mtg.ScaleAxis)

	index := make(map[mtg.NodeID]int)         // segment → index in its axis geometry
	branch := make(map[mtg.NodeID]mtg.NodeID) // lateral axis → branch segment
	origin := make(map[mtg.NodeID]bool)       // lateral axis branching at index 0
	var laterals []mtg.NodeID

	for i := len(axes) - 1; i >= 0; i-- {
		axis := axes[i]
		if len(t.Components(axis)) == 0 {
			continue
		}
		pl, at, atOrigin, err := collect(t, axis, index)
		if err != nil {
			return err
		}
		if _, err := t.RemoveTree(t.ComponentRoots(axis)[0]); err != nil {
			return &ConversionError{Direction: ToContinuous, Axis: axis, Err: err}
		}
		if err := t.SetGeometry(axis, pl); err != nil {
			return &ConversionError{Direction: ToContinuous, Axis: axis, Err: err}
		}
		t.Node(axis).ParentNode = nil
		if at != mtg.NoNode {
			branch[axis] = at
			origin[axis] = atOrigin
			laterals = append(laterals, axis)
		}
		log.Debug("axis to continuous", "axis", axis, "points", len(pl), "lateral", at != mtg.NoNode)
	}

	// laterals is in reverse topological order; resolve parents first.
	for i := len(laterals) - 1; i >= 0; i-- {
		axis := laterals[i]
		idx, ok := index[branch[axis]]
		if origin[axis] {
			idx, ok = 0, true
		}
		if !ok {
			return &ConversionError{
				Direction: ToContinuous,
				Axis:      axis,
				Detail:    fmt.Sprintf("branch segment %d", branch[axis]),
				Err:       ErrUnresolvedParentNode,
			}
		}
		if err := t.SetParentNode(axis, idx); err != nil {
			return &ConversionError{Direction: ToContinuous, Axis: axis, Err: err}
		}
	}
	return nil
}

// collect walks the segment chain of axis and returns its polyline and the
// branch segment (NoNode for a chain starting at the axis origin). The
// geometry index of every visited segment is recorded in index.
//
// The branch segment must lie on the parent axis, or be the branch segment
// of the parent axis itself: a lateral hanging on its parent's branch point
// branches at index 0 of the parent geometry, reported through origin.
func collect(t *mtg.Tree, axis mtg.NodeID, index map[mtg.NodeID]int) (pl geometry.Polyline, at mtg.NodeID, origin bool, err error) {
	fail := func(detail string, err error) (geometry.Polyline, mtg.NodeID, bool, error) {
		return nil, mtg.NoNode, false, &ConversionError{Direction: ToContinuous, Axis: axis, Detail: detail, Err: err}
	}

	roots := t.ComponentRoots(axis)
	if len(roots) != 1 {
		return fail(fmt.Sprintf("%d chain starts", len(roots)), ErrBrokenChain)
	}
	first := roots[0]

	at = t.Parent(first)
	if at != mtg.NoNode {
		parent := t.Parent(axis)
		if owner := t.Complex(at); owner != parent {
			if !branchesAt(t, parent, at) {
				return fail(fmt.Sprintf("branch segment %d lies on axis %d, parent axis is %d", at, owner, parent), ErrBrokenChain)
			}
			origin = true
		}
		p := t.Node(at).Position
		if len(p) == 0 {
			return fail(fmt.Sprintf("branch segment %d", at), ErrMissingPosition)
		}
		pl = append(pl, p.Clone())
	}

	seen := make(map[mtg.NodeID]bool)
	for cur := first; cur != mtg.NoNode; {
		if seen[cur] {
			return fail(fmt.Sprintf("segment %d revisited", cur), ErrCycle)
		}
		seen[cur] = true
		n := t.Node(cur)
		if len(n.Position) == 0 {
			return fail(fmt.Sprintf("segment %d", cur), ErrMissingPosition)
		}
		index[cur] = len(pl)
		pl = append(pl, n.Position.Clone())

		next := mtg.NoNode
		for _, c := range t.Children(cur) {
			if owner := t.Complex(c); owner != axis {
				return fail(fmt.Sprintf("segment %d carries segment %d of unconverted axis %d", cur, c, owner), ErrBrokenChain)
			}
			if next != mtg.NoNode {
				return fail(fmt.Sprintf("segment %d has several successors", cur), ErrBrokenChain)
			}
			next = c
		}
		cur = next
	}
	if n := len(t.Components(axis)); n != len(seen) {
		return fail(fmt.Sprintf("%d of %d segments on the chain", len(seen), n), ErrBrokenChain)
	}
	return pl, at, origin, nil
}

// branchesAt reports whether the segment chain of axis hangs on seg.
func branchesAt(t *mtg.Tree, axis, seg mtg.NodeID) bool {
	roots := t.ComponentRoots(axis)
	return len(roots) == 1 && t.Parent(roots[0]) == seg
}

type segKey struct {
	axis mtg.NodeID
	idx  int
}

// ContinuousToDiscrete rebuilds segment chains from per-axis geometry, in
// place, and clears Geometry and ParentNode.
//
// Axes are visited in topological order. A lateral with ParentNode k hangs
// its first segment, with a '+' edge, on the segment built from point k of
// its parent axis; its own geometry[0] repeats that branch point and is not
// turned into a segment. An axis whose geometry is the branch point alone
// gets no segments. An axis without ParentNode starts a fresh chain at
// geometry[0]. Axes without geometry are left untouched, so a discrete
// tree converts to itself.
//
// Errors: *ConversionError wrapping ErrMixedEncoding, ErrMissingParent or
// ErrUnresolvedParentNode.
//
// Complexity: O(P + A) for P geometry points and A axes.
func ContinuousToDiscrete(t *mtg.Tree) error {
	log := rootmatch.Logger()
	segAt := make(map[segKey]mtg.NodeID)

	for _, axis := range TopOrder(t, mtg.ScaleAxis) {
		n := t.Node(axis)
		if len(n.Geometry) == 0 {
			if n.ParentNode != nil {
				log.Debug("dropping parent node of empty axis", "axis", axis)
			}
			n.ParentNode = nil
			continue
		}
		if len(t.Components(axis)) > 0 {
			return &ConversionError{Direction: ToDiscrete, Axis: axis, Err: ErrMixedEncoding}
		}
		if err := rebuild(t, axis, segAt); err != nil {
			return err
		}
		log.Debug("axis to discrete", "axis", axis, "points", len(n.Geometry))
		if err := t.ClearContinuous(axis); err != nil {
			return &ConversionError{Direction: ToDiscrete, Axis: axis, Err: err}
		}
	}
	return nil
}

func rebuild(t *mtg.Tree, axis mtg.NodeID, segAt map[segKey]mtg.NodeID) error {
	fail := func(detail string, err error) error {
		return &ConversionError{Direction: ToDiscrete, Axis: axis, Detail: detail, Err: err}
	}

	n := t.Node(axis)
	pl := n.Geometry
	start := 0
	prev := mtg.NoNode

	if n.ParentNode != nil {
		k := *n.ParentNode
		parent := t.Parent(axis)
		if parent == mtg.NoNode {
			return fail(fmt.Sprintf("parent node %d", k), ErrMissingParent)
		}
		at, ok := segAt[segKey{parent, k}]
		if !ok {
			return fail(fmt.Sprintf("index %d on axis %d", k, parent), ErrUnresolvedParentNode)
		}
		segAt[segKey{axis, 0}] = at
		prev, start = at, 1
	}

	for i := start; i < len(pl); i++ {
		var (
			seg mtg.NodeID
			err error
		)
		switch {
		case i == start:
			seg, err = t.AddComponent(axis, mtg.WithPosition(pl[i]))
			if err == nil && prev != mtg.NoNode {
				err = t.AttachChild(prev, seg, mtg.EdgeBranch)
			}
		default:
			seg, err = t.AddChild(prev, mtg.WithPosition(pl[i]))
		}
		if err != nil {
			return fail(fmt.Sprintf("point %d", i), err)
		}
		segAt[segKey{axis, i}] = seg
		prev = seg
	}
	return nil
}
