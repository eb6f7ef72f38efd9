// SPDX-License-Identifier: MIT

package continuous

import "github.com/katalvlaran/rootmatch/mtg"

// TopOrder returns every node of t at scale in topological order: a
// pre-order walk from each parentless node, roots taken by ascending id.
// Every node appears after its parent.
//
// Complexity: O(N) for N nodes at scale.
func TopOrder(t *mtg.Tree, scale mtg.Scale) []mtg.NodeID {
	var order []mtg.NodeID
	for _, id := range t.Vertices(scale) {
		if t.Parent(id) == mtg.NoNode {
			order = append(order, t.PreOrder(id)...)
		}
	}
	return order
}

// Detect reports the current encoding of t.
func Detect(t *mtg.Tree) Encoding {
	discrete := len(t.Vertices(mtg.ScaleSegment)) > 0
	continuous := false
	for _, a := range t.Vertices(mtg.ScaleAxis) {
		if len(t.Node(a).Geometry) > 0 {
			continuous = true
			break
		}
	}
	switch {
	case discrete && continuous:
		return EncodingMixed
	case discrete:
		return EncodingDiscrete
	case continuous:
		return EncodingContinuous
	}
	return EncodingEmpty
}
