// SPDX-License-Identifier: MIT

package mtg

// Clone returns a deep copy of the tree: structure, positions, geometries
// and parent-node indices. Properties maps are copied; their values are shared.
// The clone continues the same identifier sequence.
//
// Complexity: O(N + P) for N nodes and P stored points.
func (t *Tree) Clone() *Tree {
	out := &Tree{nodes: make(map[NodeID]*Node, len(t.nodes)), nextID: t.nextID}
	for id, n := range t.nodes {
		c := &Node{
			id:         n.id,
			scale:      n.scale,
			parent:     n.parent,
			complex:    n.complex,
			edge:       n.edge,
			children:   append([]NodeID(nil), n.children...),
			components: append([]NodeID(nil), n.components...),
			Label:      n.Label,
			Position:   n.Position.Clone(),
			Geometry:   n.Geometry.Clone(),
			Properties: make(map[string]any, len(n.Properties)),
		}
		if n.ParentNode != nil {
			idx := *n.ParentNode
			c.ParentNode = &idx
		}
		for k, v := range n.Properties {
			c.Properties[k] = v
		}
		out.nodes[id] = c
	}

	return out
}
