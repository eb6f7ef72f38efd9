// SPDX-License-Identifier: MIT

package mtg

import "sort"

// Root returns the scene root identifier.
func (t *Tree) Root() NodeID { return SceneID }

// Len returns the number of live nodes, scene included.
func (t *Tree) Len() int { return len(t.nodes) }

// Has reports whether id is a live node.
func (t *Tree) Has(id NodeID) bool {
	_, ok := t.nodes[id]
	return ok
}

// Node returns the node for id, or nil when absent. The returned pointer
// allows editing attribute fields in place.
func (t *Tree) Node(id NodeID) *Node { return t.nodes[id] }

// Scale returns the scale of id, or -1 when absent.
func (t *Tree) Scale(id NodeID) Scale {
	if n, ok := t.nodes[id]; ok {
		return n.scale
	}
	return -1
}

// Parent returns the same-scale parent of id, or NoNode.
func (t *Tree) Parent(id NodeID) NodeID {
	if n, ok := t.nodes[id]; ok {
		return n.parent
	}
	return NoNode
}

// Complex returns the container of id, or NoNode.
func (t *Tree) Complex(id NodeID) NodeID {
	if n, ok := t.nodes[id]; ok {
		return n.complex
	}
	return NoNode
}

// Children returns a copy of the same-scale children of id, in insertion order.
func (t *Tree) Children(id NodeID) []NodeID {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	return append([]NodeID(nil), n.children...)
}

// Components returns a copy of the components of id, in insertion order.
func (t *Tree) Components(id NodeID) []NodeID {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	return append([]NodeID(nil), n.components...)
}

// ComponentRoots returns the components of complex that have no parent
// inside complex: the primary axes of a plant, or the first segment of an
// axis (whose parent, if any, lies on another axis).
func (t *Tree) ComponentRoots(complex NodeID) []NodeID {
	n, ok := t.nodes[complex]
	if !ok {
		return nil
	}
	var roots []NodeID
	for _, c := range n.components {
		p := t.nodes[c].parent
		if p == NoNode || t.nodes[p].complex != complex {
			roots = append(roots, c)
		}
	}
	return roots
}

// Vertices returns every node at scale, identifiers ascending.
func (t *Tree) Vertices(scale Scale) []NodeID {
	var ids []NodeID
	for id, n := range t.nodes {
		if n.scale == scale {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Plants returns every plant, identifiers ascending.
func (t *Tree) Plants() []NodeID { return t.Vertices(ScalePlant) }

// Axes returns the axes contained in plant, in insertion order. With
// plant == NoNode it returns every axis of the tree, identifiers ascending.
func (t *Tree) Axes(plant NodeID) []NodeID {
	if plant == NoNode {
		return t.Vertices(ScaleAxis)
	}
	return t.Components(plant)
}

// MaxScale returns the finest scale holding at least one node.
func (t *Tree) MaxScale() Scale {
	finest := ScaleScene
	for _, n := range t.nodes {
		if n.scale > finest {
			finest = n.scale
		}
	}
	return finest
}

// PreOrder returns id followed by its same-scale descendants in pre-order,
// children visited in insertion order. Unknown ids yield nil.
//
// Complexity: O(k) for a subtree of k nodes.
func (t *Tree) PreOrder(id NodeID) []NodeID {
	if _, ok := t.nodes[id]; !ok {
		return nil
	}
	var order []NodeID
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, cur)
		kids := t.nodes[cur].children
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return order
}
