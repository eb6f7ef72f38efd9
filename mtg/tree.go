// SPDX-License-Identifier: MIT

package mtg

import (
	"fmt"

	"github.com/katalvlaran/rootmatch/geometry"
)

// Tree is an arena-backed multi-scale tree.
//
// nodes maps every live NodeID to its Node; nextID is the next identifier
// handed out by AddChild / AddComponent and is never decremented, so IDs stay
// stable across removals and conversions.
type Tree struct {
	nodes  map[NodeID]*Node
	nextID NodeID
}

// New creates a Tree holding only the scene root (SceneID).
// Complexity: O(1).
func New() *Tree {
	t := &Tree{nodes: make(map[NodeID]*Node), nextID: SceneID + 1}
	t.nodes[SceneID] = &Node{
		id:         SceneID,
		scale:      ScaleScene,
		parent:     NoNode,
		complex:    NoNode,
		Label:      ScaleScene.defaultLabel(),
		Properties: make(map[string]any),
	}

	return t
}

// newNode allocates the next identifier and applies opts.
func (t *Tree) newNode(scale Scale, parent, complex NodeID, edge EdgeType, opts []NodeOption) *Node {
	n := &Node{
		id:         t.nextID,
		scale:      scale,
		parent:     parent,
		complex:    complex,
		edge:       edge,
		Label:      scale.defaultLabel(),
		Properties: make(map[string]any),
	}
	for _, opt := range opts {
		opt(n)
	}
	t.nextID++
	t.nodes[n.id] = n

	return n
}

// AddComponent creates a node one scale finer than complex, contained in it,
// with no same-scale parent and edge type '/'.
//
// Errors:
//   - ErrNodeNotFound:  complex does not exist.
//   - ErrScaleOverflow: complex is a Segment.
//
// Complexity: O(1) amortized.
func (t *Tree) AddComponent(complex NodeID, opts ...NodeOption) (NodeID, error) {
	c, ok := t.nodes[complex]
	if !ok {
		return NoNode, fmt.Errorf("AddComponent(%d): %w", complex, ErrNodeNotFound)
	}
	if c.scale >= ScaleSegment {
		return NoNode, fmt.Errorf("AddComponent(%d): %w", complex, ErrScaleOverflow)
	}
	n := t.newNode(c.scale+1, NoNode, complex, EdgeDecomposition, opts)
	c.components = append(c.components, n.id)

	return n.id, nil
}

// AddChild creates a same-scale child of parent, in the same complex.
// The default edge type is '<' (successor); pass WithEdge(EdgeBranch) for a
// lateral.
//
// Errors:
//   - ErrNodeNotFound: parent does not exist.
//   - ErrBadScale:     parent is the scene root.
func (t *Tree) AddChild(parent NodeID, opts ...NodeOption) (NodeID, error) {
	p, ok := t.nodes[parent]
	if !ok {
		return NoNode, fmt.Errorf("AddChild(%d): %w", parent, ErrNodeNotFound)
	}
	if p.scale == ScaleScene {
		return NoNode, fmt.Errorf("AddChild(%d): scene has no siblings: %w", parent, ErrBadScale)
	}
	n := t.newNode(p.scale, parent, p.complex, EdgeSuccessor, opts)
	p.children = append(p.children, n.id)
	t.nodes[p.complex].components = append(t.nodes[p.complex].components, n.id)

	return n.id, nil
}

// AttachChild makes the existing node child a same-scale child of parent
// with the given edge type. It is how the first segment of a lateral axis is
// hooked onto the segment of its parent axis.
//
// Errors:
//   - ErrNodeNotFound:    either node does not exist.
//   - ErrBadScale:        scales differ.
//   - ErrAlreadyAttached: child already has a parent.
//   - ErrCycle:           parent is child or one of its descendants.
func (t *Tree) AttachChild(parent, child NodeID, edge EdgeType) error {
	p, ok := t.nodes[parent]
	if !ok {
		return fmt.Errorf("AttachChild(%d,%d): parent: %w", parent, child, ErrNodeNotFound)
	}
	c, ok := t.nodes[child]
	if !ok {
		return fmt.Errorf("AttachChild(%d,%d): child: %w", parent, child, ErrNodeNotFound)
	}
	if p.scale != c.scale {
		return fmt.Errorf("AttachChild(%d,%d): %s vs %s: %w", parent, child, p.scale, c.scale, ErrBadScale)
	}
	if c.parent != NoNode {
		return fmt.Errorf("AttachChild(%d,%d): %w", parent, child, ErrAlreadyAttached)
	}
	for a := parent; a != NoNode; a = t.nodes[a].parent {
		if a == child {
			return fmt.Errorf("AttachChild(%d,%d): %w", parent, child, ErrCycle)
		}
	}
	c.parent = parent
	c.edge = edge
	p.children = append(p.children, child)

	return nil
}

// Insert adds a node with an explicit identifier. It is the entry point for
// decoders that must preserve identifiers. Parent and complex must already
// exist; Complex must be exactly one scale coarser.
//
// Errors:
//   - ErrDuplicateID:  s.ID is in use or not positive.
//   - ErrNodeNotFound: parent or complex does not exist.
//   - ErrBadScale:     scale relations are violated.
func (t *Tree) Insert(s Spec, opts ...NodeOption) error {
	if s.ID <= SceneID {
		return fmt.Errorf("Insert(%d): reserved id: %w", s.ID, ErrDuplicateID)
	}
	if _, dup := t.nodes[s.ID]; dup {
		return fmt.Errorf("Insert(%d): %w", s.ID, ErrDuplicateID)
	}
	c, ok := t.nodes[s.Complex]
	if !ok {
		return fmt.Errorf("Insert(%d): complex %d: %w", s.ID, s.Complex, ErrNodeNotFound)
	}
	if c.scale+1 != s.Scale {
		return fmt.Errorf("Insert(%d): %s inside %s: %w", s.ID, s.Scale, c.scale, ErrBadScale)
	}
	var p *Node
	if s.Parent != NoNode {
		if p, ok = t.nodes[s.Parent]; !ok {
			return fmt.Errorf("Insert(%d): parent %d: %w", s.ID, s.Parent, ErrNodeNotFound)
		}
		if p.scale != s.Scale {
			return fmt.Errorf("Insert(%d): parent is %s: %w", s.ID, p.scale, ErrBadScale)
		}
	}

	n := &Node{
		id:         s.ID,
		scale:      s.Scale,
		parent:     s.Parent,
		complex:    s.Complex,
		edge:       s.Edge,
		Label:      s.Scale.defaultLabel(),
		Properties: make(map[string]any),
	}
	for _, opt := range opts {
		opt(n)
	}
	t.nodes[n.id] = n
	c.components = append(c.components, n.id)
	if p != nil {
		p.children = append(p.children, n.id)
	}
	if n.id >= t.nextID {
		t.nextID = n.id + 1
	}

	return nil
}

// RemoveTree deletes id together with every descendant reachable through
// children and components, and detaches the removed nodes from surviving
// parents and complexes. It returns the number of removed nodes.
//
// Errors:
//   - ErrNodeNotFound: id does not exist.
//   - ErrRootRemoval:  id is the scene root.
//
// Complexity: O(k + d) where k is the subtree size and d the size of the
// touched child/component lists.
func (t *Tree) RemoveTree(id NodeID) (int, error) {
	if id == SceneID {
		return 0, ErrRootRemoval
	}
	if _, ok := t.nodes[id]; !ok {
		return 0, fmt.Errorf("RemoveTree(%d): %w", id, ErrNodeNotFound)
	}

	doomed := make(map[NodeID]bool)
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if doomed[cur] {
			continue
		}
		doomed[cur] = true
		n := t.nodes[cur]
		stack = append(stack, n.children...)
		stack = append(stack, n.components...)
	}

	for cur := range doomed {
		n := t.nodes[cur]
		if n.parent != NoNode && !doomed[n.parent] {
			p := t.nodes[n.parent]
			p.children = without(p.children, cur)
		}
		if n.complex != NoNode && !doomed[n.complex] {
			c := t.nodes[n.complex]
			c.components = without(c.components, cur)
		}
	}
	for cur := range doomed {
		delete(t.nodes, cur)
	}

	return len(doomed), nil
}

// without removes the first occurrence of id from ids, preserving order.
func without(ids []NodeID, id NodeID) []NodeID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// SetGeometry replaces the polyline of id. The polyline is copied.
func (t *Tree) SetGeometry(id NodeID, pl geometry.Polyline) error {
	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("SetGeometry(%d): %w", id, ErrNodeNotFound)
	}
	n.Geometry = pl.Clone()
	return nil
}

// SetParentNode sets the branching index of id on its parent geometry.
func (t *Tree) SetParentNode(id NodeID, idx int) error {
	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("SetParentNode(%d): %w", id, ErrNodeNotFound)
	}
	n.ParentNode = &idx
	return nil
}

// ClearContinuous drops the Geometry and ParentNode attributes of id.
func (t *Tree) ClearContinuous(id NodeID) error {
	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("ClearContinuous(%d): %w", id, ErrNodeNotFound)
	}
	n.Geometry = nil
	n.ParentNode = nil
	return nil
}

// SetPosition replaces the position of a segment. The point is copied.
func (t *Tree) SetPosition(id NodeID, p geometry.Point) error {
	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("SetPosition(%d): %w", id, ErrNodeNotFound)
	}
	n.Position = p.Clone()
	return nil
}
