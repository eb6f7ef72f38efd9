// SPDX-License-Identifier: MIT

package mtg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rootmatch/geometry"
)

// Sentinel errors for tree operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("mtg: node not found")

	// ErrScaleOverflow indicates a component was requested below the Segment scale.
	ErrScaleOverflow = errors.New("mtg: no scale below segment")

	// ErrBadScale indicates two nodes have incompatible scales for the operation.
	ErrBadScale = errors.New("mtg: incompatible scales")

	// ErrDuplicateID indicates Insert was given an identifier already in use.
	ErrDuplicateID = errors.New("mtg: duplicate node id")

	// ErrAlreadyAttached indicates AttachChild was given a node that has a parent.
	ErrAlreadyAttached = errors.New("mtg: node already has a parent")

	// ErrCycle indicates an attachment would make a node its own ancestor.
	ErrCycle = errors.New("mtg: attachment would create a cycle")

	// ErrRootRemoval indicates an attempt to remove the scene root.
	ErrRootRemoval = errors.New("mtg: scene root cannot be removed")
)

// NodeID identifies a node within its Tree. IDs are never reused.
type NodeID int

// NoNode is the absent identifier (no parent, no complex).
const NoNode NodeID = -1

// SceneID is the identifier of the scene root of every Tree.
const SceneID NodeID = 0

// Scale is the decomposition level of a node.
type Scale int

const (
	ScaleScene Scale = iota
	ScalePlant
	ScaleAxis
	ScaleSegment
)

// String returns the scale name.
func (s Scale) String() string {
	switch s {
	case ScaleScene:
		return "Scene"
	case ScalePlant:
		return "Plant"
	case ScaleAxis:
		return "Axis"
	case ScaleSegment:
		return "Segment"
	}
	return fmt.Sprintf("Scale(%d)", int(s))
}

// defaultLabel is the label given to nodes created without WithLabel.
func (s Scale) defaultLabel() string {
	switch s {
	case ScalePlant:
		return "Plant"
	case ScaleAxis:
		return "Root"
	case ScaleSegment:
		return "Segment"
	}
	return "Scene"
}

// EdgeType is the MTG edge label linking a node to its parent or complex.
type EdgeType byte

const (
	EdgeNone          EdgeType = 0
	EdgeDecomposition EdgeType = '/'
	EdgeSuccessor     EdgeType = '<'
	EdgeBranch        EdgeType = '+'
)

// String returns the one-character MTG symbol, or "" for EdgeNone.
func (e EdgeType) String() string {
	if e == EdgeNone {
		return ""
	}
	return string(rune(e))
}

// ParseEdgeType converts an MTG symbol back to an EdgeType.
func ParseEdgeType(s string) (EdgeType, error) {
	switch s {
	case "":
		return EdgeNone, nil
	case "/":
		return EdgeDecomposition, nil
	case "<":
		return EdgeSuccessor, nil
	case "+":
		return EdgeBranch, nil
	}
	return EdgeNone, fmt.Errorf("mtg: unknown edge type %q", s)
}

// Node is one vertex of the tree. Structural fields are read through methods
// and changed only through Tree operations; attribute fields are free to edit.
type Node struct {
	id      NodeID
	scale   Scale
	parent  NodeID
	complex NodeID
	edge    EdgeType

	children   []NodeID // same-scale children, insertion order
	components []NodeID // next-scale components, insertion order

	// Label is a free-form name ("Plant", "Root", ...).
	Label string

	// Position is the coordinate of a Segment (discrete encoding).
	Position geometry.Point

	// Geometry is the polyline of an Axis (continuous encoding).
	Geometry geometry.Polyline

	// ParentNode, when set, is the index into the parent axis Geometry at
	// which this axis branches off (continuous encoding).
	ParentNode *int

	// Properties stores arbitrary user data. Deep-copied by Clone only for
	// the map itself; values are shared.
	Properties map[string]any
}

// ID returns the node identifier.
func (n *Node) ID() NodeID { return n.id }

// Scale returns the node scale.
func (n *Node) Scale() Scale { return n.scale }

// Parent returns the same-scale parent, or NoNode.
func (n *Node) Parent() NodeID { return n.parent }

// Complex returns the container node one scale coarser, or NoNode for the scene.
func (n *Node) Complex() NodeID { return n.complex }

// Edge returns the edge type linking the node to its parent (or complex).
func (n *Node) Edge() EdgeType { return n.edge }

// HasParentNode reports whether ParentNode is set.
func (n *Node) HasParentNode() bool { return n.ParentNode != nil }

// NodeOption configures attributes of a node when it is created.
type NodeOption func(*Node)

// WithLabel sets the node label.
func WithLabel(label string) NodeOption {
	return func(n *Node) { n.Label = label }
}

// WithPosition sets a segment position. The point is copied.
func WithPosition(p geometry.Point) NodeOption {
	return func(n *Node) { n.Position = p.Clone() }
}

// WithGeometry sets an axis polyline. The polyline is copied.
func WithGeometry(pl geometry.Polyline) NodeOption {
	return func(n *Node) { n.Geometry = pl.Clone() }
}

// WithParentNode sets the branching index on the parent axis geometry.
func WithParentNode(idx int) NodeOption {
	return func(n *Node) { n.ParentNode = &idx }
}

// WithEdge overrides the default edge type of AddChild / AddComponent.
func WithEdge(e EdgeType) NodeOption {
	return func(n *Node) { n.edge = e }
}

// WithProperty stores one key/value in Properties.
func WithProperty(key string, value any) NodeOption {
	return func(n *Node) { n.Properties[key] = value }
}

// Spec describes the structural part of a node for Insert.
type Spec struct {
	ID      NodeID
	Scale   Scale
	Parent  NodeID
	Complex NodeID
	Edge    EdgeType
}
