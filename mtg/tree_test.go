// SPDX-License-Identifier: MIT

package mtg_test

import (
	"testing"

	"github.com/katalvlaran/rootmatch/geometry"
	"github.com/katalvlaran/rootmatch/internal/fixture"
	"github.com/katalvlaran/rootmatch/mtg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SceneOnly(t *testing.T) {
	tr := mtg.New()
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, mtg.SceneID, tr.Root())
	assert.Equal(t, mtg.ScaleScene, tr.Scale(tr.Root()))
	assert.Equal(t, mtg.NoNode, tr.Parent(tr.Root()))
	assert.Equal(t, mtg.NoNode, tr.Complex(tr.Root()))
	assert.Equal(t, mtg.ScaleScene, tr.MaxScale())
}

func TestAddComponent_Scales(t *testing.T) {
	tr := mtg.New()
	p, err := tr.AddComponent(tr.Root())
	require.NoError(t, err)
	a, err := tr.AddComponent(p)
	require.NoError(t, err)
	s, err := tr.AddComponent(a, mtg.WithPosition(geometry.Point{1, 2}))
	require.NoError(t, err)

	assert.Equal(t, mtg.ScalePlant, tr.Scale(p))
	assert.Equal(t, mtg.ScaleAxis, tr.Scale(a))
	assert.Equal(t, mtg.ScaleSegment, tr.Scale(s))
	assert.Equal(t, "Root", tr.Node(a).Label, "axes default to the Root label")
	assert.Equal(t, mtg.EdgeDecomposition, tr.Node(s).Edge())
	assert.Equal(t, a, tr.Complex(s))
	assert.Equal(t, mtg.ScaleSegment, tr.MaxScale())

	_, err = tr.AddComponent(s)
	assert.ErrorIs(t, err, mtg.ErrScaleOverflow)
	_, err = tr.AddComponent(999)
	assert.ErrorIs(t, err, mtg.ErrNodeNotFound)
}

func TestAddChild_SameComplex(t *testing.T) {
	tr := mtg.New()
	p := fixture.Plant(t, tr)
	a1, _ := tr.AddComponent(p)
	a2, err := tr.AddChild(a1, mtg.WithEdge(mtg.EdgeBranch), mtg.WithLabel("lateral"))
	require.NoError(t, err)

	assert.Equal(t, a1, tr.Parent(a2))
	assert.Equal(t, p, tr.Complex(a2))
	assert.Equal(t, mtg.EdgeBranch, tr.Node(a2).Edge())
	assert.Equal(t, "lateral", tr.Node(a2).Label)
	assert.Equal(t, []mtg.NodeID{a2}, tr.Children(a1))
	assert.Equal(t, []mtg.NodeID{a1, a2}, tr.Components(p))
	assert.Equal(t, []mtg.NodeID{a1}, tr.ComponentRoots(p), "only parentless axes are primary")

	_, err = tr.AddChild(tr.Root())
	assert.ErrorIs(t, err, mtg.ErrBadScale)
}

func TestAttachChild(t *testing.T) {
	s := fixture.SimpleDiscrete(t)
	tr := s.Tree

	first := tr.ComponentRoots(s.A2)
	require.Len(t, first, 1, "an axis has one first segment")
	parentSeg := tr.Parent(first[0])
	assert.Equal(t, s.A1, tr.Complex(parentSeg), "lateral hangs on a segment of its parent axis")
	assert.Equal(t, mtg.EdgeBranch, tr.Node(first[0]).Edge())

	assert.ErrorIs(t, tr.AttachChild(parentSeg, first[0], mtg.EdgeBranch), mtg.ErrAlreadyAttached)
	assert.ErrorIs(t, tr.AttachChild(s.A1, first[0], mtg.EdgeBranch), mtg.ErrBadScale)

	// attaching an ancestor below its descendant is a cycle
	root := tr.ComponentRoots(s.A1)[0]
	leaf := tr.PreOrder(root)[len(tr.PreOrder(root))-1]
	assert.ErrorIs(t, tr.AttachChild(leaf, root, mtg.EdgeSuccessor), mtg.ErrCycle)
}

func TestInsert(t *testing.T) {
	tr := mtg.New()
	require.NoError(t, tr.Insert(mtg.Spec{ID: 10, Scale: mtg.ScalePlant, Parent: mtg.NoNode, Complex: mtg.SceneID, Edge: mtg.EdgeDecomposition}))
	require.NoError(t, tr.Insert(mtg.Spec{ID: 11, Scale: mtg.ScaleAxis, Parent: mtg.NoNode, Complex: 10}, mtg.WithGeometry(geometry.Polyline{{0, 0}, {0, 1}})))
	require.NoError(t, tr.Insert(mtg.Spec{ID: 12, Scale: mtg.ScaleAxis, Parent: 11, Complex: 10, Edge: mtg.EdgeBranch}, mtg.WithParentNode(1)))

	assert.Equal(t, []mtg.NodeID{12}, tr.Children(11))
	assert.Equal(t, 1, *tr.Node(12).ParentNode)

	next, err := tr.AddComponent(10)
	require.NoError(t, err)
	assert.Equal(t, mtg.NodeID(13), next, "generated ids continue after inserted ones")

	assert.ErrorIs(t, tr.Insert(mtg.Spec{ID: 12, Scale: mtg.ScaleAxis, Parent: mtg.NoNode, Complex: 10}), mtg.ErrDuplicateID)
	assert.ErrorIs(t, tr.Insert(mtg.Spec{ID: 0, Scale: mtg.ScalePlant, Parent: mtg.NoNode, Complex: mtg.SceneID}), mtg.ErrDuplicateID)
	assert.ErrorIs(t, tr.Insert(mtg.Spec{ID: 20, Scale: mtg.ScaleSegment, Parent: mtg.NoNode, Complex: 10}), mtg.ErrBadScale)
	assert.ErrorIs(t, tr.Insert(mtg.Spec{ID: 21, Scale: mtg.ScaleAxis, Parent: 99, Complex: 10}), mtg.ErrNodeNotFound)
	assert.ErrorIs(t, tr.Insert(mtg.Spec{ID: 22, Scale: mtg.ScaleAxis, Parent: 10, Complex: 10}), mtg.ErrBadScale)
}

func TestRemoveTree_SegmentSubtree(t *testing.T) {
	s := fixture.SimpleDiscrete(t)
	tr := s.Tree
	before := len(tr.Vertices(mtg.ScaleSegment))
	require.Equal(t, 7, before)

	// Removing the first a1 segment also removes the lateral segments that hang on it.
	first := tr.ComponentRoots(s.A1)[0]
	n, err := tr.RemoveTree(first)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Empty(t, tr.Vertices(mtg.ScaleSegment))
	assert.Empty(t, tr.Components(s.A1))
	assert.Empty(t, tr.Components(s.A2), "lateral axes lose their detached segments")
	assert.True(t, tr.Has(s.A2), "axes themselves survive")
}

func TestRemoveTree_AxisSubtree(t *testing.T) {
	s := fixture.SimpleDiscrete(t)
	tr := s.Tree

	n, err := tr.RemoveTree(s.A2)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "axis plus its two segments")
	assert.Equal(t, []mtg.NodeID{s.A3}, tr.Children(s.A1))
	assert.Equal(t, []mtg.NodeID{s.A1, s.A3}, tr.Components(s.Plant))
	assert.Len(t, tr.Vertices(mtg.ScaleSegment), 5)

	for _, seg := range tr.Vertices(mtg.ScaleSegment) {
		for _, c := range tr.Children(seg) {
			assert.True(t, tr.Has(c), "no dangling child links")
		}
	}

	_, err = tr.RemoveTree(tr.Root())
	assert.ErrorIs(t, err, mtg.ErrRootRemoval)
	_, err = tr.RemoveTree(s.A2)
	assert.ErrorIs(t, err, mtg.ErrNodeNotFound)
}

func TestPreOrder(t *testing.T) {
	s := fixture.SimpleDiscrete(t)
	assert.Equal(t, []mtg.NodeID{s.A1, s.A2, s.A3}, s.Tree.PreOrder(s.A1))
	assert.Nil(t, s.Tree.PreOrder(12345))

	chain := s.Tree.PreOrder(s.Tree.ComponentRoots(s.A2)[0])
	assert.Len(t, chain, 2)
}

func TestVerticesAndAxes(t *testing.T) {
	s := fixture.SimpleDiscrete(t)
	tr := s.Tree
	assert.Equal(t, []mtg.NodeID{s.Plant}, tr.Plants())
	assert.Equal(t, []mtg.NodeID{s.A1, s.A2, s.A3}, tr.Axes(s.Plant))
	assert.Equal(t, []mtg.NodeID{s.A1, s.A2, s.A3}, tr.Axes(mtg.NoNode))
	segs := tr.Vertices(mtg.ScaleSegment)
	for i := 1; i < len(segs); i++ {
		assert.Less(t, segs[i-1], segs[i])
	}
}

func TestAttributeSetters(t *testing.T) {
	tr := mtg.New()
	p := fixture.Plant(t, tr)
	a := fixture.ContinuousAxis(t, tr, p, mtg.NoNode, geometry.Polyline{{0, 0}}, -1)

	pl := geometry.Polyline{{0, 0}, {1, 1}}
	require.NoError(t, tr.SetGeometry(a, pl))
	pl[0][0] = 42
	assert.Equal(t, 0.0, tr.Node(a).Geometry[0][0], "SetGeometry copies its input")

	require.NoError(t, tr.SetParentNode(a, 3))
	assert.True(t, tr.Node(a).HasParentNode())
	require.NoError(t, tr.ClearContinuous(a))
	assert.Nil(t, tr.Node(a).Geometry)
	assert.False(t, tr.Node(a).HasParentNode())

	assert.ErrorIs(t, tr.SetPosition(99, geometry.Point{1}), mtg.ErrNodeNotFound)
}

func TestEdgeType_RoundTrip(t *testing.T) {
	for _, e := range []mtg.EdgeType{mtg.EdgeNone, mtg.EdgeDecomposition, mtg.EdgeSuccessor, mtg.EdgeBranch} {
		got, err := mtg.ParseEdgeType(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
	_, err := mtg.ParseEdgeType("?")
	assert.Error(t, err)
	assert.Equal(t, "Segment", mtg.ScaleSegment.String())
}

func TestClone_Independent(t *testing.T) {
	s := fixture.SimpleDiscrete(t)
	c := s.Tree.Clone()
	assert.Equal(t, s.Tree.Len(), c.Len())

	_, err := c.RemoveTree(s.A2)
	require.NoError(t, err)
	assert.True(t, s.Tree.Has(s.A2), "mutating the clone leaves the source intact")

	seg := s.Tree.Vertices(mtg.ScaleSegment)[0]
	c.Node(seg).Position[0] = 99
	assert.Equal(t, 1.0, s.Tree.Node(seg).Position[0])

	a, err := c.AddComponent(s.Plant)
	require.NoError(t, err)
	b, err := s.Tree.AddComponent(s.Plant)
	require.NoError(t, err)
	assert.Equal(t, a, b, "clones continue the same id sequence")
}
