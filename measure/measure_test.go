// SPDX-License-Identifier: MIT

package measure_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/rootmatch/continuous"
	"github.com/katalvlaran/rootmatch/geometry"
	"github.com/katalvlaran/rootmatch/internal/fixture"
	"github.com/katalvlaran/rootmatch/measure"
	"github.com/katalvlaran/rootmatch/mtg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleContinuous(t *testing.T) fixture.Simple {
	t.Helper()
	s := fixture.SimpleDiscrete(t)
	require.NoError(t, continuous.DiscreteToContinuous(s.Tree))
	return s
}

func TestAxesLength(t *testing.T) {
	s := simpleContinuous(t)
	empty, err := s.Tree.AddComponent(s.Plant)
	require.NoError(t, err)
	fixed, err := s.Tree.AddComponent(s.Plant, mtg.WithProperty(measure.PropLength, 42.0))
	require.NoError(t, err)

	l, err := measure.AxesLength(s.Tree)
	require.NoError(t, err)
	assert.InDelta(t, 3, l[s.A1], 1e-12)
	assert.InDelta(t, 2, l[s.A2], 1e-12)
	assert.InDelta(t, 1, l[s.A3], 1e-12)
	assert.Zero(t, l[empty])
	assert.Equal(t, 42.0, l[fixed])
}

func TestAxisOrder(t *testing.T) {
	s := simpleContinuous(t)
	grand := fixture.ContinuousAxis(t, s.Tree, s.Plant, s.A2, geometry.Polyline{{0, 3, 0}, {-1, 3, 0}}, 2)
	o := measure.AxisOrder(s.Tree)
	assert.Equal(t, 1, o[s.A1])
	assert.Equal(t, 2, o[s.A2])
	assert.Equal(t, 2, o[s.A3])
	assert.Equal(t, 3, o[grand])

	require.NoError(t, s.Tree.Insert(mtg.Spec{ID: 100, Scale: mtg.ScaleAxis, Parent: s.A1, Complex: s.Plant, Edge: mtg.EdgeBranch},
		mtg.WithProperty(measure.PropOrder, int64(7))))
	assert.Equal(t, 7, measure.AxisOrder(s.Tree)[100])
}

func TestParentPosition(t *testing.T) {
	s := simpleContinuous(t)
	pos, err := measure.ParentPosition(s.Tree)
	require.NoError(t, err)
	assert.InDelta(t, 1, pos[s.A2], 1e-12)
	assert.InDelta(t, 2, pos[s.A3], 1e-12)
	_, ok := pos[s.A1]
	assert.False(t, ok)

	require.NoError(t, s.Tree.SetParentNode(s.A3, 9))
	_, err = measure.ParentPosition(s.Tree)
	assert.ErrorIs(t, err, measure.ErrParentNodeRange)
}

func TestTable(t *testing.T) {
	s := simpleContinuous(t)
	rows, err := measure.Table(s.Tree)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []mtg.NodeID{s.A1, s.A2, s.A3}, []mtg.NodeID{rows[0].Axis, rows[1].Axis, rows[2].Axis})
	assert.Equal(t, mtg.NoNode, rows[0].Parent)
	assert.False(t, rows[0].HasPosition)
	assert.Equal(t, s.A1, rows[1].Parent)

	id := func(n mtg.NodeID) string { return strconv.Itoa(int(n)) }
	assert.Equal(t, []string{id(s.Plant), id(s.A1), "", "1", "3", ""}, rows[0].Strings())
	assert.Equal(t, []string{id(s.Plant), id(s.A2), id(s.A1), "2", "2", "1"}, rows[1].Strings())
	assert.Len(t, measure.Header, len(rows[0].Strings()))
}
