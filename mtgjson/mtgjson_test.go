// SPDX-License-Identifier: MIT

package mtgjson_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/rootmatch/continuous"
	"github.com/katalvlaran/rootmatch/geometry"
	"github.com/katalvlaran/rootmatch/internal/fixture"
	"github.com/katalvlaran/rootmatch/mtg"
	"github.com/katalvlaran/rootmatch/mtgjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, tr *mtg.Tree, opts ...mtgjson.Option) *mtg.Tree {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, mtgjson.Encode(&buf, tr))
	out, err := mtgjson.Decode(&buf, opts...)
	require.NoError(t, err)
	return out
}

func TestRoundTrip_Discrete(t *testing.T) {
	s := fixture.SimpleDiscrete(t)
	require.NoError(t, s.Tree.SetPosition(s.Tree.ComponentRoots(s.A1)[0], geometry.Point{0.1, 1e-7, -3}))
	node := s.Tree.Node(s.A2)
	node.Properties["genotype"] = "col0"

	out := roundTrip(t, s.Tree)
	assert.Equal(t, mtgjson.Marshal(s.Tree), mtgjson.Marshal(out))
	assert.Equal(t, s.Tree.Children(s.Tree.Parent(s.Tree.ComponentRoots(s.A2)[0])),
		out.Children(out.Parent(out.ComponentRoots(s.A2)[0])))
	assert.Equal(t, "col0", out.Node(s.A2).Properties["genotype"])
}

func TestRoundTrip_Continuous(t *testing.T) {
	s := fixture.SimpleDiscrete(t)
	require.NoError(t, continuous.DiscreteToContinuous(s.Tree))

	out := roundTrip(t, s.Tree)
	for axis, want := range fixture.SimpleGeometry(s) {
		assert.Equal(t, want, out.Node(axis).Geometry)
	}
	require.NotNil(t, out.Node(s.A3).ParentNode)
	assert.Equal(t, 2, *out.Node(s.A3).ParentNode)
	assert.Nil(t, out.Node(s.A1).ParentNode)
	assert.Equal(t, mtg.EdgeBranch, out.Node(s.A3).Edge())
}

func TestRoundTrip_Random(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		tr := fixture.RandomDiscrete(t, seed, 3)
		assert.Equal(t, mtgjson.Marshal(tr), mtgjson.Marshal(roundTrip(t, tr)), "seed %d", seed)
	}
}

func TestFiles(t *testing.T) {
	s := fixture.SimpleDiscrete(t)
	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, mtgjson.WriteFile(path, s.Tree))
	out, err := mtgjson.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.Tree.Len(), out.Len())

	_, err = mtgjson.ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestPlantFilter(t *testing.T) {
	tr := mtg.New()
	keep := fixture.Plant(t, tr)
	tr.Node(keep).Label = "keep"
	fixture.ContinuousAxis(t, tr, keep, mtg.NoNode, geometry.Polyline{{0, 0}, {0, 1}}, -1)
	drop := fixture.Plant(t, tr)
	fixture.ContinuousAxis(t, tr, drop, mtg.NoNode, geometry.Polyline{{5, 0}, {5, 1}}, -1)

	out := roundTrip(t, tr, mtgjson.WithPlantFilter(`$.nodes[?(@.label == 'keep')]`))
	assert.Equal(t, []mtg.NodeID{keep}, out.Plants())
	assert.Len(t, out.Vertices(mtg.ScaleAxis), 1)

	out = roundTrip(t, tr, mtgjson.WithPlantFilter(`$.nodes[?(@.label == 'keep')].id`))
	assert.Equal(t, []mtg.NodeID{keep}, out.Plants())

	out = roundTrip(t, tr, mtgjson.WithPlantFilter(`$.nodes[?(@.label == 'none')]`))
	assert.Empty(t, out.Plants())

	var buf bytes.Buffer
	require.NoError(t, mtgjson.Encode(&buf, tr))
	raw := buf.String()
	_, err := mtgjson.Decode(strings.NewReader(raw), mtgjson.WithPlantFilter(`$.nodes[?(`))
	assert.ErrorIs(t, err, mtgjson.ErrBadFilter)
	_, err = mtgjson.Decode(strings.NewReader(raw), mtgjson.WithPlantFilter(`$.nodes[?(@.label == 'Root')].id`))
	assert.ErrorIs(t, err, mtgjson.ErrBadFilter, "axes are not plants")
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"version":     {`{"version":2,"nodes":[]}`, mtgjson.ErrVersion},
		"edge":        {`{"version":1,"nodes":[{"id":1,"scale":1,"complex":0,"edge":"x"}]}`, mtgjson.ErrBadNode},
		"complex":     {`{"version":1,"nodes":[{"id":1,"scale":2,"complex":7}]}`, mtg.ErrNodeNotFound},
		"scale":       {`{"version":1,"nodes":[{"id":1,"scale":2,"complex":0}]}`, mtg.ErrBadScale},
		"duplicate":   {`{"version":1,"nodes":[{"id":1,"scale":1,"complex":0},{"id":1,"scale":1,"complex":0}]}`, mtg.ErrDuplicateID},
		"parent":      {`{"version":1,"nodes":[{"id":1,"scale":1,"complex":0,"parent":9}]}`, mtgjson.ErrBadNode},
		"ragged":      {`{"version":1,"nodes":[{"id":1,"scale":1,"complex":0},{"id":2,"scale":2,"complex":1,"geometry":[[0,0],[1]]}]}`, geometry.ErrDimensionMismatch},
		"parent_node": {`{"version":1,"nodes":[{"id":1,"scale":1,"complex":0},{"id":2,"scale":2,"complex":1,"parent_node":-1}]}`, mtgjson.ErrBadNode},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mtgjson.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := mtgjson.Decode(strings.NewReader(`{"version":`))
	assert.Error(t, err)
}

func TestDecode_ParentAfterChild(t *testing.T) {
	doc := `{"version":1,"nodes":[
		{"id":1,"scale":1,"complex":0},
		{"id":3,"scale":2,"complex":1,"parent":2,"edge":"+"},
		{"id":2,"scale":2,"complex":1,"edge":"/"}
	]}`
	tr, err := mtgjson.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, mtg.NodeID(2), tr.Parent(3))
	assert.Equal(t, mtg.EdgeBranch, tr.Node(3).Edge())
	assert.Equal(t, []mtg.NodeID{3, 2}, tr.Components(1))
}
