// SPDX-License-Identifier: MIT

package measure

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/rootmatch/continuous"
	"github.com/katalvlaran/rootmatch/geometry"
	"github.com/katalvlaran/rootmatch/mtg"
)

// Property keys consulted before computing a value.
const (
	PropLength         = "length"
	PropOrder          = "order"
	PropParentPosition = "parent-position"
)

// ErrParentNodeRange indicates a parent_node outside the parent geometry.
var ErrParentNodeRange = errors.New("measure: parent node out of range")

// AxesLength returns the length of every axis. Axes with fewer than two
// geometry points measure 0.
func AxesLength(t *mtg.Tree) (map[mtg.NodeID]float64, error) {
	out := make(map[mtg.NodeID]float64)
	for _, a := range t.Vertices(mtg.ScaleAxis) {
		n := t.Node(a)
		if v, ok := number(n.Properties[PropLength]); ok {
			out[a] = v
			continue
		}
		l, err := geometry.Length(n.Geometry)
		if err != nil {
			return nil, fmt.Errorf("measure: length of axis %d: %w", a, err)
		}
		out[a] = l
	}
	return out, nil
}

// AxisOrder returns the branching order of every axis: 1 for an axis
// without parent, the parent order plus one otherwise.
func AxisOrder(t *mtg.Tree) map[mtg.NodeID]int {
	out := make(map[mtg.NodeID]int)
	for _, a := range continuous.TopOrder(t, mtg.ScaleAxis) {
		if v, ok := number(t.Node(a).Properties[PropOrder]); ok {
			out[a] = int(v)
			continue
		}
		if p := t.Parent(a); p != mtg.NoNode {
			out[a] = out[p] + 1
			continue
		}
		out[a] = 1
	}
	return out
}

// ParentPosition returns, for every lateral whose branching point is
// known, the arc length along its parent from the parent origin to the
// branching point. Axes without parent_node (and without the explicit
// property) have no entry.
func ParentPosition(t *mtg.Tree) (map[mtg.NodeID]float64, error) {
	out := make(map[mtg.NodeID]float64)
	cum := make(map[mtg.NodeID][]float64)
	for _, a := range t.Vertices(mtg.ScaleAxis) {
		n := t.Node(a)
		if v, ok := number(n.Properties[PropParentPosition]); ok {
			out[a] = v
			continue
		}
		p := t.Parent(a)
		if n.ParentNode == nil || p == mtg.NoNode {
			continue
		}
		c, ok := cum[p]
		if !ok {
			var err error
			if c, err = geometry.CumulativeLength(t.Node(p).Geometry); err != nil {
				return nil, fmt.Errorf("measure: parent %d of axis %d: %w", p, a, err)
			}
			cum[p] = c
		}
		k := *n.ParentNode
		if k < 0 || k >= len(c) {
			return nil, fmt.Errorf("measure: axis %d index %d of %d: %w", a, k, len(c), ErrParentNodeRange)
		}
		out[a] = c[k]
	}
	return out, nil
}

// number reads a numeric property value as decoded from JSON or set in code.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}
