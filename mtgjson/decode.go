// SPDX-License-Identifier: MIT

package mtgjson

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ohler55/ojg/jp"

	"github.com/katalvlaran/rootmatch"
	"github.com/katalvlaran/rootmatch/geometry"
	"github.com/katalvlaran/rootmatch/mtg"
)

// Decode reads one JSON document from r and builds the tree it describes.
//
// Errors: ErrVersion, ErrBadNode (wrapping the mtg error when a record
// cannot be inserted), ErrBadFilter, and JSON syntax errors.
func Decode(r io.Reader, opts ...Option) (*mtg.Tree, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mtgjson: read: %w", err)
	}
	var doc Document
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("mtgjson: decode: %w", err)
	}
	t, err := Unmarshal(&doc)
	if err != nil {
		return nil, err
	}
	if o.plantFilter != "" {
		if err = filterPlants(t, raw, o.plantFilter); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ReadFile decodes the document stored at path.
func ReadFile(path string, opts ...Option) (*mtg.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mtgjson: %w", err)
	}
	defer f.Close()
	t, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rootmatch.Logger().Debug("tree read", "path", path, "nodes", t.Len())
	return t, nil
}

// Unmarshal builds a tree from doc. Records are inserted in document order
// without parents, then same-scale parent links are attached in a second
// pass so a parent may appear after its child.
func Unmarshal(doc *Document) (*mtg.Tree, error) {
	if doc.Version != Version {
		return nil, fmt.Errorf("mtgjson: version %d: %w", doc.Version, ErrVersion)
	}
	t := mtg.New()
	edges := make([]mtg.EdgeType, len(doc.Nodes))
	for i, r := range doc.Nodes {
		edge, err := mtg.ParseEdgeType(r.Edge)
		if err != nil {
			return nil, badNode(r.ID, err)
		}
		edges[i] = edge
		nodeOpts, err := attributes(r)
		if err != nil {
			return nil, badNode(r.ID, err)
		}
		spec := mtg.Spec{
			ID:      mtg.NodeID(r.ID),
			Scale:   mtg.Scale(r.Scale),
			Parent:  mtg.NoNode,
			Complex: mtg.NodeID(r.Complex),
			Edge:    edge,
		}
		if err = t.Insert(spec, nodeOpts...); err != nil {
			return nil, badNode(r.ID, err)
		}
	}
	for i, r := range doc.Nodes {
		if r.Parent == nil {
			continue
		}
		if err := t.AttachChild(mtg.NodeID(*r.Parent), mtg.NodeID(r.ID), edges[i]); err != nil {
			return nil, badNode(r.ID, err)
		}
	}
	return t, nil
}

func badNode(id int, err error) error {
	return fmt.Errorf("mtgjson: node %d: %w: %w", id, ErrBadNode, err)
}

func attributes(r NodeRecord) ([]mtg.NodeOption, error) {
	var opts []mtg.NodeOption
	if r.Label != "" {
		opts = append(opts, mtg.WithLabel(r.Label))
	}
	if len(r.Position) > 0 {
		opts = append(opts, mtg.WithPosition(geometry.Point(r.Position)))
	}
	if len(r.Geometry) > 0 {
		pl := make(geometry.Polyline, len(r.Geometry))
		for i, p := range r.Geometry {
			if len(p) != len(r.Geometry[0]) {
				return nil, fmt.Errorf("geometry point %d: %w", i, geometry.ErrDimensionMismatch)
			}
			pl[i] = p
		}
		opts = append(opts, mtg.WithGeometry(pl))
	}
	if r.ParentNode != nil {
		if *r.ParentNode < 0 {
			return nil, fmt.Errorf("negative parent_node %d", *r.ParentNode)
		}
		opts = append(opts, mtg.WithParentNode(*r.ParentNode))
	}
	for k, v := range r.Properties {
		opts = append(opts, mtg.WithProperty(k, v))
	}
	return opts, nil
}

// filterPlants removes every plant of t not selected by expr on raw.
func filterPlants(t *mtg.Tree, raw []byte, expr string) error {
	x, err := jp.ParseString(expr)
	if err != nil {
		return fmt.Errorf("mtgjson: %q: %w: %w", expr, ErrBadFilter, err)
	}
	var root any
	if err = json.Unmarshal(raw, &root); err != nil {
		return fmt.Errorf("mtgjson: decode: %w", err)
	}

	keep := make(map[mtg.NodeID]bool)
	for _, v := range x.Get(root) {
		id, ok := plantID(v)
		if !ok || !t.Has(id) || t.Scale(id) != mtg.ScalePlant {
			return fmt.Errorf("mtgjson: %q selected %v, not a plant: %w", expr, v, ErrBadFilter)
		}
		keep[id] = true
	}
	for _, p := range t.Plants() {
		if keep[p] {
			continue
		}
		if _, err = t.RemoveTree(p); err != nil {
			return err
		}
	}
	rootmatch.Logger().Debug("plants filtered", "expr", expr, "kept", len(keep))
	return nil
}

// plantID accepts a numeric id or a node object carrying one.
func plantID(v any) (mtg.NodeID, bool) {
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) {
			return mtg.NoNode, false
		}
		return mtg.NodeID(x), true
	case map[string]any:
		return plantID(x["id"])
	}
	return mtg.NoNode, false
}
