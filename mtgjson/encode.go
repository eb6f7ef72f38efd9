// SPDX-License-Identifier: MIT

package mtgjson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/rootmatch/geometry"
	"github.com/katalvlaran/rootmatch/mtg"
)

// Encode writes t to w as an indented JSON document.
func Encode(w io.Writer, t *mtg.Tree) error {
	doc := Marshal(t)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("mtgjson: encode: %w", err)
	}
	return nil
}

// WriteFile encodes t into the file at path, creating or truncating it.
func WriteFile(path string, t *mtg.Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mtgjson: %w", err)
	}
	if err = Encode(f, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Marshal converts t into a Document. Nodes are listed by walking the
// decomposition from the scene: every complex precedes its components and
// components keep their order.
func Marshal(t *mtg.Tree) *Document {
	doc := &Document{Version: Version, Nodes: make([]NodeRecord, 0, t.Len()-1)}
	stack := reversed(t.Components(t.Root()))
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		doc.Nodes = append(doc.Nodes, record(t.Node(id)))
		stack = append(stack, reversed(t.Components(id))...)
	}
	return doc
}

func reversed(ids []mtg.NodeID) []mtg.NodeID {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

func record(n *mtg.Node) NodeRecord {
	r := NodeRecord{
		ID:       int(n.ID()),
		Scale:    int(n.Scale()),
		Complex:  int(n.Complex()),
		Edge:     n.Edge().String(),
		Label:    n.Label,
		Position: n.Position,
	}
	if p := n.Parent(); p != mtg.NoNode {
		v := int(p)
		r.Parent = &v
	}
	if len(n.Geometry) > 0 {
		r.Geometry = points(n.Geometry)
	}
	if n.ParentNode != nil {
		v := *n.ParentNode
		r.ParentNode = &v
	}
	if len(n.Properties) > 0 {
		r.Properties = n.Properties
	}
	return r
}

func points(pl geometry.Polyline) [][]float64 {
	out := make([][]float64, len(pl))
	for i, p := range pl {
		out[i] = p
	}
	return out
}
