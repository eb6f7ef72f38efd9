// SPDX-License-Identifier: MIT

package mtgjson

import "errors"

// Version is the document format version written by Encode.
const Version = 1

var (
	// ErrVersion indicates an unsupported document version.
	ErrVersion = errors.New("mtgjson: unsupported version")

	// ErrBadNode indicates a node record that cannot be inserted.
	ErrBadNode = errors.New("mtgjson: invalid node")

	// ErrBadFilter indicates an invalid plant filter expression or result.
	ErrBadFilter = errors.New("mtgjson: invalid plant filter")
)

// Document is the top-level JSON object.
type Document struct {
	Version int          `json:"version"`
	Nodes   []NodeRecord `json:"nodes"`
}

// NodeRecord is one node of the table.
type NodeRecord struct {
	ID         int            `json:"id"`
	Scale      int            `json:"scale"`
	Complex    int            `json:"complex"`
	Parent     *int           `json:"parent,omitempty"`
	Edge       string         `json:"edge,omitempty"`
	Label      string         `json:"label,omitempty"`
	Position   []float64      `json:"position,omitempty"`
	Geometry   [][]float64    `json:"geometry,omitempty"`
	ParentNode *int           `json:"parent_node,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Option configures decoding.
type Option func(*options)

type options struct {
	plantFilter string
}

// WithPlantFilter keeps only the plants selected by a JSONPath expression
// evaluated on the raw document. The expression must yield plant ids or
// plant node objects, e.g.
//
//	$.nodes[?(@.scale == 1 && @.properties.genotype == 'col0')].id
func WithPlantFilter(expr string) Option {
	return func(o *options) { o.plantFilter = expr }
}
