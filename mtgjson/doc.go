// SPDX-License-Identifier: MIT

// Package mtgjson reads and writes trees as flat JSON node tables:
//
//	{
//	  "version": 1,
//	  "nodes": [
//	    {"id": 1, "scale": 1, "complex": 0, "edge": "/", "label": "Plant"},
//	    {"id": 2, "scale": 2, "complex": 1, "edge": "/", "label": "Root",
//	     "geometry": [[0, 0], [0, 5]]},
//	    {"id": 3, "scale": 2, "complex": 1, "parent": 2, "edge": "+",
//	     "geometry": [[0, 5], [2, 6]], "parent_node": 1}
//	  ]
//	}
//
// The scene root (id 0) is implicit. Both tree encodings are supported:
// segments carry "position", axes carry "geometry" and "parent_node".
// Identifiers are preserved. Nodes are written complexes first, so a
// decoder can insert them in document order.
//
// A JSONPath plant filter (github.com/ohler55/ojg/jp) can restrict decoding
// to selected plants.
package mtgjson
