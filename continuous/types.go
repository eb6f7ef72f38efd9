// SPDX-License-Identifier: MIT

package continuous

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rootmatch/mtg"
)

var (
	// ErrBrokenChain indicates an axis whose segments do not form one linear chain.
	ErrBrokenChain = errors.New("continuous: broken segment chain")

	// ErrCycle indicates a segment chain that loops back on itself.
	ErrCycle = errors.New("continuous: cyclic segment chain")

	// ErrMissingPosition indicates a segment without a position.
	ErrMissingPosition = errors.New("continuous: segment has no position")

	// ErrUnresolvedParentNode indicates a parent_node index that does not
	// resolve to a segment of the already rebuilt parent axis.
	ErrUnresolvedParentNode = errors.New("continuous: unresolved parent node")

	// ErrMissingParent indicates a parent_node on an axis with no parent axis.
	ErrMissingParent = errors.New("continuous: parent node without parent axis")

	// ErrMixedEncoding indicates an axis carrying both segments and a geometry.
	ErrMixedEncoding = errors.New("continuous: axis has both segments and geometry")
)

// Direction names a conversion for error reporting.
type Direction string

const (
	ToContinuous Direction = "discrete-to-continuous"
	ToDiscrete   Direction = "continuous-to-discrete"
)

// ConversionError reports the axis at which a conversion failed. It wraps
// one of the package sentinels; match with errors.Is or errors.As.
type ConversionError struct {
	Direction Direction
	Axis      mtg.NodeID
	Detail    string
	Err       error
}

func (e *ConversionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: axis %d: %v", e.Direction, e.Axis, e.Err)
	}
	return fmt.Sprintf("%s: axis %d: %s: %v", e.Direction, e.Axis, e.Detail, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Encoding describes which representation a tree currently uses.
type Encoding int

const (
	// EncodingEmpty: no segments and no axis geometry.
	EncodingEmpty Encoding = iota
	// EncodingDiscrete: segments only.
	EncodingDiscrete
	// EncodingContinuous: axis geometries only.
	EncodingContinuous
	// EncodingMixed: both segments and axis geometries.
	EncodingMixed
)

func (e Encoding) String() string {
	switch e {
	case EncodingDiscrete:
		return "discrete"
	case EncodingContinuous:
		return "continuous"
	case EncodingMixed:
		return "mixed"
	}
	return "empty"
}
