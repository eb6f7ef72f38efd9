// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Public
// methods wrap these sentinels with call-site context; callers match them
// with errors.Is.
var (
	// ErrBadShape is returned when a requested shape is negative or rows are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaN signals a NaN value where a comparable distance is required.
	ErrNaN = errors.New("matrix: NaN encountered")
)
