// SPDX-License-Identifier: MIT

package assign

import (
	"errors"
	"math"

	"github.com/katalvlaran/rootmatch/matrix"
)

var (
	// ErrNilMatrix is returned when a nil distance matrix is passed.
	ErrNilMatrix = errors.New("assign: distance matrix is nil")

	// ErrNegativeDistance indicates a negative entry in the distance matrix.
	ErrNegativeDistance = errors.New("assign: negative distance")

	// ErrNaNDistance indicates a NaN entry in the distance matrix.
	ErrNaNDistance = errors.New("assign: NaN distance")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("assign: invalid option supplied")
)

// Assigner is the signature shared by assignment solvers. Greedy is the
// default implementation.
type Assigner func(d matrix.Matrix, opts ...Option) (*Result, error)

// Compile-time check that Greedy satisfies Assigner.
var _ Assigner = Greedy

// Option configures an assignment run.
type Option func(*Options)

// Options holds assignment parameters.
type Options struct {
	// MaxDistance is the largest distance a pair may have to be accepted.
	// Only honored when HasMaxDistance is true; otherwise the largest finite
	// entry of the matrix is used, i.e. no effective cutoff.
	MaxDistance float64

	// HasMaxDistance reports whether MaxDistance was set explicitly.
	HasMaxDistance bool

	err error
}

// DefaultOptions returns Options with no cutoff.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxDistance sets the distance cutoff. A negative or NaN cutoff is
// recorded and surfaced as ErrOptionViolation when the solver runs.
func WithMaxDistance(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDistance = c
		o.HasMaxDistance = true
	}
}

// Pair is an accepted (row, column) correspondence with its distance.
type Pair struct {
	I, J     int
	Distance float64
}

// Result holds the outcome of an assignment run.
type Result struct {
	// Matched lists accepted pairs in acceptance (ascending distance) order.
	Matched []Pair

	// UnmatchedRows lists, ascending, the row indices with no counterpart.
	UnmatchedRows []int

	// UnmatchedCols lists, ascending, the column indices with no counterpart.
	UnmatchedCols []int
}

// TotalDistance sums the distances of all matched pairs.
func (r *Result) TotalDistance() float64 {
	var s float64
	for _, p := range r.Matched {
		s += p.Distance
	}
	return s
}
