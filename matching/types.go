// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"math"

	"github.com/katalvlaran/rootmatch/assign"
	"github.com/katalvlaran/rootmatch/geometry"
	"github.com/katalvlaran/rootmatch/mtg"
)

var (
	// ErrNilTree is returned when either input tree is nil.
	ErrNilTree = errors.New("matching: tree is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")
)

// Pair is one correspondence between a node of the first tree and a node
// of the second tree.
type Pair struct {
	First    mtg.NodeID
	Second   mtg.NodeID
	Distance float64
}

// Result holds matched pairs plus the nodes left without counterpart on
// each side. Matched is sorted by First; the unmatched lists are ascending.
type Result struct {
	Matched    []Pair
	Unmatched1 []mtg.NodeID
	Unmatched2 []mtg.NodeID
}

// TreeMatch bundles both matching levels as returned by Match.
type TreeMatch struct {
	Plants *Result
	Axes   *Result
}

// Metric is a distance between two axis geometries.
type Metric func(a, b geometry.Polyline) (float64, error)

// Hausdorff is the default axis Metric.
var Hausdorff Metric = geometry.Hausdorff

// Warp is an order-aware axis Metric built on geometry.WarpDistance.
func Warp(opts ...geometry.WarpOption) Metric {
	return func(a, b geometry.Polyline) (float64, error) {
		return geometry.WarpDistance(a, b, opts...)
	}
}

// Option configures a matching run.
type Option func(*Options)

// Options holds matching parameters.
type Options struct {
	// MaxDistance is the plant-level cutoff; it is also the axis-level
	// cutoff unless AxisMaxDistance is set.
	MaxDistance    float64
	HasMaxDistance bool

	// AxisMaxDistance overrides the axis-level cutoff.
	AxisMaxDistance    float64
	HasAxisMaxDistance bool

	// Assigner selects pairs from each distance matrix.
	Assigner assign.Assigner

	// AxisMetric compares axis geometries.
	AxisMetric Metric

	err error
}

// DefaultOptions returns Options without cutoffs, using assign.Greedy and
// the Hausdorff metric.
func DefaultOptions() Options {
	return Options{Assigner: assign.Greedy, AxisMetric: Hausdorff}
}

// WithMaxDistance sets the cutoff for plants and, unless overridden by
// WithAxisMaxDistance, for axes.
func WithMaxDistance(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDistance, o.HasMaxDistance = c, true
	}
}

// WithAxisMaxDistance sets the cutoff used for axes.
func WithAxisMaxDistance(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = ErrOptionViolation
			return
		}
		o.AxisMaxDistance, o.HasAxisMaxDistance = c, true
	}
}

// WithAssigner replaces the pair selection strategy.
func WithAssigner(a assign.Assigner) Option {
	return func(o *Options) {
		if a == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Assigner = a
	}
}

// WithAxisMetric replaces the axis distance. Cutoffs set with
// WithAxisMaxDistance are expressed in the unit of this metric.
func WithAxisMetric(m Metric) Option {
	return func(o *Options) {
		if m == nil {
			o.err = ErrOptionViolation
			return
		}
		o.AxisMetric = m
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

func (o Options) plantCutoff() []assign.Option {
	if !o.HasMaxDistance {
		return nil
	}
	return []assign.Option{assign.WithMaxDistance(o.MaxDistance)}
}

func (o Options) axisCutoff() []assign.Option {
	switch {
	case o.HasAxisMaxDistance:
		return []assign.Option{assign.WithMaxDistance(o.AxisMaxDistance)}
	case o.HasMaxDistance:
		return []assign.Option{assign.WithMaxDistance(o.MaxDistance)}
	}
	return nil
}
