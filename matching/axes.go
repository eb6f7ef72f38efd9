// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/rootmatch"
	"github.com/katalvlaran/rootmatch/assign"
	"github.com/katalvlaran/rootmatch/matrix"
	"github.com/katalvlaran/rootmatch/mtg"
)

// pairItem is a matched pair waiting for its children to be compared.
type pairItem struct {
	first, second mtg.NodeID
	plant         bool // the pair is a plant pair; children are primary axes
	depth         int
}

// walker holds the state of one axis propagation.
type walker struct {
	t1, t2 *mtg.Tree
	opts   Options
	queue  []pairItem
	res    *Result
}

// MatchAxes propagates matching from the given plant pairs down the axis
// hierarchy of t1 and t2.
//
// The pairs of plants are processed first, comparing their primary axes;
// every accepted axis pair is queued (FIFO) and its direct children are
// compared in turn. When one side of a pair has no children, all children
// of the other side are unmatched without building a matrix.
//
// Errors: ErrNilTree, ErrOptionViolation, geometry dimension errors, and
// errors returned by the Assigner.
func MatchAxes(t1, t2 *mtg.Tree, plants []Pair, opts ...Option) (*Result, error) {
	if t1 == nil || t2 == nil {
		return nil, ErrNilTree
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return matchAxes(t1, t2, plants, o)
}

func matchAxes(t1, t2 *mtg.Tree, plants []Pair, o Options) (*Result, error) {
	w := &walker{t1: t1, t2: t2, opts: o, res: &Result{}}
	for _, p := range plants {
		w.queue = append(w.queue, pairItem{first: p.First, second: p.Second, plant: true})
	}
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return nil, err
		}
	}
	w.res.sort()
	return w.res, nil
}

// children returns the axes to compare below one side of a pair.
func children(t *mtg.Tree, id mtg.NodeID, plant bool) []mtg.NodeID {
	if plant {
		return t.ComponentRoots(id)
	}
	return t.Children(id)
}

func (w *walker) visit(item pairItem) error {
	axes1 := children(w.t1, item.first, item.plant)
	axes2 := children(w.t2, item.second, item.plant)
	if len(axes1) == 0 || len(axes2) == 0 {
		w.res.Unmatched1 = append(w.res.Unmatched1, axes1...)
		w.res.Unmatched2 = append(w.res.Unmatched2, axes2...)
		return nil
	}

	d, err := distanceMatrix(w.t1, w.t2, axes1, axes2, w.opts.AxisMetric)
	if err != nil {
		return err
	}
	before := len(w.res.Matched)
	if err = w.res.absorb(w.opts.Assigner, d, axes1, axes2, w.opts.axisCutoff()); err != nil {
		return err
	}
	for _, m := range w.res.Matched[before:] {
		w.queue = append(w.queue, pairItem{first: m.First, second: m.Second, depth: item.depth + 1})
	}
	rootmatch.Logger().Debug("axes level matched",
		"first", item.first, "second", item.second, "depth", item.depth,
		"axes1", len(axes1), "axes2", len(axes2), "matched", len(w.res.Matched)-before)
	return nil
}

// distanceMatrix builds the metric matrix between two axis sets. Axes
// without geometry are at +Inf from everything.
func distanceMatrix(t1, t2 *mtg.Tree, axes1, axes2 []mtg.NodeID, metric Metric) (*matrix.Dense, error) {
	d, err := matrix.NewDense(len(axes1), len(axes2))
	if err != nil {
		return nil, err
	}
	for i, a1 := range axes1 {
		g1 := t1.Node(a1).Geometry
		for j, a2 := range axes2 {
			g2 := t2.Node(a2).Geometry
			v := math.Inf(1)
			if len(g1) > 0 && len(g2) > 0 {
				if v, err = metric(g1, g2); err != nil {
					return nil, fmt.Errorf("matching: axes %d/%d: %w", a1, a2, err)
				}
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// absorb runs the assigner on d and appends its outcome to r, mapping
// matrix indices back to node ids.
func (r *Result) absorb(solve assign.Assigner, d matrix.Matrix, ids1, ids2 []mtg.NodeID, opts []assign.Option) error {
	a, err := solve(d, opts...)
	if err != nil {
		return fmt.Errorf("matching: assign: %w", err)
	}
	for _, p := range a.Matched {
		r.Matched = append(r.Matched, Pair{First: ids1[p.I], Second: ids2[p.J], Distance: p.Distance})
	}
	for _, i := range a.UnmatchedRows {
		r.Unmatched1 = append(r.Unmatched1, ids1[i])
	}
	for _, j := range a.UnmatchedCols {
		r.Unmatched2 = append(r.Unmatched2, ids2[j])
	}
	return nil
}

func (r *Result) sort() {
	sort.Slice(r.Matched, func(a, b int) bool {
		if r.Matched[a].First != r.Matched[b].First {
			return r.Matched[a].First < r.Matched[b].First
		}
		return r.Matched[a].Second < r.Matched[b].Second
	})
	sortIDs(r.Unmatched1)
	sortIDs(r.Unmatched2)
}

func sortIDs(ids []mtg.NodeID) {
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
}
