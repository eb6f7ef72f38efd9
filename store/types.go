// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"time"

	"github.com/katalvlaran/rootmatch/matching"
	"github.com/katalvlaran/rootmatch/mtg"
)

// ErrRunNotFound is returned when a run id does not exist.
var ErrRunNotFound = errors.New("store: run not found")

// Level names the hierarchy level of a row.
type Level string

const (
	LevelPlant Level = "plant"
	LevelAxis  Level = "axis"
)

// Run is one matching invocation between two named trees.
type Run struct {
	ID               int64
	Name1, Name2     string
	PlantMaxDistance *float64
	AxisMaxDistance  *float64
	Created          time.Time

	// Result is written by SaveRun; it is not loaded back by Runs.
	Result *matching.TreeMatch
}

// Row is one stored correspondence. First or Second is mtg.NoNode for an
// unmatched node; Distance is only meaningful when Matched.
type Row struct {
	Level    Level
	First    mtg.NodeID
	Second   mtg.NodeID
	Distance float64
	Matched  bool
}

// Rows flattens a two-level result: plant rows then axis rows, each as
// matched pairs, then unmatched of the first tree, then of the second.
func Rows(m *matching.TreeMatch) []Row {
	if m == nil {
		return nil
	}
	rows := levelRows(nil, LevelPlant, m.Plants)
	return levelRows(rows, LevelAxis, m.Axes)
}

func levelRows(rows []Row, lvl Level, r *matching.Result) []Row {
	if r == nil {
		return rows
	}
	for _, p := range r.Matched {
		rows = append(rows, Row{Level: lvl, First: p.First, Second: p.Second, Distance: p.Distance, Matched: true})
	}
	for _, id := range r.Unmatched1 {
		rows = append(rows, Row{Level: lvl, First: id, Second: mtg.NoNode})
	}
	for _, id := range r.Unmatched2 {
		rows = append(rows, Row{Level: lvl, First: mtg.NoNode, Second: id})
	}
	return rows
}
