// SPDX-License-Identifier: MIT

package measure

import (
	"strconv"

	"github.com/katalvlaran/rootmatch/continuous"
	"github.com/katalvlaran/rootmatch/mtg"
)

// Row is one axis line of a measurement table.
type Row struct {
	Plant          mtg.NodeID
	Axis           mtg.NodeID
	Parent         mtg.NodeID // NoNode for primary axes
	Order          int
	Length         float64
	ParentPosition float64
	HasPosition    bool
}

// Header names the columns produced by Row.Strings.
var Header = []string{"plant", "axis", "parent", "order", "length", "parent_position"}

// Strings renders r for CSV output; unknown values are empty.
func (r Row) Strings() []string {
	parent, pos := "", ""
	if r.Parent != mtg.NoNode {
		parent = strconv.Itoa(int(r.Parent))
	}
	if r.HasPosition {
		pos = strconv.FormatFloat(r.ParentPosition, 'g', -1, 64)
	}
	return []string{
		strconv.Itoa(int(r.Plant)),
		strconv.Itoa(int(r.Axis)),
		parent,
		strconv.Itoa(r.Order),
		strconv.FormatFloat(r.Length, 'g', -1, 64),
		pos,
	}
}

// Table returns one row per axis, grouped by plant (ascending), axes of a
// plant in topological order.
func Table(t *mtg.Tree) ([]Row, error) {
	length, err := AxesLength(t)
	if err != nil {
		return nil, err
	}
	pos, err := ParentPosition(t)
	if err != nil {
		return nil, err
	}
	order := AxisOrder(t)

	byPlant := make(map[mtg.NodeID][]mtg.NodeID)
	for _, a := range continuous.TopOrder(t, mtg.ScaleAxis) {
		p := t.Complex(a)
		byPlant[p] = append(byPlant[p], a)
	}

	var rows []Row
	for _, plant := range t.Plants() {
		for _, a := range byPlant[plant] {
			pp, ok := pos[a]
			rows = append(rows, Row{
				Plant:          plant,
				Axis:           a,
				Parent:         t.Parent(a),
				Order:          order[a],
				Length:         length[a],
				ParentPosition: pp,
				HasPosition:    ok,
			})
		}
	}
	return rows, nil
}
