// SPDX-License-Identifier: MIT

package store

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/rootmatch/matching"
	"github.com/katalvlaran/rootmatch/mtg"
)

// CSVHeader is the first record written by WriteCSV.
var CSVHeader = []string{"level", "first", "second", "distance"}

// WriteCSV writes the plant and axis results as CSV: one record per row of
// Rows, with empty cells for absent ids and for unmatched distances.
func WriteCSV(w io.Writer, plants, axes *matching.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range Rows(&matching.TreeMatch{Plants: plants, Axes: axes}) {
		dist := ""
		if r.Matched {
			dist = strconv.FormatFloat(r.Distance, 'g', -1, 64)
		}
		if err := cw.Write([]string{string(r.Level), cell(r.First), cell(r.Second), dist}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cell(id mtg.NodeID) string {
	if id == mtg.NoNode {
		return ""
	}
	return strconv.Itoa(int(id))
}
