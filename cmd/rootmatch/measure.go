// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootmatch/measure"
)

func newMeasureCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "measure [tree.json]",
		Short: "Print per-axis length, order and branching position as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := g.readContinuous(args[0])
			if err != nil {
				return err
			}
			rows, err := measure.Table(t)
			if err != nil {
				return err
			}
			w := csv.NewWriter(cmd.OutOrStdout())
			if err = w.Write(measure.Header); err != nil {
				return err
			}
			for _, r := range rows {
				if err = w.Write(r.Strings()); err != nil {
					return err
				}
			}
			w.Flush()
			return w.Error()
		},
	}
}
