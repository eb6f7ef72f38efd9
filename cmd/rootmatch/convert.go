// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootmatch/continuous"
	"github.com/katalvlaran/rootmatch/mtg"
	"github.com/katalvlaran/rootmatch/mtgjson"
)

func newConvertCmd(g *globals) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert [input.json] [output.json]",
		Short: "Convert a tree between discrete and continuous encodings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var conv func(*mtg.Tree) error
			switch to {
			case "continuous":
				conv = continuous.DiscreteToContinuous
			case "discrete":
				conv = continuous.ContinuousToDiscrete
			default:
				return fmt.Errorf("--to must be continuous or discrete, got %q", to)
			}
			t, err := g.read(args[0])
			if err != nil {
				return err
			}
			if err = conv(t); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if args[1] == "-" {
				return mtgjson.Encode(cmd.OutOrStdout(), t)
			}
			return mtgjson.WriteFile(args[1], t)
		},
	}
	cmd.Flags().StringVar(&to, "to", "continuous", "Target encoding: continuous or discrete")
	return cmd
}
