// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootmatch"
	"github.com/katalvlaran/rootmatch/geometry"
	"github.com/katalvlaran/rootmatch/matching"
	"github.com/katalvlaran/rootmatch/store"
)

func newMatchCmd(g *globals) *cobra.Command {
	var (
		csvPath, dbPath   string
		metric            string
		window            int
		plantMax, axisMax float64
	)
	cmd := &cobra.Command{
		Use:   "match [first.json] [second.json]",
		Short: "Match plants and axes of two trees",
		Long: `Match pairs the plants of two trees by seed distance, then pairs their
axes level by level by Hausdorff distance. Results are written as CSV to
stdout, or to --csv, and optionally recorded in a SQLite database.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := g.cfg
			flags := cmd.Flags()
			if flags.Changed("max-distance") {
				cfg.PlantMaxDistance = &plantMax
			}
			if flags.Changed("axis-max-distance") {
				cfg.AxisMaxDistance = &axisMax
			}
			if flags.Changed("csv") {
				cfg.Output.CSV = csvPath
			}
			if flags.Changed("db") {
				cfg.Output.SQLite = dbPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			t1, err := g.readContinuous(args[0])
			if err != nil {
				return err
			}
			t2, err := g.readContinuous(args[1])
			if err != nil {
				return err
			}

			var opts []matching.Option
			switch metric {
			case "hausdorff":
			case "dtw":
				opts = append(opts, matching.WithAxisMetric(matching.Warp(geometry.WithWindow(window))))
			default:
				return fmt.Errorf("--metric must be hausdorff or dtw, got %q", metric)
			}
			if cfg.PlantMaxDistance != nil {
				opts = append(opts, matching.WithMaxDistance(*cfg.PlantMaxDistance))
			}
			if cfg.AxisMaxDistance != nil {
				opts = append(opts, matching.WithAxisMaxDistance(*cfg.AxisMaxDistance))
			}
			res, err := matching.Match(t1, t2, opts...)
			if err != nil {
				return err
			}
			rootmatch.Logger().Info("matched",
				"plants", len(res.Plants.Matched), "axes", len(res.Axes.Matched),
				"unmatched1", len(res.Axes.Unmatched1), "unmatched2", len(res.Axes.Unmatched2))

			if err = writeMatches(cmd, cfg.Output.CSV, res); err != nil {
				return err
			}
			if cfg.Output.SQLite == "" {
				return nil
			}
			db, err := store.Open(cfg.Output.SQLite)
			if err != nil {
				return err
			}
			defer db.Close()
			id, err := db.SaveRun(cmd.Context(), &store.Run{
				Name1:            filepath.Base(args[0]),
				Name2:            filepath.Base(args[1]),
				PlantMaxDistance: cfg.PlantMaxDistance,
				AxisMaxDistance:  cfg.AxisMaxDistance,
				Result:           res,
			})
			if err != nil {
				return err
			}
			rootmatch.Logger().Info("run recorded", "db", cfg.Output.SQLite, "run", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write matches to this CSV file instead of stdout")
	cmd.Flags().StringVar(&dbPath, "db", "", "Record the run in this SQLite database")
	cmd.Flags().StringVar(&metric, "metric", "hausdorff", "Axis distance: hausdorff or dtw")
	cmd.Flags().IntVar(&window, "dtw-window", 0, "Sakoe-Chiba band for --metric dtw (0: none)")
	cmd.Flags().Float64Var(&plantMax, "max-distance", 0, "Plant seed distance cutoff")
	cmd.Flags().Float64Var(&axisMax, "axis-max-distance", 0, "Axis Hausdorff distance cutoff")
	return cmd
}

func writeMatches(cmd *cobra.Command, path string, res *matching.TreeMatch) error {
	if path == "" {
		return store.WriteCSV(cmd.OutOrStdout(), res.Plants, res.Axes)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = store.WriteCSV(f, res.Plants, res.Axes); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
