// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootmatch"
	"github.com/katalvlaran/rootmatch/continuous"
	"github.com/katalvlaran/rootmatch/internal/config"
	"github.com/katalvlaran/rootmatch/mtg"
	"github.com/katalvlaran/rootmatch/mtgjson"
)

// globals carries persistent flags and the resolved configuration.
type globals struct {
	configPath string
	logLevel   string
	plants     string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:          "rootmatch",
		Short:        "Match root system architectures across observations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to HCL configuration file")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&g.plants, "plants", "", "JSONPath selecting the plants to load")

	root.AddCommand(newMatchCmd(g), newConvertCmd(g), newMeasureCmd(g))
	return root
}

// setup loads configuration, applies flag overrides and installs the logger.
func (g *globals) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if flags.Changed("plants") {
		cfg.PlantFilter = g.plants
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg

	lvl, _ := cfg.SlogLevel()
	rootmatch.SetLogger(slog.New(newHandler(cmd.ErrOrStderr(), cfg.LogFormat, lvl)))
	return nil
}

func newHandler(w io.Writer, format string, lvl slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// read loads a tree, applying the configured plant filter.
func (g *globals) read(path string) (*mtg.Tree, error) {
	var opts []mtgjson.Option
	if g.cfg.PlantFilter != "" {
		opts = append(opts, mtgjson.WithPlantFilter(g.cfg.PlantFilter))
	}
	t, err := mtgjson.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	rootmatch.Logger().Info("tree loaded", "path", path, "plants", len(t.Plants()),
		"encoding", continuous.Detect(t).String())
	return t, nil
}

// readContinuous loads a tree and converts it to continuous encoding.
func (g *globals) readContinuous(path string) (*mtg.Tree, error) {
	t, err := g.read(path)
	if err != nil {
		return nil, err
	}
	switch continuous.Detect(t) {
	case continuous.EncodingMixed:
		return nil, fmt.Errorf("%s: %w", path, continuous.ErrMixedEncoding)
	case continuous.EncodingDiscrete:
		if err = continuous.DiscreteToContinuous(t); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return t, nil
}
