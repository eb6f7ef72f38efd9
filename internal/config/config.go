// SPDX-License-Identifier: MIT

// Package config loads rootmatch CLI settings from an optional HCL file
// and ROOTMATCH_* environment variables. Environment values win over the
// file, the file wins over defaults, and command-line flags are applied by
// the caller on top.
//
//	plant_max_distance = 25
//	axis_max_distance  = 4.5
//	log_level          = "debug"
//	log_format         = "json"
//	plants             = "$.nodes[?(@.scale == 1)].id"
//
//	output {
//	  csv    = "matches.csv"
//	  sqlite = "runs.db"
//	}
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all rootmatch settings.
type Config struct {
	// Cutoffs; nil means no cutoff.
	PlantMaxDistance *float64
	AxisMaxDistance  *float64

	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "text" or "json"

	// PlantFilter is a JSONPath expression selecting plants on input.
	PlantFilter string

	Output OutputConfig
}

// OutputConfig holds result destinations; empty means disabled.
type OutputConfig struct {
	CSV    string
	SQLite string
}

// file mirrors the HCL layout.
type file struct {
	PlantMaxDistance *float64    `hcl:"plant_max_distance,optional"`
	AxisMaxDistance  *float64    `hcl:"axis_max_distance,optional"`
	LogLevel         string      `hcl:"log_level,optional"`
	LogFormat        string      `hcl:"log_format,optional"`
	PlantFilter      string      `hcl:"plants,optional"`
	Output           *fileOutput `hcl:"output,block"`
}

type fileOutput struct {
	CSV    string `hcl:"csv,optional"`
	SQLite string `hcl:"sqlite,optional"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{LogLevel: "info", LogFormat: "text"}
}

// Load builds the configuration from defaults, the HCL file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		var f file
		if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
		cfg.merge(f)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) merge(f file) {
	if f.PlantMaxDistance != nil {
		c.PlantMaxDistance = f.PlantMaxDistance
	}
	if f.AxisMaxDistance != nil {
		c.AxisMaxDistance = f.AxisMaxDistance
	}
	c.LogLevel = pick(f.LogLevel, c.LogLevel)
	c.LogFormat = pick(f.LogFormat, c.LogFormat)
	c.PlantFilter = pick(f.PlantFilter, c.PlantFilter)
	if f.Output != nil {
		c.Output.CSV = pick(f.Output.CSV, c.Output.CSV)
		c.Output.SQLite = pick(f.Output.SQLite, c.Output.SQLite)
	}
}

func (c *Config) applyEnv() error {
	var err error
	if c.PlantMaxDistance, err = getenvFloat("ROOTMATCH_PLANT_MAX_DISTANCE", c.PlantMaxDistance); err != nil {
		return err
	}
	if c.AxisMaxDistance, err = getenvFloat("ROOTMATCH_AXIS_MAX_DISTANCE", c.AxisMaxDistance); err != nil {
		return err
	}
	c.LogLevel = getenv("ROOTMATCH_LOG_LEVEL", c.LogLevel)
	c.LogFormat = getenv("ROOTMATCH_LOG_FORMAT", c.LogFormat)
	c.PlantFilter = getenv("ROOTMATCH_PLANTS", c.PlantFilter)
	c.Output.CSV = getenv("ROOTMATCH_CSV", c.Output.CSV)
	c.Output.SQLite = getenv("ROOTMATCH_SQLITE", c.Output.SQLite)
	return nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	for name, v := range map[string]*float64{
		"plant_max_distance": c.PlantMaxDistance,
		"axis_max_distance":  c.AxisMaxDistance,
	} {
		if v != nil && !(*v >= 0) {
			return fmt.Errorf("config: %s = %g: %w", name, *v, ErrInvalid)
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: log_format %q: %w", c.LogFormat, ErrInvalid)
	}
	return nil
}

// SlogLevel converts LogLevel for slog handlers.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("config: log_level %q: %w", c.LogLevel, ErrInvalid)
}

func pick(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getenvFloat parses key when set; "none" clears the value.
func getenvFloat(key string, fallback *float64) (*float64, error) {
	v := os.Getenv(key)
	switch {
	case v == "":
		return fallback, nil
	case strings.EqualFold(v, "none"):
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("config: %s=%q: %w", key, v, ErrInvalid)
	}
	return &f, nil
}
