// Package config holds the settings of the marks CLI.
package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/util"
)

const (
	DefaultStorePath = "~/.go-marks/marks.json"
	DefaultLogFile   = "~/.go-marks/logs/app.log"
)

// Config is the resolved CLI configuration.
type Config struct {
	// Store is the timeline document, .json or .yaml.
	Store     string `mapstructure:"store" toml:"store"`
	Timezone  string `mapstructure:"timezone" toml:"timezone"`
	WeekStart string `mapstructure:"week_start" toml:"week_start"`
	// Output is the default list format: table, json or csv.
	Output   string `mapstructure:"output" toml:"output"`
	LogLevel string `mapstructure:"log_level" toml:"log_level"`
	LogFile  string `mapstructure:"log_file" toml:"log_file"`
	// Color is auto, always or never.
	Color string `mapstructure:"color" toml:"color"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Store:     DefaultStorePath,
		Timezone:  "Local",
		WeekStart: "monday",
		Output:    model.OutputTable,
		LogLevel:  "info",
		LogFile:   DefaultLogFile,
		Color:     util.ColorAuto,
	}
}

// Validate checks every setting that can be wrong.
func (c *Config) Validate() error {
	if c.Store == "" {
		return fmt.Errorf("store path must not be empty")
	}
	if _, err := util.LoadLocation(c.Timezone); err != nil {
		return err
	}
	if _, err := util.ParseWeekday(c.WeekStart); err != nil {
		return fmt.Errorf("invalid week_start: %w", err)
	}
	if !slices.Contains([]string{model.OutputTable, model.OutputJSON, model.OutputCSV}, c.Output) {
		return fmt.Errorf("invalid output '%s' (table, json, csv)", c.Output)
	}
	if !slices.Contains([]string{util.ColorAuto, util.ColorAlways, util.ColorNever}, c.Color) {
		return fmt.Errorf("invalid color '%s' (auto, always, never)", c.Color)
	}
	return nil
}

// Location returns the configured timezone.
func (c *Config) Location() *time.Location {
	loc, err := util.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// FirstWeekday returns the configured first day of the week.
func (c *Config) FirstWeekday() time.Weekday {
	d, err := util.ParseWeekday(c.WeekStart)
	if err != nil {
		return time.Monday
	}
	return d
}
