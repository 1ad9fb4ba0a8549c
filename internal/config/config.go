// Package config loads table stakes configuration from HCL.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the root of the HCL configuration file.
type Config struct {
	Table Table `hcl:"table,block"`
}

// Table holds the stakes and seating rules for a session.
//
//	table {
//	  small_blind    = 10
//	  big_blind      = 20
//	  starting_chips = 10000
//	}
type Table struct {
	SmallBlind    int `hcl:"small_blind,optional"`
	BigBlind      int `hcl:"big_blind,optional"`
	StartingChips int `hcl:"starting_chips,optional"`
	MinChips      int `hcl:"min_chips,optional"`
	MaxPlayers    int `hcl:"max_players,optional"`
}

// Default returns the table defaults: 10/20 blinds, 10 000 starting chips,
// a 10-chip minimum to be dealt in, nine seats.
func Default() *Config {
	return &Config{
		Table: Table{
			SmallBlind:    10,
			BigBlind:      20,
			StartingChips: 10000,
			MinChips:      10,
			MaxPlayers:    9,
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist. Missing fields take their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Table.SmallBlind == 0 {
		cfg.Table.SmallBlind = defaults.Table.SmallBlind
	}
	if cfg.Table.BigBlind == 0 {
		cfg.Table.BigBlind = defaults.Table.BigBlind
	}
	if cfg.Table.StartingChips == 0 {
		cfg.Table.StartingChips = defaults.Table.StartingChips
	}
	if cfg.Table.MinChips == 0 {
		cfg.Table.MinChips = defaults.Table.MinChips
	}
	if cfg.Table.MaxPlayers == 0 {
		cfg.Table.MaxPlayers = defaults.Table.MaxPlayers
	}

	return &cfg, nil
}

// Validate checks the stakes for basic sanity.
func (c *Config) Validate() error {
	t := c.Table
	if t.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", t.SmallBlind)
	}
	if t.BigBlind < t.SmallBlind {
		return fmt.Errorf("big blind %d cannot be below small blind %d", t.BigBlind, t.SmallBlind)
	}
	if t.StartingChips < t.BigBlind {
		return fmt.Errorf("starting chips %d cannot cover the big blind %d", t.StartingChips, t.BigBlind)
	}
	if t.MinChips <= 0 {
		return fmt.Errorf("minimum chips must be positive, got %d", t.MinChips)
	}
	if t.MaxPlayers < 2 || t.MaxPlayers > 10 {
		return fmt.Errorf("max players must be between 2 and 10, got %d", t.MaxPlayers)
	}
	return nil
}
