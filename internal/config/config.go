// Package config loads the optional table configuration file. Command
// line flags override anything set here.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cardroom/blackjack/internal/game"
)

// TableConfig defines the table a session is played at
type TableConfig struct {
	Chips         int    `hcl:"chips,optional"`
	BetLimit      int    `hcl:"bet_limit,optional"`
	Decks         int    `hcl:"decks,optional"`
	DealerDelayMS int    `hcl:"dealer_delay_ms,optional"`
	LogFile       string `hcl:"log_file,optional"`
}

// DefaultTableConfig returns the default table configuration
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		Chips:         500,
		BetLimit:      100,
		Decks:         4,
		DealerDelayMS: 800,
		LogFile:       "blackjack.log",
	}
}

// Load loads table configuration from an HCL file. A missing file is not
// an error; defaults are returned instead.
func Load(filename string) (*TableConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultTableConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg TableConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultTableConfig()
	if cfg.Chips == 0 {
		cfg.Chips = defaults.Chips
	}
	if cfg.BetLimit == 0 {
		cfg.BetLimit = defaults.BetLimit
	}
	if cfg.Decks == 0 {
		cfg.Decks = defaults.Decks
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaults.LogFile
	}

	return &cfg, nil
}

// Validate checks that the configured table is legal to construct.
// Violations here are fatal configuration errors, not game events.
func (c *TableConfig) Validate() error {
	if c.Chips <= 0 {
		return fmt.Errorf("chips must be positive, got %d", c.Chips)
	}
	if c.BetLimit <= 0 {
		return fmt.Errorf("bet_limit must be positive, got %d", c.BetLimit)
	}
	if c.Decks < game.MinDecks || c.Decks > game.MaxDecks {
		return fmt.Errorf("decks must be between %d and %d, got %d", game.MinDecks, game.MaxDecks, c.Decks)
	}
	if c.DealerDelayMS < 0 {
		return fmt.Errorf("dealer_delay_ms must not be negative, got %d", c.DealerDelayMS)
	}
	return nil
}
