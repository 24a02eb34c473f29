// Package config loads table configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// MaxSeats is the most players a single table will seat
const MaxSeats = 8

// Config represents a complete blackjack configuration file
type Config struct {
	Tables []TableConfig `hcl:"table,block"`
}

// TableConfig defines one table: who is seated and how the shoe is built
type TableConfig struct {
	Name    string   `hcl:"name,label"`
	Decks   int      `hcl:"decks,optional"`
	Players []string `hcl:"players,optional"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Tables: []TableConfig{
			{
				Name:  "main",
				Decks: 2,
			},
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an
// error; defaults are returned instead.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	for i := range config.Tables {
		if config.Tables[i].Decks == 0 {
			config.Tables[i].Decks = 2
		}
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}

	for _, table := range c.Tables {
		if table.Decks < 1 {
			return fmt.Errorf("table %s: decks must be at least 1", table.Name)
		}
		if len(table.Players) > MaxSeats {
			return fmt.Errorf("table %s: at most %d players per table", table.Name, MaxSeats)
		}
		seen := make(map[string]bool, len(table.Players))
		for _, name := range table.Players {
			if name == "" {
				return fmt.Errorf("table %s: blank player name", table.Name)
			}
			if seen[name] {
				return fmt.Errorf("table %s: duplicate player name %q", table.Name, name)
			}
			seen[name] = true
		}
	}
	return nil
}

// GetTableByName returns a table configuration by name
func (c *Config) GetTableByName(name string) *TableConfig {
	for i := range c.Tables {
		if c.Tables[i].Name == name {
			return &c.Tables[i]
		}
	}
	return nil
}
