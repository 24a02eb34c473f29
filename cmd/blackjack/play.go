package main

import (
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/history"
	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd runs an interactive game
type PlayCmd struct {
	Config  string   `kong:"default='blackjack.hcl',help='Table configuration file (HCL)'"`
	Table   string   `kong:"default='main',help='Table name to load from the config'"`
	Players []string `kong:"help='Player names, overriding the config (comma separated)'"`
	Decks   int      `kong:"default='0',help='Number of decks in the shoe, overriding the config'"`
	Seed    *int64   `kong:"help='Deterministic shuffle seed (optional)'"`
	History string   `kong:"help='Append finished rounds to this file'"`
	Debug   bool     `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	table := cfg.GetTableByName(c.Table)
	if table == nil {
		return fmt.Errorf("no table %q in %s", c.Table, c.Config)
	}

	players := table.Players
	if len(c.Players) > 0 {
		players = c.Players
	}
	decks := table.Decks
	if c.Decks > 0 {
		decks = c.Decks
	}

	gameOpts := []game.Option{game.WithDecks(decks)}
	if c.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *c.Seed)
		gameOpts = append(gameOpts, game.WithSeed(*c.Seed))
	}

	tuiOpts := []tui.Option{tui.WithGameOptions(gameOpts...)}
	if len(players) > 0 {
		tuiOpts = append(tuiOpts, tui.WithPlayers(players...))
	}
	if c.History != "" {
		recorder := history.NewRecorder(c.History, quartz.NewReal(), logger)
		tuiOpts = append(tuiOpts, tui.WithRecorder(recorder))
	}

	model, err := tui.NewModel(logger, tuiOpts...)
	if err != nil {
		return err
	}
	return tui.Run(model)
}
