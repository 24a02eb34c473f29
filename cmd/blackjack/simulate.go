package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd plays automated rounds and reports outcome rates
type SimulateCmd struct {
	Rounds  int    `kong:"default='10000',help='Number of rounds to play'"`
	Players int    `kong:"default='1',help='Players per round'"`
	Workers int    `kong:"default='4',help='Concurrent simulation workers'"`
	Decks   int    `kong:"default='2',help='Number of decks in the shoe'"`
	Seed    *int64 `kong:"help='Base seed for reproducible runs (optional)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("Starting simulation",
		"rounds", c.Rounds,
		"players", c.Players,
		"workers", c.Workers,
		"seed", seed)

	sim := simulator.New(simulator.Config{
		Rounds:  c.Rounds,
		Players: c.Players,
		Workers: c.Workers,
		Decks:   c.Decks,
		Seed:    seed,
		Logger:  logger,
	})

	ctx := shared.SetupSignalHandler(logger)
	stats, err := sim.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("Simulation interrupted")
			return nil
		}
		return err
	}

	stats.WriteSummary(os.Stdout)
	return nil
}
