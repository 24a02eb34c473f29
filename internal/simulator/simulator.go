// Package simulator plays automated blackjack rounds to measure outcome
// rates under the house rules.
package simulator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/game"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Players int
	Workers int
	Decks   int
	Seed    int64
	Logger  *log.Logger
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Players < 1 {
		config.Players = 1
	}
	if config.Decks < 1 {
		config.Decks = game.DefaultDecks
	}
	return &Simulator{config: config}
}

// Run plays the configured number of rounds spread across workers and
// returns aggregated statistics. Each round is seeded from the base seed
// plus the round number, so a run is reproducible regardless of worker
// count.
func (s *Simulator) Run(ctx context.Context) (*Statistics, error) {
	g, ctx := errgroup.WithContext(ctx)

	partials := make([]*Statistics, s.config.Workers)
	for w := 0; w < s.config.Workers; w++ {
		worker := w
		partials[worker] = NewStatistics()
		g.Go(func() error {
			for round := worker; round < s.config.Rounds; round += s.config.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := s.playRound(round, partials[worker]); err != nil {
					return fmt.Errorf("round %d: %w", round, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := NewStatistics()
	for _, p := range partials {
		stats.Merge(p)
	}

	s.config.Logger.Info("Simulation complete",
		"rounds", stats.Rounds,
		"players", s.config.Players,
		"win_rate", fmt.Sprintf("%.4f", stats.Rate(game.OutcomeWon)))
	return stats, nil
}

// playRound plays one full round with every seat following the dealer's own
// policy: hit while strictly under 17, then stand.
func (s *Simulator) playRound(round int, stats *Statistics) error {
	names := make([]string, s.config.Players)
	for i := range names {
		names[i] = fmt.Sprintf("Sim%d", i+1)
	}

	roundSeed := s.config.Seed + int64(round)
	bj, err := game.New(names,
		game.WithDecks(s.config.Decks),
		game.WithSeed(roundSeed))
	if err != nil {
		return err
	}

	for !bj.Finished() {
		name, err := bj.CurrentPlayerName()
		if err != nil {
			return err
		}
		if currentTotal(bj, name) < game.DealerStandTotal {
			err = bj.HitCurrent()
		} else {
			err = bj.StandCurrent()
		}
		if err != nil {
			return err
		}
	}

	results, err := bj.Results()
	if err != nil {
		return err
	}
	stats.Add(bj.Snapshot(), results)

	s.config.Logger.Debug("Round finished", "round", round, "seed", roundSeed)
	return nil
}

func currentTotal(bj *game.Game, name string) int {
	for _, p := range bj.Snapshot().Players {
		if p.Name == name {
			return p.Total
		}
	}
	return 0
}
