package simulator

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSimulatorRun(t *testing.T) {
	t.Parallel()
	sim := New(Config{
		Rounds:  200,
		Players: 3,
		Workers: 4,
		Seed:    42,
		Logger:  testLogger(),
	})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 200, stats.Rounds)
	assert.Equal(t, 600, stats.Seats)

	total := 0
	for _, n := range stats.Outcomes {
		total += n
	}
	assert.Equal(t, stats.Seats, total, "every seat gets exactly one outcome")
}

func TestSimulatorReproducible(t *testing.T) {
	t.Parallel()
	run := func(workers int) *Statistics {
		sim := New(Config{
			Rounds:  100,
			Players: 2,
			Workers: workers,
			Seed:    7,
			Logger:  testLogger(),
		})
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		return stats
	}

	a := run(1)
	b := run(4)

	// Round seeds depend only on the base seed, not on worker scheduling
	assert.Equal(t, a.Outcomes, b.Outcomes)
	assert.Equal(t, a.DealerBusts, b.DealerBusts)
}

func TestSimulatorCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(Config{
		Rounds:  1000,
		Players: 1,
		Workers: 2,
		Seed:    1,
		Logger:  testLogger(),
	})
	_, err := sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatisticsSummary(t *testing.T) {
	t.Parallel()
	stats := NewStatistics()
	stats.Add(game.Snapshot{
		Finished: true,
		Dealer:   game.ParticipantView{Bust: true},
	}, []game.PlayerResult{
		{Name: "a", Outcome: game.OutcomeWon},
		{Name: "b", Outcome: game.OutcomeBust},
	})

	var sb strings.Builder
	stats.WriteSummary(&sb)
	out := sb.String()
	assert.Contains(t, out, "Rounds played: 1 (2 seats)")
	assert.Contains(t, out, "WON")
	assert.Contains(t, out, "Dealer busts: 1")
}
