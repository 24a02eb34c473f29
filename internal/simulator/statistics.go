package simulator

import (
	"fmt"
	"io"

	"github.com/lox/blackjack/internal/game"
)

// Statistics aggregates per-seat outcomes across simulated rounds
type Statistics struct {
	Rounds      int
	Seats       int
	Outcomes    map[game.Outcome]int
	DealerBusts int
}

// NewStatistics creates an empty statistics accumulator
func NewStatistics() *Statistics {
	return &Statistics{Outcomes: make(map[game.Outcome]int)}
}

// Add records one finished round
func (s *Statistics) Add(snap game.Snapshot, results []game.PlayerResult) {
	s.Rounds++
	s.Seats += len(results)
	for _, r := range results {
		s.Outcomes[r.Outcome]++
	}
	if snap.Dealer.Bust {
		s.DealerBusts++
	}
}

// Merge folds another accumulator into this one
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Seats += other.Seats
	s.DealerBusts += other.DealerBusts
	for outcome, n := range other.Outcomes {
		s.Outcomes[outcome] += n
	}
}

// Rate returns the share of seats that finished with the given outcome
func (s *Statistics) Rate(outcome game.Outcome) float64 {
	if s.Seats == 0 {
		return 0
	}
	return float64(s.Outcomes[outcome]) / float64(s.Seats)
}

// WriteSummary writes a human-readable summary of the run
func (s *Statistics) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "\n=== SIMULATION RESULTS ===\n")
	fmt.Fprintf(w, "Rounds played: %d (%d seats)\n", s.Rounds, s.Seats)
	for _, outcome := range []game.Outcome{game.OutcomeWon, game.OutcomeLost, game.OutcomePush, game.OutcomeBust} {
		fmt.Fprintf(w, "%-5s %7d  (%.2f%%)\n", outcome, s.Outcomes[outcome], s.Rate(outcome)*100)
	}
	if s.Rounds > 0 {
		fmt.Fprintf(w, "Dealer busts: %d (%.2f%% of rounds)\n",
			s.DealerBusts, float64(s.DealerBusts)/float64(s.Rounds)*100)
	}
}
