// Package history persists finished rounds to disk so a session can be
// reviewed after the fact.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
)

// Record is one finished round, one JSON document per line in the history
// file.
type Record struct {
	FinishedAt time.Time      `json:"finished_at"`
	Players    []PlayerRecord `json:"players"`
	Dealer     DealerRecord   `json:"dealer"`
}

// PlayerRecord is one player's final hand and outcome
type PlayerRecord struct {
	Name    string   `json:"name"`
	Hand    []string `json:"hand"`
	Total   int      `json:"total"`
	Outcome string   `json:"outcome"`
}

// DealerRecord is the dealer's final hand
type DealerRecord struct {
	Hand  []string `json:"hand"`
	Total int      `json:"total"`
	Bust  bool     `json:"bust"`
}

// Recorder appends round records to a single history file. Writes go
// through an atomic rename so a crash mid-write never corrupts earlier
// rounds.
type Recorder struct {
	path   string
	clock  quartz.Clock
	logger *log.Logger
}

// NewRecorder creates a recorder writing to path. The clock is injectable
// so tests control the recorded timestamps.
func NewRecorder(path string, clock quartz.Clock, logger *log.Logger) *Recorder {
	return &Recorder{
		path:   path,
		clock:  clock,
		logger: logger.WithPrefix("history"),
	}
}

// Record appends one finished round. The snapshot must come from a finished
// game so the dealer's hand is final.
func (r *Recorder) Record(snap game.Snapshot, results []game.PlayerResult) error {
	if !snap.Finished {
		return fmt.Errorf("%w: cannot record an unfinished round", game.ErrInvalidState)
	}

	outcomes := make(map[string]string, len(results))
	for _, res := range results {
		outcomes[res.Name] = res.Outcome.String()
	}

	record := Record{
		FinishedAt: r.clock.Now(),
		Dealer: DealerRecord{
			Hand:  cardCodes(snap.Dealer),
			Total: snap.Dealer.Total,
			Bust:  snap.Dealer.Bust,
		},
	}
	for _, p := range snap.Players {
		record.Players = append(record.Players, PlayerRecord{
			Name:    p.Name,
			Hand:    cardCodes(p),
			Total:   p.Total,
			Outcome: outcomes[p.Name],
		})
	}

	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	existing, err := os.ReadFile(r.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read history file: %w", err)
	}

	data := append(existing, line...)
	data = append(data, '\n')
	if err := fileutil.WriteFileAtomic(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}

	r.logger.Debug("Recorded round", "path", r.path, "players", len(record.Players))
	return nil
}

func cardCodes(v game.ParticipantView) []string {
	codes := make([]string, len(v.Hand))
	for i, c := range v.Hand {
		codes[i] = c.String()
	}
	return codes
}
