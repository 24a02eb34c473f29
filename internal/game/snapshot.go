package game

import "github.com/lox/blackjack/internal/deck"

// ParticipantView is a read-only copy of one participant's state
type ParticipantView struct {
	Name    string      `json:"name"`
	Hand    []deck.Card `json:"hand"`
	Total   int         `json:"total"`
	Bust    bool        `json:"bust"`
	Natural bool        `json:"natural"`
}

// Snapshot is a point-in-time view of the whole table: players in seat
// order, then the dealer. Renderers decide what to hide (the dealer's hole
// card stays face down until the game finishes); the snapshot itself is
// complete.
type Snapshot struct {
	Players  []ParticipantView `json:"players"`
	Dealer   ParticipantView   `json:"dealer"`
	Finished bool              `json:"finished"`
	Current  string            `json:"current,omitempty"`
}

// Snapshot returns a copy of the current game state. Callable in any state
// and never mutates the game.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Players:  make([]ParticipantView, 0, len(g.players)),
		Dealer:   viewOf(g.dealer),
		Finished: g.Finished(),
	}
	for _, p := range g.players {
		snap.Players = append(snap.Players, viewOf(p))
	}
	if !g.Finished() {
		snap.Current = g.players[g.current].Name
	}
	return snap
}

func viewOf(p *Participant) ParticipantView {
	hand := make([]deck.Card, len(p.Hand))
	copy(hand, p.Hand)
	return ParticipantView{
		Name:    p.Name,
		Hand:    hand,
		Total:   p.Total(),
		Bust:    p.Bust(),
		Natural: p.Natural(),
	}
}
