package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/score"
)

// DealerName is the reserved name of the house participant.
const DealerName = "Dealer"

// Participant is a player or the dealer: a name and an accumulating hand.
// It holds no turn logic; the Game mutates it.
type Participant struct {
	Name string
	Hand []deck.Card
}

// NewParticipant creates a participant with an empty hand
func NewParticipant(name string) *Participant {
	return &Participant{Name: name}
}

// DealInitial gives the participant their two opening cards, in order.
// Dealing into a non-empty hand is a bug in the caller and fails.
func (p *Participant) DealInitial(c1, c2 deck.Card) error {
	if len(p.Hand) > 0 {
		return fmt.Errorf("%w: %s already has cards", ErrInvalidState, p.Name)
	}
	p.Hand = append(p.Hand, c1, c2)
	return nil
}

// Hit appends one card. Bust detection is the caller's job.
func (p *Participant) Hit(card deck.Card) {
	p.Hand = append(p.Hand, card)
}

// Total returns the best hand total
func (p *Participant) Total() int {
	return score.Total(p.Hand)
}

// Bust returns true if the hand total exceeds 21
func (p *Participant) Bust() bool {
	return score.IsBust(p.Hand)
}

// Natural returns true if the hand is a natural blackjack
func (p *Participant) Natural() bool {
	return score.IsNatural(p.Hand)
}
