package game

import (
	"errors"
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func TestDealInitial(t *testing.T) {
	t.Parallel()
	p := NewParticipant("Alice")
	cards := deck.MustParseCards("A K")

	if err := p.DealInitial(cards[0], cards[1]); err != nil {
		t.Fatalf("DealInitial() error = %v", err)
	}
	if len(p.Hand) != 2 {
		t.Fatalf("hand size = %d, want 2", len(p.Hand))
	}
	if p.Hand[0] != cards[0] || p.Hand[1] != cards[1] {
		t.Errorf("hand = %v, want %v", p.Hand, cards)
	}
}

func TestDealInitialTwice(t *testing.T) {
	t.Parallel()
	p := NewParticipant("Alice")
	cards := deck.MustParseCards("A K 2 3")

	if err := p.DealInitial(cards[0], cards[1]); err != nil {
		t.Fatalf("DealInitial() error = %v", err)
	}
	err := p.DealInitial(cards[2], cards[3])
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("re-deal error = %v, want ErrInvalidState", err)
	}
	if len(p.Hand) != 2 {
		t.Errorf("failed re-deal mutated the hand: %v", p.Hand)
	}
}

func TestParticipantHitAndScoring(t *testing.T) {
	t.Parallel()
	p := NewParticipant("Bob")
	cards := deck.MustParseCards("10 10 3")
	if err := p.DealInitial(cards[0], cards[1]); err != nil {
		t.Fatal(err)
	}

	if p.Total() != 20 {
		t.Errorf("Total() = %d, want 20", p.Total())
	}
	if p.Bust() {
		t.Error("20 is not bust")
	}

	p.Hit(cards[2])
	if len(p.Hand) != 3 {
		t.Fatalf("hand size = %d, want 3", len(p.Hand))
	}
	if !p.Bust() {
		t.Errorf("Total() = %d, expected bust", p.Total())
	}
}

func TestParticipantNatural(t *testing.T) {
	t.Parallel()
	p := NewParticipant("Carol")
	cards := deck.MustParseCards("A Q")
	if err := p.DealInitial(cards[0], cards[1]); err != nil {
		t.Fatal(err)
	}
	if !p.Natural() {
		t.Error("A+Q is a natural")
	}
}
