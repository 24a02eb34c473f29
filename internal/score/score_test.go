package score

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func TestTotal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  int
	}{
		{"empty hand", "", 0},
		{"no aces is plain sum", "10 7 2", 19},
		{"face cards count ten", "K Q J", 30},
		{"soft ace", "A 6", 17},
		{"natural", "A K", 21},
		{"hard ace", "A 10 5", 16},
		{"two aces", "A A", 12},
		{"two aces with nine", "A A 9", 21},
		{"ace forced hard by faces", "A K Q", 21},
		{"three card twenty one", "7 7 7", 21},
		{"bust hand", "10 10 3", 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Total(deck.MustParseCards(tt.cards)); got != tt.want {
				t.Errorf("Total(%s) = %d, want %d", tt.cards, got, tt.want)
			}
		})
	}
}

func TestTotalMonotonicUnderHits(t *testing.T) {
	t.Parallel()
	hands := []string{"", "A", "A 6", "10 7", "A A", "10 10"}
	extra := deck.MustParseCards("2 5 9 10 K")

	for _, h := range hands {
		hand := deck.MustParseCards(h)
		before := Total(hand)
		for _, card := range extra {
			after := Total(append(append([]deck.Card{}, hand...), card))
			if after < before {
				t.Errorf("Total decreased after hit: %q + %s: %d -> %d", h, card, before, after)
			}
		}
	}
}

func TestIsBust(t *testing.T) {
	t.Parallel()
	if IsBust(deck.MustParseCards("10 10 A")) {
		t.Error("21 is not bust")
	}
	if !IsBust(deck.MustParseCards("10 10 3")) {
		t.Error("23 is bust")
	}
}

func TestIsNatural(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  bool
	}{
		{"ace king", "A K", true},
		{"ace queen", "A Q", true},
		{"ace jack", "A J", true},
		{"ace ten", "A 10", true},
		{"ten ace order irrelevant", "K A", true},
		{"three card twenty one", "7 7 7", false},
		{"three card ace twenty one", "A 10 10", false},
		{"two aces", "A A", false},
		{"twenty without ace", "10 J", false},
		{"ace nine", "A 9", false},
		{"single ace", "A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNatural(deck.MustParseCards(tt.cards)); got != tt.want {
				t.Errorf("IsNatural(%s) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}
