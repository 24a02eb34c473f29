package deck

import (
	"fmt"
	"strings"
)

// Rank represents a card rank. Blackjack ignores suits entirely: two cards
// of the same rank are interchangeable, so a Card is identified by rank alone.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}

// Card represents a playing card. Equality is rank equality.
type Card struct {
	Rank Rank
}

// NewCard creates a new card
func NewCard(rank Rank) Card {
	return Card{Rank: rank}
}

// String returns the string representation of a card (e.g., "A", "10")
func (c Card) String() string {
	return c.Rank.String()
}

// Value returns the baseline numeric value of the card: Ace counts 1 here,
// face cards count 10. Soft Ace handling lives in the score package.
func (c Card) Value() int {
	if c.Rank >= Ten {
		return 10
	}
	return int(c.Rank)
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsTenValue returns true if the card counts as ten (Ten, Jack, Queen, King)
func (c Card) IsTenValue() bool {
	return c.Rank >= Ten
}

// ParseCard parses a single rank code ("A", "2".."9", "10" or "T", "J", "Q",
// "K"), case insensitive.
func ParseCard(s string) (Card, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return Card{Rank: Ace}, nil
	case "2":
		return Card{Rank: Two}, nil
	case "3":
		return Card{Rank: Three}, nil
	case "4":
		return Card{Rank: Four}, nil
	case "5":
		return Card{Rank: Five}, nil
	case "6":
		return Card{Rank: Six}, nil
	case "7":
		return Card{Rank: Seven}, nil
	case "8":
		return Card{Rank: Eight}, nil
	case "9":
		return Card{Rank: Nine}, nil
	case "10", "T":
		return Card{Rank: Ten}, nil
	case "J":
		return Card{Rank: Jack}, nil
	case "Q":
		return Card{Rank: Queen}, nil
	case "K":
		return Card{Rank: King}, nil
	default:
		return Card{}, fmt.Errorf("invalid card code %q", s)
	}
}

// ParseCards parses space-separated rank codes (e.g. "A 10 3")
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is ParseCards that panics on invalid input. For tests and
// hardcoded sequences.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
