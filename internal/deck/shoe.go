package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrExhausted is returned when a source is asked to draw from an empty
// sequence. A well-formed game never draws past exhaustion, so seeing this
// error means the caller's accounting is wrong.
var ErrExhausted = errors.New("card source exhausted")

// DeckSize is the number of cards in one standard deck (13 ranks x 4 suits;
// suits are not modelled but the multiplicity is).
const DeckSize = 52

const copiesPerRank = 4

// Shoe is a finite ordered sequence of cards consumed from the end, the
// production card source. It is built from whole decks and shuffled once at
// construction; there is no mid-game reshuffle.
type Shoe struct {
	cards []Card
}

// NewShoe creates a shoe of deckCount standard decks shuffled with rng.
func NewShoe(deckCount int, rng *rand.Rand) *Shoe {
	cards := make([]Card, 0, deckCount*DeckSize)
	for d := 0; d < deckCount; d++ {
		for rank := Ace; rank <= King; rank++ {
			for i := 0; i < copiesPerRank; i++ {
				cards = append(cards, NewCard(rank))
			}
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Shoe{cards: cards}
}

// NewScripted creates a shoe that draws the given cards in exactly the given
// order. Used by tests and anywhere a deterministic sequence is needed.
func NewScripted(cards ...Card) *Shoe {
	reversed := make([]Card, len(cards))
	for i, c := range cards {
		reversed[len(cards)-1-i] = c
	}
	return &Shoe{cards: reversed}
}

// Draw removes and returns the next card. Draws pop from the end of the
// underlying sequence, stack-style.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrExhausted
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Empty returns true if the shoe has no cards left
func (s *Shoe) Empty() bool {
	return len(s.cards) == 0
}
