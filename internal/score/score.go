// Package score computes blackjack hand totals. It is stateless: both the
// game state machine and renderers query it without side effects.
package score

import (
	"sort"

	"github.com/lox/blackjack/internal/deck"
)

// Blackjack is the bust threshold and the target total.
const Blackjack = 21

// Total returns the best total for a hand that does not needlessly exceed 21.
// Cards are valued in descending base-value order so Aces are decided last:
// an Ace counts 11 while the running total is 10 or less, and 1 afterwards.
// That single pass yields the standard soft/hard valuation with no
// backtracking.
func Total(cards []deck.Card) int {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value() > sorted[j].Value()
	})

	total := 0
	for _, c := range sorted {
		if c.IsAce() {
			if total > 10 {
				total++
			} else {
				total += 11
			}
		} else {
			total += c.Value()
		}
	}
	return total
}

// IsBust returns true if the hand total exceeds 21
func IsBust(cards []deck.Card) bool {
	return Total(cards) > Blackjack
}

// IsNatural reports a natural blackjack: exactly two cards, exactly one Ace
// and at least one ten-value card. A 21 built from three or more cards is
// not a natural.
func IsNatural(cards []deck.Card) bool {
	if len(cards) != 2 {
		return false
	}
	aces, tens := 0, 0
	for _, c := range cards {
		if c.IsAce() {
			aces++
		}
		if c.IsTenValue() {
			tens++
		}
	}
	return aces == 1 && tens >= 1
}
