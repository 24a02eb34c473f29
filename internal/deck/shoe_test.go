package deck

import (
	"errors"
	"testing"

	"github.com/lox/blackjack/internal/randutil"
)

func TestShoeComposition(t *testing.T) {
	t.Parallel()
	shoe := NewShoe(2, randutil.New(1))

	if shoe.Remaining() != 104 {
		t.Fatalf("two-deck shoe has %d cards, want 104", shoe.Remaining())
	}

	counts := make(map[Rank]int)
	tenValue := 0
	for !shoe.Empty() {
		card, err := shoe.Draw()
		if err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		counts[card.Rank]++
		if card.IsTenValue() {
			tenValue++
		}
	}

	for rank := Ace; rank <= King; rank++ {
		if counts[rank] != 8 {
			t.Errorf("rank %s: %d copies, want 8", rank, counts[rank])
		}
	}
	if tenValue != 32 {
		t.Errorf("ten-value cards = %d, want 32", tenValue)
	}
}

func TestShoeDeterministicUnderSeed(t *testing.T) {
	t.Parallel()
	a := NewShoe(2, randutil.New(42))
	b := NewShoe(2, randutil.New(42))

	for !a.Empty() {
		ca, err := a.Draw()
		if err != nil {
			t.Fatal(err)
		}
		cb, err := b.Draw()
		if err != nil {
			t.Fatal(err)
		}
		if ca != cb {
			t.Fatalf("same seed diverged: %v vs %v", ca, cb)
		}
	}
}

func TestScriptedDrawOrder(t *testing.T) {
	t.Parallel()
	want := MustParseCards("A 2 3 4 5 6")
	shoe := NewScripted(want...)

	for i, expected := range want {
		got, err := shoe.Draw()
		if err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		if got != expected {
			t.Errorf("draw %d = %v, want %v", i, got, expected)
		}
	}
}

func TestShoeExhaustion(t *testing.T) {
	t.Parallel()
	shoe := NewScripted(MustParseCards("A")...)

	if _, err := shoe.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if _, err := shoe.Draw(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Draw() on empty shoe = %v, want ErrExhausted", err)
	}
}
