// Package game implements the core blackjack state machine.
//
// The main type is Game, which owns the seated players, the dealer, the
// card source and the turn cursor. Construction deals every participant
// their two opening cards; from there the only mutations are HitCurrent and
// StandCurrent on behalf of whoever holds the turn. Once the last player
// acts the dealer plays out automatically under the house rule (hit below
// 17, stand on all 17s) and the game becomes read-only.
//
// # Basic Usage
//
//	g, err := game.New([]string{"Alice", "Bob"})
//	// Drive turns until the game ends...
//	for !g.Finished() {
//	    name, _ := g.CurrentPlayerName()
//	    // Ask name for a decision, then:
//	    g.HitCurrent() // or g.StandCurrent()
//	}
//	results, _ := g.Results()
//
// # Deterministic Testing
//
// Inject a scripted card source for complete control over the draw order:
//
//	source := deck.NewScripted(deck.MustParseCards("A K 5 6 10")...)
//	g, err := game.New([]string{"Alice"}, game.WithSource(source))
//
// Or seed the default shuffled shoe for reproducible games:
//
//	g, err := game.New([]string{"Alice"}, game.WithSeed(42))
//
// # Architecture
//
// Game delegates to specialized components:
//   - Participant: a name and an accumulating hand, no turn logic
//   - CardSource (deck.Shoe): produces cards one at a time, no scoring
//   - score: stateless hand totals, bust and natural detection
//
// A Game instance is a single mutable resource with no internal locking;
// exactly one caller drives it at a time.
package game
