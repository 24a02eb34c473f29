package game

import (
	"fmt"
	"time"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/score"
)

// DealerStandTotal is the house rule: the dealer draws while strictly below
// this total and stands on all 17s.
const DealerStandTotal = 17

// DefaultDecks is the number of decks in the default shoe.
const DefaultDecks = 2

// cursorEnded is the turn cursor sentinel for a finished game.
const cursorEnded = -1

// CardSource produces cards one at a time. It knows nothing about scoring
// or turns; the Game is its only consumer.
type CardSource interface {
	Draw() (deck.Card, error)
}

// Game is the blackjack state machine. It owns the seated players, the
// dealer, the card source and the turn cursor. The cursor is the only
// control state: a valid index into players while the game is active,
// cursorEnded once it is over. Hands only ever grow.
//
// A Game is not safe for concurrent use; each instance belongs to exactly
// one caller at a time.
type Game struct {
	players []*Participant
	dealer  *Participant
	source  CardSource
	current int
}

// Option configures a Game at construction
type Option func(*gameOptions)

type gameOptions struct {
	source CardSource
	decks  int
	seed   *int64
}

// WithSource supplies an external card source, replacing the default
// shuffled shoe. Used for deterministic play and tests.
func WithSource(source CardSource) Option {
	return func(o *gameOptions) {
		o.source = source
	}
}

// WithDecks sets the number of decks in the default shoe
func WithDecks(n int) Option {
	return func(o *gameOptions) {
		o.decks = n
	}
}

// WithSeed seeds the default shoe's shuffle for reproducible games
func WithSeed(seed int64) Option {
	return func(o *gameOptions) {
		o.seed = &seed
	}
}

// New creates a game for the named players, deals two cards to every player
// and the dealer in seat order (players first, dealer last), and gives the
// first player the turn. Names identify players for the rest of the game, so
// they must be non-blank and unique; an empty list is an error.
func New(playerNames []string, opts ...Option) (*Game, error) {
	if len(playerNames) == 0 {
		return nil, fmt.Errorf("%w: at least one player is required", ErrInvalidArgument)
	}
	seen := make(map[string]bool, len(playerNames))
	for _, name := range playerNames {
		if name == "" {
			return nil, fmt.Errorf("%w: blank player name", ErrInvalidArgument)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate player name %q", ErrInvalidArgument, name)
		}
		seen[name] = true
	}

	options := gameOptions{decks: DefaultDecks}
	for _, opt := range opts {
		opt(&options)
	}
	if options.source == nil {
		seed := time.Now().UnixNano()
		if options.seed != nil {
			seed = *options.seed
		}
		options.source = deck.NewShoe(options.decks, randutil.New(seed))
	}

	g := &Game{
		players: make([]*Participant, 0, len(playerNames)),
		dealer:  NewParticipant(DealerName),
		source:  options.source,
		current: 0,
	}
	for _, name := range playerNames {
		g.players = append(g.players, NewParticipant(name))
	}

	for _, p := range append(append([]*Participant{}, g.players...), g.dealer) {
		c1, err := g.draw()
		if err != nil {
			return nil, err
		}
		c2, err := g.draw()
		if err != nil {
			return nil, err
		}
		if err := p.DealInitial(c1, c2); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Finished returns true once every player has acted and the dealer has played
func (g *Game) Finished() bool {
	return g.current == cursorEnded
}

// CurrentPlayerName returns the name of the player whose turn it is
func (g *Game) CurrentPlayerName() (string, error) {
	if g.Finished() {
		return "", ErrGameEnded
	}
	return g.players[g.current].Name, nil
}

// HitCurrent draws one card for the current player. A bust ends the
// player's turn immediately; otherwise they stay current and may act again.
func (g *Game) HitCurrent() error {
	if g.Finished() {
		return ErrGameEnded
	}
	card, err := g.draw()
	if err != nil {
		return err
	}
	player := g.players[g.current]
	player.Hit(card)
	if player.Bust() {
		return g.advance()
	}
	return nil
}

// StandCurrent ends the current player's turn
func (g *Game) StandCurrent() error {
	if g.Finished() {
		return ErrGameEnded
	}
	return g.advance()
}

// advance moves the turn to the next player. After the last player the
// dealer plays out automatically and the game ends.
func (g *Game) advance() error {
	if g.current == len(g.players)-1 {
		if err := g.playDealer(); err != nil {
			return err
		}
		g.current = cursorEnded
		return nil
	}
	g.current++
	return nil
}

// playDealer runs the house policy: draw while strictly under 17, stand on
// all 17s. The loop is bounded because totals only increase.
func (g *Game) playDealer() error {
	for score.Total(g.dealer.Hand) < DealerStandTotal {
		card, err := g.draw()
		if err != nil {
			return err
		}
		g.dealer.Hit(card)
	}
	return nil
}

func (g *Game) draw() (deck.Card, error) {
	card, err := g.source.Draw()
	if err != nil {
		return deck.Card{}, fmt.Errorf("draw card: %w", err)
	}
	return card, nil
}
