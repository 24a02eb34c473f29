package game

// Outcome is a player's result against the dealer
type Outcome int

const (
	OutcomeBust Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomePush
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeBust:
		return "BUST"
	case OutcomeWon:
		return "WON"
	case OutcomeLost:
		return "LOST"
	case OutcomePush:
		return "PUSH"
	default:
		return "?"
	}
}

// PlayerResult pairs a player with their outcome
type PlayerResult struct {
	Name    string  `json:"name"`
	Outcome Outcome `json:"outcome"`
}

// Results adjudicates the round for each player in seat order. Only valid
// once the game has finished.
//
// The precedence is fixed: a busted player loses outright, then a busted
// dealer pays everyone left, then the higher total wins, and only equal
// totals fall through to the natural-blackjack tie-break. Naturals are
// never consulted before the totals are equal, so a dealer's natural 21
// beats a player's three-card 21 (LOST, not PUSH) while two naturals push.
func (g *Game) Results() ([]PlayerResult, error) {
	if !g.Finished() {
		return nil, ErrInvalidState
	}

	dealerBust := g.dealer.Bust()
	dealerTotal := g.dealer.Total()
	dealerNatural := g.dealer.Natural()

	results := make([]PlayerResult, 0, len(g.players))
	for _, p := range g.players {
		results = append(results, PlayerResult{
			Name:    p.Name,
			Outcome: adjudicate(p, dealerBust, dealerTotal, dealerNatural),
		})
	}
	return results, nil
}

func adjudicate(p *Participant, dealerBust bool, dealerTotal int, dealerNatural bool) Outcome {
	switch {
	case p.Bust():
		return OutcomeBust
	case dealerBust:
		return OutcomeWon
	}

	total := p.Total()
	switch {
	case total > dealerTotal:
		return OutcomeWon
	case total < dealerTotal:
		return OutcomeLost
	}

	natural := p.Natural()
	switch {
	case natural && dealerNatural:
		return OutcomePush
	case natural:
		return OutcomeWon
	case dealerNatural:
		return OutcomeLost
	default:
		return OutcomePush
	}
}
