package tui

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

// renderBoard formats the table for display. While the game is running the
// dealer's second card and true total stay hidden, matching what a live
// dealer would show.
func renderBoard(snap game.Snapshot) string {
	var b strings.Builder
	for _, p := range snap.Players {
		current := !snap.Finished && snap.Current == p.Name
		b.WriteString(renderParticipant(p, current, false))
		b.WriteString("\n")
	}
	b.WriteString(renderParticipant(snap.Dealer, false, !snap.Finished))
	return b.String()
}

func renderParticipant(v game.ParticipantView, current, hideHole bool) string {
	status := fmt.Sprintf("%d", v.Total)
	switch {
	case hideHole:
		status = "X"
	case v.Bust:
		status = BustStyle.Render("BUST")
	}

	cards := make([]string, 0, len(v.Hand))
	for i, c := range v.Hand {
		if hideHole && i == 1 {
			cards = append(cards, CardStyle.Render("X"))
			continue
		}
		cards = append(cards, CardStyle.Render(c.String()))
	}

	name := v.Name
	if current {
		name = TurnStyle.Render("> " + name)
	} else {
		name = "  " + name
	}
	return fmt.Sprintf("%s (%s): %s", name, status, strings.Join(cards, ", "))
}

// renderResults formats the end-of-game report
func renderResults(results []game.PlayerResult) string {
	var b strings.Builder
	b.WriteString("\nGAME HAS FINISHED:\n")
	for _, r := range results {
		b.WriteString(fmt.Sprintf("  %s: %s\n", r.Name, styleOutcome(r.Outcome)))
	}
	return b.String()
}

func styleOutcome(o game.Outcome) string {
	switch o {
	case game.OutcomeWon:
		return WonStyle.Render(o.String())
	case game.OutcomeLost:
		return LostStyle.Render(o.String())
	case game.OutcomePush:
		return PushStyle.Render(o.String())
	default:
		return BustStyle.Render(o.String())
	}
}
