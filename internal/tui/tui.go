// Package tui implements the interactive blackjack table as a Bubble Tea
// program. It drives the game purely through the exported Game API.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

type phase int

const (
	phaseSeating phase = iota
	phasePlaying
	phaseFinished
)

// RoundRecorder persists a finished round. Satisfied by history.Recorder.
type RoundRecorder interface {
	Record(game.Snapshot, []game.PlayerResult) error
}

// Model is the Bubble Tea model for a single blackjack game
type Model struct {
	logger   *log.Logger
	gameOpts []game.Option
	recorder RoundRecorder

	nameInput textinput.Model
	names     []string

	game    *game.Game
	results []game.PlayerResult

	phase    phase
	flash    string
	quitting bool
}

// Option configures the TUI model
type Option func(*Model)

// WithGameOptions forwards options to the game constructed once seating ends
func WithGameOptions(opts ...game.Option) Option {
	return func(m *Model) {
		m.gameOpts = opts
	}
}

// WithPlayers pre-seats the named players, skipping the seating phase
func WithPlayers(names ...string) Option {
	return func(m *Model) {
		m.names = append(m.names, names...)
	}
}

// WithRecorder persists each finished round through the given recorder
func WithRecorder(r RoundRecorder) Option {
	return func(m *Model) {
		m.recorder = r
	}
}

// NewModel creates a new TUI model
func NewModel(logger *log.Logger, opts ...Option) (*Model, error) {
	ti := textinput.New()
	ti.Placeholder = "Player name"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 32
	ti.Prompt = "> "

	m := &Model{
		logger:    logger.WithPrefix("tui"),
		nameInput: ti,
		phase:     phaseSeating,
	}
	for _, opt := range opts {
		opt(m)
	}

	if len(m.names) > 0 {
		if err := m.startGame(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.phase == phaseSeating {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSeating:
		return m.updateSeating(keyMsg)
	case phasePlaying:
		return m.updatePlaying(keyMsg)
	default:
		return m.updateFinished(keyMsg)
	}
}

func (m *Model) updateSeating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		name := strings.TrimSpace(m.nameInput.Value())
		m.nameInput.SetValue("")

		switch {
		case name == "" && len(m.names) == 0:
			m.flash = "At least one player is required"
		case name == "":
			if err := m.startGame(); err != nil {
				m.flash = err.Error()
				return m, nil
			}
		default:
			for _, existing := range m.names {
				if existing == name {
					m.flash = fmt.Sprintf("%q is already seated", name)
					return m, nil
				}
			}
			m.names = append(m.names, name)
			m.flash = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch msg.String() {
	case "h":
		err = m.game.HitCurrent()
	case "s":
		err = m.game.StandCurrent()
	case "q":
		m.quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}
	if err != nil {
		m.logger.Error("Turn failed", "error", err)
		m.flash = err.Error()
		return m, nil
	}
	m.flash = ""

	if m.game.Finished() {
		m.finishGame()
	}
	return m, nil
}

func (m *Model) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "enter":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) startGame() error {
	g, err := game.New(m.names, m.gameOpts...)
	if err != nil {
		return err
	}
	m.game = g
	m.phase = phasePlaying
	m.flash = ""
	m.logger.Debug("Game started", "players", len(m.names))
	return nil
}

func (m *Model) finishGame() {
	results, err := m.game.Results()
	if err != nil {
		// Unreachable: finishGame only runs once Finished is true
		m.logger.Error("Results failed", "error", err)
		return
	}
	m.results = results
	m.phase = phaseFinished

	if m.recorder != nil {
		if err := m.recorder.Record(m.game.Snapshot(), results); err != nil {
			m.logger.Error("Failed to record round", "error", err)
		}
	}
}

// Results returns the final outcomes, or nil if the game never finished
func (m *Model) Results() []game.PlayerResult {
	return m.results
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("BLACKJACK"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseSeating:
		if len(m.names) > 0 {
			b.WriteString(fmt.Sprintf("Seated: %s\n\n", strings.Join(m.names, ", ")))
		}
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("enter a name to seat a player, empty enter to deal"))

	case phasePlaying:
		snap := m.game.Snapshot()
		b.WriteString(renderBoard(snap))
		b.WriteString("\n")
		b.WriteString(TurnStyle.Render(fmt.Sprintf("Current player: %s", snap.Current)))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("h: hit  s: stand  q: quit"))

	case phaseFinished:
		b.WriteString(renderBoard(m.game.Snapshot()))
		b.WriteString("\n")
		b.WriteString(renderResults(m.results))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("q: quit"))
	}

	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.flash))
	}
	b.WriteString("\n")
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the player quits
func Run(m *Model) error {
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
