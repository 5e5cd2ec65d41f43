package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Nomadcxx/sanger-rename/internal/wizard"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
)

// Model is the Bubble Tea front end of the rename wizard. It owns the
// terminal and forwards key presses to the wizard, which holds all state.
type Model struct {
	wiz    *wizard.Wizard
	keys   keyMap
	help   help.Model
	width  int
	height int
	err    error
}

// NewModel creates a TUI model driving the given wizard
func NewModel(wiz *wizard.Wizard) Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(RAMARed).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(RAMAMuted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(RAMAMuted)

	return Model{
		wiz:    wiz,
		keys:   defaultKeyMap(),
		help:   h,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Init initializes the TUI
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.forceQuit) {
			return m, tea.Quit
		}

		for _, in := range translateKey(msg) {
			transition, err := m.wiz.Handle(in)
			m.err = err
			if transition == wizard.Quit {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	return m, nil
}

// Wizard returns the wizard driven by this model
func (m Model) Wizard() *wizard.Wizard {
	return m.wiz
}

// Err returns the error reported by the last key press, if any
func (m Model) Err() error {
	return m.err
}
