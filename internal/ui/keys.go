package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nomadcxx/sanger-rename/internal/wizard"
)

type keyMap struct {
	forceQuit key.Binding
	quit      key.Binding
	pickSide  key.Binding
	pickList  key.Binding
	enter     key.Binding
	edit      key.Binding
	save      key.Binding
	cancel    key.Binding
	next      key.Binding
	prev      key.Binding
	day       key.Binding
	week      key.Binding
	month     key.Binding
	stamp     key.Binding
	commit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
		pickSide:  key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←→", "vendor")),
		pickList:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "label")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		save:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		next:      key.NewBinding(key.WithKeys("tab", "n"), key.WithHelp("tab/n", "next")),
		prev:      key.NewBinding(key.WithKeys("shift+tab", "p"), key.WithHelp("shift+tab/p", "back")),
		day:       key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←→", "day")),
		week:      key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "week")),
		month:     key.NewBinding(key.WithKeys("[", "]", "pgup", "pgdown"), key.WithHelp("[ ]", "month")),
		stamp:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply date")),
		commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "rename files")),
	}
}

// bindings returns the help entries for the current stage
func (k keyMap) bindings(stage wizard.Stage, editing, committed bool) []key.Binding {
	switch stage {
	case wizard.VendorSelection:
		return []key.Binding{k.pickSide, k.enter, k.quit}
	case wizard.PrimerRename, wizard.TemplateRename:
		if editing {
			return []key.Binding{k.save, k.cancel}
		}
		return []key.Binding{k.pickList, k.edit, k.next, k.prev, k.quit}
	case wizard.DateSelection:
		return []key.Binding{k.day, k.week, k.month, k.stamp, k.next, k.prev, k.quit}
	case wizard.ConfirmRename:
		if committed {
			return []key.Binding{k.quit}
		}
		return []key.Binding{k.commit, k.prev, k.quit}
	}
	return nil
}

// translateKey converts a terminal key message into wizard inputs. Pasted
// text arrives as several runes in one message.
func translateKey(msg tea.KeyMsg) []wizard.Input {
	switch msg.Type {
	case tea.KeyLeft:
		return []wizard.Input{wizard.Press(wizard.KeyLeft)}
	case tea.KeyRight:
		return []wizard.Input{wizard.Press(wizard.KeyRight)}
	case tea.KeyUp:
		return []wizard.Input{wizard.Press(wizard.KeyUp)}
	case tea.KeyDown:
		return []wizard.Input{wizard.Press(wizard.KeyDown)}
	case tea.KeyEnter:
		return []wizard.Input{wizard.Press(wizard.KeyEnter)}
	case tea.KeyEsc:
		return []wizard.Input{wizard.Press(wizard.KeyEsc)}
	case tea.KeyTab:
		return []wizard.Input{wizard.Press(wizard.KeyTab)}
	case tea.KeyShiftTab:
		return []wizard.Input{wizard.Press(wizard.KeyBackTab)}
	case tea.KeyBackspace:
		return []wizard.Input{wizard.Press(wizard.KeyBackspace)}
	case tea.KeyPgUp:
		return []wizard.Input{wizard.Press(wizard.KeyPgUp)}
	case tea.KeyPgDown:
		return []wizard.Input{wizard.Press(wizard.KeyPgDown)}
	case tea.KeySpace:
		return []wizard.Input{wizard.Char(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		inputs := make([]wizard.Input, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			inputs = append(inputs, wizard.Char(r))
		}
		return inputs
	}
	return nil
}
