package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colourgrid/internal/core"
	"github.com/vovakirdan/colourgrid/internal/registry"
)

// maxModeKeys is the number of modes reachable with digit keys.
const maxModeKeys = 9

// KeyMap defines the key bindings for the colour grid.
type KeyMap struct {
	Modes    []key.Binding // One binding per registered mode, in toolbar order
	Next     key.Binding
	Prev     key.Binding
	Pause    key.Binding
	Snapshot key.Binding
	Help     key.Binding
	Quit     key.Binding

	modeIDs []string // Mode id behind each entry of Modes
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Pause, k.Snapshot, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Modes,
		{k.Next, k.Prev},
		{k.Pause, k.Snapshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings, with digits 1..9 assigned to
// the registered modes in toolbar order.
func DefaultKeyMap() KeyMap {
	k := KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "snapshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}

	for i, m := range registry.List() {
		if i >= maxModeKeys {
			break
		}
		digit := fmt.Sprintf("%d", i+1)
		k.Modes = append(k.Modes, key.NewBinding(
			key.WithKeys(digit),
			key.WithHelp(digit, m.Title),
		))
		k.modeIDs = append(k.modeIDs, m.ID)
	}

	return k
}

// ModeKey returns the digit bound to a mode, or "" if it has none.
func (k KeyMap) ModeKey(id string) string {
	for i, modeID := range k.modeIDs {
		if modeID == id {
			return k.Modes[i].Help().Key
		}
	}
	return ""
}

// MapKey translates a key message to an action.
// For ActionSetMode, mode is the id of the selected mode.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, mode string) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, ""
	case key.Matches(msg, k.Next):
		return core.ActionNextMode, ""
	case key.Matches(msg, k.Prev):
		return core.ActionPrevMode, ""
	case key.Matches(msg, k.Pause):
		return core.ActionPause, ""
	case key.Matches(msg, k.Snapshot):
		return core.ActionSnapshot, ""
	case key.Matches(msg, k.Help):
		return core.ActionHelp, ""
	}

	for i, b := range k.Modes {
		if key.Matches(msg, b) {
			return core.ActionSetMode, k.modeIDs[i]
		}
	}

	return core.ActionNone, ""
}
