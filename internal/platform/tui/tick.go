// Package tui provides the Bubble Tea integration for the colour grid.
// It handles the frame loop, resize events, the mode toolbar and input.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is the frame callback: it asks the renderer for one tick.
// Gen identifies the loop that scheduled it so a restarted loop can ignore
// callbacks left over from a stopped one.
type FrameMsg struct {
	Time time.Time
	Gen  int
}

// frameCmd returns a Bubble Tea command that delivers the next frame callback
// at the specified rate.
func frameCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, Gen: gen}
	})
}
