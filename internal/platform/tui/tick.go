// Package tui provides the Bubble Tea front end for the splitter.
// It maps terminal input onto a run, draws it, and hosts the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsed returns the seconds between two ticks, falling back to the
// nominal tick duration for the first tick or a clock going backwards.
func elapsed(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() {
		return nominal
	}
	dt := now.Sub(prev).Seconds()
	if dt <= 0 {
		return nominal
	}
	return dt
}
