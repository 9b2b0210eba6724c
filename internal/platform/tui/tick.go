// Package tui provides the Bubble Tea front-end for gridstep. It acts as the
// scheduler, the keyboard source and the display for a world.World.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickDelta caps the elapsed time of one tick so a stalled terminal does
// not finish a whole move in a single frame.
const maxTickDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a world tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsed returns the seconds between two ticks, capped at maxTickDelta.
// A zero previous tick counts as one nominal interval.
func elapsed(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		return (time.Second / time.Duration(tickRate)).Seconds()
	}
	d := now.Sub(prev)
	if d < 0 {
		d = 0
	}
	if d > maxTickDelta {
		d = maxTickDelta
	}
	return d.Seconds()
}
