// Package tui runs registered games in a terminal through Bubble Tea: the
// game loop, key bindings, menus, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the game by one fixed step.
type TickMsg time.Time

// tickCmd schedules the next step one tick period from now. The game is
// stepped with the same fixed period, so simulated time never depends on
// how late the message arrives.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
