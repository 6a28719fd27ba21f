package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const statusDuration = 3 * time.Second

type statusClearMsg struct {
	seq int
}

func scheduleStatusClear(seq int) tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
