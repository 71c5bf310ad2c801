package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time
type clockMsg time.Time
type footerMsg time.Time

const (
	clockInterval  = time.Second
	footerInterval = 5 * time.Second
)

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func clockCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func footerCmd() tea.Cmd {
	return tea.Tick(footerInterval, func(t time.Time) tea.Msg {
		return footerMsg(t)
	})
}
