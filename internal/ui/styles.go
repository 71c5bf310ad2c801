package ui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.AdaptiveColor{Light: "#007A99", Dark: "#5FD7FF"}
	accent  = lipgloss.AdaptiveColor{Light: "#8A4FBF", Dark: "#D7AFFF"}
	muted   = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#808080"}
	success = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#87D787"}
	warning = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFD75F"}
	danger  = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF5F5F"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(muted)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	bigStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#444444"}).
			Padding(0, 1)

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#5A6B7B", Dark: "#4E6E8E"})

	markerAStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	markerBStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	distanceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(danger)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

func statusStyle(ok bool) lipgloss.Style {
	if ok {
		return lipgloss.NewStyle().Bold(true).Foreground(success)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(warning)
}
