package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/cabinside/cabinctl/internal/dashboard"
	"github.com/cabinside/cabinctl/internal/util"
)

func renderProgressBar(elapsed, total float64, width int) string {
	if width < 10 {
		width = 10
	}
	barWidth := width - 2

	var ratio float64
	if total > 0 {
		ratio = elapsed / total
	}
	ratio = min(max(ratio, 0), 1)

	filled := int(ratio * float64(barWidth))
	return strings.Repeat("━", filled) + strings.Repeat("─", barWidth-filled)
}

// panel draws a titled, bordered box whose outer width is w.
func panel(title, body string, w int) string {
	inner := max(w-panelStyle.GetHorizontalFrameSize(), 10)
	head := labelStyle.Render(strings.ToUpper(title))
	return panelStyle.Width(inner).Render(head + "\n" + body)
}

func renderHeader(d dashboard.Data) string {
	icon := titleStyle.Render("◉")
	return icon + " " + titleStyle.Render(d.Title) + "\n  " + subtitleStyle.Render(strings.ToUpper(d.Subtitle))
}

func renderClock(now time.Time) string {
	return bigStyle.Render(util.FormatClock(now)) + "\n" + labelStyle.Render(util.FormatDate(now))
}

func renderWeather(w dashboard.Weather) string {
	cell := func(label, value string) string {
		return labelStyle.Render(label) + "\n" + valueStyle.Render(value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell("Temp", fmt.Sprintf("%d°C", w.TemperatureC)), "   ",
		cell("Humidity", fmt.Sprintf("%d%%", w.HumidityPct)), "   ",
		cell("Wind", fmt.Sprintf("%d km/h", w.WindKmh)),
	) + "\n" + labelStyle.Render(w.Condition)
}

func renderTrainCard(c dashboard.TrainCard) string {
	status := statusStyle(c.Status == dashboard.OnTime).Render("[" + string(c.Status) + "]")
	head := valueStyle.Render("▣ "+c.Number) + "  " + status
	cell := func(label, value string) string {
		return labelStyle.Render(label) + "\n" + valueStyle.Render(value)
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top,
		cell("ETA", c.ETA), "    ",
		cell("PLATFORM", c.Platform), "    ",
		cell("DISTANCE", c.Distance),
	)
	return head + "\n" + labelStyle.Render(c.Destination.Display()) + "\n" + grid
}

func nodeStyle(s dashboard.NodeStatus) lipgloss.Style {
	switch s {
	case dashboard.Online:
		return lipgloss.NewStyle().Foreground(success)
	case dashboard.Warning:
		return lipgloss.NewStyle().Foreground(warning)
	default:
		return lipgloss.NewStyle().Foreground(danger)
	}
}

func renderTopology(d dashboard.Data, w int) string {
	colW := max((w-4)/2, 24)
	var cells []string
	for _, n := range d.Nodes {
		st := nodeStyle(n.Status)
		name := fmt.Sprintf("%s %s", st.Render("●"), valueStyle.Render(n.Name))
		info := fmt.Sprintf("%s %-8s %s %3d%%",
			labelStyle.Render("Status:"), st.Render(string(n.Status)),
			labelStyle.Render("Power:"), n.Power)
		cells = append(cells, lipgloss.NewStyle().Width(colW).Render(name+"\n"+info))
	}
	var rows []string
	for i := 0; i < len(cells); i += 2 {
		if i+1 < len(cells) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i], cells[i+1]))
		} else {
			rows = append(rows, cells[i])
		}
	}
	legend := fmt.Sprintf("%s %s   %s %s %s %s %s %s",
		labelStyle.Render(fmt.Sprintf("SYS: %d/%d", d.OnlineCount(), len(d.Nodes))),
		labelStyle.Render("Node Map "+d.MapRev),
		lipgloss.NewStyle().Foreground(success).Render("●"), labelStyle.Render("Online"),
		lipgloss.NewStyle().Foreground(warning).Render("●"), labelStyle.Render("Warning"),
		lipgloss.NewStyle().Foreground(danger).Render("●"), labelStyle.Render("Offline"))
	return strings.Join(rows, "\n") + "\n" + legend
}

func renderTrainCaption(letter string, style lipgloss.Style, t dashboard.Train) string {
	return style.Render(letter+" "+t.Name) + labelStyle.Render(fmt.Sprintf("  %s  Near: %s", t.Location, t.Near.Display()))
}

func renderFooter(last time.Time) string {
	return labelStyle.Render("System Status: ") + statusStyle(true).Render("OPERATIONAL") +
		labelStyle.Render("  •  Last Update: "+util.FormatClock(last))
}
