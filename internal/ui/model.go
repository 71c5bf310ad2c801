package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/cabinside/cabinctl/internal/anim"
	"github.com/cabinside/cabinctl/internal/dashboard"
	"github.com/cabinside/cabinctl/internal/feed"
	"github.com/cabinside/cabinctl/internal/track"
	"github.com/cabinside/cabinctl/internal/util"
)

// Chimer announces phase changes.
type Chimer interface {
	Play()
	ToggleMute() bool
	Muted() bool
}

// Publisher mirrors the overview to remote screens.
type Publisher interface {
	PublishMarkers(at time.Time, phase string, markers []feed.MarkerState)
	PublishPhase(c feed.PhaseChange)
}

// Options wires a Model. Chime and Feed may be nil. A zero FrameInterval
// ticks at 60 fps.
type Options struct {
	Data          dashboard.Data
	Layout        track.Layout
	Timing        anim.Timing
	Easing        anim.Easing
	FrameInterval time.Duration
	Start         time.Time
	Chime         Chimer
	Feed          Publisher
	Log           zerolog.Logger
}

// transitions collects cycle transitions raised while the scheduler advances,
// so Update can fold them into the model value afterwards.
type transitions struct {
	items []anim.Transition
}

// Model is the Bubbletea model for the dashboard.
type Model struct {
	data   dashboard.Data
	layout track.Layout
	view   track.Rect
	sched  *anim.Scheduler
	cycle  *anim.Cycle
	trainA *anim.Marker
	trainB *anim.Marker
	events *transitions

	chime Chimer
	feed  Publisher
	log   zerolog.Logger

	keys keyMap
	help help.Model

	frameInterval time.Duration
	now           time.Time
	lastUpdate    time.Time
	phaseText     string
	phaseStart    time.Time
	phaseLen      time.Duration
	fade          fade
	showTopology  bool
	muted         bool
	width         int
	height        int
	quitting      bool
}

// New builds the dashboard and its animation cycle. The cycle starts in Init.
func New(o Options) Model {
	interval := o.FrameInterval
	if interval <= 0 {
		interval = time.Second / 60
	}
	sched := anim.NewScheduler(o.Start)
	a := anim.NewMarker("a", "Train A")
	b := anim.NewMarker("b", "Train B")
	cycle := anim.NewCycle(sched, o.Easing, anim.DefaultCycle(o.Layout, a, b, o.Timing))

	events := &transitions{}
	cycle.OnTransition(func(t anim.Transition) {
		events.items = append(events.items, t)
	})

	m := Model{
		data:          o.Data,
		layout:        o.Layout,
		view:          o.Layout.Bounds(),
		sched:         sched,
		cycle:         cycle,
		trainA:        a,
		trainB:        b,
		events:        events,
		chime:         o.Chime,
		feed:          o.Feed,
		log:           o.Log,
		keys:          defaultKeys(),
		help:          help.New(),
		frameInterval: interval,
		now:           o.Start,
		lastUpdate:    o.Start,
		phaseText:     "Ready to start...",
		fade:          newFade(interval),
		showTopology:  true,
	}
	if m.chime != nil {
		m.muted = m.chime.Muted()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	m.cycle.Start()
	return tea.Batch(
		frameCmd(m.frameInterval),
		clockCmd(),
		footerCmd(),
		tea.SetWindowTitle(m.data.Title),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.cycle.Stop()
			m.log.Debug().
				Int("dropped", m.sched.Pending()).
				Uint64("writesA", m.trainA.Moves()).
				Uint64("writesB", m.trainB.Moves()).
				Msg("clearing scheduler")
			m.sched.Reset()
			m.drainTransitions()
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		case key.Matches(msg, m.keys.Mute):
			if m.chime != nil {
				m.muted = m.chime.ToggleMute()
			}
		case key.Matches(msg, m.keys.Topology):
			m.showTopology = !m.showTopology
		}
		return m, nil

	case frameMsg:
		if m.quitting {
			return m, nil
		}
		m.sched.Advance(time.Time(msg))
		m.drainTransitions()
		m.fade.step()
		m.publishMarkers()
		return m, frameCmd(m.frameInterval)

	case clockMsg:
		m.now = time.Time(msg)
		return m, clockCmd()

	case footerMsg:
		m.lastUpdate = time.Time(msg)
		return m, footerCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m *Model) drainTransitions() {
	for _, t := range m.events.items {
		ev := m.log.Info().
			Str("from", t.From.String()).
			Str("to", t.To.String()).
			Uint64("count", t.Count)
		if t.To == anim.Stopped {
			ev.Msg("cycle stopped")
		} else {
			ev.Str("phase", t.Phase.Name).Msg("phase changed")
			m.phaseText = t.Phase.Name
			m.phaseStart = t.At
			m.phaseLen = t.Phase.Duration()
			m.fade.restart()
			if m.chime != nil {
				m.chime.Play()
			}
		}
		if m.feed != nil {
			m.feed.PublishPhase(feed.PhaseChange{
				From:  t.From.String(),
				To:    t.To.String(),
				Name:  t.Phase.Name,
				Count: t.Count,
				At:    t.At,
			})
		}
	}
	m.events.items = m.events.items[:0]
}

func (m Model) markerStates() []feed.MarkerState {
	var out []feed.MarkerState
	for _, mk := range []*anim.Marker{m.trainA, m.trainB} {
		if !mk.Placed() {
			continue
		}
		p := mk.Position()
		out = append(out, feed.MarkerState{
			ID:       mk.ID,
			Label:    mk.Label,
			X:        p.X,
			Y:        p.Y,
			Curve:    m.layout.Name(mk.Curve()),
			Fraction: mk.Fraction(),
		})
	}
	return out
}

func (m Model) publishMarkers() {
	if m.feed == nil {
		return
	}
	m.feed.PublishMarkers(m.sched.Now(), m.cycle.State().String(), m.markerStates())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 60 {
		w = 100
	}
	half := w / 2

	overview := lipgloss.JoinHorizontal(lipgloss.Top,
		panel("System Time", renderClock(m.now), half),
		panel("Weather Conditions", renderWeather(m.data.Weather), w-half),
	)
	sections := lipgloss.JoinHorizontal(lipgloss.Top,
		panel("↑ Upline Trains", renderTrainCard(m.data.Upline), half),
		panel("↓ Downline Trains", renderTrainCard(m.data.Downline), w-half),
	)

	parts := []string{
		renderHeader(m.data),
		overview,
		sections,
	}
	if m.showTopology {
		parts = append(parts, panel("Circuit Board - System Topology", renderTopology(m.data, w-4), w))
	}
	parts = append(parts,
		panel("Track Overview", m.renderTrack(w-4), w),
		"  "+renderFooter(m.lastUpdate),
		"  "+helpStyle.Render(m.helpLine()),
	)
	return strings.Join(parts, "\n")
}

func (m Model) helpLine() string {
	s := m.help.View(m.keys)
	if m.muted {
		s += "  [muted]"
	}
	return s
}

func (m Model) renderTrack(w int) string {
	rows := 12
	if m.height > 0 && !m.showTopology {
		rows = max(min(m.height-26, 24), 8)
	}
	c := newCanvas(w, rows, m.view)
	for _, curve := range m.layout.Curves() {
		c.stroke(curve)
	}
	if m.trainA.Placed() {
		c.mark(m.trainA.Position(), glyph{r: 'A', kind: glyphA})
	}
	if m.trainB.Placed() {
		c.mark(m.trainB.Position(), glyph{r: 'B', kind: glyphB})
	}

	indicator := lipgloss.NewStyle().Bold(true).Foreground(m.fade.color()).Render(m.phaseText)

	var progress string
	if m.phaseLen > 0 {
		elapsed := m.sched.Now().Sub(m.phaseStart)
		progress = fmt.Sprintf("%s %s %s",
			labelStyle.Render(util.FormatDuration(min(elapsed, m.phaseLen))),
			trackStyle.Render(renderProgressBar(elapsed.Seconds(), m.phaseLen.Seconds(), w-12)),
			labelStyle.Render(util.FormatDuration(m.phaseLen)))
	}

	lines := []string{
		indicator,
		c.render(),
		renderTrainCaption("A", markerAStyle, m.data.TrainA),
		renderTrainCaption("B", markerBStyle, m.data.TrainB),
		distanceStyle.Render("Distance: " + util.FormatKm(m.data.TrainGap())),
	}
	if progress != "" {
		lines = append(lines, progress)
	}
	return strings.Join(lines, "\n")
}
