package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/cabinside/cabinctl/internal/anim"
	"github.com/cabinside/cabinctl/internal/dashboard"
	"github.com/cabinside/cabinctl/internal/feed"
	"github.com/cabinside/cabinctl/internal/track"
)

var start = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

type fakeChime struct {
	plays int
	muted bool
}

func (c *fakeChime) Play()            { c.plays++ }
func (c *fakeChime) ToggleMute() bool { c.muted = !c.muted; return c.muted }
func (c *fakeChime) Muted() bool      { return c.muted }

type fakeFeed struct {
	snapshots int
	phases    []feed.PhaseChange
}

func (f *fakeFeed) PublishMarkers(time.Time, string, []feed.MarkerState) { f.snapshots++ }
func (f *fakeFeed) PublishPhase(c feed.PhaseChange)                      { f.phases = append(f.phases, c) }

func newTestModel() (Model, *fakeChime, *fakeFeed) {
	c := &fakeChime{}
	f := &fakeFeed{}
	m := New(Options{
		Data:          dashboard.Default(),
		Layout:        track.DefaultLayout(),
		Timing:        anim.DefaultTiming,
		Easing:        anim.EaseInOutCubic,
		FrameInterval: 20 * time.Millisecond,
		Start:         start,
		Chime:         c,
		Feed:          f,
		Log:           zerolog.Nop(),
	})
	return m, c, f
}

// frames feeds frame ticks every 20ms up to until.
func frames(m Model, from, until time.Duration) Model {
	for d := from; d <= until; d += 20 * time.Millisecond {
		m, _ = m.handleMsg(frameMsg(start.Add(d)))
	}
	return m
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInitPlacesMarkersAtRest(t *testing.T) {
	m, _, _ := newTestModel()
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected tick commands from Init")
	}
	if m.trainA.Fraction() != anim.WestRest || m.trainB.Fraction() != anim.EastRest {
		t.Fatalf("markers at %v/%v, want rest", m.trainA.Fraction(), m.trainB.Fraction())
	}
	if m.phaseText != "Ready to start..." {
		t.Fatalf("unexpected phase text %q", m.phaseText)
	}
}

func TestFramesEnterPhaseOneAfterSettle(t *testing.T) {
	m, chime, f := newTestModel()
	m.Init()

	m = frames(m, 20*time.Millisecond, 980*time.Millisecond)
	if chime.plays != 0 || len(f.phases) != 0 {
		t.Fatal("phase started during settle")
	}

	m = frames(m, time.Second, 1500*time.Millisecond)
	if !strings.HasPrefix(m.phaseText, "Phase 1:") {
		t.Fatalf("phase text %q, want phase 1", m.phaseText)
	}
	if chime.plays != 1 {
		t.Fatalf("expected one chime, got %d", chime.plays)
	}
	if len(f.phases) != 1 || f.phases[0].To != "phase-1" || f.phases[0].Count != 1 {
		t.Fatalf("unexpected phase events %+v", f.phases)
	}
	if f.snapshots == 0 {
		t.Fatal("expected marker snapshots")
	}
	if m.phaseLen != 6*time.Second {
		t.Fatalf("phase length %v, want 6s", m.phaseLen)
	}
	if m.trainA.Fraction() <= anim.WestRest {
		t.Fatal("train A did not move")
	}
}

func TestQuitStopsCycle(t *testing.T) {
	m, _, f := newTestModel()
	m.Init()
	m = frames(m, 20*time.Millisecond, 2*time.Second)

	m, cmd := m.handleMsg(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !m.quitting || m.cycle.State() != anim.Stopped {
		t.Fatalf("quitting=%v state=%v", m.quitting, m.cycle.State())
	}
	if n := m.sched.Pending(); n != 0 {
		t.Fatalf("%d callbacks still queued after quit", n)
	}
	if last := f.phases[len(f.phases)-1]; last.To != "stopped" {
		t.Fatalf("last phase event %+v, want stopped", last)
	}

	moves := m.trainA.Moves() + m.trainB.Moves()
	m = frames(m, 2*time.Second, 9*time.Second)
	if got := m.trainA.Moves() + m.trainB.Moves(); got != moves {
		t.Fatal("markers moved after quit")
	}
	if m.View() != "" {
		t.Fatal("expected empty view after quit")
	}
}

func TestMuteAndTopologyToggles(t *testing.T) {
	m, chime, _ := newTestModel()

	m, _ = m.handleMsg(keyPress('m'))
	if !m.muted || !chime.muted {
		t.Fatal("expected chime muted")
	}
	if !strings.Contains(m.helpLine(), "[muted]") {
		t.Fatalf("help line %q missing mute marker", m.helpLine())
	}

	m, _ = m.handleMsg(keyPress('t'))
	if m.showTopology {
		t.Fatal("expected topology hidden")
	}
	if strings.Contains(m.View(), "SYSTEM TOPOLOGY") {
		t.Fatal("topology still rendered")
	}
}

func TestViewShowsPanels(t *testing.T) {
	m, _, _ := newTestModel()
	m.Init()
	m, _ = m.handleMsg(tea.WindowSizeMsg{Width: 110, Height: 60})
	m, _ = m.handleMsg(clockMsg(start.Add(5 * time.Second)))

	view := m.View()
	for _, want := range []string{
		"CABIN SIDE CONTROL",
		"09:30:05",
		"Thursday, October 15, 2026",
		"12675 Kovai Express",
		"56324 Coimbatore Local",
		"Podanur Junction (PTJ)",
		"SYSTEM TOPOLOGY",
		"SYS: 5/6",
		"Distance: 6.3 KM",
		"OPERATIONAL",
		"Ready to start...",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestFooterTickUpdatesLastUpdate(t *testing.T) {
	m, _, _ := newTestModel()
	at := start.Add(5 * time.Second)
	m, cmd := m.handleMsg(footerMsg(at))
	if cmd == nil {
		t.Fatal("expected next footer tick")
	}
	if !m.lastUpdate.Equal(at) {
		t.Fatalf("lastUpdate %v, want %v", m.lastUpdate, at)
	}
}

func TestCanvasDrawsMarkers(t *testing.T) {
	l := track.DefaultLayout()
	c := newCanvas(40, 6, l.Bounds())
	c.stroke(l.Main)
	c.mark(l.Main.PointAt(0), glyph{r: 'A', kind: glyphA})
	c.mark(l.Main.PointAt(1), glyph{r: 'B', kind: glyphB})

	c.mark(track.Point{X: 2000, Y: 300}, glyph{r: 'Z', kind: glyphA})

	out := c.render()
	if strings.Contains(out, "Z") {
		t.Fatalf("out-of-view marker drawn in %q", out)
	}
	if strings.Count(out, "\n") != 5 {
		t.Fatalf("expected 6 rows, got %q", out)
	}
	if !strings.Contains(out, "A") || !strings.Contains(out, "B") {
		t.Fatalf("markers missing from %q", out)
	}
	// The main line sits on the bottom dot row of the middle cells.
	if !strings.Contains(out, "⣀") {
		t.Fatalf("main line not drawn in %q", out)
	}
}

func TestRenderProgressBarClamps(t *testing.T) {
	if got := renderProgressBar(12, 6, 12); got != strings.Repeat("━", 10) {
		t.Fatalf("overfull bar = %q", got)
	}
	if got := renderProgressBar(-1, 6, 12); got != strings.Repeat("─", 10) {
		t.Fatalf("empty bar = %q", got)
	}
}
