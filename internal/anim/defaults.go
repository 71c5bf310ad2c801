package anim

import (
	"time"

	"github.com/cabinside/cabinctl/internal/track"
)

// Timing holds the durations of the default cycle.
type Timing struct {
	Settle time.Duration
	Main   time.Duration
	Loop   time.Duration
}

// DefaultTiming is a one second settle, six seconds on the main line and
// three seconds per loop.
var DefaultTiming = Timing{
	Settle: time.Second,
	Main:   6 * time.Second,
	Loop:   3 * time.Second,
}

// Resting fractions of the two markers on the main line.
const (
	WestRest = 0.1
	EastRest = 0.9
)

// DefaultCycle composes the two phases of the track overview. In Phase 1 a
// runs the main line west to east while b takes the top loop and then the
// bottom loop; Phase 2 swaps the roles and b runs the main line east to west.
// The loop lane always takes the top loop first.
func DefaultCycle(l track.Layout, a, b *Marker, tm Timing) CycleConfig {
	loops := func(m *Marker) Lane {
		return Lane{Marker: m, Sweeps: []Sweep{
			{Curve: l.TopLoop, From: 0, To: 1, Duration: tm.Loop},
			{Curve: l.BottomLoop, From: 0, To: 1, Duration: tm.Loop},
		}}
	}
	return CycleConfig{
		Settle: tm.Settle,
		Rest: []Rest{
			{Marker: a, Curve: l.Main, Fraction: WestRest},
			{Marker: b, Curve: l.Main, Fraction: EastRest},
		},
		Phase1: Phase{
			Name: "Phase 1: " + a.Label + " → Main Line | " + b.Label + " → Loops",
			Lanes: []Lane{
				{Marker: a, Sweeps: []Sweep{{Curve: l.Main, From: WestRest, To: EastRest, Duration: tm.Main}}},
				loops(b),
			},
		},
		Phase2: Phase{
			Name: "Phase 2: " + b.Label + " → Main Line | " + a.Label + " → Loops",
			Lanes: []Lane{
				{Marker: b, Sweeps: []Sweep{{Curve: l.Main, From: EastRest, To: WestRest, Duration: tm.Main}}},
				loops(a),
			},
		},
	}
}
