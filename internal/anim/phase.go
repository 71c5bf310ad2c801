package anim

import (
	"time"

	"github.com/cabinside/cabinctl/internal/track"
)

// Sweep is one finite movement along a curve.
type Sweep struct {
	Curve    track.Curve
	From, To float64
	Duration time.Duration
	Delay    time.Duration
}

// Lane is the ordered list of sweeps one marker performs within a phase. A
// sweep does not start sampling until the previous one has completed.
type Lane struct {
	Marker *Marker
	Sweeps []Sweep
}

// Duration is the sum of the lane's sweep delays and durations.
func (l Lane) Duration() time.Duration {
	var d time.Duration
	for _, s := range l.Sweeps {
		d += s.Delay + max(s.Duration, 0)
	}
	return d
}

// Phase is a set of lanes that run concurrently. It completes when every lane
// has completed.
type Phase struct {
	Name  string
	Lanes []Lane
}

// Duration is the length of the phase's longest lane.
func (p Phase) Duration() time.Duration {
	var d time.Duration
	for _, l := range p.Lanes {
		d = max(d, l.Duration())
	}
	return d
}

// RunLane performs l's sweeps in order and calls done after the last one.
// Lane time is anchored where RunLane is called: each sweep starts at the
// nominal end of the previous one, not at the frame that observed it.
func (a *Animator) RunLane(l Lane, done func()) {
	var step func(i int, anchor time.Time)
	step = func(i int, anchor time.Time) {
		if a.stopped {
			return
		}
		if i == len(l.Sweeps) {
			if done != nil {
				done()
			}
			return
		}
		s := l.Sweeps[i]
		a.animate(l.Marker, s.Curve, s.From, s.To, s.Duration, s.Delay, anchor, func(end time.Time) {
			step(i+1, end)
		})
	}
	step(0, a.host.Now())
}

// RunPhase starts every lane of p together and calls done once all of them
// have completed.
func (a *Animator) RunPhase(p Phase, done func()) {
	remaining := len(p.Lanes)
	if remaining == 0 {
		if done != nil && !a.stopped {
			done()
		}
		return
	}
	for _, l := range p.Lanes {
		a.RunLane(l, func() {
			remaining--
			if remaining == 0 && done != nil {
				done()
			}
		})
	}
}
