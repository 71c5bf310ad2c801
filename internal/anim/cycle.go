package anim

import (
	"time"

	"github.com/cabinside/cabinctl/internal/track"
)

// State is a state of the Cycle.
type State int

const (
	Idle State = iota
	Phase1
	Phase2
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Phase1:
		return "phase-1"
	case Phase2:
		return "phase-2"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Transition describes one state change of the Cycle.
type Transition struct {
	From, To State
	At       time.Time
	// Phase is the phase being entered; zero for Stopped.
	Phase Phase
	// Count is the number of phases entered so far, this one included.
	Count uint64
}

// Rest is where a marker waits before the first phase.
type Rest struct {
	Marker   *Marker
	Curve    track.Curve
	Fraction float64
}

// CycleConfig is the fixed composition of a Cycle.
type CycleConfig struct {
	Settle time.Duration
	Rest   []Rest
	Phase1 Phase
	Phase2 Phase
}

// Cycle repeats Phase1 and Phase2 forever after an initial settle delay:
//
//	Idle -> Phase1 -> Phase2 -> Phase1 -> ...
//
// Stop moves it to Stopped from any state.
type Cycle struct {
	anim      *Animator
	host      Host
	cfg       CycleConfig
	state     State
	count     uint64
	observers []func(Transition)
}

// NewCycle builds a Cycle running on host with the given easing.
func NewCycle(host Host, easing Easing, cfg CycleConfig) *Cycle {
	return &Cycle{
		anim: NewAnimator(host, easing),
		host: host,
		cfg:  cfg,
	}
}

// State returns the current state.
func (c *Cycle) State() State { return c.state }

// OnTransition registers fn to be called on every state change. Observers run
// synchronously on the host's thread.
func (c *Cycle) OnTransition(fn func(Transition)) {
	c.observers = append(c.observers, fn)
}

// Start places every marker at its resting fraction and enters Phase1 after
// the settle delay. It does nothing unless the cycle is Idle.
func (c *Cycle) Start() {
	if c.state != Idle {
		return
	}
	for _, r := range c.cfg.Rest {
		r.Marker.Place(r.Curve, r.Fraction)
	}
	c.host.After(c.cfg.Settle, func() {
		if !c.anim.Alive() {
			return
		}
		c.enter(Phase1)
	})
}

// Stop cancels the cycle. No marker is written after Stop returns.
func (c *Cycle) Stop() {
	if c.state == Stopped {
		return
	}
	c.anim.Stop()
	c.transition(Stopped, Phase{})
}

func (c *Cycle) enter(s State) {
	p := c.cfg.Phase1
	next := Phase2
	if s == Phase2 {
		p = c.cfg.Phase2
		next = Phase1
	}
	c.count++
	c.transition(s, p)
	c.anim.RunPhase(p, func() {
		if !c.anim.Alive() {
			return
		}
		c.enter(next)
	})
}

func (c *Cycle) transition(to State, p Phase) {
	t := Transition{From: c.state, To: to, At: c.host.Now(), Phase: p, Count: c.count}
	c.state = to
	for _, fn := range c.observers {
		fn(t)
	}
}
