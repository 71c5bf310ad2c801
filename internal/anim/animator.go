// Package anim moves markers along track curves with eased, time-based
// interpolation and drives the two-phase cycle of the track overview.
package anim

import (
	"time"

	"github.com/cabinside/cabinctl/internal/track"
)

// Animator runs sweeps on a Host. Once stopped, no callback it scheduled will
// write to a marker or report completion.
type Animator struct {
	host    Host
	easing  Easing
	stopped bool
}

// NewAnimator returns an Animator using easing, or EaseInOutCubic when nil.
func NewAnimator(host Host, easing Easing) *Animator {
	if easing == nil {
		easing = EaseInOutCubic
	}
	return &Animator{host: host, easing: easing}
}

// Alive reports whether the animator may still write to markers.
func (a *Animator) Alive() bool { return !a.stopped }

// Stop cancels every in-flight sweep. Already queued callbacks become no-ops.
func (a *Animator) Stop() { a.stopped = true }

// AnimateAlong moves m along curve from one fraction to another over duration,
// starting after delay. Every frame samples the curve at
// from + (to-from)*easing(elapsed/duration); the last write lands exactly on to
// and done is then called once. A non-positive duration places m at to on the
// first frame.
func (a *Animator) AnimateAlong(m *Marker, curve track.Curve, from, to float64, duration, delay time.Duration, done func()) {
	a.animate(m, curve, from, to, duration, delay, time.Time{}, func(time.Time) {
		if done != nil {
			done()
		}
	})
}

// animate is AnimateAlong with an optional anchor. A zero anchor stamps the
// start when the delay expires. Otherwise the sweep's clock starts at
// anchor+delay however late the host gets to it, so chained sweeps do not
// accumulate frame rounding. done receives the nominal end of the sweep.
func (a *Animator) animate(m *Marker, curve track.Curve, from, to float64, duration, delay time.Duration, anchor time.Time, done func(end time.Time)) {
	from = track.Clamp01(from)
	to = track.Clamp01(to)
	finished := false

	var start time.Time
	var frame func(now time.Time)
	frame = func(now time.Time) {
		if a.stopped || finished {
			return
		}
		linear := 1.0
		if duration > 0 {
			linear = min(float64(now.Sub(start))/float64(duration), 1)
			if linear < 0 {
				linear = 0
			}
		}
		if linear >= 1 {
			finished = true
			m.Place(curve, to)
			done(start.Add(max(duration, 0)))
			return
		}
		m.Place(curve, from+(to-from)*a.easing(linear))
		a.host.RequestFrame(frame)
	}
	begin := func() {
		if a.stopped {
			return
		}
		if anchor.IsZero() {
			start = a.host.Now()
		} else {
			start = anchor.Add(max(delay, 0))
		}
		a.host.RequestFrame(frame)
	}

	wait := delay
	if !anchor.IsZero() {
		wait = anchor.Add(max(delay, 0)).Sub(a.host.Now())
	}
	if wait > 0 {
		a.host.After(wait, begin)
		return
	}
	begin()
}
