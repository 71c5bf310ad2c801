package anim

import (
	"sort"
	"time"
)

// Host is the surface the animator runs on: a high-resolution clock, a
// display-refresh callback and a delayed callback.
type Host interface {
	Now() time.Time
	RequestFrame(fn func(now time.Time))
	After(d time.Duration, fn func())
}

type timer struct {
	due time.Time
	seq uint64
	fn  func()
}

// Scheduler is a single-threaded cooperative Host. Nothing runs until Advance
// is called; the UI calls it on every frame tick and tests call it with a
// manual clock. It must only be used from one goroutine.
type Scheduler struct {
	now    time.Time
	frames []func(time.Time)
	timers []timer
	seq    uint64
}

// NewScheduler returns a Scheduler whose clock starts at start.
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

func (s *Scheduler) Now() time.Time { return s.now }

func (s *Scheduler) RequestFrame(fn func(now time.Time)) {
	s.frames = append(s.frames, fn)
}

func (s *Scheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.timers = append(s.timers, timer{due: s.now.Add(d), seq: s.seq, fn: fn})
}

// Advance moves the clock forward to now (it never goes back), fires every
// timer due by then in due order, and then runs the frame callbacks queued
// before the frame pass began. Work queued by a frame callback waits for the
// next Advance.
func (s *Scheduler) Advance(now time.Time) {
	if now.After(s.now) {
		s.now = now
	}

	var due, later []timer
	for _, t := range s.timers {
		if t.due.After(s.now) {
			later = append(later, t)
		} else {
			due = append(due, t)
		}
	}
	s.timers = later
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, t := range due {
		t.fn()
	}

	frames := s.frames
	s.frames = nil
	for _, fn := range frames {
		fn(s.now)
	}
}

// Pending returns the number of queued frame callbacks and timers.
func (s *Scheduler) Pending() int {
	return len(s.frames) + len(s.timers)
}

// Reset drops all queued work.
func (s *Scheduler) Reset() {
	s.frames = nil
	s.timers = nil
}
