package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// fade eases the phase indicator in with a critically damped spring each time
// the phase changes.
type fade struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newFade(interval time.Duration) fade {
	return fade{spring: harmonica.NewSpring(interval.Seconds(), 5.0, 1.0), pos: 1}
}

func (f *fade) restart() {
	f.pos, f.vel = 0, 0
}

func (f *fade) step() {
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, 1)
}

// color blends from the panel background grey to full intensity.
func (f fade) color() lipgloss.Color {
	t := min(max(f.pos, 0), 1)
	from := [3]float64{0x30, 0x30, 0x30}
	to := [3]float64{0x5F, 0xD7, 0xFF}
	var c [3]uint8
	for i := range c {
		c[i] = uint8(from[i] + (to[i]-from[i])*t)
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c[0], c[1], c[2]))
}
