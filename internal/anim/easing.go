package anim

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// Easing remaps linear progress in [0, 1] onto eased progress in [0, 1]. An
// easing must satisfy f(0) = 0, f(1) = 1 and be monotonically non-decreasing.
type Easing func(t float64) float64

// EaseInOutCubic accelerates through the first half and decelerates through the
// second. It is symmetric: f(t) = 1 - f(1-t).
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// springSteps is the table resolution of SpringEasing.
const springSteps = 240

// SpringEasing integrates a harmonica spring from 0 towards 1 and normalises the
// trajectory into an easing table. Overshoot from under-damped springs is held
// at its running peak so the result stays monotonic.
func SpringEasing(frequency, damping float64) Easing {
	s := harmonica.NewSpring(harmonica.FPS(springSteps), frequency, damping)
	table := make([]float64, springSteps+1)
	var pos, vel float64
	for i := 1; i <= springSteps; i++ {
		pos, vel = s.Update(pos, vel, 1)
		table[i] = max(table[i-1], pos)
	}
	peak := table[springSteps]
	if peak <= 0 {
		return Linear
	}
	for i := range table {
		table[i] /= peak
	}
	table[springSteps] = 1
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSteps
		i := int(x)
		frac := x - float64(i)
		return table[i] + (table[i+1]-table[i])*frac
	}
}

var easings = map[string]func() Easing{
	"cubic":  func() Easing { return EaseInOutCubic },
	"linear": func() Easing { return Linear },
	"spring": func() Easing { return SpringEasing(4, 1) },
}

// EasingByName resolves an easing strategy from its config name.
func EasingByName(name string) (Easing, error) {
	mk, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (supported: %s)", name, EasingNames())
	}
	return mk(), nil
}

// EasingNames lists the names accepted by EasingByName.
func EasingNames() string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
