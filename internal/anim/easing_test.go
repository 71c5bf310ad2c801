package anim

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestEaseInOutCubicEndpoints(t *testing.T) {
	if got := EaseInOutCubic(0); got != 0 {
		t.Fatalf("EaseInOutCubic(0) = %v, want 0", got)
	}
	if got := EaseInOutCubic(1); got != 1 {
		t.Fatalf("EaseInOutCubic(1) = %v, want 1", got)
	}
	if got := EaseInOutCubic(0.5); math.Abs(got-0.5) > eps {
		t.Fatalf("EaseInOutCubic(0.5) = %v, want 0.5", got)
	}
}

func TestEaseInOutCubicSymmetric(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		x := float64(i) / 1000
		if d := EaseInOutCubic(x) - (1 - EaseInOutCubic(1-x)); math.Abs(d) > 1e-9 {
			t.Fatalf("asymmetric at %v: diff %v", x, d)
		}
	}
}

func TestEasingsMonotonic(t *testing.T) {
	for name, f := range map[string]Easing{
		"cubic":         EaseInOutCubic,
		"linear":        Linear,
		"spring":        SpringEasing(4, 1),
		"spring-bouncy": SpringEasing(6, 0.3),
	} {
		prev := f(0)
		if prev != 0 {
			t.Fatalf("%s: f(0) = %v, want 0", name, prev)
		}
		for i := 1; i <= 2000; i++ {
			v := f(float64(i) / 2000)
			if v < prev {
				t.Fatalf("%s: not monotonic at step %d: %v < %v", name, i, v, prev)
			}
			if v > 1 {
				t.Fatalf("%s: overshoot %v at step %d", name, v, i)
			}
			prev = v
		}
		if prev != 1 {
			t.Fatalf("%s: f(1) = %v, want 1", name, prev)
		}
	}
}

func TestEasingByName(t *testing.T) {
	for _, name := range []string{"cubic", "Linear", " spring "} {
		if _, err := EasingByName(name); err != nil {
			t.Fatalf("EasingByName(%q) error = %v", name, err)
		}
	}
	f, err := EasingByName("cubic")
	if err != nil {
		t.Fatal(err)
	}
	if got := f(0.25); got != EaseInOutCubic(0.25) {
		t.Fatalf("cubic(0.25) = %v", got)
	}
	if _, err := EasingByName("bounce"); err == nil {
		t.Fatal("expected error for unknown easing")
	}
}
