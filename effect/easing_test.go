package effect

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	curves := []EasingFunction{
		EasingLinear,
		EasingEaseIn,
		EasingEaseOut,
		EasingEaseInOut,
		EasingElastic,
		EasingBounce,
	}
	for _, e := range curves {
		if got := e.Apply(0); math.Abs(float64(got)) > 1e-4 {
			t.Errorf("curve %d: Apply(0) = %v, want 0", e, got)
		}
		if got := e.Apply(1); math.Abs(float64(got)-1) > 1e-4 {
			t.Errorf("curve %d: Apply(1) = %v, want 1", e, got)
		}
	}
}

func TestEasingLinearIsIdentity(t *testing.T) {
	for _, p := range []float32{0, 0.25, 0.5, 0.75, 1} {
		if got := EasingLinear.Apply(p); got != p {
			t.Errorf("Apply(%v) = %v, want %v", p, got, p)
		}
	}
}

func TestEasingEaseInOutMidpoint(t *testing.T) {
	if got := EasingEaseInOut.Apply(0.5); math.Abs(float64(got)-0.5) > 1e-5 {
		t.Errorf("Apply(0.5) = %v, want 0.5", got)
	}
	// EaseIn stays below the diagonal, EaseOut above it.
	if got := EasingEaseIn.Apply(0.5); got >= 0.5 {
		t.Errorf("EaseIn Apply(0.5) = %v, want < 0.5", got)
	}
	if got := EasingEaseOut.Apply(0.5); got <= 0.5 {
		t.Errorf("EaseOut Apply(0.5) = %v, want > 0.5", got)
	}
}

func TestEasingMonotonicForSmoothCurves(t *testing.T) {
	curves := []EasingFunction{EasingLinear, EasingEaseIn, EasingEaseOut, EasingEaseInOut}
	for _, e := range curves {
		prev := e.Apply(0)
		for i := 1; i <= 100; i++ {
			p := float32(i) / 100
			cur := e.Apply(p)
			if cur < prev {
				t.Errorf("curve %d: not monotonic at p=%v (%v < %v)", e, p, cur, prev)
				break
			}
			prev = cur
		}
	}
}
