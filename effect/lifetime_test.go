package effect

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestLifetimeIntensityCurve(t *testing.T) {
	// duration 1.0s, fade-in 0.2s, fade-out 0.3s, linear easing.
	lt := NewLifetime(1.0, WithFades(0.2, 0.3))

	lt.Advance(0.1)
	if got := lt.Intensity(); !almostEqual(got, 0.5) {
		t.Errorf("intensity at t=0.1 = %v, want 0.5", got)
	}

	lt.Advance(0.4) // t=0.5, inside the hold plateau
	if got := lt.Intensity(); got != 1 {
		t.Errorf("intensity at t=0.5 = %v, want 1", got)
	}

	lt.Advance(0.35) // t=0.85, halfway through the fade-out
	if got := lt.Intensity(); !almostEqual(got, 0.5) {
		t.Errorf("intensity at t=0.85 = %v, want 0.5", got)
	}

	lt.Advance(0.15) // t=1.0
	if !lt.Expired() {
		t.Error("lifetime should be expired at t=1.0")
	}
	if got := lt.Intensity(); got != 0 {
		t.Errorf("intensity at expiry = %v, want 0", got)
	}
}

func TestLifetimeOverlappingFadesScaleProportionally(t *testing.T) {
	// Fades sum to 2x the duration, so both are halved: effective fade-in
	// 0.3, fade-out 0.7 over a 1s lifetime.
	lt := NewLifetime(1.0, WithFades(0.6, 1.4))

	lt.Advance(0.15)
	if got := lt.Intensity(); !almostEqual(got, 0.5) {
		t.Errorf("intensity mid fade-in = %v, want 0.5", got)
	}

	lt.Advance(0.15) // t=0.3, the crossover point
	if got := lt.Intensity(); got != 1 {
		t.Errorf("intensity at crossover = %v, want 1", got)
	}

	lt.Advance(0.35) // t=0.65, halfway through the effective fade-out
	if got := lt.Intensity(); !almostEqual(got, 0.5) {
		t.Errorf("intensity mid fade-out = %v, want 0.5", got)
	}
}

func TestLifetimeNegativeDeltaIgnored(t *testing.T) {
	lt := NewLifetime(1.0)
	lt.Advance(0.5)
	before := lt.Elapsed()
	lt.Advance(-0.2)
	if lt.Elapsed() != before {
		t.Errorf("elapsed changed after negative delta: %v -> %v", before, lt.Elapsed())
	}
}

func TestLifetimeElapsedCapsAtDuration(t *testing.T) {
	lt := NewLifetime(0.5)
	lt.Advance(10)
	if got := lt.Elapsed(); got != 0.5 {
		t.Errorf("elapsed = %v, want capped at 0.5", got)
	}
	if got := lt.Progress(); got != 1 {
		t.Errorf("progress = %v, want 1", got)
	}
	// Advancing an expired lifetime only latches the state.
	lt.Advance(1)
	if !lt.Expired() {
		t.Error("lifetime should remain expired")
	}
}

func TestLifetimeNonPositiveDurationStillExpires(t *testing.T) {
	lt := NewLifetime(0)
	lt.Advance(0.016)
	if !lt.Expired() {
		t.Error("zero-duration lifetime should expire on the first advance")
	}
}

func TestLifetimeEasingShapesFades(t *testing.T) {
	lt := NewLifetime(1.0, WithFades(0.5, 0.0), WithEasing(EasingEaseIn))
	lt.Advance(0.25)
	// Halfways through an ease-in fade is below linear.
	if got := lt.Intensity(); !almostEqual(got, 0.25) {
		t.Errorf("eased intensity = %v, want 0.25", got)
	}
}

func TestLifetimeIntensityIsPure(t *testing.T) {
	lt := NewLifetime(1.0, WithFades(0.2, 0.3))
	lt.Advance(0.1)
	first := lt.Intensity()
	for i := 0; i < 5; i++ {
		if got := lt.Intensity(); got != first {
			t.Fatalf("intensity changed without Advance: %v -> %v", first, got)
		}
	}
}
