package effect

import "github.com/Nub/screenfx/common"

// lifetime is the implementation of the Lifetime interface.
type lifetime struct {
	// duration is the total lifetime in seconds, always > 0.
	duration float32
	// fadeIn and fadeOut are the requested fade times in seconds. When they
	// sum past duration, effective values are scaled proportionally so the
	// fades never overlap and full intensity is reached for at least an
	// instant.
	fadeIn  float32
	fadeOut float32
	// easing shapes the fade-in curve and the mirrored fade-out curve.
	easing EasingFunction
	// elapsed is the monotonic time since creation, capped at duration.
	elapsed float32
}

// Lifetime tracks the age of a single effect instance and derives its current
// intensity from the configured duration, fades, and easing curve. Intensity
// is a pure function of elapsed time: it starts at 0, eases up to 1 over the
// fade-in, holds at 1, eases back down over the fade-out, and reaches 0 at
// the end of the duration. A Lifetime belongs to exactly one effect instance
// and never outlives it.
type Lifetime interface {
	// Advance adds delta seconds to the elapsed time. Elapsed time is capped
	// at the total duration; advancing past it only latches the expired state.
	//
	// Parameters:
	//   - delta: elapsed wall-clock seconds since the previous frame
	Advance(delta float32)

	// Expired reports whether the elapsed time has reached the total
	// duration. Expired is terminal; the owning registry removes the instance.
	//
	// Returns:
	//   - bool: true once elapsed >= duration
	Expired() bool

	// Intensity computes the current intensity from elapsed time alone.
	// Calling it repeatedly without Advance returns the same value.
	//
	// Returns:
	//   - float32: the current intensity in [0, 1]
	Intensity() float32

	// Progress returns the normalized age of the lifetime.
	//
	// Returns:
	//   - float32: elapsed/duration in [0, 1]
	Progress() float32

	// Duration returns the configured total duration in seconds.
	//
	// Returns:
	//   - float32: the total duration
	Duration() float32

	// Elapsed returns the capped elapsed time in seconds.
	//
	// Returns:
	//   - float32: seconds since creation, capped at the duration
	Elapsed() float32
}

// Compile-time check that lifetime implements Lifetime.
var _ Lifetime = &lifetime{}

// NewLifetime creates a Lifetime with the given total duration in seconds.
// Defaults: fade-in 0.1s, fade-out 30% of the duration, linear easing —
// matching the most common one-shot effect shape. Non-positive durations are
// coerced to a single-frame-ish minimum so the instance still expires.
//
// Parameters:
//   - duration: total lifetime in seconds
//   - opts: a variadic list of LifetimeOption functions to configure fades and easing
//
// Returns:
//   - Lifetime: the newly created lifetime
func NewLifetime(duration float32, opts ...LifetimeOption) Lifetime {
	if duration <= 0 {
		duration = 1e-3
	}
	l := &lifetime{
		duration: duration,
		fadeIn:   0.1,
		fadeOut:  duration * 0.3,
		easing:   EasingLinear,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lifetime) Advance(delta float32) {
	if delta < 0 {
		return
	}
	l.elapsed += delta
	if l.elapsed > l.duration {
		l.elapsed = l.duration
	}
}

func (l *lifetime) Expired() bool {
	return l.elapsed >= l.duration
}

func (l *lifetime) Progress() float32 {
	return common.Clamp01(l.elapsed / l.duration)
}

func (l *lifetime) Duration() float32 {
	return l.duration
}

func (l *lifetime) Elapsed() float32 {
	return l.elapsed
}

func (l *lifetime) Intensity() float32 {
	fadeIn, fadeOut := l.effectiveFades()
	t := l.elapsed

	switch {
	case t < fadeIn:
		return common.Clamp01(l.easing.Apply(t / fadeIn))
	case t > l.duration-fadeOut:
		p := (t - (l.duration - fadeOut)) / fadeOut
		return common.Clamp01(l.easing.Apply(1 - p))
	default:
		return 1
	}
}

// effectiveFades returns the fade-in and fade-out times actually used for
// intensity computation. Callers commonly specify illustrative rather than
// exact fades, so when fadeIn+fadeOut exceeds the duration both are scaled by
// duration/(fadeIn+fadeOut) instead of erroring: the fades never overlap and
// full intensity is still reached for an instant at the crossover.
func (l *lifetime) effectiveFades() (fadeIn, fadeOut float32) {
	fadeIn, fadeOut = l.fadeIn, l.fadeOut
	if sum := fadeIn + fadeOut; sum > l.duration {
		scale := l.duration / sum
		fadeIn *= scale
		fadeOut *= scale
	}
	return fadeIn, fadeOut
}
