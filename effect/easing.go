package effect

import "math"

// EasingFunction shapes the normalized fade progress of a lifetime into the
// intensity curve. Every function maps 0 to 0 and 1 to 1 and is continuous in
// between; Elastic and Bounce overshoot before settling.
type EasingFunction int

const (
	// EasingLinear is the identity curve.
	EasingLinear EasingFunction = iota

	// EasingEaseIn accelerates from zero (quadratic).
	EasingEaseIn

	// EasingEaseOut decelerates into one (quadratic).
	EasingEaseOut

	// EasingEaseInOut accelerates then decelerates (piecewise quadratic).
	EasingEaseInOut

	// EasingElastic overshoots with a damped sine, good for impact effects.
	EasingElastic

	// EasingBounce settles with decaying bounces, good for playful effects.
	EasingBounce
)

// Apply evaluates the easing curve at normalized progress p.
//
// Parameters:
//   - p: normalized progress, expected in [0, 1]
//
// Returns:
//   - float32: the shaped output; Elastic and Bounce may exceed 1 mid-curve
func (e EasingFunction) Apply(p float32) float32 {
	switch e {
	case EasingEaseIn:
		return p * p
	case EasingEaseOut:
		return 1 - (1-p)*(1-p)
	case EasingEaseInOut:
		if p < 0.5 {
			return 2 * p * p
		}
		q := -2*p + 2
		return 1 - q*q/2
	case EasingElastic:
		if p == 0 || p == 1 {
			return p
		}
		const period = 0.3
		t := float64(p)
		return float32(math.Pow(2, -10*t)*math.Sin((t-period/4)*2*math.Pi/period) + 1)
	case EasingBounce:
		const n1 = 7.5625
		const d1 = 2.75
		t := p
		switch {
		case t < 1.0/d1:
			return n1 * t * t
		case t < 2.0/d1:
			t -= 1.5 / d1
			return n1*t*t + 0.75
		case t < 2.5/d1:
			t -= 2.25 / d1
			return n1*t*t + 0.9375
		default:
			t -= 2.625 / d1
			return n1*t*t + 0.984375
		}
	default:
		return p
	}
}
