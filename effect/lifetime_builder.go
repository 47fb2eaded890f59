package effect

// LifetimeOption is a functional option used to configure a Lifetime during construction.
type LifetimeOption func(*lifetime)

// WithFades sets the fade-in and fade-out times in seconds. Negative values
// are treated as zero. Fades that sum past the total duration are scaled
// proportionally at evaluation time rather than rejected.
//
// Parameters:
//   - fadeIn: seconds spent easing intensity up from 0
//   - fadeOut: seconds spent easing intensity back down to 0
//
// Returns:
//   - LifetimeOption: a function that sets the fade times
func WithFades(fadeIn, fadeOut float32) LifetimeOption {
	return func(l *lifetime) {
		l.fadeIn = max(fadeIn, 0)
		l.fadeOut = max(fadeOut, 0)
	}
}

// WithEasing sets the easing function applied to both fades.
//
// Parameters:
//   - e: the easing function selector
//
// Returns:
//   - LifetimeOption: a function that sets the easing function
func WithEasing(e EasingFunction) LifetimeOption {
	return func(l *lifetime) {
		l.easing = e
	}
}
