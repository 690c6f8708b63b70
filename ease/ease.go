// Package ease provides the exponential-decay interpolation math used to
// animate camera pan and zoom.
package ease

import "math"

// Epsilon is the distance, in view units, below which a value snaps to its
// target instead of decaying toward it forever.
const Epsilon = 1e-3

// DecayFactor returns 1 - e^(-speed*t): the fraction of the remaining
// distance to cover after t seconds at the given speed. It is 0 at t=0 and
// approaches 1 as t grows. speed must be > 0, t must be >= 0.
func DecayFactor(speed, t float64) float64 {
	return 1 - math.Exp(-speed*t)
}

// StepToward advances current toward target by factor and returns the new
// value plus the distance still remaining. When current is already within
// Epsilon of target the value snaps to target and remaining is exactly 0;
// a remaining of 0 is the convergence signal the frame loop keys off.
func StepToward(current, target, factor float64) (next, remaining float64) {
	if math.Abs(target-current) <= Epsilon {
		return target, 0
	}
	next = current + (target-current)*factor
	return next, math.Abs(target - next)
}

// PanCurve returns the decay curve renormalized so it reaches exactly 1 at
// pt=1, shaped for host animation facilities that expect a 0..1 easing
// function over a fixed duration.
func PanCurve(speed float64) func(pt float64) float64 {
	full := DecayFactor(speed, 1)
	return func(pt float64) float64 {
		return DecayFactor(speed, pt) / full
	}
}
