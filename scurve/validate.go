package scurve

import "fmt"

// Operationally useful band for the acceleration ramp time (s).
// Below it the ramp is numerically degenerate, above it the machine
// spends too long reaching its configured acceleration.
const (
	minRampTime = 0.001
	maxRampTime = 1.0
)

// ValidateConfig checks a jerk/acceleration configuration before it is
// committed. A max jerk of exactly zero is valid and disables S-curve
// shaping. The rules run in order and the first failure wins; the
// returned error wraps one of the package's sentinel errors, so
// callers can branch with errors.Is and show Error() as a diagnostic.
//
// maxVelocity is part of the configuration tuple but unconstrained by
// the current rule set.
func ValidateConfig(maxJerk, maxAcceleration, maxVelocity float64) error {
	if maxJerk < 0 {
		return ErrNegativeJerk
	}
	if maxJerk == 0 {
		return nil // S-curve shaping disabled
	}
	if maxJerk < maxAcceleration/10 {
		return fmt.Errorf("%w: jerk %g is below 1/10 of acceleration %g",
			ErrJerkRatioTooLow, maxJerk, maxAcceleration)
	}
	if maxJerk > maxAcceleration*100 {
		return fmt.Errorf("%w: jerk %g exceeds 100 times acceleration %g",
			ErrJerkRatioTooHigh, maxJerk, maxAcceleration)
	}
	rampTime := maxAcceleration / maxJerk
	if rampTime < minRampTime || rampTime > maxRampTime {
		return fmt.Errorf("%w: ramp time %.4g s not within [%g s, %g s]",
			ErrRampTimeOutOfRange, rampTime, minRampTime, maxRampTime)
	}
	return nil
}
