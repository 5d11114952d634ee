/*
Package motion implements the numeric groundwork for jerk-limited
motion planning: tolerance predicates, linear-unit conversions, and a
small solver for quadratic equations.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package motion

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'motion'
func tracer() tracing.Trace {
	return tracing.Select("motion")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Unit Conversions ======================================================

// MinPerSec is the factor between distance-per-minute and
// distance-per-second rates. Velocities cross the package boundary in
// mm/min, while all kinematic arithmetic runs in mm/s.
const MinPerSec = 60.0

// PerSec converts a mm/min rate to mm/s.
func PerSec(perMin float64) float64 {
	return perMin / MinPerSec
}

// PerMin converts a mm/s rate to mm/min.
func PerMin(perSec float64) float64 {
	return perSec * MinPerSec
}

// === Quadratic Equations ===================================================

// Coefficients below this threshold degenerate a quadratic term.
const quadEpsilon = 1e-10

// Quadratic solves a⋅x² + b⋅x + c = 0 for real x and returns both
// roots. For a ≈ 0 the equation degenerates to the linear case and
// both returned roots coincide. ok is false if the linear coefficient
// vanishes as well, or if the discriminant is negative.
func Quadratic(a, b, c float64) (x1, x2 float64, ok bool) {
	if math.Abs(a) < quadEpsilon {
		if math.Abs(b) < quadEpsilon {
			return 0, 0, false
		}
		x1 = -c / b
		return x1, x1, true
	}
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		tracer().Debugf("quadratic %g⋅x² + %g⋅x + %g has no real solution", a, b, c)
		return 0, 0, false
	}
	d := math.Sqrt(discriminant)
	x1 = (-b + d) / (2 * a)
	x2 = (-b - d) / (2 * a)
	return x1, x2, true
}
