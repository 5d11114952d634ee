package scurve

import (
	"math"

	"github.com/npillmayer/motion"
)

// JunctionVelocity bounds the velocity (mm/min) permissible at the
// boundary between two adjacent segments of the given lengths (mm), so
// that a jerk-limited deceleration or acceleration ramp fits into the
// shorter of the two. The bound is the lesser of what the jerk and
// acceleration limits permit and what the shorter segment's length
// permits, so a shorter neighbour can only tighten it, never raise it.
// angleFactor scales for cornering severity: 0 forces a full stop, 1
// permits straight-through motion.
//
// A return value of 0 — always the case for non-positive jerk or
// acceleration — means the caller should defer to its non-jerk-limited
// junction velocity logic.
func JunctionVelocity(distance1, distance2, maxAcceleration, maxJerk, angleFactor float64) float64 {
	if maxJerk <= 0 || maxAcceleration <= 0 {
		return 0
	}
	if angleFactor <= 0 {
		return 0
	}
	shorter := math.Min(distance1, distance2)
	if shorter <= 0 {
		return 0
	}
	// squared-velocity bounds: ramp capability vs available distance
	bound := maxAcceleration * maxAcceleration / maxJerk
	bound = math.Min(bound, shorter*maxAcceleration)
	return motion.PerMin(math.Sqrt(bound * angleFactor))
}

// ShouldUseSCurve reports whether jerk-limited shaping is worthwhile
// for a move of the given length (mm). Below the minimum distance the
// jerk ramps dominate the whole move and a plain trapezoidal profile
// serves better. Always false when jerk is disabled (≤ 0).
func ShouldUseSCurve(distance, maxJerk, maxAcceleration float64) bool {
	if maxJerk <= 0 {
		return false
	}
	minDistance := maxAcceleration * maxAcceleration / (2 * maxJerk)
	return distance > minDistance
}
