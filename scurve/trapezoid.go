package scurve

import (
	"math"

	"github.com/npillmayer/motion"
)

// SolveTrapezoid plans the non-jerk-limited fallback profile: constant
// acceleration to a peak, optional cruise, constant deceleration. It
// is the profile callers drop to when Solve returns an invalid profile
// or when ShouldUseSCurve declines a move.
//
// The result reuses the seven-phase Profile layout with zero-duration
// jerk phases, so the time-domain evaluators drive it unchanged — they
// treat the missing ramps as instantaneous acceleration steps. Units
// match Solve; MaxJerk is echoed as 0.
func SolveTrapezoid(distance, entrySpeed, exitSpeed, maxVelocity, maxAcceleration float64) Profile {
	p := Profile{
		TotalDistance:   distance,
		MaxVelocity:     maxVelocity,
		MaxAcceleration: maxAcceleration,
	}
	if maxAcceleration <= 0 || distance <= 0 {
		return p
	}
	vEntry := motion.PerSec(entrySpeed)
	vExit := motion.PerSec(exitSpeed)
	vMax := motion.PerSec(maxVelocity)
	a := maxAcceleration

	// Peak velocity if acceleration and deceleration meet head-on:
	// (v²-ve²)/2a + (v²-vx²)/2a = d
	vPeak := math.Sqrt(a*distance + (vEntry*vEntry+vExit*vExit)/2)
	p.Type = Triangular
	if vPeak >= vMax {
		vPeak = vMax
		p.Type = Full
	}
	if vPeak < math.Max(vEntry, vExit) {
		// Infeasible endpoint speeds; the consistency gate rejects below.
		vPeak = math.Max(vEntry, vExit)
	}
	if vPeak <= 0 {
		return p
	}

	accelS := (vPeak*vPeak - vEntry*vEntry) / (2 * a)
	decelS := (vPeak*vPeak - vExit*vExit) / (2 * a)
	cruiseS := distance - accelS - decelS
	if cruiseS <= 0 || motion.Is0(cruiseS) {
		cruiseS = 0
		if p.Type == Full {
			p.Type = NoCruise
		}
	}

	p.T[AccelConst] = (vPeak - vEntry) / a
	p.S[AccelConst] = accelS
	p.T[Cruise] = cruiseS / vPeak
	p.S[Cruise] = cruiseS
	p.T[DecelConst] = (vPeak - vExit) / a
	p.S[DecelConst] = decelS

	peak := motion.PerMin(vPeak)
	p.V[AccelJerkUp] = entrySpeed
	p.V[AccelConst] = peak
	p.V[AccelJerkDown] = peak
	p.V[Cruise] = peak
	p.V[DecelJerkUp] = peak
	p.V[DecelConst] = exitSpeed
	p.V[DecelJerkDown] = exitSpeed

	return p.seal(vPeak)
}
