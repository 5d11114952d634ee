package scurve

import (
	"math"

	"github.com/npillmayer/motion"
)

// Heuristic trigger bounds for the reduced fast-path profile.
const (
	fastPathDistance = 10.0 // mm
	fastPathDeltaV   = 50.0 // mm/min
)

// Static phase shares of the reduced profile, as fractions of the
// estimated total time. The final jerk-down phase gets no share: the
// approximation treats the exit transition as instantaneous.
var reducedWeights = [NumPhases]float64{0.15, 0.20, 0.15, 0.30, 0.15, 0.05, 0}

// SolveFast is the bounded-time dispatch wrapper around Solve. Short
// moves (below 10 mm) and near-symmetric moves (entry and exit speed
// within 50 mm/min) get a Reduced profile: a fixed proportional split
// of an estimated total time across the seven phases, with distances
// distributed proportionally to the durations. This sacrifices exact
// kinematics for an O(1) computation that fits a hard real-time
// budget. All other moves delegate to Solve unchanged.
func SolveFast(distance, entrySpeed, exitSpeed, maxVelocity, maxAcceleration, maxJerk float64) Profile {
	if distance >= fastPathDistance && math.Abs(entrySpeed-exitSpeed) >= fastPathDeltaV {
		return Solve(distance, entrySpeed, exitSpeed, maxVelocity, maxAcceleration, maxJerk)
	}
	p := Profile{
		TotalDistance:   distance,
		MaxVelocity:     maxVelocity,
		MaxAcceleration: maxAcceleration,
		MaxJerk:         maxJerk,
	}
	if maxJerk <= 0 || maxAcceleration <= 0 || distance <= 0 {
		return p
	}
	vAvg := motion.PerSec((entrySpeed + exitSpeed) / 2)
	if motion.Is0(vAvg) {
		// Stop-to-stop move: estimate with the trapezoidal mean velocity.
		vAvg = math.Min(motion.PerSec(maxVelocity), math.Sqrt(distance*maxAcceleration)) / 2
	}
	if vAvg <= 0 {
		return p
	}
	total := distance / vAvg
	tracer().Debugf("fast path estimates %.4g s for %.4g mm", total, distance)

	cum := 0.0
	for i, w := range reducedWeights {
		p.T[i] = total * w
		p.S[i] = distance * w
		cum += p.T[i]
		p.V[i] = entrySpeed + (exitSpeed-entrySpeed)*(cum/total)
	}
	p.V[DecelJerkDown] = exitSpeed
	p.Type = Reduced
	return p.seal(motion.PerSec(p.V[Cruise]))
}
