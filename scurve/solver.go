package scurve

import (
	"math"

	"github.com/npillmayer/motion"
	"gonum.org/v1/gonum/floats/scalar"
)

// Bisection step count for the reduced-peak search. Fixed, so the
// solver's worst-case execution time stays bounded.
const reduceSteps = 48

// ramp is one solved half of a profile: the three acceleration phases
// from a lower to a higher velocity, or the mirrored deceleration
// phases. Durations in s, distances in mm, velocities in mm/s.
type ramp struct {
	tj   float64    // duration of each of the two jerk phases
	ta   float64    // duration of the constant-acceleration plateau
	s    [3]float64 // distance per sub-phase
	v    [3]float64 // velocity at end of each sub-phase
	dist float64    // Σ s
}

// rampTimes splits a velocity change dv over jerk phases and plateau.
// If dv is too small to reach max acceleration, the jerk phases are
// shortened and the plateau vanishes.
func rampTimes(dv, aMax, jerk float64) (tj, ta float64) {
	if dv <= 0 {
		return 0, 0
	}
	if dv >= aMax*aMax/jerk {
		tj = aMax / jerk
		ta = math.Max(0, dv/aMax-tj)
		return tj, ta
	}
	return math.Sqrt(dv / jerk), 0
}

// accelRamp solves phases 0–2: vFrom up to vTo.
func accelRamp(vFrom, vTo, aMax, jerk float64) ramp {
	var r ramp
	r.v = [3]float64{vFrom, vFrom, vFrom}
	r.tj, r.ta = rampTimes(vTo-vFrom, aMax, jerk)
	if r.tj == 0 {
		return r
	}
	a := jerk * r.tj // peak acceleration actually reached
	tj, ta := r.tj, r.ta
	r.v[0] = vFrom + 0.5*jerk*tj*tj
	r.s[0] = vFrom*tj + jerk*tj*tj*tj/6
	r.v[1] = r.v[0] + a*ta
	r.s[1] = r.v[0]*ta + 0.5*a*ta*ta
	r.v[2] = r.v[1] + a*tj - 0.5*jerk*tj*tj
	r.s[2] = r.v[1]*tj + 0.5*a*tj*tj - jerk*tj*tj*tj/6
	r.dist = r.s[0] + r.s[1] + r.s[2]
	return r
}

// decelRamp solves phases 4–6: vFrom down to vTo.
func decelRamp(vFrom, vTo, aMax, jerk float64) ramp {
	var r ramp
	r.v = [3]float64{vFrom, vFrom, vFrom}
	r.tj, r.ta = rampTimes(vFrom-vTo, aMax, jerk)
	if r.tj == 0 {
		return r
	}
	a := jerk * r.tj
	tj, ta := r.tj, r.ta
	r.v[0] = vFrom - 0.5*jerk*tj*tj
	r.s[0] = vFrom*tj - jerk*tj*tj*tj/6
	r.v[1] = r.v[0] - a*ta
	r.s[1] = r.v[0]*ta - 0.5*a*ta*ta
	r.v[2] = r.v[1] - a*tj + 0.5*jerk*tj*tj
	r.s[2] = r.v[1]*tj - 0.5*a*tj*tj + jerk*tj*tj*tj/6
	r.dist = r.s[0] + r.s[1] + r.s[2]
	return r
}

// Solve computes the jerk-limited profile for one linear segment of
// the given length (mm). Entry, exit and maximum velocity are mm/min,
// acceleration mm/s², jerk mm/s³.
//
// Non-positive jerk, acceleration or distance yields an invalid
// profile with zeroed phases; this is how S-curve mode is switched off
// upstream, not an error condition. A profile whose phase distances
// fail to rebuild the requested distance within DistanceTolerance is
// likewise discarded (see Profile).
func Solve(distance, entrySpeed, exitSpeed, maxVelocity, maxAcceleration, maxJerk float64) Profile {
	p := Profile{
		TotalDistance:   distance,
		MaxVelocity:     maxVelocity,
		MaxAcceleration: maxAcceleration,
		MaxJerk:         maxJerk,
	}
	if maxJerk <= 0 || maxAcceleration <= 0 || distance <= 0 {
		return p
	}
	vEntry := motion.PerSec(entrySpeed)
	vExit := motion.PerSec(exitSpeed)
	vMax := motion.PerSec(maxVelocity)

	// The cruise velocity cannot drop below either endpoint velocity.
	// Entry/exit speeds above the velocity limit are the caller's
	// responsibility to pre-clamp.
	vFloor := math.Max(vEntry, vExit)
	vPeak := math.Max(vMax, vFloor)
	if vPeak <= 0 {
		return p
	}

	acc := accelRamp(vEntry, vPeak, maxAcceleration, maxJerk)
	dec := decelRamp(vPeak, vExit, maxAcceleration, maxJerk)
	cruise := distance - acc.dist - dec.dist

	switch {
	case cruise > 0 && !motion.Is0(cruise):
		p.Type = Full
	case motion.Is0(cruise):
		p.Type = NoCruise
		cruise = 0
	default:
		// Too short to reach the velocity limit: shrink the peak until
		// both ramps fit exactly.
		vPeak, acc, dec = reducePeak(distance, vEntry, vExit, vFloor, vPeak, maxAcceleration, maxJerk)
		cruise = 0
		if acc.ta > 0 || dec.ta > 0 {
			p.Type = NoCruise
		} else {
			p.Type = Triangular
		}
	}
	tracer().Debugf("%.4g mm move solves to a %s profile, peak %.4g mm/s", distance, p.Type, vPeak)

	p.T[AccelJerkUp], p.S[AccelJerkUp] = acc.tj, acc.s[0]
	p.T[AccelConst], p.S[AccelConst] = acc.ta, acc.s[1]
	p.T[AccelJerkDown], p.S[AccelJerkDown] = acc.tj, acc.s[2]
	p.S[Cruise] = cruise
	if cruise > 0 {
		p.T[Cruise] = cruise / vPeak
	}
	p.T[DecelJerkUp], p.S[DecelJerkUp] = dec.tj, dec.s[0]
	p.T[DecelConst], p.S[DecelConst] = dec.ta, dec.s[1]
	p.T[DecelJerkDown], p.S[DecelJerkDown] = dec.tj, dec.s[2]

	p.V[AccelJerkUp] = motion.PerMin(acc.v[0])
	p.V[AccelConst] = motion.PerMin(acc.v[1])
	p.V[AccelJerkDown] = motion.PerMin(acc.v[2])
	p.V[Cruise] = motion.PerMin(acc.v[2])
	p.V[DecelJerkUp] = motion.PerMin(dec.v[0])
	p.V[DecelConst] = motion.PerMin(dec.v[1])
	p.V[DecelJerkDown] = exitSpeed

	return p.seal(vPeak)
}

// seal runs the distance consistency gate and fills the derived
// scalars. A profile failing the gate is invalidated, not repaired.
func (p Profile) seal(vPeak float64) Profile {
	sum := 0.0
	for _, s := range p.S {
		sum += s
	}
	if !scalar.EqualWithinAbs(sum, p.TotalDistance, DistanceTolerance) {
		tracer().Errorf("phase distances rebuild %.4f mm of a %.4f mm move, discarding profile", sum, p.TotalDistance)
		p.T = [NumPhases]float64{}
		p.S = [NumPhases]float64{}
		p.V = [NumPhases]float64{}
		return p
	}
	for _, t := range p.T {
		p.TotalTime += t
	}
	p.CruiseVelocity = motion.PerMin(vPeak)
	p.AccelTime = p.T[AccelJerkUp] + p.T[AccelConst] + p.T[AccelJerkDown]
	p.DecelTime = p.T[DecelJerkUp] + p.T[DecelConst] + p.T[DecelJerkDown]
	p.Valid = true
	return p
}

// reducePeak finds the peak velocity whose acceleration and
// deceleration ramps consume exactly the available distance.
//
// If the reduced peak keeps a constant-acceleration plateau on both
// sides, the distance balance is quadratic in the peak velocity and
// solves in closed form:
//
//	d = (v²-ve²)/2a + (ve+v)·tj/2 + (v²-vx²)/2a + (vx+v)·tj/2
//
// Otherwise the jerk phases shorten, the balance turns irrational, and
// a bisection over the monotone ramp-distance function runs for a
// fixed number of steps.
func reducePeak(distance, vEntry, vExit, vLow, vHigh, aMax, jerk float64) (float64, ramp, ramp) {
	tj := aMax / jerk
	c := -(vEntry*vEntry+vExit*vExit)/(2*aMax) + (vEntry+vExit)*tj/2 - distance
	if v, _, ok := motion.Quadratic(1/aMax, tj, c); ok {
		full := aMax * aMax / jerk // velocity change consumed by a full jerk ramp pair
		if v >= vLow && v <= vHigh && v-vEntry >= full && v-vExit >= full {
			return v, accelRamp(vEntry, v, aMax, jerk), decelRamp(v, vExit, aMax, jerk)
		}
	}
	lo, hi := vLow, vHigh
	for i := 0; i < reduceSteps; i++ {
		mid := 0.5 * (lo + hi)
		d := accelRamp(vEntry, mid, aMax, jerk).dist + decelRamp(mid, vExit, aMax, jerk).dist
		if d > distance {
			hi = mid
		} else {
			lo = mid
		}
	}
	v := 0.5 * (lo + hi)
	return v, accelRamp(vEntry, v, aMax, jerk), decelRamp(v, vExit, aMax, jerk)
}
