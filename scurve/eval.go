package scurve

import "github.com/npillmayer/motion"

// The three evaluators reconstruct the motion law of a profile at an
// arbitrary elapsed time. They are stateless and restartable: calls
// need not be monotonic in t, so the same profile serves forward
// simulation and lookahead queries alike. Within a phase the
// contribution is computed analytically; at phase entry the velocity
// is always re-anchored to the precomputed V of the completed phase,
// so repeated queries cannot accumulate integration drift.

// AccelerationAt returns the instantaneous acceleration (mm/s²) at
// elapsed time t (s). It returns 0 for an invalid profile and for t
// beyond the profile's total time.
func AccelerationAt(p Profile, t float64) float64 {
	if !p.Valid || t < 0 {
		return 0
	}
	start := 0.0
	for phase := Phase(0); phase < NumPhases; phase++ {
		if t <= start+p.T[phase] {
			dt := t - start
			switch phase {
			case AccelJerkUp:
				return p.MaxJerk * dt
			case AccelConst:
				return p.peakAccel(AccelJerkUp)
			case AccelJerkDown:
				return p.peakAccel(AccelJerkUp) - p.MaxJerk*dt
			case Cruise:
				return 0
			case DecelJerkUp:
				return -p.MaxJerk * dt
			case DecelConst:
				return -p.peakAccel(DecelJerkUp)
			case DecelJerkDown:
				return -p.peakAccel(DecelJerkUp) + p.MaxJerk*dt
			}
		}
		start += p.T[phase]
	}
	return 0
}

// VelocityAt returns the velocity (mm/min) at elapsed time t (s),
// given the entry speed of the segment (mm/min). For an invalid
// profile it returns the entry speed unchanged; beyond the total time
// it returns the exit velocity.
func VelocityAt(p Profile, t float64, entrySpeed float64) float64 {
	if !p.Valid {
		return entrySpeed
	}
	if t <= 0 {
		return entrySpeed
	}
	v := motion.PerSec(entrySpeed)
	start := 0.0
	for phase := Phase(0); phase < NumPhases; phase++ {
		if t <= start+p.T[phase] {
			dt := t - start
			if p.Type == Reduced {
				// heuristic phase durations carry no jerk shape; follow
				// the velocity ladder linearly to stay continuous
				if p.T[phase] > 0 {
					v += (motion.PerSec(p.V[phase]) - v) * dt / p.T[phase]
				}
				return motion.PerMin(v)
			}
			a := p.peakAccel(AccelJerkUp)
			if phase > Cruise {
				a = p.peakAccel(DecelJerkUp)
			}
			switch phase {
			case AccelJerkUp:
				v += 0.5 * p.MaxJerk * dt * dt
			case AccelConst:
				v += a * dt
			case AccelJerkDown:
				v += a*dt - 0.5*p.MaxJerk*dt*dt
			case Cruise:
				// velocity holds
			case DecelJerkUp:
				v -= 0.5 * p.MaxJerk * dt * dt
			case DecelConst:
				v -= a * dt
			case DecelJerkDown:
				v -= a*dt - 0.5*p.MaxJerk*dt*dt
			}
			return motion.PerMin(v)
		}
		start += p.T[phase]
		if p.T[phase] > 0 {
			v = motion.PerSec(p.V[phase]) // anchor to precomputed phase-end velocity
		}
	}
	return motion.PerMin(v)
}

// PositionAt returns the distance travelled (mm) at elapsed time t
// (s), given the entry speed of the segment (mm/min). It returns 0 for
// an invalid profile and the total distance beyond the total time.
func PositionAt(p Profile, t float64, entrySpeed float64) float64 {
	if !p.Valid || t <= 0 {
		return 0
	}
	pos := 0.0
	v := motion.PerSec(entrySpeed)
	start := 0.0
	for phase := Phase(0); phase < NumPhases; phase++ {
		if t <= start+p.T[phase] {
			dt := t - start
			if p.Type == Reduced {
				// distances were distributed proportionally to the phase
				// durations, so interpolate them the same way
				if p.T[phase] > 0 {
					pos += p.S[phase] * dt / p.T[phase]
				}
				return pos
			}
			a := p.peakAccel(AccelJerkUp)
			if phase > Cruise {
				a = p.peakAccel(DecelJerkUp)
			}
			switch phase {
			case AccelJerkUp:
				pos += v*dt + p.MaxJerk*dt*dt*dt/6
			case AccelConst:
				pos += v*dt + 0.5*a*dt*dt
			case AccelJerkDown:
				pos += v*dt + 0.5*a*dt*dt - p.MaxJerk*dt*dt*dt/6
			case Cruise:
				pos += v * dt
			case DecelJerkUp:
				pos += v*dt - p.MaxJerk*dt*dt*dt/6
			case DecelConst:
				pos += v*dt - 0.5*a*dt*dt
			case DecelJerkDown:
				pos += v*dt - 0.5*a*dt*dt + p.MaxJerk*dt*dt*dt/6
			}
			return pos
		}
		start += p.T[phase]
		pos += p.S[phase]
		if p.T[phase] > 0 {
			v = motion.PerSec(p.V[phase])
		}
	}
	return pos
}
