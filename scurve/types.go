package scurve

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'motion.scurve'
func tracer() tracing.Trace {
	return tracing.Select("motion.scurve")
}

var (
	// ErrNegativeJerk indicates a negative max-jerk setting.
	ErrNegativeJerk = errors.New("max jerk must not be negative")
	// ErrJerkRatioTooLow indicates jerk below 1/10 of the acceleration;
	// the acceleration ramp would be too slow to ever reach max accel.
	ErrJerkRatioTooLow = errors.New("max jerk too low relative to max acceleration")
	// ErrJerkRatioTooHigh indicates jerk above 100 times the acceleration;
	// the ramp time becomes negligible and S-curve shaping has no effect.
	ErrJerkRatioTooHigh = errors.New("max jerk too high relative to max acceleration")
	// ErrRampTimeOutOfRange indicates an acceleration ramp time outside
	// the operationally useful band.
	ErrRampTimeOutOfRange = errors.New("acceleration ramp time out of range")
)

// Phase indexes the seven segments of an S-curve profile, in the fixed
// order they execute.
type Phase int

const (
	AccelJerkUp   Phase = iota // acceleration ramps from 0 to peak
	AccelConst                 // constant acceleration
	AccelJerkDown              // acceleration ramps back to 0
	Cruise                     // constant velocity
	DecelJerkUp                // deceleration ramps from 0 to peak
	DecelConst                 // constant deceleration
	DecelJerkDown              // deceleration ramps back to 0
)

// NumPhases is the fixed phase count of every profile. The T/S/V
// arrays of a Profile are sized by it; there is no dynamic phase list.
const NumPhases = 7

// ProfileType classifies the shape of a solved profile.
type ProfileType int

const (
	// Full is the seven-phase shape with a cruise segment.
	Full ProfileType = iota
	// NoCruise keeps a constant-acceleration plateau on at least one
	// side, but acceleration and deceleration meet with no room left
	// to cruise.
	NoCruise
	// Triangular ramps directly from acceleration into deceleration:
	// no plateau, no cruise, peak velocity below the velocity limit.
	Triangular
	// Reduced marks the fast-path approximation of SolveFast.
	Reduced
)

func (pt ProfileType) String() string {
	switch pt {
	case Full:
		return "full"
	case NoCruise:
		return "no-cruise"
	case Triangular:
		return "triangular"
	case Reduced:
		return "reduced"
	}
	return "unknown"
}

// DistanceTolerance is the absolute tolerance (mm) within which the
// phase distances of a valid profile must reconstruct the total
// distance of the move.
const DistanceTolerance = 0.1

// Profile describes the motion law of one linear segment as seven
// time-bounded phases. It is constructed once, by Solve, SolveFast or
// SolveTrapezoid, and read-only afterwards: the evaluators never write
// back into it, so concurrent queries need no synchronization.
//
// T and S hold phase durations (s) and distances (mm); V holds the
// velocity at the *end* of each phase in mm/min. Phases which do not
// occur in a given shape have zero duration and distance.
//
// Callers must check Valid before trusting any field. An invalid
// profile carries all-zero phase arrays; only the echoed constraint
// fields survive.
type Profile struct {
	TotalDistance   float64 // mm
	MaxVelocity     float64 // mm/min
	MaxAcceleration float64 // mm/s²
	MaxJerk         float64 // mm/s³

	T [NumPhases]float64 // phase durations, s
	S [NumPhases]float64 // phase distances, mm
	V [NumPhases]float64 // velocity at end of phase, mm/min

	TotalTime      float64 // Σ T, s
	CruiseVelocity float64 // peak velocity, mm/min
	AccelTime      float64 // T0+T1+T2, s
	DecelTime      float64 // T4+T5+T6, s
	Type           ProfileType
	Valid          bool
}

// peakAccel is the acceleration magnitude of the constant phase
// adjacent to the given jerk phase. For profiles with shortened jerk
// ramps (triangular shapes) the peak stays below the configured
// maximum; for trapezoidal fallback profiles the jerk phases are
// absent and the plateau runs at max acceleration.
func (p Profile) peakAccel(jerkPhase Phase) float64 {
	if tj := p.T[jerkPhase]; tj > 0 {
		return p.MaxJerk * tj
	}
	return p.MaxAcceleration
}
