package scurve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gonum.org/v1/gonum/floats/scalar"
)

// Kinematic limits used throughout the tests: 3000 mm/min velocity,
// 500 mm/s² acceleration, 5000 mm/s³ jerk (ramp time 0.1 s).
const (
	testVMax  = 3000.0
	testAccel = 500.0
	testJerk  = 5000.0
)

func checkInvariants(t *testing.T, p Profile) {
	t.Helper()
	if !p.Valid {
		t.Fatalf("expected a valid profile, got invalid")
	}
	sum := 0.0
	for i := 0; i < NumPhases; i++ {
		if p.T[i] < 0 {
			t.Errorf("phase %d has negative duration %g", i, p.T[i])
		}
		if p.S[i] < 0 {
			t.Errorf("phase %d has negative distance %g", i, p.S[i])
		}
		sum += p.S[i]
	}
	if !scalar.EqualWithinAbs(sum, p.TotalDistance, DistanceTolerance) {
		t.Errorf("phase distances rebuild %g mm, want %g mm", sum, p.TotalDistance)
	}
	for i := 0; i < int(Cruise); i++ {
		if p.V[i+1] < p.V[i]-1e-9 {
			t.Errorf("velocity drops from %g to %g across accel phase %d", p.V[i], p.V[i+1], i)
		}
	}
	for i := int(Cruise); i < NumPhases-1; i++ {
		if p.V[i+1] > p.V[i]+1e-9 {
			t.Errorf("velocity rises from %g to %g across decel phase %d", p.V[i], p.V[i+1], i)
		}
	}
}

func TestSolveFullProfile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Solve(100, 0, 0, testVMax, testAccel, testJerk)
	checkInvariants(t, p)
	if p.Type != Full {
		t.Errorf("expected a full profile, got %s", p.Type)
	}
	if p.T[Cruise] <= 0 || p.S[Cruise] <= 0 {
		t.Errorf("expected a non-zero cruise phase, got T=%g S=%g", p.T[Cruise], p.S[Cruise])
	}
	if p.CruiseVelocity != testVMax {
		t.Errorf("expected cruise at %g mm/min, got %g", testVMax, p.CruiseVelocity)
	}
	// 0.1 s per jerk ramp, no accel plateau (Δv = a²/j exactly),
	// 90 mm cruise at 50 mm/s.
	if !scalar.EqualWithinAbs(p.TotalTime, 2.2, 1e-6) {
		t.Errorf("expected 2.2 s total, got %g", p.TotalTime)
	}
	// total time roughly distance over cruise velocity
	if approx := p.TotalDistance / (testVMax / 60); p.TotalTime < approx || p.TotalTime > 1.5*approx {
		t.Errorf("total time %g s implausible for %g mm", p.TotalTime, p.TotalDistance)
	}
}

func TestSolveSymmetry(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Solve(100, 0, 0, testVMax, testAccel, testJerk)
	checkInvariants(t, p)
	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff(p.T[AccelJerkUp], p.T[DecelJerkDown], approx); diff != "" {
		t.Errorf("jerk phase durations not symmetric: %s", diff)
	}
	if diff := cmp.Diff(p.S[AccelJerkUp], p.S[DecelJerkDown], approx); diff != "" {
		t.Errorf("jerk phase distances not symmetric: %s", diff)
	}
	if diff := cmp.Diff(p.AccelTime, p.DecelTime, approx); diff != "" {
		t.Errorf("accel/decel times not symmetric: %s", diff)
	}
}

func TestSolveTriangularProfile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Solve(2, 0, 0, testVMax, testAccel, testJerk)
	checkInvariants(t, p)
	if p.Type != Triangular {
		t.Errorf("expected a triangular profile, got %s", p.Type)
	}
	if p.T[Cruise] != 0 || p.T[AccelConst] != 0 {
		t.Errorf("expected no cruise and no accel plateau, got T3=%g T1=%g", p.T[Cruise], p.T[AccelConst])
	}
	if p.CruiseVelocity >= testVMax {
		t.Errorf("expected reduced peak below %g mm/min, got %g", testVMax, p.CruiseVelocity)
	}
}

func TestSolveNoCruiseProfile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// 29 mm with a 6000 mm/min limit: the reduced peak (~98 mm/s)
	// still needs an accel plateau, but nothing is left to cruise.
	p := Solve(29, 0, 0, 6000, testAccel, testJerk)
	checkInvariants(t, p)
	if p.Type != NoCruise {
		t.Errorf("expected a no-cruise profile, got %s", p.Type)
	}
	if p.T[Cruise] != 0 {
		t.Errorf("expected zero cruise duration, got %g", p.T[Cruise])
	}
	if p.T[AccelConst] <= 0 {
		t.Errorf("expected an accel plateau, got none")
	}
	if p.CruiseVelocity >= 6000 {
		t.Errorf("expected peak below the limit, got %g", p.CruiseVelocity)
	}
}

func TestSolveAsymmetricEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Solve(100, 600, 1200, testVMax, testAccel, testJerk)
	checkInvariants(t, p)
	if p.V[DecelJerkDown] != 1200 {
		t.Errorf("expected exit velocity 1200 mm/min, got %g", p.V[DecelJerkDown])
	}
	if p.DecelTime >= p.AccelTime {
		t.Errorf("decelerating to 1200 should be quicker than accelerating from 600")
	}
}

func TestSolveRejectsBadInput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, p := range []Profile{
		Solve(100, 0, 0, testVMax, testAccel, 0),
		Solve(100, 0, 0, testVMax, testAccel, -1),
		Solve(100, 0, 0, testVMax, 0, testJerk),
		Solve(0, 0, 0, testVMax, testAccel, testJerk),
		Solve(-5, 0, 0, testVMax, testAccel, testJerk),
	} {
		if p.Valid {
			t.Errorf("expected invalid profile for bad input, got valid")
		}
		for i := 0; i < NumPhases; i++ {
			if p.T[i] != 0 || p.S[i] != 0 || p.V[i] != 0 {
				t.Errorf("invalid profile carries non-zero phase %d", i)
			}
		}
	}
}

func TestSolveCruiseOnly(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Entry and exit already at the limit: the whole move cruises.
	p := Solve(50, testVMax, testVMax, testVMax, testAccel, testJerk)
	checkInvariants(t, p)
	if p.Type != Full {
		t.Errorf("expected a full (cruise-only) profile, got %s", p.Type)
	}
	if !scalar.EqualWithinAbs(p.S[Cruise], 50, 1e-9) {
		t.Errorf("expected the whole 50 mm in cruise, got %g", p.S[Cruise])
	}
	if p.AccelTime != 0 || p.DecelTime != 0 {
		t.Errorf("expected no ramps, got accel %g s decel %g s", p.AccelTime, p.DecelTime)
	}
}

func TestSolveManyDistances(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, d := range []float64{0.5, 1, 2, 5, 10, 20, 29, 50, 100, 250, 1000} {
		p := Solve(d, 0, 0, testVMax, testAccel, testJerk)
		checkInvariants(t, p)
		if math.Abs(p.AccelTime-p.DecelTime) > 1e-9 {
			t.Errorf("d=%g: symmetric move has asymmetric ramps", d)
		}
	}
}
