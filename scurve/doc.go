// Package scurve computes jerk-limited ("S-curve") velocity profiles
// for single linear motion segments.
/*

A trapezoidal velocity profile changes acceleration instantaneously,
which excites vibration in stepper-driven machines. An S-curve profile
additionally bounds the jerk, the rate of change of acceleration, and
splits a move into up to seven phases:

   accel jerk-up | constant accel | accel jerk-down |
   cruise |
   decel jerk-up | constant decel | decel jerk-down

The background theory is covered in

   Trajectory Planning for Automatic Machines and Robots
   Luigi Biagiotti, Claudio Melchiorri
   Springer, 2008 (chapter 3, "Composition of Elementary Trajectories")

Usage

Given a segment length, entry/exit velocities and the kinematic limits,
Solve returns an immutable Profile value:

   p := scurve.Solve(100, 0, 0, 3000, 500, 5000)
   if !p.Valid {
       // fall back to a trapezoidal profile
       p = scurve.SolveTrapezoid(100, 0, 0, 3000, 500)
   }

A real-time consumer then queries the motion law at arbitrary points in
time:

   a := scurve.AccelerationAt(p, t)
   v := scurve.VelocityAt(p, t, 0)
   s := scurve.PositionAt(p, t, 0)

Distances are mm, durations seconds, accelerations mm/s² and jerk
mm/s³. Velocities cross the package boundary in mm/min (the unit of
G-code feed rates); all internal arithmetic runs in mm/s.

All functions are pure: a Profile is never mutated after construction,
so any number of goroutines or interrupt contexts may query the same
profile concurrently without synchronization. The evaluators allocate
nothing and loop only over the fixed seven phases.

Caveats

(1) The solver does not clamp entry/exit velocities to the velocity
limit. Callers must pre-clamp; an infeasible request is caught by the
distance consistency gate and yields an invalid profile.

(2) SolveFast trades kinematic correctness for a bounded, branch-free
time estimate on short or near-symmetric moves. Profiles of type
Reduced satisfy the distance invariants, but their phase boundaries are
heuristic. VelocityAt and PositionAt therefore interpolate Reduced
profiles linearly within each phase instead of applying the jerk-phase
formulas, which keeps both queries continuous; AccelerationAt still
reports the jerk-shaped value and is only an envelope estimate for
Reduced profiles.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package scurve
