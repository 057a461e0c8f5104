/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package mission

import (
	"math"
	"time"
)

// Phase is a stage of the scripted mission
type Phase uint8

// Phases of the mission, in the order they are flown
const (
	PhaseTakeoff Phase = iota
	PhaseFigure8
	PhaseLand
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseTakeoff:
		return "TAKEOFF"
	case PhaseFigure8:
		return "FIGURE8"
	case PhaseLand:
		return "LAND"
	case PhaseComplete:
		return "COMPLETE"
	}
	return "UNSUPPORTED"
}

// Trajectory produces position targets for the scripted flight. It is pure:
// the target depends only on the phase and the time spent in it, so a missed
// tick never accumulates into drift.
type Trajectory struct {
	Altitude     float64 // hover altitude, metres
	Radius       float64 // figure-8 half-width, metres
	AngularSpeed float64 // rad/s along the parametric curve
}

// LoopDuration is the time one full figure-8 takes. The curve is periodic in
// the parameter with period 2*pi, so the duration is known in closed form.
func (t Trajectory) LoopDuration() time.Duration {
	return time.Duration(2 * math.Pi / t.AngularSpeed * float64(time.Second))
}

// TargetAt returns the position target for the given phase and time in phase.
// Takeoff holds the point above the origin and lets the controller climb to
// it. Figure8 traces a Lemniscate of Gerono at constant angular rate:
//
//	x = R * sin(angle)
//	y = R * sin(angle) * cos(angle)
//
// Land and Complete do not consume targets, they get the hold point back.
func (t Trajectory) TargetAt(phase Phase, elapsed time.Duration) Pose {
	if phase == PhaseFigure8 {
		sin, cos := math.Sincos(t.AngularSpeed * elapsed.Seconds())
		return Pose{
			X: t.Radius * sin,
			Y: t.Radius * sin * cos,
			Z: t.Altitude,
		}
	}
	return Pose{X: 0, Y: 0, Z: t.Altitude}
}
