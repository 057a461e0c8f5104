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
	"time"

	log "github.com/sirupsen/logrus"
)

// how often we report figure-8 progress
const progressLogInterval = 5 * time.Second

// Machine owns the mission phase and the phase clock. Phases only ever move
// forward: Takeoff -> Figure8 -> Land -> Complete. The phase clock restarts
// exactly once per transition, and additionally when offboard mode is
// confirmed, so handshake delays never eat into the phase budget.
type Machine struct {
	traj        Trajectory
	takeoffHold time.Duration
	loop        time.Duration

	phase        Phase
	phaseStart   time.Time
	lastProgress time.Time
}

// NewMachine returns a machine at the start of the mission. The figure-8 exit
// time is fixed here, once, from the trajectory period.
func NewMachine(traj Trajectory, takeoffHold time.Duration) *Machine {
	return &Machine{
		traj:        traj,
		takeoffHold: takeoffHold,
		loop:        traj.LoopDuration(),
		phase:       PhaseTakeoff,
	}
}

// Phase returns the current mission phase
func (m *Machine) Phase() Phase {
	return m.phase
}

// Elapsed returns the time spent in the current phase
func (m *Machine) Elapsed(now time.Time) time.Duration {
	return now.Sub(m.phaseStart)
}

// ResetClock restarts phase timing at now. Called at mission start and every
// time an offboard mode request is accepted.
func (m *Machine) ResetClock(now time.Time) {
	m.phaseStart = now
}

// Advance runs one tick of phase logic. It must only be called while the
// vehicle is armed and in offboard mode; the caller holds the machine still
// otherwise. It returns the position target for this tick and whether the
// land command must be issued now.
func (m *Machine) Advance(now time.Time) (Pose, bool) {
	elapsed := m.Elapsed(now)
	target := m.traj.TargetAt(m.phase, elapsed)
	switch m.phase {
	case PhaseTakeoff:
		if elapsed >= m.takeoffHold {
			m.transition(PhaseFigure8, now)
			log.Infof("takeoff hold complete at %.1fm, starting figure-8 loop", m.traj.Altitude)
		}
	case PhaseFigure8:
		if elapsed >= m.loop {
			// come back over the origin before landing is commanded
			target.X = 0
			target.Y = 0
			m.transition(PhaseLand, now)
			log.Info("figure-8 loop finished, initiating landing")
		} else if now.Sub(m.lastProgress) >= progressLogInterval {
			m.lastProgress = now
			log.Infof("figure-8: x=%.1f y=%.1f, %.1fs remaining", target.X, target.Y, (m.loop - elapsed).Seconds())
		}
	case PhaseLand:
		// one-shot: command the landing and be done
		m.transition(PhaseComplete, now)
		return target, true
	case PhaseComplete:
	}
	return target, false
}

func (m *Machine) transition(next Phase, now time.Time) {
	m.phase = next
	m.phaseStart = now
}
