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

// Package mission drives an uncrewed vehicle through a scripted flight:
// climb to a hover altitude, fly one full figure-8, land. The flight
// controller does the actual flying; we stream position setpoints at a fixed
// rate and arbitrate mode switching and arming over the vehicle link.
//
// The setpoint stream is the one hard requirement of offboard mode: if it
// stalls, the controller rejects or leaves the mode. Everything here is
// structured so that a single loop keeps publishing every tick no matter how
// the handshake is going.
package mission

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
)

// SetpointSink receives position setpoints for the flight controller to
// track. Publishing is fire-and-forget, a failed publish is just a gap in
// the stream.
type SetpointSink interface {
	Publish(Pose) error
}

// Link is the connection to the vehicle: inbound telemetry events plus the
// outbound command and setpoint channels.
type Link interface {
	Commander
	SetpointSink
	Events() <-chan Event
}

// Mission is the closed-loop setpoint generator
type Mission struct {
	cfg   *Config
	link  Link
	stats StatsServer
	clk   clock.Clock

	mirror  *Mirror
	shake   *Handshaker
	machine *Machine

	// the setpoint we publish this tick; recomputed by the machine while
	// the guard holds, kept as-is otherwise so the stream never goes stale
	target Pose
}

// New creates a Mission flying the configured figure-8 over the given link
func New(cfg *Config, link Link, stats StatsServer) *Mission {
	m := &Mission{
		cfg:     cfg,
		link:    link,
		stats:   stats,
		clk:     clock.New(),
		mirror:  &Mirror{},
		machine: NewMachine(cfg.Trajectory(), cfg.TakeoffHold),
	}
	m.shake = NewHandshaker(link, cfg.RetryInterval, stats)
	m.target = cfg.Trajectory().TargetAt(PhaseTakeoff, 0)
	return m
}

// drainEvents applies all pending telemetry without blocking. It must fully
// complete before any phase logic runs on a tick, so the logic only ever
// sees a consistent snapshot.
func (m *Mission) drainEvents() {
	for {
		select {
		case ev := <-m.link.Events():
			m.mirror.Apply(ev)
		default:
			return
		}
	}
}

// waitForConnection blocks tick by tick until the link reports connected
func (m *Mission) waitForConnection(ctx context.Context) error {
	ticker := m.clk.Ticker(m.cfg.TickInterval())
	defer ticker.Stop()
	for {
		m.drainEvents()
		if st, _ := m.mirror.Current(); st.Connected {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// prime streams the hold setpoint before the first offboard request, since
// the mode switch is rejected unless setpoints are already flowing
func (m *Mission) prime(ctx context.Context) error {
	ticker := m.clk.Ticker(m.cfg.TickInterval())
	defer ticker.Stop()
	for i := 0; i < m.cfg.PrimingCount; i++ {
		m.publish()
		m.drainEvents()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

func (m *Mission) publish() {
	if err := m.link.Publish(m.target); err != nil {
		m.stats.UpdateCounterBy("mission.setpoints.failed", 1)
		log.Warningf("publishing setpoint: %v", err)
		return
	}
	m.stats.UpdateCounterBy("mission.setpoints.published", 1)
}

// tick runs one pass of the control loop: telemetry first, then handshake,
// then phase logic, then publication
func (m *Mission) tick(ctx context.Context) {
	m.drainEvents()
	now := m.clk.Now()
	st, _ := m.mirror.Current()

	if m.shake.Tick(ctx, now, st) {
		// phase timing starts fresh the moment offboard is confirmed
		m.machine.ResetClock(now)
	}

	if st.Armed && st.Mode == ModeOffboard {
		target, land := m.machine.Advance(now)
		m.target = target
		if land {
			m.shake.Land(ctx)
		}
	}

	if m.machine.Phase() < PhaseLand {
		m.publish()
	}

	m.stats.SetPhase(m.machine.Phase())
	m.stats.UpdateCounterBy("mission.ticks", 1)
}

// Run flies the mission. It blocks until the context is cancelled; once the
// mission completes the loop keeps draining telemetry but publishes nothing.
func (m *Mission) Run(ctx context.Context) error {
	if err := m.waitForConnection(ctx); err != nil {
		return err
	}
	log.Info("vehicle link connected, starting figure-8 mission")

	if err := m.prime(ctx); err != nil {
		return err
	}

	m.machine.ResetClock(m.clk.Now())
	log.Infof("one full figure-8 loop takes %.2fs", m.machine.loop.Seconds())

	interval := m.cfg.TickInterval()
	var lastTick time.Time
	ticker := m.clk.Ticker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debug("cancelled control loop")
			return ctx.Err()
		case <-ticker.C:
			now := m.clk.Now()
			if !lastTick.IsZero() {
				// a stalled stream gets us kicked out of offboard mode
				if d := now.Sub(lastTick); 100*d > 110*interval {
					m.stats.UpdateCounterBy("mission.slow_ticks", 1)
					log.Warningf("tick took %v, more than 110%% of the %v interval", d, interval)
				}
			}
			lastTick = now
			m.tick(ctx)
		}
	}
}
