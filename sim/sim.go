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

// Package sim is an in-process stand-in for a PX4-style flight controller,
// good enough to rehearse the full mission without a vehicle. It enforces
// the one rule the real thing enforces: offboard mode needs a live setpoint
// stream, both to enter it and to stay in it.
package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"

	"github.com/abdelfatah7/offboard-Mavros/mission"
)

// the mode the controller falls back to outside offboard control
const modeHold = "AUTO.LOITER"

// Config specifies simulated vehicle behavior
type Config struct {
	Interval      time.Duration `yaml:"interval"`       // simulation step
	StreamTimeout time.Duration `yaml:"stream_timeout"` // how stale the setpoint stream may get before offboard is refused or dropped
	TrackingGain  float64       `yaml:"tracking_gain"`  // per-second first-order pull toward the setpoint
	DescentRate   float64       `yaml:"descent_rate"`   // m/s while landing
}

// DefaultConfig returns Config initialized with default values
func DefaultConfig() *Config {
	return &Config{
		Interval:      50 * time.Millisecond,
		StreamTimeout: 500 * time.Millisecond,
		TrackingGain:  1.5,
		DescentRate:   1.0,
	}
}

// FlightController implements mission.Link against a simulated vehicle
type FlightController struct {
	cfg *Config
	clk clock.Clock

	mu           sync.Mutex
	mode         string
	armed        bool
	pos          mission.Pose
	target       mission.Pose
	lastSetpoint time.Time
	hasSetpoint  bool

	events chan mission.Event
}

// New creates a simulated flight controller sitting disarmed on the ground
func New(cfg *Config, clk clock.Clock) *FlightController {
	return &FlightController{
		cfg:    cfg,
		clk:    clk,
		mode:   modeHold,
		events: make(chan mission.Event, 256),
	}
}

// Events implements mission.Link
func (f *FlightController) Events() <-chan mission.Event {
	return f.events
}

// Publish implements mission.Link. Every setpoint refreshes the stream
// freshness the offboard mode acceptance depends on.
func (f *FlightController) Publish(p mission.Pose) error {
	f.mu.Lock()
	f.target = p
	f.lastSetpoint = f.clk.Now()
	f.hasSetpoint = true
	f.mu.Unlock()
	return nil
}

// SetMode implements mission.Link
func (f *FlightController) SetMode(_ context.Context, mode string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch mode {
	case mission.ModeOffboard:
		if !f.streamFresh() {
			return fmt.Errorf("no recent setpoint stream, refusing %s", mode)
		}
	case mission.ModeLand:
	default:
		return fmt.Errorf("unsupported mode %q", mode)
	}
	f.mode = mode
	return nil
}

// Arm implements mission.Link
func (f *FlightController) Arm(_ context.Context, arm bool) error {
	f.mu.Lock()
	f.armed = arm
	f.mu.Unlock()
	return nil
}

// streamFresh reports whether a setpoint arrived recently. Callers hold f.mu.
func (f *FlightController) streamFresh() bool {
	return f.hasSetpoint && f.clk.Now().Sub(f.lastSetpoint) <= f.cfg.StreamTimeout
}

// Run steps the simulated vehicle until the context ends
func (f *FlightController) Run(ctx context.Context) error {
	ticker := f.clk.Ticker(f.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debug("cancelled simulated vehicle")
			return ctx.Err()
		case <-ticker.C:
			f.step()
		}
	}
}

func (f *FlightController) step() {
	f.mu.Lock()
	dt := f.cfg.Interval.Seconds()
	switch f.mode {
	case mission.ModeOffboard:
		if !f.streamFresh() {
			log.Warning("setpoint stream went stale, leaving offboard mode")
			f.mode = modeHold
			break
		}
		alpha := f.cfg.TrackingGain * dt
		if alpha > 1 {
			alpha = 1
		}
		f.pos.X += (f.target.X - f.pos.X) * alpha
		f.pos.Y += (f.target.Y - f.pos.Y) * alpha
		f.pos.Z += (f.target.Z - f.pos.Z) * alpha
	case mission.ModeLand:
		f.pos.Z -= f.cfg.DescentRate * dt
		if f.pos.Z <= 0 {
			f.pos.Z = 0
			if f.armed {
				f.armed = false
				log.Info("touchdown, disarmed")
			}
		}
	}
	st := mission.VehicleState{Connected: true, Armed: f.armed, Mode: f.mode}
	pose := f.pos
	f.mu.Unlock()

	f.push(mission.Event{State: &st})
	f.push(mission.Event{Pose: &pose})
}

// push delivers an event without ever blocking the simulation; if the
// consumer lags the update is dropped, the next step supersedes it anyway
func (f *FlightController) push(ev mission.Event) {
	select {
	case f.events <- ev:
	default:
	}
}
