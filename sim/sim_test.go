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

package sim

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/abdelfatah7/offboard-Mavros/mission"
)

func TestRefusesOffboardWithoutStream(t *testing.T) {
	mock := clock.NewMock()
	f := New(DefaultConfig(), mock)
	ctx := context.Background()

	require.Error(t, f.SetMode(ctx, mission.ModeOffboard))

	require.NoError(t, f.Publish(mission.Pose{Z: 2}))
	require.NoError(t, f.SetMode(ctx, mission.ModeOffboard))
}

func TestRefusesOffboardWhenStreamStale(t *testing.T) {
	cfg := DefaultConfig()
	mock := clock.NewMock()
	f := New(cfg, mock)
	ctx := context.Background()

	require.NoError(t, f.Publish(mission.Pose{Z: 2}))
	mock.Add(cfg.StreamTimeout + time.Millisecond)
	require.Error(t, f.SetMode(ctx, mission.ModeOffboard))
}

func TestRefusesUnknownMode(t *testing.T) {
	f := New(DefaultConfig(), clock.NewMock())
	require.Error(t, f.SetMode(context.Background(), "ACRO"))
}

func TestDropsOffboardWhenStreamStalls(t *testing.T) {
	cfg := DefaultConfig()
	mock := clock.NewMock()
	f := New(cfg, mock)
	ctx := context.Background()

	require.NoError(t, f.Publish(mission.Pose{Z: 2}))
	require.NoError(t, f.SetMode(ctx, mission.ModeOffboard))

	mock.Add(cfg.StreamTimeout + cfg.Interval)
	f.step()

	f.mu.Lock()
	defer f.mu.Unlock()
	require.Equal(t, modeHold, f.mode)
}

func TestTracksSetpoints(t *testing.T) {
	cfg := DefaultConfig()
	mock := clock.NewMock()
	f := New(cfg, mock)
	ctx := context.Background()

	target := mission.Pose{X: 3, Y: -2, Z: 5}
	require.NoError(t, f.Publish(target))
	require.NoError(t, f.SetMode(ctx, mission.ModeOffboard))

	for i := 0; i < 200; i++ {
		require.NoError(t, f.Publish(target))
		f.step()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	require.InDelta(t, target.X, f.pos.X, 0.01)
	require.InDelta(t, target.Y, f.pos.Y, 0.01)
	require.InDelta(t, target.Z, f.pos.Z, 0.01)
}

func TestLandsAndDisarms(t *testing.T) {
	cfg := DefaultConfig()
	mock := clock.NewMock()
	f := New(cfg, mock)
	ctx := context.Background()

	require.NoError(t, f.Arm(ctx, true))
	f.mu.Lock()
	f.pos = mission.Pose{Z: 2}
	f.mu.Unlock()
	require.NoError(t, f.SetMode(ctx, mission.ModeLand))

	for i := 0; i < 100; i++ {
		f.step()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	require.Equal(t, 0.0, f.pos.Z)
	require.False(t, f.armed)
}

// TestFullMissionRehearsal runs the real mission loop against the simulated
// vehicle at a sped-up scale: through the handshake, the takeoff hold, one
// figure-8 loop and the landing.
func TestFullMissionRehearsal(t *testing.T) {
	cfg := mission.DefaultConfig()
	cfg.Rate = 200
	cfg.TakeoffAltitude = 2
	cfg.TakeoffHold = 100 * time.Millisecond
	cfg.Radius = 2
	cfg.AngularSpeed = 25
	cfg.RetryInterval = 50 * time.Millisecond
	cfg.PrimingCount = 5
	require.NoError(t, cfg.Validate())

	simCfg := &Config{
		Interval:      2 * time.Millisecond,
		StreamTimeout: 100 * time.Millisecond,
		TrackingGain:  5,
		DescentRate:   20,
	}

	clk := clock.New()
	vehicle := New(simCfg, clk)
	stats := mission.NewStats()
	m := mission.New(cfg, vehicle, stats)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return vehicle.Run(ctx)
	})
	eg.Go(func() error {
		return m.Run(ctx)
	})

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if stats.GetPhase() == mission.PhaseComplete {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, mission.PhaseComplete, stats.GetPhase())

	counters := stats.GetCounters()
	require.Greater(t, counters["mission.setpoints.published"], int64(cfg.PrimingCount))
	require.GreaterOrEqual(t, counters["mission.handshake.mode_requests"], int64(1))
	require.GreaterOrEqual(t, counters["mission.handshake.arm_requests"], int64(1))

	cancel()
	require.ErrorIs(t, eg.Wait(), context.Canceled)
}
