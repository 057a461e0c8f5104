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
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Flight controller modes we request
const (
	ModeOffboard = "OFFBOARD"
	ModeLand     = "AUTO.LAND"
)

// Commander sends mode and arming requests to the flight controller. Requests
// are answered within the call; failures are not fatal and simply retried.
type Commander interface {
	SetMode(ctx context.Context, mode string) error
	Arm(ctx context.Context, arm bool) error
}

// Handshaker nudges the vehicle into offboard mode and keeps asking for it to
// be armed. At most one request goes out per tick, mode before arming, and
// never more often than the retry interval. There is no backoff growth, the
// interval is fixed.
type Handshaker struct {
	cmd   Commander
	retry time.Duration
	stats StatsServer

	lastRequest time.Time
}

// NewHandshaker returns a handshaker that spaces requests by retry
func NewHandshaker(cmd Commander, retry time.Duration, stats StatsServer) *Handshaker {
	return &Handshaker{cmd: cmd, retry: retry, stats: stats}
}

// Tick inspects the vehicle state and issues at most one request. It reports
// whether an offboard mode request was just accepted, which means phase
// timing must restart.
func (h *Handshaker) Tick(ctx context.Context, now time.Time, st VehicleState) bool {
	if st.Mode != ModeOffboard {
		if now.Sub(h.lastRequest) < h.retry {
			return false
		}
		h.lastRequest = now
		h.stats.UpdateCounterBy("mission.handshake.mode_requests", 1)
		if err := h.cmd.SetMode(ctx, ModeOffboard); err != nil {
			h.stats.UpdateCounterBy("mission.handshake.mode_failures", 1)
			log.Warningf("offboard mode request rejected: %v", err)
			return false
		}
		log.Info("offboard enabled")
		return true
	}
	if !st.Armed && now.Sub(h.lastRequest) >= h.retry {
		h.lastRequest = now
		h.stats.UpdateCounterBy("mission.handshake.arm_requests", 1)
		if err := h.cmd.Arm(ctx, true); err != nil {
			h.stats.UpdateCounterBy("mission.handshake.arm_failures", 1)
			log.Warningf("arming request rejected: %v", err)
			return false
		}
		log.Info("vehicle armed")
	}
	return false
}

// Land commands the landing mode. One shot: the result is logged but never
// retried, the flight controller's own failsafes take it from here.
func (h *Handshaker) Land(ctx context.Context) {
	if err := h.cmd.SetMode(ctx, ModeLand); err != nil {
		h.stats.UpdateCounterBy("mission.land.failures", 1)
		log.Warningf("land mode request rejected: %v", err)
		return
	}
	log.Info("land mode initiated, mission complete")
}
