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

// VehicleState is the flight controller state as announced over the vehicle link
type VehicleState struct {
	Connected bool
	Armed     bool
	Mode      string
}

// Pose is a position in the local frame, metres
type Pose struct {
	X float64
	Y float64
	Z float64
}

// Event is a single telemetry update from the vehicle link. Exactly one of
// the fields is set per event.
type Event struct {
	State *VehicleState
	Pose  *Pose
}

// Mirror holds the latest known vehicle state and local position. Each update
// replaces the stored value wholesale, there is no partial merge. It is owned
// by the control loop goroutine and must only be written from there.
type Mirror struct {
	state VehicleState
	pose  Pose
}

// Apply stores the update carried by the event
func (m *Mirror) Apply(ev Event) {
	if ev.State != nil {
		m.state = *ev.State
	}
	if ev.Pose != nil {
		m.pose = *ev.Pose
	}
}

// Current returns a snapshot of the last known state and position
func (m *Mirror) Current() (VehicleState, Pose) {
	return m.state, m.pose
}
