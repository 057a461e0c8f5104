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

// Package stats reads counters from a running offboard daemon's monitoring
// port, for the exporter sidecar and the missionctl tool.
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Counters is a map of counters and their values
type Counters map[string]int64

// Status mirrors the snapshot the daemon serves on the monitoring root
type Status struct {
	Phase    string           `json:"phase"`
	Counters map[string]int64 `json:"counters"`
}

// FetchCounters returns the daemon's counters
func FetchCounters(url string) (Counters, error) {
	counters := make(Counters)
	url = fmt.Sprintf("%s/counters", url)
	c := http.Client{
		Timeout: time.Second * 2,
	}

	resp, err := c.Get(url)
	if err != nil {
		return counters, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return counters, err
	}
	err = json.Unmarshal(b, &counters)
	return counters, err
}

// FetchStatus returns the daemon's mission snapshot
func FetchStatus(url string) (*Status, error) {
	c := http.Client{
		Timeout: time.Second * 2,
	}

	resp, err := c.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	status := &Status{}
	err = json.Unmarshal(b, status)
	return status, err
}
