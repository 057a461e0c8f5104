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
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"
)

// Config specifies mission run options
type Config struct {
	Rate            float64       `yaml:"rate"`             // setpoint stream rate, Hz
	TakeoffAltitude float64       `yaml:"takeoff_altitude"` // hover altitude, metres
	TakeoffHold     time.Duration `yaml:"takeoff_hold"`     // how long we hold the takeoff setpoint before the figure-8
	Radius          float64       `yaml:"radius"`           // figure-8 half-width, metres
	AngularSpeed    float64       `yaml:"angular_speed"`    // rad/s along the figure-8
	RetryInterval   time.Duration `yaml:"retry_interval"`   // spacing between mode/arm requests
	PrimingCount    int           `yaml:"priming_count"`    // setpoints streamed before the first offboard request
	MonitoringPort  int           `yaml:"monitoring_port"`  // port for the http json monitoring server
}

// DefaultConfig returns Config initialized with default values
func DefaultConfig() *Config {
	return &Config{
		Rate:            20,
		TakeoffAltitude: 6,
		TakeoffHold:     15 * time.Second,
		Radius:          15,
		AngularSpeed:    0.3,
		RetryInterval:   5 * time.Second,
		PrimingCount:    100,
		MonitoringPort:  8886,
	}
}

// TickInterval is the pacing of the control loop derived from the rate
func (c *Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Rate)
}

// Trajectory builds the trajectory described by the config
func (c *Config) Trajectory() Trajectory {
	return Trajectory{
		Altitude:     c.TakeoffAltitude,
		Radius:       c.Radius,
		AngularSpeed: c.AngularSpeed,
	}
}

// Validate config is sane
func (c *Config) Validate() error {
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be greater than zero")
	}
	if c.TakeoffAltitude <= 0 {
		return fmt.Errorf("takeoff_altitude must be greater than zero")
	}
	if c.TakeoffHold < 0 {
		return fmt.Errorf("takeoff_hold must be 0 or positive")
	}
	if c.Radius <= 0 {
		return fmt.Errorf("radius must be greater than zero")
	}
	if c.AngularSpeed <= 0 {
		return fmt.Errorf("angular_speed must be greater than zero")
	}
	if c.RetryInterval <= 0 {
		return fmt.Errorf("retry_interval must be greater than zero")
	}
	if c.PrimingCount < 0 {
		return fmt.Errorf("priming_count must be 0 or positive")
	}
	if c.MonitoringPort < 0 {
		return fmt.Errorf("monitoring_port must be 0 or positive")
	}
	return nil
}

// ReadConfig reads config from the file
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	cData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(cData, &c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// PrepareConfig prepares final version of config based on defaults, CLI flags
// and on-disk config, and validates the result
func PrepareConfig(cfgPath string, rate float64, monitoringPort int, setFlags map[string]bool) (*Config, error) {
	cfg := DefaultConfig()
	var err error
	warn := func(name string) {
		log.Warningf("overriding %s from CLI flag", name)
	}
	if cfgPath != "" {
		cfg, err = ReadConfig(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("reading config from %q: %w", cfgPath, err)
		}
	}
	if setFlags["rate"] {
		warn("rate")
		cfg.Rate = rate
	}
	if setFlags["monitoringport"] {
		warn("monitoringport")
		cfg.MonitoringPort = monitoringPort
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
