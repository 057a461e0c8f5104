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

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abdelfatah7/offboard-Mavros/mission"
)

func init() {
	RootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Validate a mission config file and print the resulting mission parameters",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()

		cfg, err := mission.ReadConfig(args[0])
		if err != nil {
			log.Fatal(err)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Printf("%s %v\n", color.RedString("[FAIL]"), err)
			return
		}
		fmt.Printf("%s %s\n", color.GreenString("[ OK ]"), args[0])
		fmt.Printf("setpoint rate: %.1f Hz\n", cfg.Rate)
		fmt.Printf("takeoff: %.1fm for %s\n", cfg.TakeoffAltitude, cfg.TakeoffHold)
		traj := cfg.Trajectory()
		fmt.Printf("figure-8: radius %.1fm at %.2f rad/s, one loop in %.2fs\n",
			cfg.Radius, cfg.AngularSpeed, traj.LoopDuration().Seconds())
	},
}
