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
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abdelfatah7/offboard-Mavros/stats"
)

// phase gets a colour so a glance at a terminal tells you where the
// mission is
var phaseColors = map[string]func(format string, a ...interface{}) string{
	"TAKEOFF":  color.YellowString,
	"FIGURE8":  color.CyanString,
	"LAND":     color.MagentaString,
	"COMPLETE": color.GreenString,
}

func printStatus(s *stats.Status) {
	colorize, ok := phaseColors[s.Phase]
	if !ok {
		colorize = color.RedString
	}
	fmt.Printf("phase: %s\n", colorize("%s", s.Phase))

	keys := make([]string, 0, len(s.Counters))
	for k := range s.Counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %d\n", k, s.Counters[k])
	}
}

func init() {
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(countersCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print mission phase and counters",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		status, err := stats.FetchStatus(rootAddressFlag)
		if err != nil {
			log.Fatal(err)
		}
		printStatus(status)
	},
}

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Print mission counters in JSON format",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		counters, err := stats.FetchCounters(rootAddressFlag)
		if err != nil {
			log.Fatal(err)
		}
		toPrint, err := json.Marshal(counters)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(toPrint))
	},
}
