// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package experiments

import (
	"os"
	"sort"
	"strings"
)

/*
Registering a New Experiment

1. add its name to known and implement a getter `Is<experiment-name>Enabled()`

2. circuit-break functionality behind that check:

    if experiments.Is<experiment-name>Enabled() {
        ...
    }

3. in tests, enable experiment(s) by setting the environment variable:

    experiments.ResetForTesting()
    t.Setenv(experiments.Env, "<experiment-name>,<other-experiment-name>,...")
*/

// Env is the OS environment variable with comma-separated names of experiments to enable.
const Env = "TPLCHECKEXPERIMENTS"

// HCLSchema names the experiment allowing schemas to be written in HCL.
const HCLSchema = "hcl-schema"

// known lists every experiment in the order GetEnabled reports them.
var known = []string{HCLSchema}

// IsHCLSchemaEnabled reports whether the HCLSchema experiment was enabled.
func IsHCLSchemaEnabled() bool { return isSet(HCLSchema) }

// GetEnabled reports the name of all enabled experiments.
func GetEnabled() []string {
	enabled := []string{}
	for _, name := range known {
		if isSet(name) {
			enabled = append(enabled, name)
		}
	}
	return enabled
}

// GetUnknown reports names listed in Env that match no experiment,
// in the order they were listed.
func GetUnknown() []string {
	var unknown []string
	for name := range getSettings() {
		if !isKnown(name) {
			unknown = append(unknown, name)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return settings[unknown[i]] < settings[unknown[j]] })
	return unknown
}

func isKnown(name string) bool {
	for _, k := range known {
		if k == name {
			return true
		}
	}
	return false
}

func isSet(name string) bool {
	_, found := getSettings()[name]
	return found
}

// getSettings maps each cleaned-up name in Env to its position in the list.
func getSettings() map[string]int {
	if settings == nil {
		settings = map[string]int{}
		for i, setting := range strings.Split(os.Getenv(Env), ",") {
			name := strings.ToLower(strings.TrimSpace(setting))
			if _, seen := settings[name]; name != "" && !seen {
				settings[name] = i
			}
		}
	}
	return settings
}

// settings is the cached copy of experiments named in Env.
var settings map[string]int

// ResetForTesting clears the experiment flag settings, forcing reload from the Env on next use.
//
// This is for testing purposes only.
func ResetForTesting() {
	settings = nil
}
