// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

// UI is how commands talk to the user.
type UI interface {
	Printf(string, ...interface{})
	// Failf reports a failed check on stdout, highlighted when color is enabled.
	Failf(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	EnableColor(bool)
}
