// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of tplcheck's "commands" -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for executing tplcheck).

For a list of commands run:

	$ tplcheck help

The default command is "check".
*/
package cmd
