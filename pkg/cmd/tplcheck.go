// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/tplcheck/pkg/cmd/check"
	"carvel.dev/tplcheck/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type TplcheckOptions struct{}

func NewDefaultTplcheckOptions() *TplcheckOptions {
	return &TplcheckOptions{}
}

func NewDefaultTplcheckCmd() *cobra.Command {
	return NewTplcheckCmd(NewDefaultTplcheckOptions())
}

func NewTplcheckCmd(_ *TplcheckOptions) *cobra.Command {
	cmd := check.NewCmd(check.NewOptions())

	cmd.Use = "tplcheck"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "tplcheck validates template groups against a schema"
	cmd.Long = `tplcheck validates template groups against a schema.

Every template named by the schema must be defined, and must declare every
argument the schema lists for it. All failures are reported, not just the first.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(check.NewCmd(check.NewOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
