// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/tplcheck/pkg/cmd/ui"
	"carvel.dev/tplcheck/pkg/experiments"
	"carvel.dev/tplcheck/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct {
	UI ui.UI
}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{UI: ui.NewTTY(false)}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	return cmd
}

func (o *VersionOptions) Run() error {
	o.UI.Printf("tplcheck version %s\n", version.Version)

	if enabled := experiments.GetEnabled(); len(enabled) > 0 {
		o.UI.Printf("- experiments: %v\n", enabled)
	}
	for _, name := range experiments.GetUnknown() {
		o.UI.Warnf("Warning: Unknown experiment %q named in %s\n", name, experiments.Env)
	}
	return nil
}
