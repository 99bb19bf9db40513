// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the version of tplcheck.
package version

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

// RequireAtLeast returns an error unless Version satisfies ">= minimum".
func RequireAtLeast(minimum string) error {
	constraint, err := goversion.NewConstraint(">= " + minimum)
	if err != nil {
		return fmt.Errorf("Parsing minimum version %q: %s", minimum, err)
	}

	current, err := goversion.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("Parsing tplcheck version %q: %s", Version, err)
	}

	if !constraint.Check(current) {
		return fmt.Errorf("tplcheck version %s does not meet the minimum required version %s", Version, minimum)
	}
	return nil
}
