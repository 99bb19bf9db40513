// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tplcheck

import (
	"carvel.dev/tplcheck/pkg/validations"
)

// ArgumentValidator checks a single template's formal arguments against
// the expected ones. It is not safe for concurrent use.
type ArgumentValidator struct {
	chk *validations.Check
}

func NewArgumentValidator() *ArgumentValidator {
	return &ArgumentValidator{chk: validations.NewCheck()}
}

// Validate records a failure for each expected argument tpl does not declare.
// Arguments declared by tpl but not expected are ignored.
//
// A nil tpl or nil expected is recorded as a failure (both are checked) and
// ends the run. Results of any previous run are discarded.
func (v *ArgumentValidator) Validate(tpl Template, expected []string) *validations.Check {
	v.chk = validations.NewCheck()

	if isNull(tpl) {
		v.chk.Add(validations.NullInput, "template is null")
	}
	if expected == nil {
		v.chk.Add(validations.NullInput, "expected arguments is null")
	}
	if !v.chk.IsValid() {
		return v.chk
	}

	declared := tpl.FormalArgumentNames()
	if declared == nil {
		for _, name := range expected {
			v.chk.Add(validations.MissingArgument, "template does not define argument %q", name)
		}
		return v.chk
	}

	declaredSet := make(map[string]struct{}, len(declared))
	for _, name := range declared {
		declaredSet[name] = struct{}{}
	}
	for _, name := range expected {
		if _, found := declaredSet[name]; !found {
			v.chk.Add(validations.MissingArgument, "template does not define argument %q", name)
		}
	}
	return v.chk
}

// Errors returns the failures of the most recent run.
func (v *ArgumentValidator) Errors() *validations.Check { return v.chk }

// IsValid reports whether the most recent run found no failures.
func (v *ArgumentValidator) IsValid() bool { return v.chk.IsValid() }
