// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tplcheck

import (
	"carvel.dev/tplcheck/pkg/validations"
)

// GroupValidator checks a TemplateGroup against a Schema.
// It is not safe for concurrent use.
type GroupValidator struct {
	args *ArgumentValidator
	chk  *validations.Check
}

func NewGroupValidator() *GroupValidator {
	return &GroupValidator{args: NewArgumentValidator(), chk: validations.NewCheck()}
}

// Validate checks that group defines every template named in schema, and
// that each of them declares its expected arguments.
//
// Entries with an empty name are skipped: they never name a mandatory
// template. A nil group or schema is recorded as a failure (both are
// checked) and ends the run. Results of any previous run are discarded.
func (v *GroupValidator) Validate(group TemplateGroup, schema *Schema) *validations.Check {
	v.chk = validations.NewCheck()

	if isNull(group) {
		v.chk.Add(validations.NullInput, "group is null")
	}
	if schema == nil {
		v.chk.Add(validations.NullInput, "schema is null")
	}
	if !v.chk.IsValid() {
		return v.chk
	}

	schema.Iterate(func(name string, expected []string) {
		if name == "" {
			return
		}
		if !group.IsDefined(name) {
			v.chk.Add(validations.MissingTemplate, "group does not define mandatory template %q", name)
			return
		}
		v.chk.Merge(v.args.Validate(group.InstanceOf(name), expected))
	})

	return v.chk
}

// Errors returns the failures of the most recent run.
func (v *GroupValidator) Errors() *validations.Check { return v.chk }

// IsValid reports whether the most recent run found no failures.
func (v *GroupValidator) IsValid() bool { return v.chk.IsValid() }
