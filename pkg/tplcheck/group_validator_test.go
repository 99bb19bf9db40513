// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tplcheck_test

import (
	"testing"

	"carvel.dev/tplcheck/pkg/stargroup"
	"carvel.dev/tplcheck/pkg/tplcheck"
	"carvel.dev/tplcheck/pkg/validations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupValidatorNullInputs(t *testing.T) {
	v := tplcheck.NewGroupValidator()

	assert.Equal(t, []string{"group is null"}, messages(v.Validate(nil, tplcheck.NewSchema())))
	assert.Equal(t, []string{"schema is null"}, messages(v.Validate(tplcheck.StaticGroup{}, nil)))
	assert.Equal(t, []string{"group is null", "schema is null"}, messages(v.Validate(nil, nil)))
}

func TestGroupValidatorNilGroupPointer(t *testing.T) {
	var group *stargroup.Group
	v := tplcheck.NewGroupValidator()

	var chk *validations.Check
	require.NotPanics(t, func() {
		chk = v.Validate(group, tplcheck.NewSchema().Expect("a"))
	})
	assert.Equal(t, []string{"group is null"}, messages(chk))
	assert.Equal(t, validations.NullInput, chk.Entries()[0].Code)
}

func TestGroupValidatorMissingTemplateSkipsArgumentValidation(t *testing.T) {
	group := &recordingGroup{StaticGroup: tplcheck.StaticGroup{}}
	schema := tplcheck.NewSchema().Expect("absent", "x", "y")

	chk := tplcheck.NewGroupValidator().Validate(group, schema)

	require.Equal(t, 1, chk.Len())
	assert.Equal(t, validations.MissingTemplate, chk.Entries()[0].Code)
	assert.Equal(t, `group does not define mandatory template "absent"`, chk.Entries()[0].String())
	assert.Empty(t, group.instances)
}

func TestGroupValidatorSkipsEmptyNames(t *testing.T) {
	schema := tplcheck.NewSchema().
		Expect("", "x").
		Set("", nil)

	for _, group := range []tplcheck.TemplateGroup{
		tplcheck.StaticGroup{},
		tplcheck.StaticGroup{"": tplcheck.StaticTemplate{}},
	} {
		chk := tplcheck.NewGroupValidator().Validate(group, schema)
		assert.True(t, chk.IsValid())
	}
}

func TestGroupValidatorEndToEnd(t *testing.T) {
	group := tplcheck.StaticGroup{
		"noArg":   tplcheck.StaticTemplate{},
		"oneArg":  tplcheck.StaticTemplate{Args: []string{"x"}},
		"twoArgs": tplcheck.StaticTemplate{Args: []string{"x", "z"}},
	}
	schema := tplcheck.NewSchema().
		Expect("noArg").
		Expect("oneArg", "x").
		Expect("twoArgs", "x", "y")

	v := tplcheck.NewGroupValidator()
	chk := v.Validate(group, schema)

	assert.False(t, chk.IsValid())
	assert.False(t, v.IsValid())
	require.Len(t, chk.Entries(), 1)
	assert.Equal(t, `template does not define argument "y"`, chk.Entries()[0].String())
	assert.Equal(t, validations.MissingArgument, chk.Entries()[0].Code)
}

func TestGroupValidatorPreservesSchemaOrder(t *testing.T) {
	group := tplcheck.StaticGroup{
		"b": tplcheck.StaticTemplate{},
	}
	schema := tplcheck.NewSchema().
		Expect("c").
		Expect("b", "one", "two").
		Expect("a").
		Set("b-null", nil)
	group["b-null"] = tplcheck.StaticTemplate{}

	chk := tplcheck.NewGroupValidator().Validate(group, schema)

	assert.Equal(t, []string{
		`group does not define mandatory template "c"`,
		`template does not define argument "one"`,
		`template does not define argument "two"`,
		`group does not define mandatory template "a"`,
		`expected arguments is null`,
	}, messages(chk))
}

func TestGroupValidatorNilTemplateInstance(t *testing.T) {
	group := tplcheck.StaticGroup{"declared": nil}

	chk := tplcheck.NewGroupValidator().Validate(group, tplcheck.NewSchema().Expect("declared", "x"))

	assert.Equal(t, []string{"template is null"}, messages(chk))
}

func TestGroupValidatorNilTemplatePointer(t *testing.T) {
	var tpl *stargroup.Template
	group := tplcheck.StaticGroup{"declared": tpl}

	chk := tplcheck.NewGroupValidator().Validate(group, tplcheck.NewSchema().Expect("declared", "x"))

	assert.Equal(t, []string{"template is null"}, messages(chk))
}

func TestGroupValidatorDiscardsPreviousRun(t *testing.T) {
	v := tplcheck.NewGroupValidator()
	require.False(t, v.Validate(nil, nil).IsValid())

	chk := v.Validate(tplcheck.StaticGroup{"a": tplcheck.StaticTemplate{}}, tplcheck.NewSchema().Expect("a"))
	assert.True(t, chk.IsValid())
	assert.True(t, v.IsValid())
	assert.Same(t, chk, v.Errors())
}

type recordingGroup struct {
	tplcheck.StaticGroup
	instances []string
}

func (g *recordingGroup) InstanceOf(name string) tplcheck.Template {
	g.instances = append(g.instances, name)
	return g.StaticGroup.InstanceOf(name)
}
