// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tplcheck_test

import (
	"testing"

	"carvel.dev/tplcheck/pkg/tplcheck"
	"carvel.dev/tplcheck/pkg/validations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentValidatorNullInputs(t *testing.T) {
	v := tplcheck.NewArgumentValidator()

	t.Run("nil template", func(t *testing.T) {
		chk := v.Validate(nil, []string{})
		require.Equal(t, 1, chk.Len())
		assert.Equal(t, "template is null", chk.Entries()[0].String())
		assert.Equal(t, validations.NullInput, chk.Entries()[0].Code)
	})

	t.Run("nil expected arguments", func(t *testing.T) {
		chk := v.Validate(tplcheck.StaticTemplate{Args: []string{"a"}}, nil)
		require.Equal(t, 1, chk.Len())
		assert.Equal(t, "expected arguments is null", chk.Entries()[0].String())
	})

	t.Run("both nil", func(t *testing.T) {
		chk := v.Validate(nil, nil)
		assert.Equal(t, []string{"template is null", "expected arguments is null"}, messages(chk))
	})
}

func TestArgumentValidatorTemplateWithoutFormalArguments(t *testing.T) {
	chk := tplcheck.NewArgumentValidator().Validate(tplcheck.StaticTemplate{}, []string{"a", "b"})

	assert.Equal(t, []string{
		`template does not define argument "a"`,
		`template does not define argument "b"`,
	}, messages(chk))
	for _, entry := range chk.Entries() {
		assert.Equal(t, validations.MissingArgument, entry.Code)
	}
}

func TestArgumentValidatorIgnoresSurplusArguments(t *testing.T) {
	tpl := tplcheck.StaticTemplate{Args: []string{"a", "b"}}

	chk := tplcheck.NewArgumentValidator().Validate(tpl, []string{"a", "c"})

	assert.Equal(t, []string{`template does not define argument "c"`}, messages(chk))
	assert.Equal(t, []string{"a", "b"}, tpl.Args)
}

func TestArgumentValidatorEmptyExpectations(t *testing.T) {
	v := tplcheck.NewArgumentValidator()

	assert.True(t, v.Validate(tplcheck.StaticTemplate{}, []string{}).IsValid())
	assert.True(t, v.Validate(tplcheck.StaticTemplate{Args: []string{}}, []string{}).IsValid())
	assert.True(t, v.Validate(tplcheck.StaticTemplate{Args: []string{"x"}}, []string{}).IsValid())
}

func TestArgumentValidatorErrorsFollowExpectedOrder(t *testing.T) {
	tpl := tplcheck.StaticTemplate{Args: []string{"b"}}

	chk := tplcheck.NewArgumentValidator().Validate(tpl, []string{"z", "b", "a", "y"})

	assert.Equal(t, []string{
		`template does not define argument "z"`,
		`template does not define argument "a"`,
		`template does not define argument "y"`,
	}, messages(chk))
}

func TestArgumentValidatorDiscardsPreviousRun(t *testing.T) {
	v := tplcheck.NewArgumentValidator()

	first := v.Validate(nil, nil)
	require.Equal(t, 2, first.Len())
	assert.False(t, v.IsValid())

	second := v.Validate(tplcheck.StaticTemplate{Args: []string{"a"}}, []string{"a"})
	assert.True(t, second.IsValid())
	assert.True(t, v.IsValid())
	assert.Same(t, second, v.Errors())
	assert.Equal(t, 2, first.Len(), "earlier results are not mutated")
}

func messages(chk *validations.Check) []string {
	var result []string
	for _, entry := range chk.Entries() {
		result = append(result, entry.String())
	}
	return result
}
