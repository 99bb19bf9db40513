// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package option_test

import (
	"testing"

	"carvel.dev/tplcheck/pkg/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReplacesInPlace(t *testing.T) {
	set := option.NewSet(
		option.MustNew("first", 1, ""),
		option.MustNew("second", 2, ""),
		option.MustNew("third", 3, ""),
	)

	set.Add(option.MustNew("second", "two", "replaced"))

	assert.Equal(t, []string{"first", "second", "third"}, set.Keys())
	assert.Equal(t, 3, set.Len())

	opt, found := set.Get("second")
	require.True(t, found)
	assert.Equal(t, "two", opt.Value())
	assert.Equal(t, option.String, opt.Kind())
	assert.Equal(t, "replaced", opt.Description())
}

func TestLookupByKnownOption(t *testing.T) {
	set := option.NewSet(option.MustNew("k", 1, ""))

	found, ok := set.Lookup(option.MustNew("k", false, ""))
	require.True(t, ok)
	assert.Equal(t, 1, found.Value())

	_, ok = set.Lookup(option.MustNew("missing", false, ""))
	assert.False(t, ok)
	_, ok = set.Lookup(nil)
	assert.False(t, ok)

	assert.True(t, set.HasKey("k"))
	assert.False(t, set.HasKey("missing"))
}

func TestValueOr(t *testing.T) {
	set := option.NewSet(
		option.MustNew("int", 5, ""),
		option.MustNew("float", 2.5, ""),
		option.MustNew("whole-float", 4.0, ""),
		option.MustNew("char", 'z', ""),
		option.MustNew("chars", []rune("abc"), ""),
		option.MustNew("bool", true, ""),
		option.MustNew("str", "hello", ""),
	)

	assert.Equal(t, 5, option.ValueOr(set, "int", 0))
	assert.Equal(t, 5.0, option.ValueOr(set, "int", 1.0))
	assert.Equal(t, int64(5), option.ValueOr(set, "int", int64(0)))
	assert.Equal(t, 4, option.ValueOr(set, "whole-float", 0))
	assert.Equal(t, 9, option.ValueOr(set, "float", 9), "lossy conversion falls back to default")
	assert.Equal(t, "z", option.ValueOr(set, "char", ""))
	assert.Equal(t, "abc", option.ValueOr(set, "chars", ""))
	assert.Equal(t, true, option.ValueOr(set, "bool", false))
	assert.Equal(t, "hello", option.ValueOr(set, "str", "default"))

	assert.Equal(t, 42, option.ValueOr(set, "str", 42), "kind mismatch falls back to default")
	assert.Equal(t, "d", option.ValueOr(set, "bool", "d"))
	assert.Equal(t, 7, option.ValueOr(set, "missing", 7))
	assert.Equal(t, 7, option.ValueOr[int](nil, "int", 7))
}

func TestValueOrConvertsTextKindsBothWays(t *testing.T) {
	set := option.NewSet(
		option.MustNew("str", "hello", ""),
		option.MustNew("one", "x", ""),
		option.MustNew("char", 'z', ""),
		option.MustNew("chars", []rune("abc"), ""),
		option.MustNew("single", []rune("q"), ""),
		option.MustNew("int", 7, ""),
	)

	assert.Equal(t, []rune("hello"), option.ValueOr(set, "str", []rune("def")))
	assert.Equal(t, 'x', option.ValueOr(set, "one", 'd'))
	assert.Equal(t, 'd', option.ValueOr(set, "str", 'd'), "more than one character falls back to default")
	assert.Equal(t, []rune("z"), option.ValueOr(set, "char", []rune("def")))
	assert.Equal(t, 'q', option.ValueOr(set, "single", 'd'))
	assert.Equal(t, 'd', option.ValueOr(set, "chars", 'd'))
	assert.Equal(t, 'd', option.ValueOr(set, "int", 'd'), "numbers are not text")
	assert.Equal(t, []rune("def"), option.ValueOr(set, "int", []rune("def")))
}

func TestZeroValueSetIsUsable(t *testing.T) {
	var set option.Set
	set.Add(option.MustNew("a", 1, ""))
	set.Add(option.MustNew("b", 2, ""))
	set.Add(option.MustNew("a", 3, ""))

	assert.Equal(t, []string{"a", "b"}, set.Keys())
	assert.Equal(t, 3, option.ValueOr(&set, "a", 0))
}

func TestEmptySet(t *testing.T) {
	var set *option.Set
	assert.Equal(t, 0, set.Len())
	assert.Nil(t, set.Keys())
	assert.False(t, set.HasKey("x"))
}
