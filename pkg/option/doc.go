// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package option provides typed, described key/value settings.

An Option's Kind is fixed when it is created, from the Go type of its value:

	bool                       Boolean
	rune (int32)               Character
	string                     String
	float32, float64           Double
	other integers, incl. byte Integer
	[]rune                     CharacterArray

Values of any other type cannot become an Option (see UnsupportedKindError).

A Set keeps Options in insertion order and unique by key; adding an Option
whose key is already present replaces the old one in place.
*/
package option
