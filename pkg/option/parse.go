// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"fmt"
	"strconv"
	"strings"

	"carvel.dev/tplcheck/pkg/fallback"
)

var parseRaw = fallback.First(
	func(raw string) (interface{}, bool) {
		switch strings.ToLower(raw) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return nil, false
	},
	func(raw string) (interface{}, bool) {
		val, err := strconv.Atoi(raw)
		return val, err == nil
	},
	func(raw string) (interface{}, bool) {
		val, err := strconv.ParseFloat(raw, 64)
		return val, err == nil
	},
	func(raw string) (interface{}, bool) {
		return raw, true
	},
)

// Parse builds an Option from its textual form, trying boolean, integer and
// double interpretations in that order before settling on a string.
func Parse(key, raw, description string) (*Option, error) {
	val, _ := parseRaw(raw)
	return New(key, val, description)
}

// ParseKeyValue builds an Option from "key=value".
func ParseKeyValue(kv, description string) (*Option, error) {
	pieces := strings.SplitN(kv, "=", 2)
	if len(pieces) != 2 || strings.TrimSpace(pieces[0]) == "" {
		return nil, fmt.Errorf("Expected option in format 'key=value', but was %q", kv)
	}
	return Parse(strings.TrimSpace(pieces[0]), pieces[1], description)
}
