// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"fmt"
)

type Kind int

const (
	Boolean Kind = iota + 1
	Character
	String
	Double
	Integer
	CharacterArray
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Character:
		return "character"
	case String:
		return "string"
	case Double:
		return "double"
	case Integer:
		return "integer"
	case CharacterArray:
		return "character array"
	default:
		return fmt.Sprintf("unknown kind (%d)", int(k))
	}
}

func (k Kind) isNumeric() bool { return k == Integer || k == Double }

func (k Kind) isText() bool { return k == String || k == Character || k == CharacterArray }

// KindOf maps the Go type of value onto a Kind.
func KindOf(value interface{}) (Kind, error) {
	switch value.(type) {
	case bool:
		return Boolean, nil
	case rune:
		return Character, nil
	case string:
		return String, nil
	case float32, float64:
		return Double, nil
	case int, int8, int16, int64, uint, uint8, uint16, uint32, uint64:
		return Integer, nil
	case []rune:
		return CharacterArray, nil
	default:
		return 0, &UnsupportedKindError{Value: value}
	}
}

// UnsupportedKindError reports an attempt to build an Option from a value
// whose type maps to no Kind.
type UnsupportedKindError struct {
	Key   string
	Value interface{}
}

func (e *UnsupportedKindError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("Unsupported option kind: value of type %T", e.Value)
	}
	return fmt.Sprintf("Unsupported option kind for %q: value of type %T", e.Key, e.Value)
}
