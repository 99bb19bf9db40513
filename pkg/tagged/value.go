// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tagged

import (
	"fmt"
	"strings"
)

// NoDescription is the description of values tagged without one.
const NoDescription = "<no description>"

// Tagged is implemented by every *Value, regardless of its type parameter.
type Tagged interface {
	Description() string
	Untagged() interface{}
}

// Value is an immutable value paired with its description.
type Value[V any] struct {
	value       V
	description string
}

var _ Tagged = &Value[string]{}

// New tags value with description (NoDescription if blank).
func New[V any](value V, description string) *Value[V] {
	return &Value[V]{value: value, description: normalize(description)}
}

// Wrap tags value with description. When value is already Tagged,
// it is returned as is and description is ignored.
func Wrap(value interface{}, description string) Tagged {
	if typed, ok := value.(Tagged); ok {
		return typed
	}
	return New(value, description)
}

// As is the typed counterpart of Wrap: an existing *Value[V] is returned
// unchanged; a bare V is wrapped. Any other input is an error.
func As[V any](value interface{}, description string) (*Value[V], error) {
	switch typed := value.(type) {
	case *Value[V]:
		return typed, nil
	case V:
		return New(typed, description), nil
	case Tagged:
		return nil, fmt.Errorf("Expected value tagged as %T, but was %T", *new(V), typed.Untagged())
	case nil:
		var zero V
		return New(zero, description), nil
	default:
		return nil, fmt.Errorf("Expected value of type %T, but was %T", *new(V), value)
	}
}

func (v *Value[V]) Get() V { return v.value }

func (v *Value[V]) Untagged() interface{} { return v.value }

func (v *Value[V]) Description() string { return v.description }

func (v *Value[V]) String() string {
	return fmt.Sprintf("%v (%s)", v.value, v.description)
}

func normalize(description string) string {
	if strings.TrimSpace(description) == "" {
		return NoDescription
	}
	return description
}
