// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"fmt"

	"carvel.dev/tplcheck/pkg/tagged"
)

// Option is an immutable (key, value, kind, description) tuple.
type Option struct {
	key         *tagged.Value[string]
	value       tagged.Tagged
	kind        Kind
	description string
}

// New builds an Option, inferring its Kind from value.
// A value that is already tagged keeps its own wrapper (and description).
func New(key string, value interface{}, description string) (*Option, error) {
	wrapped := tagged.Wrap(value, description)

	kind, err := KindOf(wrapped.Untagged())
	if err != nil {
		if typedErr, ok := err.(*UnsupportedKindError); ok {
			typedErr.Key = key
		}
		return nil, err
	}

	return &Option{
		key:         tagged.New(key, "option key"),
		value:       wrapped,
		kind:        kind,
		description: wrapped.Description(),
	}, nil
}

// MustNew is like New but panics when value's kind is unsupported.
func MustNew(key string, value interface{}, description string) *Option {
	opt, err := New(key, value, description)
	if err != nil {
		panic(err.Error())
	}
	return opt
}

func (o *Option) Key() string { return o.key.Get() }

func (o *Option) Value() interface{} { return o.value.Untagged() }

// Tagged returns the wrapper holding the value together with its description.
func (o *Option) Tagged() tagged.Tagged { return o.value }

func (o *Option) Kind() Kind { return o.kind }

func (o *Option) Description() string { return o.description }

// SameAs reports whether other names the same option (equal keys).
func (o *Option) SameAs(other *Option) bool {
	return other != nil && o.Key() == other.Key()
}

func (o *Option) String() string {
	return fmt.Sprintf("%s=%v (%s)", o.Key(), o.Value(), o.kind)
}
