// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tplcheck

import (
	"carvel.dev/tplcheck/pkg/orderedmap"
)

// Schema maps mandatory template names to the argument names each must
// declare. Names keep the order in which they were first set.
type Schema struct {
	templates orderedmap.Map[string, []string]
}

func NewSchema() *Schema { return &Schema{} }

// Set expects template name to declare args. Setting a name again replaces
// its args in place. A nil args slice is kept as is (and reported by
// ArgumentValidator); use an empty slice to expect no arguments.
func (s *Schema) Set(name string, args []string) *Schema {
	s.templates.Set(name, args)
	return s
}

// Expect is Set with variadic args; it never records nil args.
func (s *Schema) Expect(name string, args ...string) *Schema {
	if args == nil {
		args = []string{}
	}
	return s.Set(name, args)
}

func (s *Schema) Get(name string) ([]string, bool) { return s.templates.Get(name) }

func (s *Schema) Names() []string { return s.templates.Keys() }

func (s *Schema) Len() int { return s.templates.Len() }

func (s *Schema) Iterate(iterFunc func(name string, args []string)) {
	s.templates.Iterate(iterFunc)
}
