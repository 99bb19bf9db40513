// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tplcheck

import (
	"reflect"
)

// TemplateGroup is a named collection of templates.
type TemplateGroup interface {
	IsDefined(name string) bool
	InstanceOf(name string) Template
}

// Template exposes the formal arguments a template declares.
type Template interface {
	// FormalArgumentNames returns nil when the template declares no formal
	// arguments at all, which is distinct from an empty, non-nil slice.
	FormalArgumentNames() []string
}

// StaticTemplate is a Template with a fixed list of formal arguments.
type StaticTemplate struct {
	Args []string
}

var _ Template = StaticTemplate{}

func (t StaticTemplate) FormalArgumentNames() []string { return t.Args }

// StaticGroup is an in-memory TemplateGroup.
type StaticGroup map[string]Template

var _ TemplateGroup = StaticGroup{}

func (g StaticGroup) IsDefined(name string) bool {
	_, found := g[name]
	return found
}

func (g StaticGroup) InstanceOf(name string) Template { return g[name] }

// isNull reports whether v is nil, including a nil pointer held by an interface.
func isNull(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
