// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"reflect"

	"carvel.dev/tplcheck/pkg/orderedmap"
)

// Set is an insertion-ordered collection of Options, unique by key.
// The zero value is ready to use. It is not safe for concurrent mutation.
type Set struct {
	options orderedmap.Map[string, *Option]
}

func NewSet(opts ...*Option) *Set {
	s := &Set{}
	for _, opt := range opts {
		s.Add(opt)
	}
	return s
}

// Add inserts opt. An Option with the same key is replaced in place,
// keeping the position of the original entry.
func (s *Set) Add(opt *Option) {
	if opt == nil {
		return
	}
	s.options.Set(opt.Key(), opt)
}

func (s *Set) Get(key string) (*Option, bool) {
	if s == nil {
		return nil, false
	}
	return s.options.Get(key)
}

// Lookup finds the entry that is the same option as opt.
func (s *Set) Lookup(opt *Option) (*Option, bool) {
	if opt == nil {
		return nil, false
	}
	return s.Get(opt.Key())
}

func (s *Set) HasKey(key string) bool {
	_, found := s.Get(key)
	return found
}

func (s *Set) Options() []*Option {
	if s == nil {
		return nil
	}
	return s.options.Values()
}

func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	return s.options.Keys()
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.options.Len()
}

// ValueOr returns the value of the option named key as a T.
//
// When the option is absent, or its value cannot be represented as a T
// without loss, def is returned. Integer and Double values convert into each
// other. String, Character and CharacterArray values convert into each other
// in both directions; a Character only takes text of exactly one character.
// ValueOr never panics on a kind mismatch.
func ValueOr[T any](s *Set, key string, def T) T {
	opt, found := s.Get(key)
	if !found {
		return def
	}
	if typed, ok := opt.Value().(T); ok {
		return typed
	}

	defKind, err := KindOf(def)
	if err != nil {
		return def
	}

	switch {
	case defKind.isNumeric() && opt.Kind().isNumeric():
		if converted, ok := convertLossless(opt.Value(), def); ok {
			return converted
		}
	case defKind.isText() && opt.Kind().isText():
		if converted, ok := convertText(opt.Value(), defKind, def); ok {
			return converted
		}
	}
	return def
}

func convertText[T any](value interface{}, to Kind, def T) (T, bool) {
	var runes []rune
	switch typed := value.(type) {
	case string:
		runes = []rune(typed)
	case rune:
		runes = []rune{typed}
	case []rune:
		runes = typed
	default:
		return def, false
	}

	var converted interface{}
	switch to {
	case String:
		converted = string(runes)
	case CharacterArray:
		converted = append([]rune(nil), runes...)
	case Character:
		if len(runes) != 1 {
			return def, false
		}
		converted = runes[0]
	default:
		return def, false
	}

	typed, ok := converted.(T)
	if !ok {
		return def, false
	}
	return typed, true
}

func convertLossless[T any](value interface{}, def T) (T, bool) {
	from := reflect.ValueOf(value)
	to := reflect.TypeOf(def)
	if !from.CanConvert(to) {
		return def, false
	}
	converted := from.Convert(to)
	if converted.Convert(from.Type()).Interface() != value {
		return def, false
	}
	typed, ok := converted.Interface().(T)
	if !ok {
		return def, false
	}
	return typed, true
}
