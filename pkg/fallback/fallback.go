// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package fallback chains fallible functions: each is tried in order and the
// first one to succeed wins.
package fallback

import (
	"errors"
)

// First returns a function trying fns in order, returning the result of the
// first one that reports success. When none does, returns (zero, false).
func First[In, Out any](fns ...func(In) (Out, bool)) func(In) (Out, bool) {
	return func(in In) (Out, bool) {
		for _, fn := range fns {
			if out, ok := fn(in); ok {
				return out, true
			}
		}
		var zero Out
		return zero, false
	}
}

// FirstErr is like First for functions that report failure with an error.
// When every function fails, all of their errors are returned joined.
func FirstErr[In, Out any](fns ...func(In) (Out, error)) func(In) (Out, error) {
	return func(in In) (Out, error) {
		var errs []error
		for _, fn := range fns {
			out, err := fn(in)
			if err == nil {
				return out, nil
			}
			errs = append(errs, err)
		}
		var zero Out
		if len(errs) == 0 {
			return zero, errors.New("no fallback functions provided")
		}
		return zero, errors.Join(errs...)
	}
}
