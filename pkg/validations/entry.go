// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package validations

import (
	"fmt"
)

// Code classifies an Entry.
type Code string

const (
	// NullInput marks a required collaborator that was not provided.
	NullInput Code = "NullInput"
	// MissingTemplate marks a mandatory template the group does not define.
	MissingTemplate Code = "MissingTemplate"
	// MissingArgument marks an expected argument a template does not declare.
	MissingArgument Code = "MissingArgument"
)

// Entry is a single validation failure.
type Entry struct {
	Code    Code
	Message string
	Args    []interface{}
}

// String formats Message with Args.
func (e Entry) String() string {
	if len(e.Args) == 0 {
		return e.Message
	}
	return fmt.Sprintf(e.Message, e.Args...)
}
