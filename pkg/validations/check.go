// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package validations

import (
	"fmt"
	"strings"
)

// Check is the ordered, append-only result of a validation run.
type Check struct {
	entries []Entry
}

func NewCheck() *Check { return &Check{} }

// Add records a failure; message is formatted with args only on presentation.
func (c *Check) Add(code Code, message string, args ...interface{}) {
	c.entries = append(c.entries, Entry{Code: code, Message: message, Args: args})
}

// Merge appends all of other's entries after this Check's own.
func (c *Check) Merge(other *Check) {
	if other == nil {
		return
	}
	c.entries = append(c.entries, other.entries...)
}

// IsValid indicates whether no failures were recorded.
func (c *Check) IsValid() bool { return c.Len() == 0 }

func (c *Check) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of the recorded failures, in recording order.
func (c *Check) Entries() []Entry {
	if c.Len() == 0 {
		return nil
	}
	return append([]Entry{}, c.entries...)
}

// Error renders every failure, one per line.
func (c *Check) Error() string {
	if c.IsValid() {
		return ""
	}
	var lines []string
	for _, entry := range c.entries {
		lines = append(lines, "- "+entry.String())
	}
	return fmt.Sprintf("%d validation error(s):\n%s", len(c.entries), strings.Join(lines, "\n"))
}

// AsError returns nil when valid, otherwise the Check itself as an error.
func (c *Check) AsError() error {
	if c.IsValid() {
		return nil
	}
	return c
}
