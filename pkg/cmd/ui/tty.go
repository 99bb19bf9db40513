// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type TTY struct {
	debug  bool
	stdout io.Writer
	stderr io.Writer

	failColor *color.Color
	warnColor *color.Color
}

var _ UI = &TTY{}

func NewTTY(debug bool) *TTY {
	return NewCustomWriterTTY(debug, nil, nil)
}

// NewCustomWriterTTY writes to the given stdout/stderr (os.Stdout/os.Stderr when nil).
// Color starts disabled.
func NewCustomWriterTTY(debug bool, stdout, stderr io.Writer) *TTY {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	t := &TTY{
		debug:     debug,
		stdout:    stdout,
		stderr:    stderr,
		failColor: color.New(color.FgRed),
		warnColor: color.New(color.FgYellow),
	}
	t.EnableColor(false)
	return t
}

func (t *TTY) EnableColor(enabled bool) {
	for _, c := range []*color.Color{t.failColor, t.warnColor} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func (t *TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.stdout, str, args...)
}

func (t *TTY) Failf(str string, args ...interface{}) {
	fmt.Fprint(t.stdout, t.failColor.Sprintf(str, args...))
}

func (t *TTY) Warnf(str string, args ...interface{}) {
	fmt.Fprint(t.stderr, t.warnColor.Sprintf(str, args...))
}

func (t *TTY) Debugf(str string, args ...interface{}) {
	if t.debug {
		fmt.Fprintf(t.stderr, str, args...)
	}
}
