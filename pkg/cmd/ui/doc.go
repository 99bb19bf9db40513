// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui provides a thin abstraction over tplcheck's output: results go to
stdout, warnings and (with --debug) diagnostics go to stderr.
*/
package ui
