// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package check implements the "check" command: it loads a group of Starlark
templates and a schema file, validates the group against the schema and
reports every failure.
*/
package check
