// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of tplcheck.

Packages are kept small and are dependent on each other only to the degree
required. In the inventory, below, individual packages are named alongside
their coupling with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

tplcheck is built as a command-line tool:

	./cmd/tplcheck

# Commands

There are two commands: "check" validates template files against a schema
and "version" reports the tool version.

	(1) => pkg/cmd => (4)
	(1) => pkg/cmd/check => (7)
	(2) => pkg/cmd/ui => (0)

# Validation

The heart of tplcheck. A group of named templates, each declaring formal
arguments, is checked against a schema of mandatory templates and their
expected arguments. Every violation is recorded; nothing fails fast.

	(4) => pkg/tplcheck => (2)
	(3) => pkg/validations => (0)

# Loading

Templates are loaded from Starlark sources (public functions and string
globals become templates). Schemas are loaded from YAML, TOML or HCL.

	(2) => pkg/stargroup => (4)
	(2) => pkg/schemafile => (2)
	(1) => pkg/files => (0)
	(1) => pkg/filepos => (0)

# Options

Typed, described values that shape reporting.

	(1) => pkg/option => (3)
	(1) => pkg/tagged => (0)
	(1) => pkg/fallback => (0)

# Utilities

Finally, there is a collection of supporting features.

	(3) => pkg/orderedmap => (0)
	(3) => pkg/version => (0)
	(2) => pkg/experiments => (0)
*/
package pkg
