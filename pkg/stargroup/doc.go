// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package stargroup loads a tplcheck.TemplateGroup from Starlark sources.

Every public global of a source file becomes a template of the same name:

	# a template declaring formal arguments "x" and "y"
	def twoArgs(x, y):
	    return "{} {}".format(x, y)

	# a template declaring no formal arguments at all
	banner = "hello"

Named parameters, including those with defaults, are the formal arguments;
*args and **kwargs are not.

Globals starting with "_" and globals that are neither functions nor strings
are not templates. Sources may call require_version("<min>") to refuse to load
with an older tplcheck.
*/
package stargroup
