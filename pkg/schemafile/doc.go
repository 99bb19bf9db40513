// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package schemafile reads a tplcheck.Schema from a file.

A schema file maps template names to the list of arguments each template must
declare, in YAML:

	page: [title, body]
	footer: []

in TOML:

	page = ["title", "body"]
	footer = []

or, when the "hcl-schema" experiment is enabled, in HCL:

	page   = ["title", "body"]
	footer = []

Templates keep the order in which the file declares them. In YAML and HCL a
null argument list is kept as nil, which tplcheck reports as a failure.
*/
package schemafile
