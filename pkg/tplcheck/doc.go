// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package tplcheck verifies that a group of templates provides what an expected
Schema asks for.

A Schema names mandatory templates and, for each, the formal arguments it must
declare. GroupValidator checks that every mandatory template is defined by the
TemplateGroup; ArgumentValidator checks that a template declares every
expected argument. Checking is one-directional: templates and arguments that
the Schema does not mention are never failures.

Neither validator stops at the first failure. Each Validate call returns a
fresh validations.Check holding every failure found, in Schema order.
Validators only read the group and its templates.
*/
package tplcheck
