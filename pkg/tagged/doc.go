// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package tagged pairs runtime values with a human-readable description.

Wrapping is idempotent: handing an already tagged value to Wrap (or As)
returns that same wrapper rather than nesting a new one around it.
*/
package tagged
