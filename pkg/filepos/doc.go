// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file)
and line number within that source.

Positions let reports point at where a template was defined. A Position
whose line is not known (e.g. a template bound to a plain string value)
still names its file.
*/
package filepos
