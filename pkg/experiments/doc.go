// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package experiments gates pre-GA functionality (such as HCL schemas) behind
names listed in the TPLCHECKEXPERIMENTS environment variable.

Settings are read once, when first needed; they are not meant to be toggled
while tplcheck runs.
*/
package experiments
