// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package validations collects validation failures.

A Check accumulates every failure found during one validation run as an
Entry: a message template plus its positional arguments, formatted only when
presented. A run is successful exactly when its Check is empty.
*/
package validations
