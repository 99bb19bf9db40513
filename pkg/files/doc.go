// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading template sources
from local files, directories, standard input and HTTP URLs.

This allows the rest of tplcheck to load templates without becoming entangled
in the details of where their bytes come from.
*/
package files
