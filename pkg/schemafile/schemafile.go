// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schemafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"carvel.dev/tplcheck/pkg/experiments"
	"carvel.dev/tplcheck/pkg/tplcheck"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// FormatFromPath picks a Format based on the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("Unable to determine schema format of '%s' (hint: use .yml, .toml or .hcl extension, or specify format explicitly)", path)
	}
}

// Load reads the schema at path. An empty format is derived from path.
func Load(path string, format Format) (*tplcheck.Schema, error) {
	if format == "" {
		var err error
		format, err = FormatFromPath(path)
		if err != nil {
			return nil, err
		}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Reading schema file '%s': %s", path, err)
	}
	return Parse(path, src, format)
}

// Parse decodes src, in the given format, into a Schema.
func Parse(filename string, src []byte, format Format) (*tplcheck.Schema, error) {
	var (
		schema *tplcheck.Schema
		err    error
	)

	switch format {
	case FormatYAML:
		schema, err = parseYAML(src)
	case FormatTOML:
		schema, err = parseTOML(src)
	case FormatHCL:
		if !experiments.IsHCLSchemaEnabled() {
			return nil, fmt.Errorf("HCL schema '%s' requires the %q experiment (hint: set %s=%s)",
				filename, experiments.HCLSchema, experiments.Env, experiments.HCLSchema)
		}
		schema, err = parseHCL(filename, src)
	default:
		return nil, fmt.Errorf("Unknown schema format %q", format)
	}

	if err != nil {
		return nil, fmt.Errorf("Parsing schema file '%s': %s", filename, err)
	}
	return schema, nil
}
