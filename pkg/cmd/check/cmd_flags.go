// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"fmt"

	"carvel.dev/tplcheck/pkg/option"
	"carvel.dev/tplcheck/pkg/schemafile"
	"github.com/spf13/cobra"
)

// Recognized option keys.
const (
	OptionMaxErrors = "max-errors"
	OptionColor     = "color"
)

type TemplateFilesFlags struct {
	Files []string
}

func (s *TemplateFilesFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&s.Files, "file", "f", nil, "Starlark template file, directory of .star files, HTTP URL or - for stdin (can be specified multiple times)")
}

type SchemaFlags struct {
	File   string
	Format string
}

func (s *SchemaFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.File, "schema", "s", "", "Schema file listing mandatory templates and their arguments")
	cmd.Flags().StringVar(&s.Format, "schema-format", "", "Schema file format (yaml, toml, hcl); derived from file extension by default")
}

func (s *SchemaFlags) format() (schemafile.Format, error) {
	switch schemafile.Format(s.Format) {
	case "", schemafile.FormatYAML, schemafile.FormatTOML, schemafile.FormatHCL:
		return schemafile.Format(s.Format), nil
	default:
		return "", fmt.Errorf("Unknown schema format %q (expected yaml, toml or hcl)", s.Format)
	}
}

type OptionFlags struct {
	KVs []string
}

func (s *OptionFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&s.KVs, "option", nil,
		fmt.Sprintf("Set option in format 'key=value' (eg %s=10, %s=true) (can be specified multiple times)", OptionMaxErrors, OptionColor))
}

// AddTo adds flag options to set, replacing same-named ones in place.
func (s *OptionFlags) AddTo(set *option.Set) error {
	for _, kv := range s.KVs {
		opt, err := option.ParseKeyValue(kv, "from --option flag")
		if err != nil {
			return err
		}
		set.Add(opt)
	}
	return nil
}
