// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schemafile

import (
	"fmt"
	"sort"

	"carvel.dev/tplcheck/pkg/tplcheck"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

func parseHCL(filename string, src []byte) (*tplcheck.Schema, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	// hcl.Attributes is a map; source offsets restore declaration order
	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	schema := tplcheck.NewSchema()
	for _, attr := range ordered {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}

		if val.IsNull() {
			schema.Set(attr.Name, nil)
			continue
		}

		ty := val.Type()
		if !ty.IsTupleType() && !ty.IsListType() {
			return nil, fmt.Errorf("%s: expected arguments of template %q to be a list, but was %s",
				attr.Range.String(), attr.Name, ty.FriendlyName())
		}

		args := []string{}
		for _, item := range val.AsValueSlice() {
			if item.IsNull() || item.Type() != cty.String {
				return nil, fmt.Errorf("%s: expected arguments of template %q to be strings, but found %s",
					attr.Range.String(), attr.Name, item.Type().FriendlyName())
			}
			args = append(args, item.AsString())
		}
		schema.Set(attr.Name, args)
	}
	return schema, nil
}
