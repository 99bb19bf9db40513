// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schemafile

import (
	"fmt"

	"carvel.dev/tplcheck/pkg/tplcheck"
	"github.com/BurntSushi/toml"
)

func parseTOML(src []byte) (*tplcheck.Schema, error) {
	var decoded map[string]interface{}
	md, err := toml.Decode(string(src), &decoded)
	if err != nil {
		return nil, err
	}

	schema := tplcheck.NewSchema()

	// MetaData.Keys() is in document order, unlike the decoded map
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]

		items, ok := decoded[name].([]interface{})
		if !ok {
			return nil, fmt.Errorf("expected arguments of template %q to be an array, but was %s", name, md.Type(name))
		}

		args := []string{}
		for _, item := range items {
			arg, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected arguments of template %q to be strings, but found %T", name, item)
			}
			args = append(args, arg)
		}
		schema.Set(name, args)
	}
	return schema, nil
}
