// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schemafile

import (
	"fmt"

	"carvel.dev/tplcheck/pkg/tplcheck"
	"gopkg.in/yaml.v3"
)

func parseYAML(src []byte) (*tplcheck.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, err
	}

	schema := tplcheck.NewSchema()
	if len(doc.Content) == 0 {
		return schema, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a map of template names to argument lists", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return nil, fmt.Errorf("line %d: template name: %s", keyNode.Line, err)
		}

		switch {
		case valueNode.Kind == yaml.ScalarNode && valueNode.Tag == "!!null":
			schema.Set(name, nil)
		case valueNode.Kind == yaml.SequenceNode:
			args := []string{}
			if err := valueNode.Decode(&args); err != nil {
				return nil, fmt.Errorf("line %d: arguments of template %q: %s", valueNode.Line, name, err)
			}
			schema.Set(name, args)
		default:
			return nil, fmt.Errorf("line %d: expected arguments of template %q to be a list", valueNode.Line, name)
		}
	}
	return schema, nil
}
