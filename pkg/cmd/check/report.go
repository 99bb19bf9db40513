// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"encoding/json"
	"fmt"
	"sort"

	"carvel.dev/tplcheck/pkg/cmd/ui"
	"carvel.dev/tplcheck/pkg/option"
	"carvel.dev/tplcheck/pkg/validations"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type reporter struct {
	ui        ui.UI
	maxErrors int
}

func newReporter(ui ui.UI, opts *option.Set) reporter {
	ui.EnableColor(option.ValueOr(opts, OptionColor, false))
	return reporter{ui: ui, maxErrors: option.ValueOr(opts, OptionMaxErrors, 0)}
}

func (r reporter) Report(chk *validations.Check, output string, templatesChecked int) error {
	switch output {
	case "", OutputText:
		r.text(chk, templatesChecked)
		return nil
	case OutputJSON:
		return r.json(chk)
	default:
		return fmt.Errorf("Unknown output format %q (expected %s or %s)", output, OutputText, OutputJSON)
	}
}

func (r reporter) text(chk *validations.Check, templatesChecked int) {
	if chk.IsValid() {
		r.ui.Printf("Succeeded: %d mandatory template(s) checked\n", templatesChecked)
		return
	}

	entries := chk.Entries()
	shown := entries
	if r.maxErrors > 0 && len(entries) > r.maxErrors {
		shown = entries[:r.maxErrors]
	}

	for _, entry := range shown {
		r.ui.Failf("- [%s] %s\n", entry.Code, entry.String())
	}
	if hidden := len(entries) - len(shown); hidden > 0 {
		r.ui.Printf("... and %d more (hint: raise or unset option '%s')\n", hidden, OptionMaxErrors)
	}
}

type jsonEntry struct {
	Code    validations.Code `json:"code"`
	Message string           `json:"message"`
	Args    []interface{}    `json:"args"`
	Text    string           `json:"text"`
}

type jsonResult struct {
	Valid  bool        `json:"valid"`
	Errors []jsonEntry `json:"errors"`
}

func (r reporter) json(chk *validations.Check) error {
	result := jsonResult{Valid: chk.IsValid(), Errors: []jsonEntry{}}
	for _, entry := range chk.Entries() {
		args := entry.Args
		if args == nil {
			args = []interface{}{}
		}
		result.Errors = append(result.Errors, jsonEntry{entry.Code, entry.Message, args, entry.String()})
	}

	bs, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("Marshaling JSON result: %s", err)
	}
	r.ui.Printf("%s\n", bs)
	return nil
}

func sortedKeys(m map[string]interface{}) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
