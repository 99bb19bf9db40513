// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filetests houses a test harness for validating template groups
against schemas and asserting the expected failures.
*/
package filetests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/tplcheck/pkg/schemafile"
	"carvel.dev/tplcheck/pkg/stargroup"
	"carvel.dev/tplcheck/pkg/tplcheck"
	"carvel.dev/tplcheck/pkg/validations"
	"carvel.dev/tplcheck/pkg/version"
	"github.com/k14s/difflib"
)

// SchemaSeparator divides the Starlark templates from the YAML schema.
const SchemaSeparator = "\n--- schema\n"

// EvaluateCheck is the processing desired from a test's source to its validation result.
type EvaluateCheck func(templatesSrc, schemaSrc string) (*validations.Check, *TestErr)

// FileTests contain a suite of test cases, each described in a separate file, verifying validation results.
//
// Test cases:
// - are found within the directory at "PathToTests"
// - conventionally have a .tpltest extension
// - top-half is the input; bottom-half is the expected output; divided by `+++` and a blank line.
// - the input holds Starlark templates, then SchemaSeparator, then a YAML schema.
//
// Types of expected output:
// - expected output starting with `ERR:` indicate that expected output is an error message
// - `OK` indicates that validation is expected to succeed
// - otherwise, one "[Code] message" line per expected failure
//
// For example:
//
//	def page(title):
//	    return title
//	--- schema
//	page: [title, body]
//	+++
//
//	[MissingArgument] template does not define argument "body"
type FileTests struct {
	PathToTests string
	EvalFunc    EvaluateCheck
}

// Run runs each tests: enumerates each file within FileTests.PathToTests; splits and evaluates using FileTests.EvalFunc.
func (f FileTests) Run(t *testing.T) {
	var files []string

	// fixtures calling require_version expect a fixed version
	origVersion := version.Version
	version.Version = "0.0.0"
	t.Cleanup(func() { version.Version = origVersion })

	err := filepath.Walk(f.PathToTests, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to enumerate filetests: %s", err)
	}

	if f.EvalFunc == nil {
		f.EvalFunc = f.DefaultEvalCheck
	}

	for _, filePath := range files {
		t.Run(filePath, func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatal(err)
			}

			pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)
			if len(pieces) != 2 {
				t.Fatalf("expected file %s to include +++ separator", filePath)
			}
			inputs := strings.SplitN(pieces[0]+"\n", SchemaSeparator, 2)
			if len(inputs) != 2 {
				t.Fatalf("expected file %s to include %q separator", filePath, strings.TrimSpace(SchemaSeparator))
			}
			expectedStr := TrimTrailingMultilineWhitespace(pieces[1])

			chk, testErr := f.EvalFunc(inputs[0], inputs[1])

			switch {
			case strings.HasPrefix(expectedStr, "ERR:"):
				if testErr == nil {
					err = fmt.Errorf("expected eval error, but did not receive it")
				} else {
					resultStr := TrimTrailingMultilineWhitespace(testErr.UserErr().Error())
					expectedStr = strings.TrimPrefix(expectedStr, "ERR:")
					expectedStr = strings.TrimPrefix(expectedStr, " ")
					err = f.expectEquals(resultStr, expectedStr)
				}
			default:
				if testErr == nil {
					err = f.expectEquals(AsString(chk), expectedStr)
				} else {
					err = testErr.TestErr()
				}
			}

			if err != nil {
				t.Fatalf("%s", err)
			}
		})
	}
}

// AsString renders chk as "OK", or as one "[Code] message" line per failure.
func AsString(chk *validations.Check) string {
	if chk.IsValid() {
		return "OK"
	}
	var lines []string
	for _, entry := range chk.Entries() {
		lines = append(lines, fmt.Sprintf("[%s] %s", entry.Code, entry.String()))
	}
	return strings.Join(lines, "\n")
}

// TestErr captures an error result from a single test.
type TestErr struct {
	realErr error
	testErr error
}

// NewTestErr creates a new TestErr
func NewTestErr(realErr, testErr error) *TestErr {
	return &TestErr{realErr, testErr}
}

// UserErr yields the error returned to the user
func (e TestErr) UserErr() error { return e.realErr }

// TestErr yields the error wrapped with helpful test context
func (e TestErr) TestErr() error { return e.testErr }

func (f FileTests) expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		return fmt.Errorf("not equal; diff expected...result:\n%s",
			difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n")))
	}
	return nil
}

// DefaultEvalCheck loads templatesSrc as a Starlark template group and
// schemaSrc as a YAML schema, then validates the former against the latter.
func (f FileTests) DefaultEvalCheck(templatesSrc, schemaSrc string) (*validations.Check, *TestErr) {
	group := stargroup.NewGroup()
	err := group.Load("templates.star", []byte(templatesSrc))
	if err != nil {
		return nil, NewTestErr(err, fmt.Errorf("template load error: %v", err))
	}

	schema, err := schemafile.Parse("schema.yml", []byte(schemaSrc), schemafile.FormatYAML)
	if err != nil {
		return nil, NewTestErr(err, fmt.Errorf("schema parse error: %v", err))
	}

	return tplcheck.NewGroupValidator().Validate(group, schema), nil
}

// TrimTrailingMultilineWhitespace returns a string with trailing whitespace trimmed from every line as well
// as trimmed trailing empty lines
func TrimTrailingMultilineWhitespace(s string) string {
	var trimmedLines []string
	for _, line := range strings.Split(s, "\n") {
		trimmedLine := strings.TrimRight(line, "\t ")
		trimmedLines = append(trimmedLines, trimmedLine)
	}
	multiline := strings.Join(trimmedLines, "\n")
	return strings.TrimRight(multiline, "\n")
}
