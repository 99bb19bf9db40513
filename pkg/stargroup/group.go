// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package stargroup

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"carvel.dev/tplcheck/pkg/filepos"
	"carvel.dev/tplcheck/pkg/orderedmap"
	"carvel.dev/tplcheck/pkg/tplcheck"
	"carvel.dev/tplcheck/pkg/version"
	"github.com/k14s/starlark-go/starlark"
)

// Template is a template defined by a Starlark global.
type Template struct {
	name     string
	args     []string
	position *filepos.Position
}

var _ tplcheck.Template = &Template{}

func (t *Template) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

func (t *Template) FormalArgumentNames() []string {
	if t == nil {
		return nil
	}
	return t.args
}

// Position describes where the template was defined.
func (t *Template) Position() *filepos.Position {
	if t == nil {
		return nil
	}
	return t.position
}

// Group holds templates from one or more Starlark sources. Later sources
// redefine templates of earlier ones.
type Group struct {
	templates *orderedmap.Map[string, *Template]
}

var _ tplcheck.TemplateGroup = &Group{}

func NewGroup() *Group {
	return &Group{templates: orderedmap.NewMap[string, *Template]()}
}

func (g *Group) IsDefined(name string) bool {
	if g == nil {
		return false
	}
	return g.templates.Has(name)
}

func (g *Group) InstanceOf(name string) tplcheck.Template {
	if g == nil {
		return nil
	}
	tpl, found := g.templates.Get(name)
	if !found || tpl == nil {
		return nil
	}
	return tpl
}

// Names returns template names in definition order.
func (g *Group) Names() []string {
	if g == nil {
		return nil
	}
	return g.templates.Keys()
}

func (g *Group) LoadFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Reading template file '%s': %s", path, err)
	}
	return g.Load(path, src)
}

// Load executes src and registers the templates it defines.
func (g *Group) Load(filename string, src []byte) error {
	thread := &starlark.Thread{Name: "group=" + filename}

	globals, err := starlark.ExecFile(thread, filename, src, predeclared)
	if err != nil {
		if versionErr, ok := thread.Local(versionErrKey).(error); ok {
			return fmt.Errorf("Evaluating template file '%s': %s", filename, versionErr)
		}
		if evalErr, ok := err.(*starlark.EvalError); ok {
			return fmt.Errorf("Evaluating template file '%s': %s", filename, evalErr.Backtrace())
		}
		return fmt.Errorf("Evaluating template file '%s': %s", filename, err)
	}

	for _, name := range sortedPublicNames(globals) {
		switch typed := globals[name].(type) {
		case *starlark.Function:
			// *args and **kwargs come last and are not named arguments
			named := typed.NumParams()
			if typed.HasVarargs() {
				named--
			}
			if typed.HasKwargs() {
				named--
			}
			args := []string{}
			for i := 0; i < named; i++ {
				paramName, _ := typed.Param(i)
				args = append(args, paramName)
			}
			pos := filepos.NewUnknownPositionInFile(filename)
			if line := int(typed.Position().Line); line > 0 {
				pos = filepos.NewPositionInFile(line, filename)
			}
			g.templates.Set(name, &Template{name: name, args: args, position: pos})
		case starlark.String:
			g.templates.Set(name, &Template{name: name, position: filepos.NewUnknownPositionInFile(filename)})
		}
	}
	return nil
}

// sortedPublicNames orders globals by name; StringDict carries no
// definition order.
func sortedPublicNames(globals starlark.StringDict) []string {
	var names []string
	for name := range globals {
		if !strings.HasPrefix(name, "_") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

var predeclared = starlark.StringDict{
	"require_version": starlark.NewBuiltin("require_version", requireVersion),
}

// versionErrKey holds the require_version failure of a thread so it can be
// reported without the Starlark backtrace.
const versionErrKey = "tplcheck.require_version.err"

func requireVersion(thread *starlark.Thread, f *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var minimum string
	if err := starlark.UnpackPositionalArgs(f.Name(), args, kwargs, 1, &minimum); err != nil {
		return starlark.None, err
	}
	if err := version.RequireAtLeast(minimum); err != nil {
		err = fmt.Errorf("%s: %s", f.Name(), err)
		thread.SetLocal(versionErrKey, err)
		return starlark.None, err
	}
	return starlark.None, nil
}
