// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package stargroup_test

import (
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/tplcheck/pkg/stargroup"
	"carvel.dev/tplcheck/pkg/tplcheck"
	"carvel.dev/tplcheck/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templatesSrc = `
def twoArgs(x, z):
    return "{} {}".format(x, z)

def noParams():
    return "static"

def _helper(a):
    return a

banner = "hello"
limit = 3
`

func TestLoadDefinesTemplatesFromGlobals(t *testing.T) {
	group := stargroup.NewGroup()
	require.NoError(t, group.Load("templates.star", []byte(templatesSrc)))

	assert.Equal(t, []string{"banner", "noParams", "twoArgs"}, group.Names())
	assert.False(t, group.IsDefined("_helper"))
	assert.False(t, group.IsDefined("limit"))

	assert.Equal(t, []string{"x", "z"}, group.InstanceOf("twoArgs").FormalArgumentNames())

	noParams := group.InstanceOf("noParams").FormalArgumentNames()
	assert.NotNil(t, noParams)
	assert.Empty(t, noParams)

	assert.Nil(t, group.InstanceOf("banner").FormalArgumentNames())
	assert.Nil(t, group.InstanceOf("undefined"))
}

func TestLoadRecordsDefinitionPositions(t *testing.T) {
	group := stargroup.NewGroup()
	require.NoError(t, group.Load("templates.star", []byte(templatesSrc)))

	fn := group.InstanceOf("twoArgs").(*stargroup.Template)
	assert.Equal(t, "templates.star:2", fn.Position().AsCompactString())

	str := group.InstanceOf("banner").(*stargroup.Template)
	assert.False(t, str.Position().IsKnown())
	assert.Equal(t, "templates.star", str.Position().GetFile())
}

func TestVariadicParametersAreNotFormalArguments(t *testing.T) {
	group := stargroup.NewGroup()
	require.NoError(t, group.Load("variadic.star", []byte(`
def mixed(a, b=1, *rest, **kw):
    return a

def onlyRest(*rest):
    return rest

def onlyKw(**kw):
    return kw
`)))

	assert.Equal(t, []string{"a", "b"}, group.InstanceOf("mixed").FormalArgumentNames())

	onlyRest := group.InstanceOf("onlyRest").FormalArgumentNames()
	assert.NotNil(t, onlyRest)
	assert.Empty(t, onlyRest)

	onlyKw := group.InstanceOf("onlyKw").FormalArgumentNames()
	assert.NotNil(t, onlyKw)
	assert.Empty(t, onlyKw)
}

func TestNilGroupAndTemplateAreEmpty(t *testing.T) {
	var group *stargroup.Group
	assert.False(t, group.IsDefined("a"))
	assert.Nil(t, group.InstanceOf("a"))
	assert.Nil(t, group.Names())

	var tpl *stargroup.Template
	assert.Equal(t, "", tpl.Name())
	assert.Nil(t, tpl.FormalArgumentNames())
	assert.Nil(t, tpl.Position())
}

func TestLoadedGroupValidatesAgainstSchema(t *testing.T) {
	group := stargroup.NewGroup()
	require.NoError(t, group.Load("templates.star", []byte(templatesSrc)))

	schema := tplcheck.NewSchema().
		Expect("twoArgs", "x", "y").
		Expect("banner", "who").
		Expect("missing")

	chk := tplcheck.NewGroupValidator().Validate(group, schema)

	var messages []string
	for _, entry := range chk.Entries() {
		messages = append(messages, entry.String())
	}
	assert.Equal(t, []string{
		`template does not define argument "y"`,
		`template does not define argument "who"`,
		`group does not define mandatory template "missing"`,
	}, messages)
}

func TestLaterSourcesRedefineTemplates(t *testing.T) {
	group := stargroup.NewGroup()
	require.NoError(t, group.Load("a.star", []byte("def tpl(a):\n    return a\n")))
	require.NoError(t, group.Load("b.star", []byte("def tpl(b, c):\n    return b\nother = 'x'\n")))

	assert.Equal(t, []string{"tpl", "other"}, group.Names())
	assert.Equal(t, []string{"b", "c"}, group.InstanceOf("tpl").FormalArgumentNames())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tpl.star")
	require.NoError(t, os.WriteFile(path, []byte("def page(title):\n    return title\n"), 0600))

	group := stargroup.NewGroup()
	require.NoError(t, group.LoadFile(path))
	assert.True(t, group.IsDefined("page"))

	err := group.LoadFile(filepath.Join(t.TempDir(), "absent.star"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Reading template file")
}

func TestLoadReportsEvaluationErrors(t *testing.T) {
	err := stargroup.NewGroup().Load("bad.star", []byte("x = 1 +\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Evaluating template file 'bad.star'")

	err = stargroup.NewGroup().Load("fail.star", []byte("x = undefined_name\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined_name")
}

func TestRequireVersion(t *testing.T) {
	defer func(orig string) { version.Version = orig }(version.Version)
	version.Version = "0.5.0"

	require.NoError(t, stargroup.NewGroup().Load("ok.star", []byte(`require_version("0.4.0")`)))

	err := stargroup.NewGroup().Load("new.star", []byte(`require_version("1.0.0")`))
	require.Error(t, err)
	assert.EqualError(t, err, "Evaluating template file 'new.star': require_version: "+
		"tplcheck version 0.5.0 does not meet the minimum required version 1.0.0")
}
