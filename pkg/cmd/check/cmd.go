// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"fmt"
	"os"
	"time"

	"carvel.dev/tplcheck/pkg/cmd/ui"
	"carvel.dev/tplcheck/pkg/experiments"
	"carvel.dev/tplcheck/pkg/files"
	"carvel.dev/tplcheck/pkg/schemafile"
	"carvel.dev/tplcheck/pkg/stargroup"
	"carvel.dev/tplcheck/pkg/tplcheck"
	"github.com/spf13/cobra"
)

type CheckOptions struct {
	Debug      bool
	ConfigFile string
	Output     string

	TemplateFilesFlags TemplateFilesFlags
	SchemaFlags        SchemaFlags
	OptionFlags        OptionFlags
}

func NewOptions() *CheckOptions {
	return &CheckOptions{Output: OutputText}
}

func NewCmd(o *CheckOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check",
		Aliases: []string{"c"},
		Short:   "Check that templates declare what a schema expects",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.Flags().StringVar(&o.ConfigFile, "config", "", "Config file providing defaults (by default, "+DefaultConfigName+".* in the working directory, if present)")
	cmd.Flags().StringVarP(&o.Output, "output", "o", OutputText, "Output format (text, json)")
	o.TemplateFilesFlags.Set(cmd)
	o.SchemaFlags.Set(cmd)
	o.OptionFlags.Set(cmd)
	return cmd
}

func (o *CheckOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug))
}

// RunWithUI checks templates against the schema, reporting through ui.
// Returns an error when inputs cannot be loaded or validation fails.
func (o *CheckOptions) RunWithUI(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(o.ConfigFile, wd)
	if err != nil {
		return err
	}
	o.applyConfig(cfg)

	opts, err := cfg.OptionSet()
	if err != nil {
		return err
	}
	err = o.OptionFlags.AddTo(opts)
	if err != nil {
		return err
	}
	for _, opt := range opts.Options() {
		ui.Debugf("option %s\n", opt)
	}
	for _, name := range experiments.GetUnknown() {
		ui.Warnf("Warning: Unknown experiment %q named in %s\n", name, experiments.Env)
	}

	if len(o.TemplateFilesFlags.Files) == 0 {
		return fmt.Errorf("Expected at least one template file (hint: use -f)")
	}
	if o.SchemaFlags.File == "" {
		return fmt.Errorf("Expected schema file (hint: use --schema)")
	}

	format, err := o.SchemaFlags.format()
	if err != nil {
		return err
	}

	templateFiles, err := files.NewFiles(o.TemplateFilesFlags.Files)
	if err != nil {
		return err
	}

	group := stargroup.NewGroup()
	for _, file := range templateFiles {
		ui.Debugf("loading templates from %s\n", file.Description())

		src, err := file.Bytes()
		if err != nil {
			return fmt.Errorf("Reading %s: %s", file.Description(), err)
		}

		err = group.Load(file.RelativePath(), src)
		if err != nil {
			return err
		}
	}
	ui.Debugf("templates defined: %v\n", group.Names())
	for _, name := range group.Names() {
		tpl := group.InstanceOf(name).(*stargroup.Template)
		ui.Debugf("template %s defined at %s\n", name, tpl.Position().AsString())
	}

	schema, err := schemafile.Load(o.SchemaFlags.File, format)
	if err != nil {
		return err
	}
	ui.Debugf("mandatory templates: %v\n", schema.Names())
	if _, found := schema.Get(""); found {
		ui.Warnf("Warning: Schema entry with an empty template name is ignored\n")
	}

	chk := tplcheck.NewGroupValidator().Validate(group, schema)

	err = newReporter(ui, opts).Report(chk, o.Output, schema.Len())
	if err != nil {
		return err
	}

	if !chk.IsValid() {
		return fmt.Errorf("Validation failed: %d error(s)", chk.Len())
	}
	return nil
}

// applyConfig fills in flags that were not given from cfg.
func (o *CheckOptions) applyConfig(cfg Config) {
	if len(o.TemplateFilesFlags.Files) == 0 {
		o.TemplateFilesFlags.Files = cfg.Files
	}
	if o.SchemaFlags.File == "" {
		o.SchemaFlags.File = cfg.Schema
	}
	if o.SchemaFlags.Format == "" {
		o.SchemaFlags.Format = cfg.SchemaFormat
	}
}
