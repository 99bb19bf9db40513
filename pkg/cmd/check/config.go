// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"fmt"

	"carvel.dev/tplcheck/pkg/option"
	"github.com/spf13/viper"
)

// DefaultConfigName is looked up (as .tplcheck.yaml, .tplcheck.toml, ...) in
// the working directory when no config file is given.
const DefaultConfigName = ".tplcheck"

// Config holds defaults for flags that were not given.
type Config struct {
	Files        []string               `mapstructure:"files"`
	Schema       string                 `mapstructure:"schema"`
	SchemaFormat string                 `mapstructure:"schema_format"`
	Options      map[string]interface{} `mapstructure:"options"`
}

// LoadConfig reads path or, when path is empty, an optional
// DefaultConfigName file from dir.
func LoadConfig(path, dir string) (Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return Config{}, fmt.Errorf("Reading config file: %s", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("Unmarshaling config file '%s': %s", v.ConfigFileUsed(), err)
	}
	return cfg, nil
}

// OptionSet builds options from the config file. Keys are sorted since
// config maps carry no order.
func (c Config) OptionSet() (*option.Set, error) {
	set := option.NewSet()
	for _, key := range sortedKeys(c.Options) {
		opt, err := option.New(key, c.Options[key], "from config file")
		if err != nil {
			return nil, fmt.Errorf("Config option: %s", err)
		}
		set.Add(opt)
	}
	return set, nil
}
