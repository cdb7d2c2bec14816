// Copyright 2025 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pborman/getopt"
	"go.yaml.in/yaml/v3"
)

// A config holds the settings read from a --config file.  The keys are the
// long names of the corresponding flags.
type config struct {
	Path   []string `yaml:"path"`
	Format string   `yaml:"format"`
	Debug  bool     `yaml:"debug"`

	TreeLineLength      *int    `yaml:"tree_line_length"`
	TreeDepth           *int    `yaml:"tree_depth"`
	TreeGroupings       *bool   `yaml:"tree_groupings"`
	TreeNoLeafrefTarget *bool   `yaml:"tree_no_leafref_target"`
	TreePath            *string `yaml:"tree_path"`
}

// A setting ties a flag to the function copying its value out of a config.
type setting struct {
	opt getopt.Option
	set func(*config)
}

// settings lists every flag that can be set from the config file.
var settings []setting

func configure(o getopt.Option, set func(*config)) {
	settings = append(settings, setting{opt: o, set: set})
}

// loadConfig reads the YAML file at path.  Unknown keys are an error.  An
// empty file is an empty config.
func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(path, data)
}

func parseConfig(name string, data []byte) (*config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var c config
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return &c, nil
}

// apply copies c into the flags of ss that were not given on the command
// line.
func (c *config) apply(ss []setting) {
	for _, s := range ss {
		if !s.opt.Seen() {
			s.set(c)
		}
	}
}
