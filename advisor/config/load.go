// Copyright (C) 2026 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/vkadvisor/core/fault"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// file is the on-disk form of Settings.
//
//	vendors = ["arm"]
//	suppress = ["BestPractices-vkCreateInstance-specialuse-extension"]
//
//	[thresholds]
//	max_memory_objects = 100
type file struct {
	Vendors    []string   `toml:"vendors" yaml:"vendors"`
	Suppress   []string   `toml:"suppress" yaml:"suppress"`
	Thresholds Thresholds `toml:"thresholds" yaml:"thresholds"`
}

// Load reads the settings file at path. The format is chosen by extension:
// .toml for TOML, .yaml or .yml for YAML. Thresholds absent from the file keep
// their defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "Reading settings %v", path)
	}
	s, err := Parse(Format(filepath.Ext(path)), data)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "Loading settings %v", path)
	}
	return s, nil
}

// Format is a settings file encoding.
type Format string

const (
	TOML Format = ".toml"
	YAML Format = ".yaml"
)

// Parse decodes settings encoded in the given format.
func Parse(format Format, data []byte) (Settings, error) {
	f := file{Thresholds: DefaultThresholds()}
	switch Format(strings.ToLower(string(format))) {
	case TOML:
		d := toml.NewDecoder(bytes.NewReader(data))
		d.DisallowUnknownFields()
		if err := d.Decode(&f); err != nil {
			return Settings{}, errors.Wrap(err, "Decoding TOML")
		}
	case YAML, ".yml":
		d := yaml.NewDecoder(bytes.NewReader(data))
		d.KnownFields(true)
		// An empty document decodes to io.EOF and leaves the defaults.
		if err := d.Decode(&f); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return Settings{}, errors.Wrap(err, "Decoding YAML")
		}
	default:
		return Settings{}, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}

	errs := fault.List{}
	vendors, err := ParseVendors(f.Vendors)
	errs.Collect(err)
	errs.Collect(f.Thresholds.Validate())
	if err := errs.Err(); err != nil {
		return Settings{}, err
	}
	return Settings{Vendors: vendors, Thresholds: f.Thresholds, Suppress: f.Suppress}, nil
}
