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

// Package config holds the settings that steer the advisory rules: which
// vendor specific rule sets are active, the numeric thresholds the rules
// compare against and the diagnostic codes that are never emitted.
package config

import (
	"sort"
	"strings"

	"github.com/google/vkadvisor/core/fault"
	"github.com/pkg/errors"
)

const (
	// ErrUnknownVendor is returned for a vendor name with no rule set.
	ErrUnknownVendor = fault.Const("Unknown vendor")
	// ErrBadThreshold is returned for a threshold outside its valid range.
	ErrBadThreshold = fault.Const("Invalid threshold")
	// ErrUnsupportedFormat is returned for a settings file of unknown type.
	ErrUnsupportedFormat = fault.Const("Unsupported settings format")
)

// Vendor is a bitset of vendor specific rule sets.
type Vendor uint32

const (
	// VendorArm enables heuristics for Arm Mali GPUs.
	VendorArm Vendor = 1 << iota

	// VendorAll has every vendor rule set enabled.
	VendorAll = VendorArm
)

var vendorNames = map[string]Vendor{
	"arm": VendorArm,
	"all": VendorAll,
}

// Has returns true if every bit of o is set in v.
func (v Vendor) Has(o Vendor) bool { return o != 0 && v&o == o }

func (v Vendor) String() string {
	if v == 0 {
		return "none"
	}
	names := []string{}
	for n, b := range vendorNames {
		if b != VendorAll && v.Has(b) {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// ParseVendors returns the vendor set named by names.
func ParseVendors(names []string) (Vendor, error) {
	v := Vendor(0)
	for _, n := range names {
		b, ok := vendorNames[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return 0, errors.Wrapf(ErrUnknownVendor, "%q", n)
		}
		v |= b
	}
	return v, nil
}

// Thresholds are the numeric limits the rules compare against.
type Thresholds struct {
	MinDeviceAllocationSize     uint64  `toml:"min_device_allocation_size" yaml:"min_device_allocation_size"`
	MinDedicatedAllocationSize  uint64  `toml:"min_dedicated_allocation_size" yaml:"min_dedicated_allocation_size"`
	MaxMemoryObjects            uint32  `toml:"max_memory_objects" yaml:"max_memory_objects"`
	MaxInstancedVertexBuffers   uint32  `toml:"max_instanced_vertex_buffers" yaml:"max_instanced_vertex_buffers"`
	SmallIndexedDrawIndices     uint32  `toml:"small_indexed_draw_indices" yaml:"small_indexed_draw_indices"`
	MaxSmallIndexedDraws        uint32  `toml:"max_small_indexed_draws" yaml:"max_small_indexed_draws"`
	DepthPrePassMinDrawElements uint32  `toml:"depth_pre_pass_min_draw_elements" yaml:"depth_pre_pass_min_draw_elements"`
	DepthPrePassDrawCalls       uint32  `toml:"depth_pre_pass_draw_calls" yaml:"depth_pre_pass_draw_calls"`
	MinIndexBufferUtilization   float64 `toml:"min_index_buffer_utilization" yaml:"min_index_buffer_utilization"`
	MinCacheHitRate             float64 `toml:"min_cache_hit_rate" yaml:"min_cache_hit_rate"`
	MaxEfficientSamples         uint32  `toml:"max_efficient_samples" yaml:"max_efficient_samples"`
	MaxWorkGroupThreads         uint32  `toml:"max_work_group_threads" yaml:"max_work_group_threads"`
	WorkGroupAlignment          uint32  `toml:"work_group_alignment" yaml:"work_group_alignment"`
}

// Settings is the complete configuration of the layer.
type Settings struct {
	Vendors    Vendor
	Thresholds Thresholds
	// Suppress lists diagnostic codes that are never emitted.
	Suppress []string
}

// DefaultThresholds returns the thresholds used when nothing is configured.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinDeviceAllocationSize:     256 * 1024,
		MinDedicatedAllocationSize:  1024 * 1024,
		MaxMemoryObjects:            250,
		MaxInstancedVertexBuffers:   1,
		SmallIndexedDrawIndices:     10,
		MaxSmallIndexedDraws:        10,
		DepthPrePassMinDrawElements: 500,
		DepthPrePassDrawCalls:       20,
		MinIndexBufferUtilization:   0.5,
		MinCacheHitRate:             0.5,
		MaxEfficientSamples:         4,
		MaxWorkGroupThreads:         64,
		WorkGroupAlignment:          4,
	}
}

// Default returns the vendor neutral settings with default thresholds.
func Default() Settings {
	return Settings{Thresholds: DefaultThresholds()}
}

// Suppressed returns true if code is listed in s.Suppress.
func (s *Settings) Suppressed(code string) bool {
	for _, c := range s.Suppress {
		if c == code {
			return true
		}
	}
	return false
}

// Validate returns every problem found with the thresholds.
func (t Thresholds) Validate() error {
	errs := fault.List{}
	ratio := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs.Collect(errors.Wrapf(ErrBadThreshold, "%s must be in [0, 1], got %v", name, v))
		}
	}
	positive := func(name string, v uint32) {
		if v == 0 {
			errs.Collect(errors.Wrapf(ErrBadThreshold, "%s must be positive", name))
		}
	}
	ratio("min_index_buffer_utilization", t.MinIndexBufferUtilization)
	ratio("min_cache_hit_rate", t.MinCacheHitRate)
	positive("max_small_indexed_draws", t.MaxSmallIndexedDraws)
	positive("work_group_alignment", t.WorkGroupAlignment)
	positive("max_efficient_samples", t.MaxEfficientSamples)
	if t.MinDedicatedAllocationSize < t.MinDeviceAllocationSize {
		errs.Collect(errors.Wrapf(ErrBadThreshold,
			"min_dedicated_allocation_size (%d) is smaller than min_device_allocation_size (%d)",
			t.MinDedicatedAllocationSize, t.MinDeviceAllocationSize))
	}
	return errs.Err()
}
