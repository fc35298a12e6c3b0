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

package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/vkadvisor/advisor/config"
	"github.com/google/vkadvisor/core/assert"
	"github.com/google/vkadvisor/core/log"
)

func TestDefault(t *testing.T) {
	ctx := log.Testing(t)
	s := config.Default()
	assert.For(ctx, "vendors").That(s.Vendors).Equals(config.Vendor(0))
	assert.For(ctx, "min alloc").That(s.Thresholds.MinDeviceAllocationSize).Equals(uint64(256 * 1024))
	assert.For(ctx, "dedicated").That(s.Thresholds.MinDedicatedAllocationSize).Equals(uint64(1024 * 1024))
	assert.For(ctx, "utilization").ThatFloat(s.Thresholds.MinIndexBufferUtilization).Equals(0.5, 0)
	assert.For(ctx, "hit rate").ThatFloat(s.Thresholds.MinCacheHitRate).Equals(0.5, 0)
	assert.For(ctx, "valid").ThatError(s.Thresholds.Validate()).Succeeded()
}

func TestParseVendors(t *testing.T) {
	ctx := log.Testing(t)
	v, err := config.ParseVendors([]string{"ARM"})
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "arm").ThatBoolean(v.Has(config.VendorArm)).IsTrue()
	assert.For(ctx, "string").ThatString(v).Equals("arm")
	assert.For(ctx, "none").ThatString(config.Vendor(0)).Equals("none")

	_, err = config.ParseVendors([]string{"arm", "voodoo"})
	assert.For(ctx, "unknown").ThatBoolean(errors.Is(err, config.ErrUnknownVendor)).IsTrue()
}

func TestParseTOML(t *testing.T) {
	ctx := log.Testing(t)
	s, err := config.Parse(config.TOML, []byte(`
vendors = ["arm"]
suppress = ["BestPractices-vkCreateInstance-specialuse-extension"]

[thresholds]
max_memory_objects = 100
min_cache_hit_rate = 0.25
`))
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "vendors").That(s.Vendors).Equals(config.VendorArm)
	assert.For(ctx, "overridden").That(s.Thresholds.MaxMemoryObjects).Equals(uint32(100))
	assert.For(ctx, "hit rate").ThatFloat(s.Thresholds.MinCacheHitRate).Equals(0.25, 0)
	assert.For(ctx, "default kept").That(s.Thresholds.DepthPrePassDrawCalls).Equals(uint32(20))
	assert.For(ctx, "suppressed").ThatBoolean(s.Suppressed("BestPractices-vkCreateInstance-specialuse-extension")).IsTrue()
	assert.For(ctx, "not suppressed").ThatBoolean(s.Suppressed("BestPractices-Error-Result")).IsFalse()
}

func TestParseYAML(t *testing.T) {
	ctx := log.Testing(t)
	s, err := config.Parse(config.YAML, []byte(`
vendors: [arm]
thresholds:
  small_indexed_draw_indices: 16
`))
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "vendors").That(s.Vendors).Equals(config.VendorArm)
	assert.For(ctx, "overridden").That(s.Thresholds.SmallIndexedDrawIndices).Equals(uint32(16))
	assert.For(ctx, "default kept").That(s.Thresholds.MaxSmallIndexedDraws).Equals(uint32(10))

	s, err = config.Parse(config.YAML, nil)
	assert.For(ctx, "empty err").ThatError(err).Succeeded()
	assert.For(ctx, "empty").That(s).DeepEquals(config.Default())
}

func TestParseErrors(t *testing.T) {
	ctx := log.Testing(t)
	_, err := config.Parse(config.TOML, []byte(`
vendors = ["nobody"]
[thresholds]
min_index_buffer_utilization = 1.5
work_group_alignment = 0
`))
	assert.For(ctx, "vendor").ThatBoolean(errors.Is(err, config.ErrUnknownVendor)).IsTrue()
	assert.For(ctx, "threshold").ThatBoolean(errors.Is(err, config.ErrBadThreshold)).IsTrue()
	assert.For(ctx, "all reported").ThatString(err.Error()).Contains("work_group_alignment")

	_, err = config.Parse(config.Format(".ini"), []byte("x=1"))
	assert.For(ctx, "format").ThatBoolean(errors.Is(err, config.ErrUnsupportedFormat)).IsTrue()

	_, err = config.Parse(config.TOML, []byte("colour = \"red\""))
	assert.For(ctx, "unknown field").ThatError(err).Failed()
}

func TestLoad(t *testing.T) {
	ctx := log.Testing(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "advisor.yml")
	if err := os.WriteFile(path, []byte("vendors: [arm]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := config.Load(path)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "vendors").That(s.Vendors).Equals(config.VendorArm)

	_, err = config.Load(filepath.Join(dir, "missing.toml"))
	assert.For(ctx, "missing").ThatError(err).Failed()
}

func TestWatch(t *testing.T) {
	ctx := log.Testing(t)
	path := filepath.Join(t.TempDir(), "advisor.toml")
	if err := os.WriteFile(path, []byte("vendors = []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(ctx)
	changes := make(chan config.Settings, 8)
	done := make(chan error, 1)
	go func() {
		done <- config.Watch(ctx, path, func(s config.Settings, err error) {
			if err == nil {
				changes <- s
			}
		})
	}()

	next := func() config.Settings {
		select {
		case s := <-changes:
			return s
		case <-time.After(10 * time.Second):
			t.Fatal("Timed out waiting for settings")
		}
		return config.Settings{}
	}

	assert.For(ctx, "initial").That(next().Vendors).Equals(config.Vendor(0))
	if err := os.WriteFile(path, []byte("vendors = [\"arm\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// A single write may be delivered as several events.
	for s := next(); !s.Vendors.Has(config.VendorArm); s = next() {
	}

	cancel()
	assert.For(ctx, "watch").ThatError(<-done).Succeeded()
}
