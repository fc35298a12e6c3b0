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

package rules_test

import (
	"context"
	"testing"

	"github.com/google/vkadvisor/advisor/api"
	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/config"
	"github.com/google/vkadvisor/advisor/query"
	"github.com/google/vkadvisor/advisor/report"
	"github.com/google/vkadvisor/advisor/rules"
	"github.com/google/vkadvisor/advisor/state"
	"github.com/google/vkadvisor/core/assert"
	"github.com/google/vkadvisor/core/log"
)

const (
	inst = vulkan.VkInstance(0x10)
	pd   = vulkan.VkPhysicalDevice(0x20)
	dev  = vulkan.VkDevice(0x30)
	cb   = vulkan.VkCommandBuffer(0x40)
	sc   = vulkan.VkSwapchainKHR(0x50)
)

type fixture struct {
	ctx      context.Context
	settings config.Settings
	store    *state.Store
	sink     *report.Collector
	engine   *rules.Engine
}

func newFixture(t *testing.T, vendors config.Vendor) *fixture {
	s := config.Default()
	s.Vendors = vendors
	return &fixture{
		ctx:      log.Testing(t),
		settings: s,
		store:    state.New(),
		sink:     &report.Collector{},
		engine:   rules.New(),
	}
}

// check runs the rules of each command and returns the codes they emitted.
func (f *fixture) check(cmds ...api.Cmd) []string {
	f.sink.Reset()
	env := &rules.Env{Settings: &f.settings, Store: f.store, Sink: f.sink}
	for _, c := range cmds {
		f.engine.Check(f.ctx, env, c)
	}
	return f.sink.Codes()
}

func codes(c ...string) []string { return c }

func TestVendorGating(t *testing.T) {
	cmd := &vulkan.VkCreateCommandPool{
		Device: dev,
		Flags:  vulkan.VkCommandPoolCreateFlagBits_VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT,
	}

	f := newFixture(t, 0)
	assert.For(f.ctx, "neutral").ThatSlice(f.check(cmd)).Equals(codes())

	f = newFixture(t, config.VendorArm)
	assert.For(f.ctx, "arm").ThatSlice(f.check(cmd)).Equals(codes("BestPractices-vkCreateCommandPool-command-buffer-reset"))
	d := f.sink.Diagnostics()[0]
	assert.For(f.ctx, "tag").ThatString(d.Message).HasPrefix("[Arm] ")
	assert.For(f.ctx, "severity").That(d.Severity).Equals(report.PerformanceWarning)
	assert.For(f.ctx, "object").That(d.Object).Equals(api.Handle(dev))
}

func TestRegistration(t *testing.T) {
	ctx := log.Testing(t)
	e := rules.New()
	assert.For(ctx, "vkCmdDrawIndexed").ThatInteger(e.Rules("vkCmdDrawIndexed")).Equals(3)
	assert.For(ctx, "vkCreateCommandPool").ThatInteger(e.Rules("vkCreateCommandPool")).Equals(1)
	assert.For(ctx, "vkDestroyInstance").ThatInteger(e.Rules("vkDestroyInstance")).Equals(0)
}

func TestSuppressedCode(t *testing.T) {
	f := newFixture(t, 0)
	f.settings.Suppress = []string{"BestPractices-vkCmdDraw-instance-count-zero"}
	got := f.check(
		&vulkan.VkCmdDraw{CommandBuffer: cb, VertexCount: 3},
		&vulkan.VkCmdDrawIndexed{CommandBuffer: cb, IndexCount: 3},
	)
	assert.For(f.ctx, "codes").ThatSlice(got).Equals(codes("BestPractices-vkCmdDrawIndexed-instance-count-zero"))
}

func TestCreateInstanceExtensions(t *testing.T) {
	const (
		mismatch   = "BestPractices-vkCreateInstance-extension-mismatch"
		deprecated = "BestPractices-vkCreateInstance-deprecated-extension"
		specialUse = "BestPractices-vkCreateInstance-specialuse-extension"
	)
	for _, test := range []struct {
		name       string
		apiVersion uint32
		extension  string
		expect     []string
	}{
		{"instance extension", vulkan.VK_API_VERSION_1_0, "VK_KHR_surface", codes()},
		{"device extension", vulkan.VK_API_VERSION_1_0, "VK_KHR_swapchain", codes(mismatch)},
		{"promoted above version", vulkan.VK_API_VERSION_1_0, "VK_KHR_get_physical_device_properties2", codes(deprecated)},
		{"promoted at version", vulkan.VK_API_VERSION_1_1, "VK_KHR_get_physical_device_properties2", codes()},
		{"deprecated by extension", vulkan.VK_API_VERSION_1_3, "VK_EXT_debug_report", codes(deprecated, specialUse)},
		{"special use", vulkan.VK_API_VERSION_1_0, "VK_EXT_debug_utils", codes(specialUse)},
	} {
		f := newFixture(t, 0)
		got := f.check(&vulkan.VkCreateInstance{
			Instance:              inst,
			APIVersion:            test.apiVersion,
			EnabledExtensionNames: []string{test.extension},
		})
		assert.For(f.ctx, test.name).ThatSlice(got).Equals(test.expect)
	}
}

func TestCreateInstanceMessages(t *testing.T) {
	f := newFixture(t, 0)
	f.check(&vulkan.VkCreateInstance{
		Instance:              inst,
		APIVersion:            vulkan.VK_API_VERSION_1_0,
		EnabledExtensionNames: []string{"VK_KHR_swapchain", "VK_KHR_get_physical_device_properties2"},
	})
	d := f.sink.Diagnostics()
	assert.For(f.ctx, "count").ThatSlice(d).IsLength(2)
	assert.For(f.ctx, "mismatch").ThatString(d[0].Message).Equals(
		"Attempting to enable Device Extension VK_KHR_swapchain at CreateInstance time.")
	assert.For(f.ctx, "deprecated").ThatString(d[1].Message).Contains("promoted to VK_VERSION_1_1")
}

func TestCreateDevice(t *testing.T) {
	const (
		mismatch    = "BestPractices-vkCreateDevice-extension-mismatch"
		deprecated  = "BestPractices-vkCreateDevice-deprecated-extension"
		specialUse  = "BestPractices-vkCreateDevice-specialuse-extension"
		notQueried  = "BestPractices-vkCreateDevice-PhysicalDeviceFeatures-NotCalled"
		toolingInfo = "VK_EXT_tooling_info"
	)
	f := newFixture(t, 0)
	create := func(features bool, ext ...string) *vulkan.VkCreateDevice {
		return &vulkan.VkCreateDevice{PhysicalDevice: pd, Device: dev, EnabledExtensionNames: ext, EnabledFeatures: features}
	}

	assert.For(f.ctx, "unknown instance").ThatSlice(f.check(create(false, toolingInfo))).Equals(codes(deprecated, specialUse))

	f.store.AddInstance(inst, vulkan.VK_API_VERSION_1_3)
	f.store.AddPhysicalDevice(inst, pd)
	assert.For(f.ctx, "1.3 instance").ThatSlice(f.check(create(false, toolingInfo))).Equals(codes(specialUse))
	assert.For(f.ctx, "instance extension").ThatSlice(f.check(create(false, "VK_KHR_surface"))).Equals(codes(mismatch))

	assert.For(f.ctx, "features").ThatSlice(f.check(create(true))).Equals(codes(notQueried))
	f.store.Queries.RecordQuery(api.Handle(pd), query.DeviceFeatures, 0, true)
	assert.For(f.ctx, "features queried").ThatSlice(f.check(create(true))).Equals(codes())
}

func TestQueryCounts(t *testing.T) {
	const (
		missing  = "BestPractices-vkEnumeratePhysicalDevices-MissingQueryCount"
		mismatch = "BestPractices-vkEnumeratePhysicalDevices-CountMismatch"
	)
	f := newFixture(t, 0)
	enumerate := func(count uint32, output bool) *vulkan.VkEnumeratePhysicalDevices {
		return &vulkan.VkEnumeratePhysicalDevices{Instance: inst, Count: count, HasOutput: output}
	}

	assert.For(f.ctx, "details first").ThatSlice(f.check(enumerate(2, true))).Equals(codes(missing))
	assert.For(f.ctx, "count call").ThatSlice(f.check(enumerate(0, false))).Equals(codes())

	f.store.Queries.RecordQuery(api.Handle(inst), query.PhysicalDevices, 2, false)
	assert.For(f.ctx, "matching").ThatSlice(f.check(enumerate(2, true))).Equals(codes())
	assert.For(f.ctx, "mismatch").ThatSlice(f.check(enumerate(3, true))).Equals(codes(mismatch))
	assert.For(f.ctx, "message").ThatString(f.sink.Diagnostics()[0].Message).Contains("value 3")

	other := &vulkan.VkGetPhysicalDeviceQueueFamilyProperties{PhysicalDevice: pd, Count: 1, HasOutput: true}
	assert.For(f.ctx, "other family").ThatSlice(f.check(other)).Equals(
		codes("BestPractices-vkGetPhysicalDeviceQueueFamilyProperties-MissingQueryCount"))
}

func TestDisplayPlane(t *testing.T) {
	const code = "BestPractices-vkGetDisplayPlane-properties-not-queried"
	f := newFixture(t, 0)
	displays := &vulkan.VkGetDisplayPlaneSupportedDisplaysKHR{PhysicalDevice: pd}
	caps := &vulkan.VkGetDisplayPlaneCapabilitiesKHR{PhysicalDevice: pd}

	assert.For(f.ctx, "before").ThatSlice(f.check(displays, caps)).Equals(codes(code, code))
	f.store.Queries.RecordQuery(api.Handle(pd), query.DisplayPlaneProperties, 1, false)
	assert.For(f.ctx, "after").ThatSlice(f.check(displays, caps)).Equals(codes())
}
