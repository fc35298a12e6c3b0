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
	"testing"

	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/config"
	"github.com/google/vkadvisor/advisor/state"
	"github.com/google/vkadvisor/core/assert"
)

const (
	loadOp   = vulkan.VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_LOAD
	clearOp  = vulkan.VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_CLEAR
	dontLoad = vulkan.VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_DONT_CARE
	storeOp  = vulkan.VkAttachmentStoreOp_VK_ATTACHMENT_STORE_OP_STORE
	discard  = vulkan.VkAttachmentStoreOp_VK_ATTACHMENT_STORE_OP_DONT_CARE

	rgba   = vulkan.VkFormat_VK_FORMAT_R8G8B8A8_UNORM
	d24s8  = vulkan.VkFormat_VK_FORMAT_D24_UNORM_S8_UINT
	s8     = vulkan.VkFormat_VK_FORMAT_S8_UINT
	undef  = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED
	colorL = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL
)

func TestCreateRenderPass(t *testing.T) {
	const code = "BestPractices-vkCreateRenderPass-attatchment"
	f := newFixture(t, 0)
	for _, test := range []struct {
		name   string
		desc   vulkan.VkAttachmentDescription
		expect []string
	}{
		{"color load undefined", vulkan.VkAttachmentDescription{Format: rgba, LoadOp: loadOp, InitialLayout: undef}, codes(code)},
		{"color load defined", vulkan.VkAttachmentDescription{Format: rgba, LoadOp: loadOp, InitialLayout: colorL}, codes()},
		{"color clear", vulkan.VkAttachmentDescription{Format: rgba, LoadOp: clearOp, InitialLayout: undef}, codes()},
		{"stencil only", vulkan.VkAttachmentDescription{Format: s8, LoadOp: loadOp, StencilLoadOp: dontLoad, InitialLayout: undef}, codes()},
		{"stencil load", vulkan.VkAttachmentDescription{Format: d24s8, LoadOp: clearOp, StencilLoadOp: loadOp, InitialLayout: undef}, codes(code)},
	} {
		got := f.check(&vulkan.VkCreateRenderPass{Device: dev, Attachments: []vulkan.VkAttachmentDescription{test.desc}})
		assert.For(f.ctx, test.name).ThatSlice(got).Equals(test.expect)
	}
}

func TestCreateFramebuffer(t *testing.T) {
	const (
		should    = "BestPractices-vkCreateFramebuffer-attachment-should-be-transient"
		shouldNot = "BestPractices-vkCreateFramebuffer-attachment-should-not-be-transient"
	)
	color := vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT
	transient := vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT
	cmd := &vulkan.VkCreateFramebuffer{Device: dev, Attachments: []vulkan.VkFramebufferAttachment{
		{ImageUsage: color, Description: vulkan.VkAttachmentDescription{Format: rgba, LoadOp: clearOp, StoreOp: discard}},
		{ImageUsage: color | transient, Description: vulkan.VkAttachmentDescription{Format: rgba, LoadOp: loadOp, StoreOp: storeOp}},
		{ImageUsage: color, Description: vulkan.VkAttachmentDescription{
			Format: d24s8, LoadOp: clearOp, StoreOp: discard, StencilLoadOp: loadOp, StencilStoreOp: discard,
		}},
		{ImageUsage: color | transient, Description: vulkan.VkAttachmentDescription{
			Format: s8, LoadOp: loadOp, StoreOp: storeOp, StencilLoadOp: dontLoad, StencilStoreOp: discard,
		}},
	}}

	f := newFixture(t, 0)
	assert.For(f.ctx, "no lazy memory").ThatSlice(f.check(cmd)).Equals(codes(shouldNot))

	f.store.SetMemoryTypes(pd, lazyMemoryTypes)
	f.store.AddDevice(dev, pd)
	assert.For(f.ctx, "lazy memory").ThatSlice(f.check(cmd)).Equals(codes(should, shouldNot))
}

func TestDepthPrePass(t *testing.T) {
	const code = "BestPractices-vkCmdEndRenderPass-depth-pre-pass-usage"
	pipeline := vulkan.VkPipeline(0x70)
	depthOnly := vulkan.VkGraphicsPipelineCreateInfo{
		ColorBlendAttachments: []vulkan.VkPipelineColorBlendAttachmentState{{}},
		DepthStencil: &vulkan.VkPipelineDepthStencilStateCreateInfo{
			DepthTestEnable: true,
			DepthCompareOp:  vulkan.VkCompareOp_VK_COMPARE_OP_LESS_OR_EQUAL,
		},
	}
	subpasses := []vulkan.VkSubpassDescription{{
		DepthStencilAttachment: &vulkan.VkAttachmentReference{Attachment: 0},
	}}
	record := func(s *state.Store, draws int, subpasses []vulkan.VkSubpassDescription) {
		s.AllocateCommandBuffers([]vulkan.VkCommandBuffer{cb})
		s.AddGraphicsPipeline(pipeline, state.NewGraphicsPipeline(depthOnly))
		s.BeginRenderPass(cb, subpasses)
		s.BindPipeline(cb, vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS, pipeline)
		for i := 0; i < draws; i++ {
			s.RecordDraw(cb, 600, 500)
		}
	}
	end := &vulkan.VkCmdEndRenderPass{CommandBuffer: cb}

	f := newFixture(t, config.VendorArm)
	assert.For(f.ctx, "unknown command buffer").ThatSlice(f.check(end)).Equals(codes())

	record(f.store, 25, subpasses)
	assert.For(f.ctx, "25 draws").ThatSlice(f.check(end)).Equals(codes(code))

	f = newFixture(t, config.VendorArm)
	record(f.store, 19, subpasses)
	assert.For(f.ctx, "19 draws").ThatSlice(f.check(end)).Equals(codes())

	f = newFixture(t, config.VendorArm)
	record(f.store, 25, nil)
	assert.For(f.ctx, "no attachments").ThatSlice(f.check(end)).Equals(codes())

	f = newFixture(t, 0)
	record(f.store, 25, subpasses)
	assert.For(f.ctx, "neutral").ThatSlice(f.check(end)).Equals(codes())
}

func TestCreatePipelines(t *testing.T) {
	const (
		noCache   = "BestPractices-vkCreatePipelines-multiple-pipelines-no-cache"
		instanced = "BestPractices-vkCreateGraphicsPipelines-too-many-instanced-vertex-buffers"
		samples   = "BestPractices-vkCreateGraphicsPipelines-too-large-sample-count"
	)
	instance := vulkan.VkVertexInputRate_VK_VERTEX_INPUT_RATE_INSTANCE
	bad := vulkan.VkGraphicsPipelineCreateInfo{
		VertexBindings:       []vulkan.VkVertexInputBindingDescription{{Binding: 0, InputRate: instance}, {Binding: 1, InputRate: instance}},
		RasterizationSamples: vulkan.VkSampleCountFlagBits_VK_SAMPLE_COUNT_8_BIT,
	}
	good := vulkan.VkGraphicsPipelineCreateInfo{
		VertexBindings:       []vulkan.VkVertexInputBindingDescription{{Binding: 0}, {Binding: 1, InputRate: instance}},
		RasterizationSamples: vulkan.VkSampleCountFlagBits_VK_SAMPLE_COUNT_4_BIT,
	}
	graphics := func(cache vulkan.VkPipelineCache, infos ...vulkan.VkGraphicsPipelineCreateInfo) *vulkan.VkCreateGraphicsPipelines {
		return &vulkan.VkCreateGraphicsPipelines{Device: dev, PipelineCache: cache, CreateInfos: infos}
	}

	f := newFixture(t, 0)
	assert.For(f.ctx, "neutral").ThatSlice(f.check(graphics(0, bad, good))).Equals(codes(noCache))
	assert.For(f.ctx, "cached").ThatSlice(f.check(graphics(1, bad, good))).Equals(codes())
	f.check(graphics(0, good, good))
	assert.For(f.ctx, "message").ThatString(f.sink.Diagnostics()[0].Message).Contains("vkCreateGraphicsPipelines()")

	f = newFixture(t, config.VendorArm)
	assert.For(f.ctx, "arm").ThatSlice(f.check(graphics(0, bad, good))).Equals(codes(noCache, instanced, samples))
	assert.For(f.ctx, "arm good").ThatSlice(f.check(graphics(0, good))).Equals(codes())

	compute := &vulkan.VkCreateComputePipelines{Device: dev, CreateInfos: make([]vulkan.VkComputePipelineCreateInfo, 2)}
	f = newFixture(t, 0)
	assert.For(f.ctx, "compute").ThatSlice(f.check(compute)).Equals(codes(noCache))
}

func TestComputeWorkGroups(t *testing.T) {
	const (
		size      = "BestPractices-vkCreateComputePipelines-compute-work-group-size"
		alignment = "BestPractices-vkCreateComputePipelines-compute-thread-group-alignment"
	)
	f := newFixture(t, config.VendorArm)
	for _, test := range []struct {
		x, y, z uint32
		expect  []string
	}{
		{64, 1, 1, codes()},
		{8, 8, 1, codes()},
		{128, 1, 1, codes(size)},
		{1, 1, 1, codes(alignment)},
		{6, 1, 1, codes(alignment)},
		{4, 4, 6, codes(size, alignment)},
	} {
		got := f.check(&vulkan.VkCreateComputePipelines{Device: dev, CreateInfos: []vulkan.VkComputePipelineCreateInfo{
			{LocalSizeX: test.x, LocalSizeY: test.y, LocalSizeZ: test.z},
		}})
		assert.For(f.ctx, "(%d, %d, %d)", test.x, test.y, test.z).ThatSlice(got).Equals(test.expect)
	}
}

func TestCreateSampler(t *testing.T) {
	const prefix = "BestPractices-vkCreateSampler-"
	clean := &vulkan.VkCreateSampler{Device: dev, MaxLod: vulkan.VK_LOD_CLAMP_NONE}
	bad := &vulkan.VkCreateSampler{
		Device:                  dev,
		AddressModeU:            vulkan.VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER,
		AddressModeV:            vulkan.VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_REPEAT,
		AddressModeW:            vulkan.VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_REPEAT,
		MipLodBias:              1,
		AnisotropyEnable:        true,
		MaxAnisotropy:           16,
		MaxLod:                  4,
		BorderColor:             vulkan.VkBorderColor_VK_BORDER_COLOR_FLOAT_OPAQUE_WHITE,
		UnnormalizedCoordinates: true,
	}

	f := newFixture(t, config.VendorArm)
	assert.For(f.ctx, "clean").ThatSlice(f.check(clean)).Equals(codes())
	assert.For(f.ctx, "bad").ThatSlice(f.check(bad)).Equals(codes(
		prefix+"different-wrapping-modes",
		prefix+"lod-clamping",
		prefix+"lod-bias",
		prefix+"border-clamp-color",
		prefix+"unnormalized-coordinates",
		prefix+"anisotropy",
	))

	f = newFixture(t, 0)
	assert.For(f.ctx, "neutral").ThatSlice(f.check(bad)).Equals(codes())
}

func TestBeginCommandBuffer(t *testing.T) {
	const (
		simultaneous = "BestPractices-vkBeginCommandBuffer-simultaneous-use"
		oneTime      = "BestPractices-vkBeginCommandBuffer-one-time-submit"
	)
	begin := func(flags vulkan.VkCommandBufferUsageFlags) *vulkan.VkBeginCommandBuffer {
		return &vulkan.VkBeginCommandBuffer{CommandBuffer: cb, Flags: flags}
	}
	sim := vulkan.VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT
	once := vulkan.VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT

	f := newFixture(t, 0)
	assert.For(f.ctx, "neutral").ThatSlice(f.check(begin(sim), begin(0))).Equals(codes(simultaneous))

	f = newFixture(t, config.VendorArm)
	assert.For(f.ctx, "arm").ThatSlice(f.check(begin(0))).Equals(codes(oneTime))
	assert.For(f.ctx, "arm both").ThatSlice(f.check(begin(once | sim))).Equals(codes(simultaneous))
}
