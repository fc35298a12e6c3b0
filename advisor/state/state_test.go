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

package state_test

import (
	"sync"
	"testing"

	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/state"
	"github.com/google/vkadvisor/core/assert"
	"github.com/google/vkadvisor/core/log"
)

const (
	cb        = vulkan.VkCommandBuffer(0x100)
	depthOnly = vulkan.VkPipeline(0x200)
	colored   = vulkan.VkPipeline(0x201)
	compute   = vulkan.VkPipeline(0x202)
)

var depthSubpass = []vulkan.VkSubpassDescription{{
	DepthStencilAttachment: &vulkan.VkAttachmentReference{Attachment: 0},
}}

func newStore() *state.Store {
	s := state.New()
	s.AllocateCommandBuffers([]vulkan.VkCommandBuffer{cb})
	s.AddGraphicsPipeline(depthOnly, state.NewGraphicsPipeline(vulkan.VkGraphicsPipelineCreateInfo{
		ColorBlendAttachments: []vulkan.VkPipelineColorBlendAttachmentState{{ColorWriteMask: 0}},
		DepthStencil: &vulkan.VkPipelineDepthStencilStateCreateInfo{
			DepthTestEnable: true,
			DepthCompareOp:  vulkan.VkCompareOp_VK_COMPARE_OP_EQUAL,
		},
	}))
	s.AddGraphicsPipeline(colored, state.NewGraphicsPipeline(vulkan.VkGraphicsPipelineCreateInfo{
		ColorBlendAttachments: []vulkan.VkPipelineColorBlendAttachmentState{
			{ColorWriteMask: 0},
			{ColorWriteMask: vulkan.VkColorComponentFlagBits_VK_COLOR_COMPONENT_R_BIT},
		},
		DepthStencil: &vulkan.VkPipelineDepthStencilStateCreateInfo{
			DepthTestEnable: true,
			DepthCompareOp:  vulkan.VkCompareOp_VK_COMPARE_OP_LESS,
		},
	}))
	return s
}

func TestDepthPrePassCounting(t *testing.T) {
	ctx := log.Testing(t)
	s := newStore()
	s.BeginRenderPass(cb, depthSubpass)
	s.BindPipeline(cb, vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS, depthOnly)
	for i := 0; i < 25; i++ {
		s.RecordDraw(cb, 600, 500)
	}
	s.RecordDraw(cb, 499, 500)

	rp, ok := s.RenderPass(cb)
	assert.For(ctx, "found").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "tracker").That(rp).DeepEquals(state.DepthPrePassTracker{
		DepthAttachment:      true,
		DepthOnly:            true,
		DepthEqualComparison: true,
		DepthOnlyDraws:       25,
		DepthEqualDraws:      25,
	})

	// Reading does not reset.
	again, _ := s.RenderPass(cb)
	assert.For(ctx, "pure read").That(again).DeepEquals(rp)

	s.BeginRenderPass(cb, []vulkan.VkSubpassDescription{{
		ColorAttachments: []vulkan.VkAttachmentReference{{Attachment: vulkan.VK_ATTACHMENT_UNUSED}, {Attachment: 1}},
	}})
	rp, _ = s.RenderPass(cb)
	assert.For(ctx, "reset").That(rp).DeepEquals(state.DepthPrePassTracker{ColorAttachment: true})
}

func TestBindPipeline(t *testing.T) {
	ctx := log.Testing(t)
	s := newStore()
	s.BeginRenderPass(cb, depthSubpass)

	s.BindPipeline(cb, vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS, colored)
	rp, _ := s.RenderPass(cb)
	assert.For(ctx, "colored depth only").ThatBoolean(rp.DepthOnly).IsFalse()
	assert.For(ctx, "colored equal").ThatBoolean(rp.DepthEqualComparison).IsFalse()

	s.BindPipeline(cb, vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS, depthOnly)
	s.BindPipeline(cb, vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE, compute)
	rp, _ = s.RenderPass(cb)
	assert.For(ctx, "compute bind leaves flags").ThatBoolean(rp.DepthOnly && rp.DepthEqualComparison).IsTrue()

	s.BindPipeline(cb, vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS, vulkan.VkPipeline(0xdead))
	rp, _ = s.RenderPass(cb)
	assert.For(ctx, "unknown resets depth only").ThatBoolean(rp.DepthOnly).IsFalse()
	assert.For(ctx, "unknown resets equal").ThatBoolean(rp.DepthEqualComparison).IsFalse()
	assert.For(ctx, "attachments kept").ThatBoolean(rp.DepthAttachment).IsTrue()

	s.DestroyPipeline(depthOnly)
	assert.For(ctx, "destroyed").That(s.GraphicsPipeline(depthOnly)).IsNil()
}

func TestDepthEqualOps(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		op     vulkan.VkCompareOp
		enable bool
		expect bool
	}{
		{vulkan.VkCompareOp_VK_COMPARE_OP_EQUAL, true, true},
		{vulkan.VkCompareOp_VK_COMPARE_OP_GREATER_OR_EQUAL, true, true},
		{vulkan.VkCompareOp_VK_COMPARE_OP_LESS_OR_EQUAL, true, true},
		{vulkan.VkCompareOp_VK_COMPARE_OP_LESS, true, false},
		{vulkan.VkCompareOp_VK_COMPARE_OP_ALWAYS, true, false},
		{vulkan.VkCompareOp_VK_COMPARE_OP_EQUAL, false, false},
	} {
		s := state.New()
		s.AllocateCommandBuffers([]vulkan.VkCommandBuffer{cb})
		s.AddGraphicsPipeline(depthOnly, state.NewGraphicsPipeline(vulkan.VkGraphicsPipelineCreateInfo{
			DepthStencil: &vulkan.VkPipelineDepthStencilStateCreateInfo{DepthTestEnable: test.enable, DepthCompareOp: test.op},
		}))
		s.BeginRenderPass(cb, depthSubpass)
		s.BindPipeline(cb, vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS, depthOnly)
		rp, _ := s.RenderPass(cb)
		assert.For(ctx, "op %v enable %v", test.op, test.enable).ThatBoolean(rp.DepthEqualComparison).Equals(test.expect)
		assert.For(ctx, "no blend attachments is depth only").ThatBoolean(rp.DepthOnly).IsTrue()
	}
}

func TestMissingCommandBuffer(t *testing.T) {
	ctx := log.Testing(t)
	s := state.New()
	s.BeginRenderPass(cb, depthSubpass)
	s.RecordDraw(cb, 1000, 1)
	s.RecordSmallIndexedDraw(cb)
	_, ok := s.RenderPass(cb)
	assert.For(ctx, "render pass").ThatBoolean(ok).IsFalse()
	_, ok = s.SmallIndexedDraws(cb)
	assert.For(ctx, "small draws").ThatBoolean(ok).IsFalse()
}

func TestSmallIndexedDraws(t *testing.T) {
	ctx := log.Testing(t)
	s := newStore()
	for i := 0; i < 3; i++ {
		s.RecordSmallIndexedDraw(cb)
	}
	n, _ := s.SmallIndexedDraws(cb)
	assert.For(ctx, "tally").That(n).Equals(uint32(3))
	s.BeginCommandBuffer(cb)
	n, _ = s.SmallIndexedDraws(cb)
	assert.For(ctx, "reset").That(n).Equals(uint32(0))
	s.FreeCommandBuffers([]vulkan.VkCommandBuffer{cb})
	assert.For(ctx, "freed").That(s.CommandBuffer(cb)).IsNil()
}

func TestDescriptorPoolFreeCount(t *testing.T) {
	ctx := log.Testing(t)
	s := state.New()
	pool := vulkan.VkDescriptorPool(7)
	s.AllocatedDescriptorSets(pool, 3)
	assert.For(ctx, "untracked").That(s.FreeDescriptorSetCount(pool)).Equals(uint32(0))
	s.FreeDescriptorSets(pool, 2)
	s.FreeDescriptorSets(pool, 3)
	assert.For(ctx, "freed").That(s.FreeDescriptorSetCount(pool)).Equals(uint32(5))
	s.AllocatedDescriptorSets(pool, 4)
	assert.For(ctx, "allocated").That(s.FreeDescriptorSetCount(pool)).Equals(uint32(1))
	s.AllocatedDescriptorSets(pool, 4)
	assert.For(ctx, "floored").That(s.FreeDescriptorSetCount(pool)).Equals(uint32(0))
	s.FreeDescriptorSets(pool, 1)
	s.DestroyDescriptorPool(pool)
	assert.For(ctx, "destroyed").That(s.FreeDescriptorSetCount(pool)).Equals(uint32(0))
}

func TestLiveMemory(t *testing.T) {
	ctx := log.Testing(t)
	s := state.New()
	s.AllocatedMemory()
	s.AllocatedMemory()
	s.FreedMemory(0)
	assert.For(ctx, "null free").That(s.LiveMemoryObjects()).Equals(int64(2))
	s.FreedMemory(0x30)
	assert.For(ctx, "freed").That(s.LiveMemoryObjects()).Equals(int64(1))
}

func TestDevices(t *testing.T) {
	ctx := log.Testing(t)
	s := state.New()
	inst, pd, dev := vulkan.VkInstance(1), vulkan.VkPhysicalDevice(2), vulkan.VkDevice(3)

	assert.For(ctx, "unknown device lazy").ThatBoolean(s.DeviceSupportsLazyMemory(dev)).IsFalse()
	assert.For(ctx, "unknown version").That(s.APIVersionOf(pd)).Equals(vulkan.VK_API_VERSION_1_0)

	s.AddInstance(inst, vulkan.VK_API_VERSION_1_2)
	s.SetMemoryTypes(pd, []vulkan.VkMemoryType{
		{PropertyFlags: vulkan.VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_DEVICE_LOCAL_BIT},
		{PropertyFlags: vulkan.VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_DEVICE_LOCAL_BIT |
			vulkan.VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT},
	})
	s.AddPhysicalDevice(inst, pd)
	s.AddDevice(dev, pd)

	assert.For(ctx, "memory types kept").ThatSlice(s.PhysicalDevice(pd).MemoryTypes).IsLength(2)
	assert.For(ctx, "lazy").ThatBoolean(s.DeviceSupportsLazyMemory(dev)).IsTrue()
	assert.For(ctx, "version").That(s.APIVersionOf(pd)).Equals(vulkan.VK_API_VERSION_1_2)
	flags, ok := s.MemoryTypeFlags(dev, 1)
	assert.For(ctx, "type found").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "type flags").ThatBoolean(flags&vulkan.VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT != 0).IsTrue()
	_, ok = s.MemoryTypeFlags(dev, 2)
	assert.For(ctx, "type out of range").ThatBoolean(ok).IsFalse()

	s.DestroyDevice(dev)
	_, ok = s.PhysicalDeviceOf(dev)
	assert.For(ctx, "device gone").ThatBoolean(ok).IsFalse()
	s.DestroyInstance(inst)
	assert.For(ctx, "instance gone").That(s.APIVersionOf(pd)).Equals(vulkan.VK_API_VERSION_1_0)
}

func TestSwapchains(t *testing.T) {
	ctx := log.Testing(t)
	s := state.New()
	sc := vulkan.VkSwapchainKHR(9)
	assert.For(ctx, "absent").That(s.Swapchain(sc)).IsNil()
	s.CreateSwapchain(sc).Images.Advance(3, false)
	assert.For(ctx, "count").That(s.Swapchain(sc).Images.Count).Equals(uint32(3))
	s.DestroySwapchain(sc)
	assert.For(ctx, "destroyed").That(s.Swapchain(sc)).IsNil()
}

func TestConcurrentHandles(t *testing.T) {
	ctx := log.Testing(t)
	s := state.New()
	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := vulkan.VkCommandBuffer(0x1000 + i)
			s.AllocateCommandBuffers([]vulkan.VkCommandBuffer{b})
			for j := 0; j < 100; j++ {
				s.RecordSmallIndexedDraw(b)
				s.FreeDescriptorSets(vulkan.VkDescriptorPool(i), 1)
				s.AllocatedMemory()
			}
		}(i)
	}
	wg.Wait()
	for i := 0; i < 16; i++ {
		n, _ := s.SmallIndexedDraws(vulkan.VkCommandBuffer(0x1000 + i))
		assert.For(ctx, "draws %d", i).That(n).Equals(uint32(100))
		assert.For(ctx, "pool %d", i).That(s.FreeDescriptorSetCount(vulkan.VkDescriptorPool(i))).Equals(uint32(100))
	}
	assert.For(ctx, "memory").That(s.LiveMemoryObjects()).Equals(int64(1600))
}
