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

package advisor

import (
	"github.com/google/vkadvisor/advisor/api"
	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/config"
	"github.com/google/vkadvisor/advisor/query"
	"github.com/google/vkadvisor/advisor/state"
)

// recording is what a recorder sees of a completed call.
type recording struct {
	store    *state.Store
	settings *config.Settings
	result   vulkan.VkResult
}

type recorder func(*recording, api.Cmd)

// always registers f to record every completed call of the command type T.
func always[T api.Cmd](l *Layer, f func(*recording, T)) {
	var cmd T
	name := cmd.CmdName()
	l.recorders[name] = append(l.recorders[name], func(r *recording, c api.Cmd) { f(r, c.(T)) })
}

// onSuccess registers f to record the calls of T that did not fail.
func onSuccess[T api.Cmd](l *Layer, f func(*recording, T)) {
	always(l, func(r *recording, cmd T) {
		if !r.result.IsError() {
			f(r, cmd)
		}
	})
}

func registerRecorders(l *Layer) {
	// Instances, physical devices and devices.
	onSuccess(l, func(r *recording, cmd *vulkan.VkCreateInstance) {
		r.store.AddInstance(cmd.Instance, cmd.APIVersion)
	})
	always(l, func(r *recording, cmd *vulkan.VkDestroyInstance) {
		r.store.DestroyInstance(cmd.Instance)
		r.store.Queries.Forget(api.Handle(cmd.Instance))
	})
	onSuccess(l, func(r *recording, cmd *vulkan.VkEnumeratePhysicalDevices) {
		r.store.Queries.RecordQuery(api.Handle(cmd.Instance), query.PhysicalDevices, cmd.Count, cmd.HasOutput)
		for _, pd := range cmd.PhysicalDevices {
			r.store.AddPhysicalDevice(cmd.Instance, pd)
		}
	})
	always(l, func(r *recording, cmd *vulkan.VkGetPhysicalDeviceQueueFamilyProperties) {
		r.store.Queries.RecordQuery(api.Handle(cmd.PhysicalDevice), query.QueueFamilyProperties, cmd.Count, cmd.HasOutput)
	})
	always(l, func(r *recording, cmd *vulkan.VkGetPhysicalDeviceFeatures) {
		r.store.Queries.RecordQuery(api.Handle(cmd.PhysicalDevice), query.DeviceFeatures, 0, true)
	})
	always(l, func(r *recording, cmd *vulkan.VkGetPhysicalDeviceMemoryProperties) {
		r.store.SetMemoryTypes(cmd.PhysicalDevice, cmd.MemoryTypes)
	})
	onSuccess(l, func(r *recording, cmd *vulkan.VkGetPhysicalDeviceSurfaceCapabilitiesKHR) {
		r.store.Queries.RecordQuery(api.Handle(cmd.PhysicalDevice), query.SurfaceCapabilities, 0, true)
	})
	onSuccess(l, func(r *recording, cmd *vulkan.VkGetPhysicalDeviceSurfaceFormatsKHR) {
		r.store.Queries.RecordQuery(api.Handle(cmd.PhysicalDevice), query.SurfaceFormats, cmd.Count, cmd.HasOutput)
	})
	onSuccess(l, func(r *recording, cmd *vulkan.VkGetPhysicalDeviceSurfacePresentModesKHR) {
		r.store.Queries.RecordQuery(api.Handle(cmd.PhysicalDevice), query.SurfacePresentModes, cmd.Count, cmd.HasOutput)
	})
	onSuccess(l, func(r *recording, cmd *vulkan.VkGetPhysicalDeviceDisplayPlanePropertiesKHR) {
		r.store.Queries.RecordQuery(api.Handle(cmd.PhysicalDevice), query.DisplayPlaneProperties, cmd.Count, cmd.HasOutput)
	})
	onSuccess(l, func(r *recording, cmd *vulkan.VkCreateDevice) {
		r.store.AddDevice(cmd.Device, cmd.PhysicalDevice)
	})
	always(l, func(r *recording, cmd *vulkan.VkDestroyDevice) {
		r.store.DestroyDevice(cmd.Device)
	})

	// Memory.
	onSuccess(l, func(r *recording, cmd *vulkan.VkAllocateMemory) {
		r.store.AllocatedMemory()
	})
	always(l, func(r *recording, cmd *vulkan.VkFreeMemory) {
		r.store.FreedMemory(cmd.Memory)
	})

	// Pipelines.
	onSuccess(l, func(r *recording, cmd *vulkan.VkCreateGraphicsPipelines) {
		for i, p := range cmd.Pipelines {
			if p != 0 && i < len(cmd.CreateInfos) {
				r.store.AddGraphicsPipeline(p, state.NewGraphicsPipeline(cmd.CreateInfos[i]))
			}
		}
	})
	always(l, func(r *recording, cmd *vulkan.VkDestroyPipeline) {
		r.store.DestroyPipeline(cmd.Pipeline)
	})

	// Command buffers.
	onSuccess(l, func(r *recording, cmd *vulkan.VkAllocateCommandBuffers) {
		r.store.AllocateCommandBuffers(cmd.CommandBuffers)
	})
	always(l, func(r *recording, cmd *vulkan.VkFreeCommandBuffers) {
		r.store.FreeCommandBuffers(cmd.CommandBuffers)
	})
	onSuccess(l, func(r *recording, cmd *vulkan.VkBeginCommandBuffer) {
		r.store.BeginCommandBuffer(cmd.CommandBuffer)
	})
	always(l, func(r *recording, cmd *vulkan.VkCmdBeginRenderPass) {
		r.store.BeginRenderPass(cmd.CommandBuffer, cmd.Subpasses)
	})
	always(l, func(r *recording, cmd *vulkan.VkCmdBindPipeline) {
		r.store.BindPipeline(cmd.CommandBuffer, cmd.PipelineBindPoint, cmd.Pipeline)
	})
	always(l, func(r *recording, cmd *vulkan.VkCmdDraw) {
		r.draw(cmd.CommandBuffer, uint64(cmd.VertexCount)*uint64(cmd.InstanceCount))
	})
	always(l, func(r *recording, cmd *vulkan.VkCmdDrawIndexed) {
		elements := uint64(cmd.IndexCount) * uint64(cmd.InstanceCount)
		r.draw(cmd.CommandBuffer, elements)
		if elements <= uint64(r.settings.Thresholds.SmallIndexedDrawIndices) {
			r.store.RecordSmallIndexedDraw(cmd.CommandBuffer)
		}
	})
	always(l, func(r *recording, cmd *vulkan.VkCmdDrawIndirect) {
		r.draw(cmd.CommandBuffer, uint64(cmd.DrawCount))
	})
	always(l, func(r *recording, cmd *vulkan.VkCmdDrawIndexedIndirect) {
		r.draw(cmd.CommandBuffer, uint64(cmd.DrawCount))
	})

	// Descriptor sets.
	onSuccess(l, func(r *recording, cmd *vulkan.VkAllocateDescriptorSets) {
		r.store.AllocatedDescriptorSets(cmd.DescriptorPool, uint32(len(cmd.DescriptorSets)))
	})
	onSuccess(l, func(r *recording, cmd *vulkan.VkFreeDescriptorSets) {
		r.store.FreeDescriptorSets(cmd.DescriptorPool, uint32(len(cmd.DescriptorSets)))
	})
	always(l, func(r *recording, cmd *vulkan.VkDestroyDescriptorPool) {
		r.store.DestroyDescriptorPool(cmd.DescriptorPool)
	})

	// Swapchains.
	onSuccess(l, func(r *recording, cmd *vulkan.VkCreateSwapchainKHR) {
		r.store.CreateSwapchain(cmd.Swapchain)
	})
	always(l, func(r *recording, cmd *vulkan.VkDestroySwapchainKHR) {
		r.store.DestroySwapchain(cmd.Swapchain)
	})
	onSuccess(l, func(r *recording, cmd *vulkan.VkGetSwapchainImagesKHR) {
		if sc := r.store.Swapchain(cmd.Swapchain); sc != nil {
			sc.Images.Advance(cmd.Count, cmd.HasOutput)
		}
	})
}

// draw counts a draw of elements vertices, indices or indirect draws towards
// the depth pre-pass heuristic.
func (r *recording) draw(cb vulkan.VkCommandBuffer, elements uint64) {
	r.store.RecordDraw(cb, elements, r.settings.Thresholds.DepthPrePassMinDrawElements)
}
