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

package vulkan

import "github.com/google/vkadvisor/advisor/api"

// CmdName and Object for every command. Creation commands report against the
// parent object since the created handle does not exist until after the call.

func (*VkCreateInstance) CmdName() string { return "vkCreateInstance" }
func (c *VkCreateInstance) Object() api.Handle { return api.Handle(c.Instance) }

func (*VkDestroyInstance) CmdName() string { return "vkDestroyInstance" }
func (c *VkDestroyInstance) Object() api.Handle { return api.Handle(c.Instance) }

func (*VkEnumeratePhysicalDevices) CmdName() string { return "vkEnumeratePhysicalDevices" }
func (c *VkEnumeratePhysicalDevices) Object() api.Handle { return api.Handle(c.Instance) }

func (*VkGetPhysicalDeviceQueueFamilyProperties) CmdName() string { return "vkGetPhysicalDeviceQueueFamilyProperties" }
func (c *VkGetPhysicalDeviceQueueFamilyProperties) Object() api.Handle { return api.Handle(c.PhysicalDevice) }

func (*VkGetPhysicalDeviceFeatures) CmdName() string { return "vkGetPhysicalDeviceFeatures" }
func (c *VkGetPhysicalDeviceFeatures) Object() api.Handle { return api.Handle(c.PhysicalDevice) }

func (*VkGetPhysicalDeviceMemoryProperties) CmdName() string { return "vkGetPhysicalDeviceMemoryProperties" }
func (c *VkGetPhysicalDeviceMemoryProperties) Object() api.Handle { return api.Handle(c.PhysicalDevice) }

func (*VkGetPhysicalDeviceSurfaceCapabilitiesKHR) CmdName() string { return "vkGetPhysicalDeviceSurfaceCapabilitiesKHR" }
func (c *VkGetPhysicalDeviceSurfaceCapabilitiesKHR) Object() api.Handle { return api.Handle(c.PhysicalDevice) }

func (*VkGetPhysicalDeviceSurfaceFormatsKHR) CmdName() string { return "vkGetPhysicalDeviceSurfaceFormatsKHR" }
func (c *VkGetPhysicalDeviceSurfaceFormatsKHR) Object() api.Handle { return api.Handle(c.PhysicalDevice) }

func (*VkGetPhysicalDeviceSurfacePresentModesKHR) CmdName() string { return "vkGetPhysicalDeviceSurfacePresentModesKHR" }
func (c *VkGetPhysicalDeviceSurfacePresentModesKHR) Object() api.Handle { return api.Handle(c.PhysicalDevice) }

func (*VkGetPhysicalDeviceDisplayPlanePropertiesKHR) CmdName() string { return "vkGetPhysicalDeviceDisplayPlanePropertiesKHR" }
func (c *VkGetPhysicalDeviceDisplayPlanePropertiesKHR) Object() api.Handle { return api.Handle(c.PhysicalDevice) }

func (*VkGetDisplayPlaneSupportedDisplaysKHR) CmdName() string { return "vkGetDisplayPlaneSupportedDisplaysKHR" }
func (c *VkGetDisplayPlaneSupportedDisplaysKHR) Object() api.Handle { return api.Handle(c.PhysicalDevice) }

func (*VkGetDisplayPlaneCapabilitiesKHR) CmdName() string { return "vkGetDisplayPlaneCapabilitiesKHR" }
func (c *VkGetDisplayPlaneCapabilitiesKHR) Object() api.Handle { return api.Handle(c.PhysicalDevice) }

func (*VkCreateDevice) CmdName() string { return "vkCreateDevice" }
func (c *VkCreateDevice) Object() api.Handle { return api.Handle(c.PhysicalDevice) }

func (*VkDestroyDevice) CmdName() string { return "vkDestroyDevice" }
func (c *VkDestroyDevice) Object() api.Handle { return api.Handle(c.Device) }

func (*VkAllocateMemory) CmdName() string { return "vkAllocateMemory" }
func (c *VkAllocateMemory) Object() api.Handle { return api.Handle(c.Device) }

func (*VkFreeMemory) CmdName() string { return "vkFreeMemory" }
func (c *VkFreeMemory) Object() api.Handle { return api.Handle(c.Memory) }

func (*VkCreateBuffer) CmdName() string { return "vkCreateBuffer" }
func (c *VkCreateBuffer) Object() api.Handle { return api.Handle(c.Device) }

func (*VkCreateImage) CmdName() string { return "vkCreateImage" }
func (c *VkCreateImage) Object() api.Handle { return api.Handle(c.Device) }

func (*VkBindBufferMemory) CmdName() string { return "vkBindBufferMemory" }
func (c *VkBindBufferMemory) Object() api.Handle { return api.Handle(c.Buffer) }

func (*VkBindImageMemory) CmdName() string { return "vkBindImageMemory" }
func (c *VkBindImageMemory) Object() api.Handle { return api.Handle(c.Image) }

func (*VkCreateRenderPass) CmdName() string { return "vkCreateRenderPass" }
func (c *VkCreateRenderPass) Object() api.Handle { return api.Handle(c.Device) }

func (*VkCreateFramebuffer) CmdName() string { return "vkCreateFramebuffer" }
func (c *VkCreateFramebuffer) Object() api.Handle { return api.Handle(c.Device) }

func (*VkCreateSampler) CmdName() string { return "vkCreateSampler" }
func (c *VkCreateSampler) Object() api.Handle { return api.Handle(c.Device) }

func (*VkCreateGraphicsPipelines) CmdName() string { return "vkCreateGraphicsPipelines" }
func (c *VkCreateGraphicsPipelines) Object() api.Handle { return api.Handle(c.Device) }

func (*VkCreateComputePipelines) CmdName() string { return "vkCreateComputePipelines" }
func (c *VkCreateComputePipelines) Object() api.Handle { return api.Handle(c.Device) }

func (*VkDestroyPipeline) CmdName() string { return "vkDestroyPipeline" }
func (c *VkDestroyPipeline) Object() api.Handle { return api.Handle(c.Pipeline) }

func (*VkCreateCommandPool) CmdName() string { return "vkCreateCommandPool" }
func (c *VkCreateCommandPool) Object() api.Handle { return api.Handle(c.Device) }

func (*VkAllocateCommandBuffers) CmdName() string { return "vkAllocateCommandBuffers" }
func (c *VkAllocateCommandBuffers) Object() api.Handle { return api.Handle(c.Device) }

func (*VkFreeCommandBuffers) CmdName() string { return "vkFreeCommandBuffers" }
func (c *VkFreeCommandBuffers) Object() api.Handle { return api.Handle(c.Device) }

func (*VkBeginCommandBuffer) CmdName() string { return "vkBeginCommandBuffer" }
func (c *VkBeginCommandBuffer) Object() api.Handle { return api.Handle(c.CommandBuffer) }

func (*VkCmdBeginRenderPass) CmdName() string { return "vkCmdBeginRenderPass" }
func (c *VkCmdBeginRenderPass) Object() api.Handle { return api.Handle(c.CommandBuffer) }

func (*VkCmdEndRenderPass) CmdName() string { return "vkCmdEndRenderPass" }
func (c *VkCmdEndRenderPass) Object() api.Handle { return api.Handle(c.CommandBuffer) }

func (*VkCmdBindPipeline) CmdName() string { return "vkCmdBindPipeline" }
func (c *VkCmdBindPipeline) Object() api.Handle { return api.Handle(c.CommandBuffer) }

func (*VkCmdDraw) CmdName() string { return "vkCmdDraw" }
func (c *VkCmdDraw) Object() api.Handle { return api.Handle(c.CommandBuffer) }

func (*VkCmdDrawIndexed) CmdName() string { return "vkCmdDrawIndexed" }
func (c *VkCmdDrawIndexed) Object() api.Handle { return api.Handle(c.CommandBuffer) }

func (*VkCmdDrawIndirect) CmdName() string { return "vkCmdDrawIndirect" }
func (c *VkCmdDrawIndirect) Object() api.Handle { return api.Handle(c.CommandBuffer) }

func (*VkCmdDrawIndexedIndirect) CmdName() string { return "vkCmdDrawIndexedIndirect" }
func (c *VkCmdDrawIndexedIndirect) Object() api.Handle { return api.Handle(c.CommandBuffer) }

func (*VkCmdDispatch) CmdName() string { return "vkCmdDispatch" }
func (c *VkCmdDispatch) Object() api.Handle { return api.Handle(c.CommandBuffer) }

func (*VkCmdPipelineBarrier) CmdName() string { return "vkCmdPipelineBarrier" }
func (c *VkCmdPipelineBarrier) Object() api.Handle { return api.Handle(c.CommandBuffer) }

func (*VkQueueSubmit) CmdName() string { return "vkQueueSubmit" }
func (c *VkQueueSubmit) Object() api.Handle { return api.Handle(c.Queue) }

func (*VkAllocateDescriptorSets) CmdName() string { return "vkAllocateDescriptorSets" }
func (c *VkAllocateDescriptorSets) Object() api.Handle { return api.Handle(c.DescriptorPool) }

func (*VkFreeDescriptorSets) CmdName() string { return "vkFreeDescriptorSets" }
func (c *VkFreeDescriptorSets) Object() api.Handle { return api.Handle(c.DescriptorPool) }

func (*VkDestroyDescriptorPool) CmdName() string { return "vkDestroyDescriptorPool" }
func (c *VkDestroyDescriptorPool) Object() api.Handle { return api.Handle(c.DescriptorPool) }

func (*VkCreateSwapchainKHR) CmdName() string { return "vkCreateSwapchainKHR" }
func (c *VkCreateSwapchainKHR) Object() api.Handle { return api.Handle(c.Device) }

func (*VkDestroySwapchainKHR) CmdName() string { return "vkDestroySwapchainKHR" }
func (c *VkDestroySwapchainKHR) Object() api.Handle { return api.Handle(c.Swapchain) }

func (*VkGetSwapchainImagesKHR) CmdName() string { return "vkGetSwapchainImagesKHR" }
func (c *VkGetSwapchainImagesKHR) Object() api.Handle { return api.Handle(c.Swapchain) }

func (*VkAcquireNextImageKHR) CmdName() string { return "vkAcquireNextImageKHR" }
func (c *VkAcquireNextImageKHR) Object() api.Handle { return api.Handle(c.Swapchain) }

func (*VkQueuePresentKHR) CmdName() string { return "vkQueuePresentKHR" }
func (c *VkQueuePresentKHR) Object() api.Handle { return api.Handle(c.Queue) }

func (*VkWaitForFences) CmdName() string { return "vkWaitForFences" }
func (c *VkWaitForFences) Object() api.Handle { return api.Handle(c.Device) }
