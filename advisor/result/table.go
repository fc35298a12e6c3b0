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

package result

import "github.com/google/vkadvisor/advisor/api/vulkan"

// Codes lists the result codes documented for a command, besides VK_SUCCESS.
type Codes struct {
	Errors    []vulkan.VkResult
	Successes []vulkan.VkResult
}

// For returns the documented codes of the command named cmd.
func For(cmd string) (Codes, bool) {
	c, ok := table[cmd]
	return c, ok
}

const (
	outOfHostMemory   = vulkan.VkResult_VK_ERROR_OUT_OF_HOST_MEMORY
	outOfDeviceMemory = vulkan.VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY
	initFailed        = vulkan.VkResult_VK_ERROR_INITIALIZATION_FAILED
	deviceLost        = vulkan.VkResult_VK_ERROR_DEVICE_LOST
	surfaceLost       = vulkan.VkResult_VK_ERROR_SURFACE_LOST_KHR
	outOfDate         = vulkan.VkResult_VK_ERROR_OUT_OF_DATE_KHR
	exclusiveLost     = vulkan.VkResult_VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT
	captureAddress    = vulkan.VkResult_VK_ERROR_INVALID_OPAQUE_CAPTURE_ADDRESS
	incomplete        = vulkan.VkResult_VK_INCOMPLETE
)

func errs(r ...vulkan.VkResult) []vulkan.VkResult { return r }

var oom = errs(outOfHostMemory, outOfDeviceMemory)

var table = map[string]Codes{
	"vkCreateInstance": {Errors: errs(outOfHostMemory, outOfDeviceMemory, initFailed,
		vulkan.VkResult_VK_ERROR_LAYER_NOT_PRESENT,
		vulkan.VkResult_VK_ERROR_EXTENSION_NOT_PRESENT,
		vulkan.VkResult_VK_ERROR_INCOMPATIBLE_DRIVER)},
	"vkEnumeratePhysicalDevices": {
		Errors:    errs(outOfHostMemory, outOfDeviceMemory, initFailed),
		Successes: errs(incomplete),
	},
	"vkGetPhysicalDeviceSurfaceCapabilitiesKHR": {Errors: errs(outOfHostMemory, outOfDeviceMemory, surfaceLost)},
	"vkGetPhysicalDeviceSurfaceFormatsKHR": {
		Errors:    errs(outOfHostMemory, outOfDeviceMemory, surfaceLost),
		Successes: errs(incomplete),
	},
	"vkGetPhysicalDeviceSurfacePresentModesKHR": {
		Errors:    errs(outOfHostMemory, outOfDeviceMemory, surfaceLost),
		Successes: errs(incomplete),
	},
	"vkGetPhysicalDeviceDisplayPlanePropertiesKHR": {Errors: oom, Successes: errs(incomplete)},
	"vkGetDisplayPlaneSupportedDisplaysKHR":        {Errors: oom, Successes: errs(incomplete)},
	"vkGetDisplayPlaneCapabilitiesKHR":             {Errors: oom},
	"vkCreateDevice": {Errors: errs(outOfHostMemory, outOfDeviceMemory, initFailed,
		vulkan.VkResult_VK_ERROR_EXTENSION_NOT_PRESENT,
		vulkan.VkResult_VK_ERROR_FEATURE_NOT_PRESENT,
		vulkan.VkResult_VK_ERROR_TOO_MANY_OBJECTS,
		deviceLost)},
	"vkAllocateMemory": {Errors: errs(outOfHostMemory, outOfDeviceMemory,
		vulkan.VkResult_VK_ERROR_INVALID_EXTERNAL_HANDLE, captureAddress)},
	"vkCreateBuffer":      {Errors: errs(outOfHostMemory, outOfDeviceMemory, captureAddress)},
	"vkCreateImage":       {Errors: oom},
	"vkBindBufferMemory":  {Errors: errs(outOfHostMemory, outOfDeviceMemory, captureAddress)},
	"vkBindImageMemory":   {Errors: oom},
	"vkCreateRenderPass":  {Errors: oom},
	"vkCreateFramebuffer": {Errors: oom},
	"vkCreateSampler":     {Errors: errs(outOfHostMemory, outOfDeviceMemory, captureAddress)},
	"vkCreateGraphicsPipelines": {
		Errors:    errs(outOfHostMemory, outOfDeviceMemory, vulkan.VkResult_VK_ERROR_INVALID_SHADER_NV),
		Successes: errs(vulkan.VkResult_VK_PIPELINE_COMPILE_REQUIRED),
	},
	"vkCreateComputePipelines": {
		Errors:    errs(outOfHostMemory, outOfDeviceMemory, vulkan.VkResult_VK_ERROR_INVALID_SHADER_NV),
		Successes: errs(vulkan.VkResult_VK_PIPELINE_COMPILE_REQUIRED),
	},
	"vkCreateCommandPool":      {Errors: oom},
	"vkAllocateCommandBuffers": {Errors: oom},
	"vkBeginCommandBuffer":     {Errors: oom},
	"vkQueueSubmit":            {Errors: errs(outOfHostMemory, outOfDeviceMemory, deviceLost)},
	"vkAllocateDescriptorSets": {Errors: errs(outOfHostMemory, outOfDeviceMemory,
		vulkan.VkResult_VK_ERROR_FRAGMENTED_POOL,
		vulkan.VkResult_VK_ERROR_OUT_OF_POOL_MEMORY)},
	"vkCreateSwapchainKHR": {Errors: errs(outOfHostMemory, outOfDeviceMemory, deviceLost, surfaceLost,
		vulkan.VkResult_VK_ERROR_NATIVE_WINDOW_IN_USE_KHR, initFailed)},
	"vkGetSwapchainImagesKHR": {Errors: oom, Successes: errs(incomplete)},
	"vkAcquireNextImageKHR": {
		Errors:    errs(outOfHostMemory, outOfDeviceMemory, deviceLost, outOfDate, surfaceLost, exclusiveLost),
		Successes: errs(vulkan.VkResult_VK_TIMEOUT, vulkan.VkResult_VK_NOT_READY, vulkan.VkResult_VK_SUBOPTIMAL_KHR),
	},
	"vkQueuePresentKHR": {
		Errors:    errs(outOfHostMemory, outOfDeviceMemory, deviceLost, outOfDate, surfaceLost, exclusiveLost),
		Successes: errs(vulkan.VkResult_VK_SUBOPTIMAL_KHR),
	},
	"vkWaitForFences": {
		Errors:    errs(outOfHostMemory, outOfDeviceMemory, deviceLost),
		Successes: errs(vulkan.VkResult_VK_TIMEOUT),
	},
}
