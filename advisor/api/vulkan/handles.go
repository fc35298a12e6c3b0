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

import (
	"fmt"

	"github.com/google/vkadvisor/advisor/api"
)

type (
	VkInstance            api.Handle
	VkPhysicalDevice      api.Handle
	VkDevice              api.Handle
	VkQueue               api.Handle
	VkCommandPool         api.Handle
	VkCommandBuffer       api.Handle
	VkDeviceMemory        api.Handle
	VkBuffer              api.Handle
	VkImage               api.Handle
	VkSampler             api.Handle
	VkRenderPass          api.Handle
	VkFramebuffer         api.Handle
	VkPipeline            api.Handle
	VkPipelineCache       api.Handle
	VkDescriptorPool      api.Handle
	VkDescriptorSet       api.Handle
	VkFence               api.Handle
	VkSurfaceKHR          api.Handle
	VkSwapchainKHR        api.Handle
	VkDisplayModeKHR      api.Handle
	VkDeviceSize          uint64
	VkSampleCountFlagBits uint32
)

func (h VkInstance) String() string       { return handleString("VkInstance", uint64(h)) }
func (h VkPhysicalDevice) String() string { return handleString("VkPhysicalDevice", uint64(h)) }
func (h VkDevice) String() string         { return handleString("VkDevice", uint64(h)) }
func (h VkCommandBuffer) String() string  { return handleString("VkCommandBuffer", uint64(h)) }
func (h VkBuffer) String() string         { return handleString("VkBuffer", uint64(h)) }
func (h VkImage) String() string          { return handleString("VkImage", uint64(h)) }
func (h VkPipeline) String() string       { return handleString("VkPipeline", uint64(h)) }
func (h VkSwapchainKHR) String() string   { return handleString("VkSwapchainKHR", uint64(h)) }

func handleString(ty string, h uint64) string {
	return fmt.Sprintf("%s 0x%x", ty, h)
}

// VK_ATTACHMENT_UNUSED marks an attachment reference that refers to no
// attachment.
const VK_ATTACHMENT_UNUSED = ^uint32(0)

// VK_LOD_CLAMP_NONE is the maxLod value that disables LOD clamping.
const VK_LOD_CLAMP_NONE = float32(1000.0)

// MakeAPIVersion packs a version the way VK_MAKE_API_VERSION does.
func MakeAPIVersion(variant, major, minor, patch uint32) uint32 {
	return variant<<29 | major<<22 | minor<<12 | patch
}

// APIVersionMajor extracts the major number of a packed API version.
func APIVersionMajor(v uint32) uint32 { return (v >> 22) & 0x7f }

// APIVersionMinor extracts the minor number of a packed API version.
func APIVersionMinor(v uint32) uint32 { return (v >> 12) & 0x3ff }

// APIVersionPatch extracts the patch number of a packed API version.
func APIVersionPatch(v uint32) uint32 { return v & 0xfff }

const (
	VK_API_VERSION_1_0 = uint32(1<<22 | 0<<12)
	VK_API_VERSION_1_1 = uint32(1<<22 | 1<<12)
	VK_API_VERSION_1_2 = uint32(1<<22 | 2<<12)
	VK_API_VERSION_1_3 = uint32(1<<22 | 3<<12)
)
