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

import "fmt"

// VkResult is the status code returned by a command.
type VkResult int32

const (
	VkResult_VK_SUCCESS                                     VkResult = 0
	VkResult_VK_NOT_READY                                   VkResult = 1
	VkResult_VK_TIMEOUT                                     VkResult = 2
	VkResult_VK_EVENT_SET                                   VkResult = 3
	VkResult_VK_EVENT_RESET                                 VkResult = 4
	VkResult_VK_INCOMPLETE                                  VkResult = 5
	VkResult_VK_ERROR_OUT_OF_HOST_MEMORY                    VkResult = -1
	VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY                  VkResult = -2
	VkResult_VK_ERROR_INITIALIZATION_FAILED                 VkResult = -3
	VkResult_VK_ERROR_DEVICE_LOST                           VkResult = -4
	VkResult_VK_ERROR_MEMORY_MAP_FAILED                     VkResult = -5
	VkResult_VK_ERROR_LAYER_NOT_PRESENT                     VkResult = -6
	VkResult_VK_ERROR_EXTENSION_NOT_PRESENT                 VkResult = -7
	VkResult_VK_ERROR_FEATURE_NOT_PRESENT                   VkResult = -8
	VkResult_VK_ERROR_INCOMPATIBLE_DRIVER                   VkResult = -9
	VkResult_VK_ERROR_TOO_MANY_OBJECTS                      VkResult = -10
	VkResult_VK_ERROR_FORMAT_NOT_SUPPORTED                  VkResult = -11
	VkResult_VK_ERROR_FRAGMENTED_POOL                       VkResult = -12
	VkResult_VK_ERROR_UNKNOWN                               VkResult = -13
	VkResult_VK_ERROR_OUT_OF_POOL_MEMORY                    VkResult = -1000069000
	VkResult_VK_ERROR_INVALID_EXTERNAL_HANDLE               VkResult = -1000072003
	VkResult_VK_ERROR_FRAGMENTATION                         VkResult = -1000161000
	VkResult_VK_ERROR_INVALID_OPAQUE_CAPTURE_ADDRESS        VkResult = -1000257000
	VkResult_VK_ERROR_SURFACE_LOST_KHR                      VkResult = -1000000000
	VkResult_VK_ERROR_NATIVE_WINDOW_IN_USE_KHR              VkResult = -1000000001
	VkResult_VK_SUBOPTIMAL_KHR                              VkResult = 1000001003
	VkResult_VK_ERROR_OUT_OF_DATE_KHR                       VkResult = -1000001004
	VkResult_VK_ERROR_INCOMPATIBLE_DISPLAY_KHR              VkResult = -1000003001
	VkResult_VK_ERROR_VALIDATION_FAILED_EXT                 VkResult = -1000011001
	VkResult_VK_ERROR_INVALID_SHADER_NV                     VkResult = -1000012000
	VkResult_VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT   VkResult = -1000255000
	VkResult_VK_PIPELINE_COMPILE_REQUIRED                   VkResult = 1000297000
	VkResult_VK_ERROR_INVALID_DRM_FORMAT_MODIFIER_PLANE_EXT VkResult = -1000158000
)

var resultNames = map[VkResult]string{
	VkResult_VK_SUCCESS:                                     "VK_SUCCESS",
	VkResult_VK_NOT_READY:                                   "VK_NOT_READY",
	VkResult_VK_TIMEOUT:                                     "VK_TIMEOUT",
	VkResult_VK_EVENT_SET:                                   "VK_EVENT_SET",
	VkResult_VK_EVENT_RESET:                                 "VK_EVENT_RESET",
	VkResult_VK_INCOMPLETE:                                  "VK_INCOMPLETE",
	VkResult_VK_ERROR_OUT_OF_HOST_MEMORY:                    "VK_ERROR_OUT_OF_HOST_MEMORY",
	VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY:                  "VK_ERROR_OUT_OF_DEVICE_MEMORY",
	VkResult_VK_ERROR_INITIALIZATION_FAILED:                 "VK_ERROR_INITIALIZATION_FAILED",
	VkResult_VK_ERROR_DEVICE_LOST:                           "VK_ERROR_DEVICE_LOST",
	VkResult_VK_ERROR_MEMORY_MAP_FAILED:                     "VK_ERROR_MEMORY_MAP_FAILED",
	VkResult_VK_ERROR_LAYER_NOT_PRESENT:                     "VK_ERROR_LAYER_NOT_PRESENT",
	VkResult_VK_ERROR_EXTENSION_NOT_PRESENT:                 "VK_ERROR_EXTENSION_NOT_PRESENT",
	VkResult_VK_ERROR_FEATURE_NOT_PRESENT:                   "VK_ERROR_FEATURE_NOT_PRESENT",
	VkResult_VK_ERROR_INCOMPATIBLE_DRIVER:                   "VK_ERROR_INCOMPATIBLE_DRIVER",
	VkResult_VK_ERROR_TOO_MANY_OBJECTS:                      "VK_ERROR_TOO_MANY_OBJECTS",
	VkResult_VK_ERROR_FORMAT_NOT_SUPPORTED:                  "VK_ERROR_FORMAT_NOT_SUPPORTED",
	VkResult_VK_ERROR_FRAGMENTED_POOL:                       "VK_ERROR_FRAGMENTED_POOL",
	VkResult_VK_ERROR_UNKNOWN:                               "VK_ERROR_UNKNOWN",
	VkResult_VK_ERROR_OUT_OF_POOL_MEMORY:                    "VK_ERROR_OUT_OF_POOL_MEMORY",
	VkResult_VK_ERROR_INVALID_EXTERNAL_HANDLE:               "VK_ERROR_INVALID_EXTERNAL_HANDLE",
	VkResult_VK_ERROR_FRAGMENTATION:                         "VK_ERROR_FRAGMENTATION",
	VkResult_VK_ERROR_INVALID_OPAQUE_CAPTURE_ADDRESS:        "VK_ERROR_INVALID_OPAQUE_CAPTURE_ADDRESS",
	VkResult_VK_ERROR_SURFACE_LOST_KHR:                      "VK_ERROR_SURFACE_LOST_KHR",
	VkResult_VK_ERROR_NATIVE_WINDOW_IN_USE_KHR:              "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR",
	VkResult_VK_SUBOPTIMAL_KHR:                              "VK_SUBOPTIMAL_KHR",
	VkResult_VK_ERROR_OUT_OF_DATE_KHR:                       "VK_ERROR_OUT_OF_DATE_KHR",
	VkResult_VK_ERROR_INCOMPATIBLE_DISPLAY_KHR:              "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR",
	VkResult_VK_ERROR_VALIDATION_FAILED_EXT:                 "VK_ERROR_VALIDATION_FAILED_EXT",
	VkResult_VK_ERROR_INVALID_SHADER_NV:                     "VK_ERROR_INVALID_SHADER_NV",
	VkResult_VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT:   "VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT",
	VkResult_VK_PIPELINE_COMPILE_REQUIRED:                   "VK_PIPELINE_COMPILE_REQUIRED",
	VkResult_VK_ERROR_INVALID_DRM_FORMAT_MODIFIER_PLANE_EXT: "VK_ERROR_INVALID_DRM_FORMAT_MODIFIER_PLANE_LAYOUT_EXT",
}

func (r VkResult) String() string {
	if n, ok := resultNames[r]; ok {
		return n
	}
	return fmt.Sprintf("VkResult(%d)", int32(r))
}

// IsError returns true for the negative, error result codes.
func (r VkResult) IsError() bool { return r < 0 }

type VkFormat uint32

const (
	VkFormat_VK_FORMAT_UNDEFINED           VkFormat = 0
	VkFormat_VK_FORMAT_R8G8B8A8_UNORM      VkFormat = 37
	VkFormat_VK_FORMAT_R8G8B8A8_SRGB       VkFormat = 43
	VkFormat_VK_FORMAT_B8G8R8A8_UNORM      VkFormat = 44
	VkFormat_VK_FORMAT_B8G8R8A8_SRGB       VkFormat = 50
	VkFormat_VK_FORMAT_R16G16B16A16_SFLOAT VkFormat = 97
	VkFormat_VK_FORMAT_D16_UNORM           VkFormat = 124
	VkFormat_VK_FORMAT_X8_D24_UNORM_PACK32 VkFormat = 125
	VkFormat_VK_FORMAT_D32_SFLOAT          VkFormat = 126
	VkFormat_VK_FORMAT_S8_UINT             VkFormat = 127
	VkFormat_VK_FORMAT_D16_UNORM_S8_UINT   VkFormat = 128
	VkFormat_VK_FORMAT_D24_UNORM_S8_UINT   VkFormat = 129
	VkFormat_VK_FORMAT_D32_SFLOAT_S8_UINT  VkFormat = 130
)

// HasStencil returns true if the format has a stencil aspect.
func (f VkFormat) HasStencil() bool {
	switch f {
	case VkFormat_VK_FORMAT_S8_UINT,
		VkFormat_VK_FORMAT_D16_UNORM_S8_UINT,
		VkFormat_VK_FORMAT_D24_UNORM_S8_UINT,
		VkFormat_VK_FORMAT_D32_SFLOAT_S8_UINT:
		return true
	}
	return false
}

type VkImageLayout uint32

const (
	VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED                        VkImageLayout = 0
	VkImageLayout_VK_IMAGE_LAYOUT_GENERAL                          VkImageLayout = 1
	VkImageLayout_VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL         VkImageLayout = 2
	VkImageLayout_VK_IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL VkImageLayout = 3
	VkImageLayout_VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL         VkImageLayout = 5
	VkImageLayout_VK_IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL             VkImageLayout = 7
	VkImageLayout_VK_IMAGE_LAYOUT_PRESENT_SRC_KHR                  VkImageLayout = 1000001002
)

type VkAttachmentLoadOp uint32

const (
	VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_LOAD      VkAttachmentLoadOp = 0
	VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_CLEAR     VkAttachmentLoadOp = 1
	VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_DONT_CARE VkAttachmentLoadOp = 2
)

type VkAttachmentStoreOp uint32

const (
	VkAttachmentStoreOp_VK_ATTACHMENT_STORE_OP_STORE     VkAttachmentStoreOp = 0
	VkAttachmentStoreOp_VK_ATTACHMENT_STORE_OP_DONT_CARE VkAttachmentStoreOp = 1
)

type VkCompareOp uint32

const (
	VkCompareOp_VK_COMPARE_OP_NEVER            VkCompareOp = 0
	VkCompareOp_VK_COMPARE_OP_LESS             VkCompareOp = 1
	VkCompareOp_VK_COMPARE_OP_EQUAL            VkCompareOp = 2
	VkCompareOp_VK_COMPARE_OP_LESS_OR_EQUAL    VkCompareOp = 3
	VkCompareOp_VK_COMPARE_OP_GREATER          VkCompareOp = 4
	VkCompareOp_VK_COMPARE_OP_NOT_EQUAL        VkCompareOp = 5
	VkCompareOp_VK_COMPARE_OP_GREATER_OR_EQUAL VkCompareOp = 6
	VkCompareOp_VK_COMPARE_OP_ALWAYS           VkCompareOp = 7
)

type VkSamplerAddressMode uint32

const (
	VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_REPEAT          VkSamplerAddressMode = 0
	VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT VkSamplerAddressMode = 1
	VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE   VkSamplerAddressMode = 2
	VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER VkSamplerAddressMode = 3
)

type VkBorderColor uint32

const (
	VkBorderColor_VK_BORDER_COLOR_FLOAT_TRANSPARENT_BLACK VkBorderColor = 0
	VkBorderColor_VK_BORDER_COLOR_INT_TRANSPARENT_BLACK   VkBorderColor = 1
	VkBorderColor_VK_BORDER_COLOR_FLOAT_OPAQUE_BLACK      VkBorderColor = 2
	VkBorderColor_VK_BORDER_COLOR_INT_OPAQUE_BLACK        VkBorderColor = 3
	VkBorderColor_VK_BORDER_COLOR_FLOAT_OPAQUE_WHITE      VkBorderColor = 4
	VkBorderColor_VK_BORDER_COLOR_INT_OPAQUE_WHITE        VkBorderColor = 5
)

const (
	VkSampleCountFlagBits_VK_SAMPLE_COUNT_1_BIT  VkSampleCountFlagBits = 1
	VkSampleCountFlagBits_VK_SAMPLE_COUNT_2_BIT  VkSampleCountFlagBits = 2
	VkSampleCountFlagBits_VK_SAMPLE_COUNT_4_BIT  VkSampleCountFlagBits = 4
	VkSampleCountFlagBits_VK_SAMPLE_COUNT_8_BIT  VkSampleCountFlagBits = 8
	VkSampleCountFlagBits_VK_SAMPLE_COUNT_16_BIT VkSampleCountFlagBits = 16
)

type (
	VkImageUsageFlags     uint32
	VkImageUsageFlagBits  = VkImageUsageFlags
	VkBufferUsageFlags    uint32
	VkMemoryPropertyFlags uint32
)

const (
	VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSFER_SRC_BIT             VkImageUsageFlagBits = 0x00000001
	VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSFER_DST_BIT             VkImageUsageFlagBits = 0x00000002
	VkImageUsageFlagBits_VK_IMAGE_USAGE_SAMPLED_BIT                  VkImageUsageFlagBits = 0x00000004
	VkImageUsageFlagBits_VK_IMAGE_USAGE_STORAGE_BIT                  VkImageUsageFlagBits = 0x00000008
	VkImageUsageFlagBits_VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT         VkImageUsageFlagBits = 0x00000010
	VkImageUsageFlagBits_VK_IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT VkImageUsageFlagBits = 0x00000020
	VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT     VkImageUsageFlagBits = 0x00000040
	VkImageUsageFlagBits_VK_IMAGE_USAGE_INPUT_ATTACHMENT_BIT         VkImageUsageFlagBits = 0x00000080
)

const (
	VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_DEVICE_LOCAL_BIT     VkMemoryPropertyFlags = 0x00000001
	VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_HOST_VISIBLE_BIT     VkMemoryPropertyFlags = 0x00000002
	VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_HOST_COHERENT_BIT    VkMemoryPropertyFlags = 0x00000004
	VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_HOST_CACHED_BIT      VkMemoryPropertyFlags = 0x00000008
	VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT VkMemoryPropertyFlags = 0x00000010
)

type VkSharingMode uint32

const (
	VkSharingMode_VK_SHARING_MODE_EXCLUSIVE  VkSharingMode = 0
	VkSharingMode_VK_SHARING_MODE_CONCURRENT VkSharingMode = 1
)

type VkPipelineBindPoint uint32

const (
	VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS VkPipelineBindPoint = 0
	VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE  VkPipelineBindPoint = 1
)

type VkVertexInputRate uint32

const (
	VkVertexInputRate_VK_VERTEX_INPUT_RATE_VERTEX   VkVertexInputRate = 0
	VkVertexInputRate_VK_VERTEX_INPUT_RATE_INSTANCE VkVertexInputRate = 1
)

type VkColorComponentFlags uint32

const (
	VkColorComponentFlagBits_VK_COLOR_COMPONENT_R_BIT VkColorComponentFlags = 0x1
	VkColorComponentFlagBits_VK_COLOR_COMPONENT_G_BIT VkColorComponentFlags = 0x2
	VkColorComponentFlagBits_VK_COLOR_COMPONENT_B_BIT VkColorComponentFlags = 0x4
	VkColorComponentFlagBits_VK_COLOR_COMPONENT_A_BIT VkColorComponentFlags = 0x8
)

type VkCommandPoolCreateFlags uint32

const (
	VkCommandPoolCreateFlagBits_VK_COMMAND_POOL_CREATE_TRANSIENT_BIT            VkCommandPoolCreateFlags = 0x1
	VkCommandPoolCreateFlagBits_VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT VkCommandPoolCreateFlags = 0x2
)

type VkCommandBufferUsageFlags uint32

const (
	VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT      VkCommandBufferUsageFlags = 0x1
	VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT VkCommandBufferUsageFlags = 0x2
	VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT     VkCommandBufferUsageFlags = 0x4
)

type VkPipelineStageFlags uint32

const (
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_TOP_OF_PIPE_BIT     VkPipelineStageFlags = 0x00000001
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_VERTEX_SHADER_BIT   VkPipelineStageFlags = 0x00000008
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_FRAGMENT_SHADER_BIT VkPipelineStageFlags = 0x00000080
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_COMPUTE_SHADER_BIT  VkPipelineStageFlags = 0x00000800
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_TRANSFER_BIT        VkPipelineStageFlags = 0x00001000
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT  VkPipelineStageFlags = 0x00002000
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_ALL_GRAPHICS_BIT    VkPipelineStageFlags = 0x00008000
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_ALL_COMMANDS_BIT    VkPipelineStageFlags = 0x00010000
)

type VkIndexType uint32

const (
	VkIndexType_VK_INDEX_TYPE_UINT16    VkIndexType = 0
	VkIndexType_VK_INDEX_TYPE_UINT32    VkIndexType = 1
	VkIndexType_VK_INDEX_TYPE_UINT8_EXT VkIndexType = 1000265000
)

// RestartValue returns the primitive restart sentinel for the index type.
func (t VkIndexType) RestartValue() uint32 {
	switch t {
	case VkIndexType_VK_INDEX_TYPE_UINT16:
		return 0xffff
	case VkIndexType_VK_INDEX_TYPE_UINT8_EXT:
		return 0xff
	default:
		return 0xffffffff
	}
}

type VkPresentModeKHR uint32

const (
	VkPresentModeKHR_VK_PRESENT_MODE_IMMEDIATE_KHR    VkPresentModeKHR = 0
	VkPresentModeKHR_VK_PRESENT_MODE_MAILBOX_KHR      VkPresentModeKHR = 1
	VkPresentModeKHR_VK_PRESENT_MODE_FIFO_KHR         VkPresentModeKHR = 2
	VkPresentModeKHR_VK_PRESENT_MODE_FIFO_RELAXED_KHR VkPresentModeKHR = 3
)
