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

// The command types below carry the arguments of one intercepted call.
// Pointer arguments that the dispatch layer has already dereferenced appear as
// plain values. Attributes of objects referenced by the call that only the
// dispatch layer's object tracker knows (allocation sizes, image usage, ...)
// are resolved by the dispatch layer and passed alongside.
//
// For the two-call enumeration commands, Count is the capacity the caller
// supplied when the command is seen before the call and the number of
// elements the driver wrote (or reported) when seen after it. HasOutput is
// true when the details array pointer was non-null.

// Instance and physical device commands.

type VkCreateInstance struct {
	Instance              VkInstance
	APIVersion            uint32
	EnabledExtensionNames []string
}

type VkDestroyInstance struct {
	Instance VkInstance
}

type VkEnumeratePhysicalDevices struct {
	Instance        VkInstance
	Count           uint32
	HasOutput       bool
	PhysicalDevices []VkPhysicalDevice
}

type VkGetPhysicalDeviceQueueFamilyProperties struct {
	PhysicalDevice VkPhysicalDevice
	Count          uint32
	HasOutput      bool
}

type VkGetPhysicalDeviceFeatures struct {
	PhysicalDevice VkPhysicalDevice
}

// VkMemoryType is one entry of VkPhysicalDeviceMemoryProperties.memoryTypes.
type VkMemoryType struct {
	PropertyFlags VkMemoryPropertyFlags
	HeapIndex     uint32
}

type VkGetPhysicalDeviceMemoryProperties struct {
	PhysicalDevice VkPhysicalDevice
	MemoryTypes    []VkMemoryType
}

type VkGetPhysicalDeviceSurfaceCapabilitiesKHR struct {
	PhysicalDevice VkPhysicalDevice
	Surface        VkSurfaceKHR
}

type VkGetPhysicalDeviceSurfaceFormatsKHR struct {
	PhysicalDevice VkPhysicalDevice
	Surface        VkSurfaceKHR
	Count          uint32
	HasOutput      bool
}

type VkGetPhysicalDeviceSurfacePresentModesKHR struct {
	PhysicalDevice VkPhysicalDevice
	Surface        VkSurfaceKHR
	Count          uint32
	HasOutput      bool
}

type VkGetPhysicalDeviceDisplayPlanePropertiesKHR struct {
	PhysicalDevice VkPhysicalDevice
	Count          uint32
	HasOutput      bool
}

type VkGetDisplayPlaneSupportedDisplaysKHR struct {
	PhysicalDevice VkPhysicalDevice
	PlaneIndex     uint32
}

type VkGetDisplayPlaneCapabilitiesKHR struct {
	PhysicalDevice VkPhysicalDevice
	Mode           VkDisplayModeKHR
	PlaneIndex     uint32
}

type VkCreateDevice struct {
	PhysicalDevice        VkPhysicalDevice
	Device                VkDevice
	EnabledExtensionNames []string
	// EnabledFeatures is true when pEnabledFeatures was non-null.
	EnabledFeatures bool
}

type VkDestroyDevice struct {
	Device VkDevice
}

// Memory and resources.

type VkAllocateMemory struct {
	Device          VkDevice
	Memory          VkDeviceMemory
	AllocationSize  VkDeviceSize
	MemoryTypeIndex uint32
}

type VkFreeMemory struct {
	Device VkDevice
	Memory VkDeviceMemory
}

type VkCreateBuffer struct {
	Device                VkDevice
	Buffer                VkBuffer
	Size                  VkDeviceSize
	Usage                 VkBufferUsageFlags
	SharingMode           VkSharingMode
	QueueFamilyIndexCount uint32
}

type VkCreateImage struct {
	Device                VkDevice
	Image                 VkImage
	Format                VkFormat
	Samples               VkSampleCountFlagBits
	Usage                 VkImageUsageFlags
	SharingMode           VkSharingMode
	QueueFamilyIndexCount uint32
}

type VkBindBufferMemory struct {
	Device       VkDevice
	Buffer       VkBuffer
	Memory       VkDeviceMemory
	MemoryOffset VkDeviceSize
	// Resolved: size of the bound allocation and the buffer's memory
	// requirements.
	AllocationSize   VkDeviceSize
	RequirementsSize VkDeviceSize
}

type VkBindImageMemory struct {
	Device       VkDevice
	Image        VkImage
	Memory       VkDeviceMemory
	MemoryOffset VkDeviceSize
	// Resolved from the allocation and the image.
	AllocationSize   VkDeviceSize
	RequirementsSize VkDeviceSize
	MemoryTypeIndex  uint32
	ImageUsage       VkImageUsageFlags
}

// Render passes.

type VkAttachmentDescription struct {
	Format         VkFormat
	Samples        VkSampleCountFlagBits
	LoadOp         VkAttachmentLoadOp
	StoreOp        VkAttachmentStoreOp
	StencilLoadOp  VkAttachmentLoadOp
	StencilStoreOp VkAttachmentStoreOp
	InitialLayout  VkImageLayout
	FinalLayout    VkImageLayout
}

type VkAttachmentReference struct {
	Attachment uint32
	Layout     VkImageLayout
}

type VkSubpassDescription struct {
	PipelineBindPoint      VkPipelineBindPoint
	InputAttachments       []VkAttachmentReference
	ColorAttachments       []VkAttachmentReference
	DepthStencilAttachment *VkAttachmentReference
}

type VkCreateRenderPass struct {
	Device      VkDevice
	RenderPass  VkRenderPass
	Attachments []VkAttachmentDescription
	Subpasses   []VkSubpassDescription
}

// VkFramebufferAttachment pairs a framebuffer image view with the render pass
// attachment description it is used for.
type VkFramebufferAttachment struct {
	ImageUsage  VkImageUsageFlags
	Description VkAttachmentDescription
}

type VkCreateFramebuffer struct {
	Device      VkDevice
	Framebuffer VkFramebuffer
	RenderPass  VkRenderPass
	Attachments []VkFramebufferAttachment
}

// Samplers and pipelines.

type VkCreateSampler struct {
	Device                  VkDevice
	Sampler                 VkSampler
	AddressModeU            VkSamplerAddressMode
	AddressModeV            VkSamplerAddressMode
	AddressModeW            VkSamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        bool
	MaxAnisotropy           float32
	MinLod                  float32
	MaxLod                  float32
	BorderColor             VkBorderColor
	UnnormalizedCoordinates bool
}

type VkVertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VkVertexInputRate
}

type VkPipelineColorBlendAttachmentState struct {
	BlendEnable    bool
	ColorWriteMask VkColorComponentFlags
}

type VkPipelineDepthStencilStateCreateInfo struct {
	DepthTestEnable  bool
	DepthWriteEnable bool
	DepthCompareOp   VkCompareOp
}

type VkGraphicsPipelineCreateInfo struct {
	VertexBindings        []VkVertexInputBindingDescription
	RasterizationSamples  VkSampleCountFlagBits
	ColorBlendAttachments []VkPipelineColorBlendAttachmentState
	DepthStencil          *VkPipelineDepthStencilStateCreateInfo
}

type VkCreateGraphicsPipelines struct {
	Device        VkDevice
	PipelineCache VkPipelineCache
	CreateInfos   []VkGraphicsPipelineCreateInfo
	Pipelines     []VkPipeline
}

// VkComputePipelineCreateInfo holds the work group size of the compute
// shader, resolved from its LocalSize execution mode.
type VkComputePipelineCreateInfo struct {
	LocalSizeX, LocalSizeY, LocalSizeZ uint32
}

type VkCreateComputePipelines struct {
	Device        VkDevice
	PipelineCache VkPipelineCache
	CreateInfos   []VkComputePipelineCreateInfo
	Pipelines     []VkPipeline
}

type VkDestroyPipeline struct {
	Device   VkDevice
	Pipeline VkPipeline
}

// Command pools and buffers.

type VkCreateCommandPool struct {
	Device           VkDevice
	CommandPool      VkCommandPool
	Flags            VkCommandPoolCreateFlags
	QueueFamilyIndex uint32
}

type VkAllocateCommandBuffers struct {
	Device         VkDevice
	CommandPool    VkCommandPool
	CommandBuffers []VkCommandBuffer
}

type VkFreeCommandBuffers struct {
	Device         VkDevice
	CommandPool    VkCommandPool
	CommandBuffers []VkCommandBuffer
}

type VkBeginCommandBuffer struct {
	CommandBuffer VkCommandBuffer
	Flags         VkCommandBufferUsageFlags
}

type VkCmdBeginRenderPass struct {
	CommandBuffer VkCommandBuffer
	RenderPass    VkRenderPass
	Framebuffer   VkFramebuffer
	// Resolved: the subpasses of RenderPass.
	Subpasses []VkSubpassDescription
}

type VkCmdEndRenderPass struct {
	CommandBuffer VkCommandBuffer
}

type VkCmdBindPipeline struct {
	CommandBuffer     VkCommandBuffer
	PipelineBindPoint VkPipelineBindPoint
	Pipeline          VkPipeline
}

type VkCmdDraw struct {
	CommandBuffer VkCommandBuffer
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32
}

type VkCmdDrawIndexed struct {
	CommandBuffer VkCommandBuffer
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	VertexOffset  int32
	FirstInstance uint32
	// Resolved from the bound index buffer and pipeline. Indices holds the
	// IndexCount indices read by the draw, or nil when the index data is not
	// host visible.
	IndexType        VkIndexType
	PrimitiveRestart bool
	Indices          []uint32
}

type VkCmdDrawIndirect struct {
	CommandBuffer VkCommandBuffer
	Buffer        VkBuffer
	Offset        VkDeviceSize
	DrawCount     uint32
	Stride        uint32
}

type VkCmdDrawIndexedIndirect struct {
	CommandBuffer VkCommandBuffer
	Buffer        VkBuffer
	Offset        VkDeviceSize
	DrawCount     uint32
	Stride        uint32
}

type VkCmdDispatch struct {
	CommandBuffer VkCommandBuffer
	GroupCountX   uint32
	GroupCountY   uint32
	GroupCountZ   uint32
}

type VkCmdPipelineBarrier struct {
	CommandBuffer VkCommandBuffer
	SrcStageMask  VkPipelineStageFlags
	DstStageMask  VkPipelineStageFlags
}

type VkSubmitInfo struct {
	WaitDstStageMasks []VkPipelineStageFlags
	CommandBuffers    []VkCommandBuffer
}

type VkQueueSubmit struct {
	Queue   VkQueue
	Submits []VkSubmitInfo
	Fence   VkFence
}

// Descriptor sets.

type VkAllocateDescriptorSets struct {
	Device         VkDevice
	DescriptorPool VkDescriptorPool
	DescriptorSets []VkDescriptorSet
}

type VkFreeDescriptorSets struct {
	Device         VkDevice
	DescriptorPool VkDescriptorPool
	DescriptorSets []VkDescriptorSet
}

type VkDestroyDescriptorPool struct {
	Device         VkDevice
	DescriptorPool VkDescriptorPool
}

// Swapchains and presentation.

type VkCreateSwapchainKHR struct {
	Device                VkDevice
	Swapchain             VkSwapchainKHR
	Surface               VkSurfaceKHR
	MinImageCount         uint32
	ImageSharingMode      VkSharingMode
	QueueFamilyIndexCount uint32
	PresentMode           VkPresentModeKHR
}

type VkDestroySwapchainKHR struct {
	Device    VkDevice
	Swapchain VkSwapchainKHR
}

type VkGetSwapchainImagesKHR struct {
	Device    VkDevice
	Swapchain VkSwapchainKHR
	Count     uint32
	HasOutput bool
}

type VkAcquireNextImageKHR struct {
	Device    VkDevice
	Swapchain VkSwapchainKHR
	Timeout   uint64
	Fence     VkFence
}

type VkQueuePresentKHR struct {
	Queue      VkQueue
	Swapchains []VkSwapchainKHR
}

type VkWaitForFences struct {
	Device  VkDevice
	Fences  []VkFence
	WaitAll bool
	Timeout uint64
}
