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

package rules

import (
	"context"

	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/config"
	"github.com/google/vkadvisor/advisor/report"
)

func registerMemory(e *Engine) {
	on(e, 0, checkAllocateMemory)
	on(e, 0, checkBindBufferMemory)
	on(e, 0, checkBindImageMemory)
	on(e, 0, checkCreateBuffer)
	on(e, 0, checkCreateImage)
	on(e, config.VendorArm, checkCreateImageArm)
}

func checkAllocateMemory(ctx context.Context, env *Env, cmd *vulkan.VkAllocateMemory) {
	th := env.thresholds()
	if live := env.Store.LiveMemoryObjects(); live+1 > int64(th.MaxMemoryObjects) {
		env.report(ctx, cmd.Object(), "BestPractices-vkAllocateMemory-too-many-objects", report.PerformanceWarning,
			"Performance Warning: This app has > %d memory objects.", th.MaxMemoryObjects)
	}
	if uint64(cmd.AllocationSize) < th.MinDeviceAllocationSize {
		env.report(ctx, cmd.Object(), "BestPractices-vkAllocateMemory-small-allocation", report.PerformanceWarning,
			"vkAllocateMemory(): Allocating a VkDeviceMemory of size %d. This is a very small allocation (current threshold is %d bytes). "+
				"You should make large allocations and sub-allocate from one large VkDeviceMemory.",
			cmd.AllocationSize, th.MinDeviceAllocationSize)
	}
}

// smallDedicated returns true when a resource occupies a whole allocation
// that is smaller than the dedicated allocation threshold.
func smallDedicated(env *Env, allocation, requirements vulkan.VkDeviceSize) bool {
	return allocation == requirements && uint64(allocation) < env.thresholds().MinDedicatedAllocationSize
}

func checkBindBufferMemory(ctx context.Context, env *Env, cmd *vulkan.VkBindBufferMemory) {
	if smallDedicated(env, cmd.AllocationSize, cmd.RequirementsSize) {
		env.report(ctx, cmd.Object(), "BestPractices-vkBindBufferMemory-small-dedicated-allocation", report.PerformanceWarning,
			"vkBindBufferMemory(): Trying to bind %v to a memory block which is fully consumed by the buffer. "+
				"The required size of the allocation is %d, but smaller buffers like this should be sub-allocated from "+
				"larger memory blocks. (Current threshold is %d bytes.)",
			cmd.Buffer, cmd.AllocationSize, env.thresholds().MinDedicatedAllocationSize)
	}
}

func checkBindImageMemory(ctx context.Context, env *Env, cmd *vulkan.VkBindImageMemory) {
	if smallDedicated(env, cmd.AllocationSize, cmd.RequirementsSize) {
		env.report(ctx, cmd.Object(), "BestPractices-vkBindImageMemory-small-dedicated-allocation", report.PerformanceWarning,
			"vkBindImageMemory(): Trying to bind %v to a memory block which is fully consumed by the image. "+
				"The required size of the allocation is %d, but smaller images like this should be sub-allocated from "+
				"larger memory blocks. (Current threshold is %d bytes.)",
			cmd.Image, cmd.AllocationSize, env.thresholds().MinDedicatedAllocationSize)
	}

	if cmd.ImageUsage&vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT == 0 {
		return
	}
	flags, ok := env.Store.MemoryTypeFlags(cmd.Device, cmd.MemoryTypeIndex)
	if !ok || flags&vulkan.VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT != 0 {
		return
	}
	if env.Store.DeviceSupportsLazyMemory(cmd.Device) {
		env.report(ctx, cmd.Object(), "BestPractices-vkBindImageMemory-non-lazy-transient-image", report.PerformanceWarning,
			"vkBindImageMemory(): Attempting to bind memory type %d to %v which was created with TRANSIENT_ATTACHMENT_BIT, "+
				"but this memory type is not LAZILY_ALLOCATED_BIT. You should use memory objects with LAZILY_ALLOCATED_BIT "+
				"to save physical memory.", cmd.MemoryTypeIndex, cmd.Image)
	}
}

func checkCreateBuffer(ctx context.Context, env *Env, cmd *vulkan.VkCreateBuffer) {
	if cmd.SharingMode == vulkan.VkSharingMode_VK_SHARING_MODE_EXCLUSIVE && cmd.QueueFamilyIndexCount > 1 {
		env.report(ctx, cmd.Object(), "BestPractices-vkCreateBuffer-sharing-mode-exclusive", report.Warning,
			"Warning: Buffer (%v) specifies a sharing mode of VK_SHARING_MODE_EXCLUSIVE while specifying multiple queues "+
				"(queueFamilyIndexCount of %d).", cmd.Buffer, cmd.QueueFamilyIndexCount)
	}
}

func checkCreateImage(ctx context.Context, env *Env, cmd *vulkan.VkCreateImage) {
	if cmd.SharingMode == vulkan.VkSharingMode_VK_SHARING_MODE_EXCLUSIVE && cmd.QueueFamilyIndexCount > 1 {
		env.report(ctx, cmd.Object(), "BestPractices-vkCreateImage-sharing-mode-exclusive", report.Warning,
			"Warning: Image (%v) specifies a sharing mode of VK_SHARING_MODE_EXCLUSIVE while specifying multiple queues "+
				"(queueFamilyIndexCount of %d).", cmd.Image, cmd.QueueFamilyIndexCount)
	}
}

func checkCreateImageArm(ctx context.Context, env *Env, cmd *vulkan.VkCreateImage) {
	th := env.thresholds()
	if uint32(cmd.Samples) > th.MaxEfficientSamples {
		env.report(ctx, cmd.Object(), "BestPractices-vkCreateImage-too-large-sample-count", report.PerformanceWarning,
			"Trying to create an image with %d samples. The hardware revision may not have full throughput for "+
				"framebuffers with more than %d samples.", cmd.Samples, th.MaxEfficientSamples)
	}
	if cmd.Samples > vulkan.VkSampleCountFlagBits_VK_SAMPLE_COUNT_1_BIT &&
		cmd.Usage&vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT == 0 {
		env.report(ctx, cmd.Object(), "BestPractices-vkCreateImage-non-transient-ms-image", report.PerformanceWarning,
			"Trying to create a multisampled image, but createInfo.usage did not have VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT set. "+
				"Multisampled images may be resolved on-chip, and do not need to be backed by physical storage. "+
				"TRANSIENT_ATTACHMENT allows tiled GPUs to not back the multisampled image with physical memory.")
	}
}
