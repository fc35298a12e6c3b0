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

	"github.com/google/vkadvisor/advisor/api"
	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/config"
	"github.com/google/vkadvisor/advisor/report"
)

func registerPipeline(e *Engine) {
	on(e, 0, func(ctx context.Context, env *Env, cmd *vulkan.VkCreateGraphicsPipelines) {
		checkPipelineCache(ctx, env, cmd, len(cmd.CreateInfos), cmd.PipelineCache)
	})
	on(e, 0, func(ctx context.Context, env *Env, cmd *vulkan.VkCreateComputePipelines) {
		checkPipelineCache(ctx, env, cmd, len(cmd.CreateInfos), cmd.PipelineCache)
	})
	on(e, config.VendorArm, checkGraphicsPipelinesArm)
	on(e, config.VendorArm, checkComputePipelinesArm)
	on(e, config.VendorArm, checkCreateSampler)
}

func checkPipelineCache(ctx context.Context, env *Env, cmd api.Cmd, count int, cache vulkan.VkPipelineCache) {
	if count > 1 && cache == 0 {
		env.report(ctx, cmd.Object(), "BestPractices-vkCreatePipelines-multiple-pipelines-no-cache", report.PerformanceWarning,
			"Performance Warning: This %s() call is creating multiple pipelines but is not using a pipeline cache, "+
				"which may help with performance.", cmd.CmdName())
	}
}

func checkGraphicsPipelinesArm(ctx context.Context, env *Env, cmd *vulkan.VkCreateGraphicsPipelines) {
	th := env.thresholds()
	for i, info := range cmd.CreateInfos {
		instanced := uint32(0)
		for _, b := range info.VertexBindings {
			if b.InputRate == vulkan.VkVertexInputRate_VK_VERTEX_INPUT_RATE_INSTANCE {
				instanced++
			}
		}
		if instanced > th.MaxInstancedVertexBuffers {
			env.report(ctx, cmd.Object(), "BestPractices-vkCreateGraphicsPipelines-too-many-instanced-vertex-buffers", report.PerformanceWarning,
				"pCreateInfos[%d]: The pipeline is using %d instanced vertex buffers (current limit: %d), but this can be "+
					"inefficient on the GPU. If using instanced vertex attributes prefer interleaving them in a single buffer.",
				i, instanced, th.MaxInstancedVertexBuffers)
		}
		if uint32(info.RasterizationSamples) > th.MaxEfficientSamples {
			env.report(ctx, cmd.Object(), "BestPractices-vkCreateGraphicsPipelines-too-large-sample-count", report.PerformanceWarning,
				"pCreateInfos[%d]: Trying to create a pipeline with %d samples. The hardware revision may not have full "+
					"throughput for framebuffers with more than %d samples.", i, info.RasterizationSamples, th.MaxEfficientSamples)
		}
	}
}

// misaligned returns true when a work group dimension larger than one is not
// a multiple of alignment.
func misaligned(dim, alignment uint32) bool {
	return alignment != 0 && dim > 1 && dim%alignment != 0
}

func checkComputePipelinesArm(ctx context.Context, env *Env, cmd *vulkan.VkCreateComputePipelines) {
	th := env.thresholds()
	for i, info := range cmd.CreateInfos {
		x, y, z := info.LocalSizeX, info.LocalSizeY, info.LocalSizeZ
		threads := uint64(x) * uint64(y) * uint64(z)
		if threads > uint64(th.MaxWorkGroupThreads) {
			env.report(ctx, cmd.Object(), "BestPractices-vkCreateComputePipelines-compute-work-group-size", report.PerformanceWarning,
				"pCreateInfos[%d]: compute shader with work group dimensions (%d, %d, %d) (%d threads total) has more threads "+
					"than advised in a single work group. It is advised to use work groups with less than %d threads, "+
					"especially when using barrier() or shared memory.", i, x, y, z, threads, th.MaxWorkGroupThreads)
		}
		a := th.WorkGroupAlignment
		if threads == 1 || misaligned(x, a) || misaligned(y, a) || misaligned(z, a) {
			env.report(ctx, cmd.Object(), "BestPractices-vkCreateComputePipelines-compute-thread-group-alignment", report.PerformanceWarning,
				"pCreateInfos[%d]: compute shader with work group dimensions (%d, %d, %d) is not aligned to %d threads. "+
					"Not aligning work group sizes to %d may leave threads idle on the shader core.", i, x, y, z, a, a)
		}
	}
}

func checkCreateSampler(ctx context.Context, env *Env, cmd *vulkan.VkCreateSampler) {
	const prefix = "BestPractices-vkCreateSampler-"
	o := cmd.Object()
	if cmd.AddressModeU != cmd.AddressModeV || cmd.AddressModeU != cmd.AddressModeW {
		env.report(ctx, o, prefix+"different-wrapping-modes", report.PerformanceWarning,
			"Creating a sampler object with wrapping modes which do not match (U = %d, V = %d, W = %d). "+
				"This may cause reduced performance even if only U (1D image) or U/V wrapping modes (2D image) are actually used. "+
				"If you need different wrapping modes, disregard this warning.", cmd.AddressModeU, cmd.AddressModeV, cmd.AddressModeW)
	}
	if cmd.MinLod != 0 || cmd.MaxLod < vulkan.VK_LOD_CLAMP_NONE {
		env.report(ctx, o, prefix+"lod-clamping", report.PerformanceWarning,
			"Creating a sampler object with LOD clamping (minLod = %v, maxLod = %v). This may cause reduced performance. "+
				"Instead of clamping LOD in the sampler, consider using a VkImageView which restricts the mip-levels, "+
				"set minLod to 0.0, and maxLod to VK_LOD_CLAMP_NONE.", cmd.MinLod, cmd.MaxLod)
	}
	if cmd.MipLodBias != 0 {
		env.report(ctx, o, prefix+"lod-bias", report.PerformanceWarning,
			"Creating a sampler object with LOD bias != 0.0 (%v). This will lead to less efficient descriptors being created "+
				"and may cause reduced performance.", cmd.MipLodBias)
	}
	border := vulkan.VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER
	if (cmd.AddressModeU == border || cmd.AddressModeV == border || cmd.AddressModeW == border) &&
		cmd.BorderColor != vulkan.VkBorderColor_VK_BORDER_COLOR_FLOAT_TRANSPARENT_BLACK {
		env.report(ctx, o, prefix+"border-clamp-color", report.PerformanceWarning,
			"Creating a sampler object with border clamping and borderColor != VK_BORDER_COLOR_FLOAT_TRANSPARENT_BLACK. "+
				"This will lead to less efficient descriptors being created and may cause reduced performance. "+
				"If possible, use VK_BORDER_COLOR_FLOAT_TRANSPARENT_BLACK as the border color.")
	}
	if cmd.UnnormalizedCoordinates {
		env.report(ctx, o, prefix+"unnormalized-coordinates", report.PerformanceWarning,
			"Creating a sampler object with unnormalized coordinates. This will lead to less efficient descriptors being "+
				"created and may cause reduced performance.")
	}
	if cmd.AnisotropyEnable {
		env.report(ctx, o, prefix+"anisotropy", report.PerformanceWarning,
			"Creating a sampler object with anisotropy (maxAnisotropy = %v). This will lead to less efficient descriptors "+
				"being created and may cause reduced performance.", cmd.MaxAnisotropy)
	}
}
