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
	"github.com/google/vkadvisor/advisor/ptcache"
	"github.com/google/vkadvisor/advisor/report"
	"github.com/google/vkadvisor/core/log"
)

func registerDraw(e *Engine) {
	on(e, 0, checkDraw)
	on(e, 0, checkDrawIndexed)
	on(e, config.VendorArm, checkSmallIndexedDraws)
	on(e, config.VendorArm, checkIndexBuffer)
	on(e, 0, func(ctx context.Context, env *Env, cmd *vulkan.VkCmdDrawIndirect) {
		checkDrawCount(ctx, env, cmd, cmd.DrawCount)
	})
	on(e, 0, func(ctx context.Context, env *Env, cmd *vulkan.VkCmdDrawIndexedIndirect) {
		checkDrawCount(ctx, env, cmd, cmd.DrawCount)
	})
	on(e, 0, checkDispatch)
	on(e, 0, checkPipelineBarrier)
	on(e, 0, checkQueueSubmit)
}

func checkDraw(ctx context.Context, env *Env, cmd *vulkan.VkCmdDraw) {
	checkInstanceCount(ctx, env, cmd, cmd.InstanceCount)
}

func checkDrawIndexed(ctx context.Context, env *Env, cmd *vulkan.VkCmdDrawIndexed) {
	checkInstanceCount(ctx, env, cmd, cmd.InstanceCount)
}

func checkInstanceCount(ctx context.Context, env *Env, cmd api.Cmd, instances uint32) {
	if instances == 0 {
		env.report(ctx, cmd.Object(), "BestPractices-"+cmd.CmdName()+"-instance-count-zero", report.Warning,
			"Warning: You are calling %s() with an instanceCount of Zero.", cmd.CmdName())
	}
}

func checkDrawCount(ctx context.Context, env *Env, cmd api.Cmd, draws uint32) {
	if draws == 0 {
		env.report(ctx, cmd.Object(), "BestPractices-"+cmd.CmdName()+"-draw-count-zero", report.Warning,
			"Warning: You are calling %s() with a drawCount of Zero.", cmd.CmdName())
	}
}

func checkDispatch(ctx context.Context, env *Env, cmd *vulkan.VkCmdDispatch) {
	if cmd.GroupCountX == 0 || cmd.GroupCountY == 0 || cmd.GroupCountZ == 0 {
		env.report(ctx, cmd.Object(), "BestPractices-vkCmdDispatch-group-count-zero", report.Warning,
			"Warning: You are calling vkCmdDispatch() while one or more groupCounts are zero (groupCountX = %d, "+
				"groupCountY = %d, groupCountZ = %d).", cmd.GroupCountX, cmd.GroupCountY, cmd.GroupCountZ)
	}
}

// checkStageFlags reports the use of the catch-all pipeline stages.
func checkStageFlags(ctx context.Context, env *Env, cmd api.Cmd, flags vulkan.VkPipelineStageFlags) {
	for _, s := range []struct {
		bit  vulkan.VkPipelineStageFlags
		name string
	}{
		{vulkan.VkPipelineStageFlagBits_VK_PIPELINE_STAGE_ALL_GRAPHICS_BIT, "VK_PIPELINE_STAGE_ALL_GRAPHICS_BIT"},
		{vulkan.VkPipelineStageFlagBits_VK_PIPELINE_STAGE_ALL_COMMANDS_BIT, "VK_PIPELINE_STAGE_ALL_COMMANDS_BIT"},
	} {
		if flags&s.bit != 0 {
			env.report(ctx, cmd.Object(), "BestPractices-pipeline-stage-flags", report.Warning,
				"You are using %s when %s() is called.", s.name, cmd.CmdName())
		}
	}
}

func checkPipelineBarrier(ctx context.Context, env *Env, cmd *vulkan.VkCmdPipelineBarrier) {
	checkStageFlags(ctx, env, cmd, cmd.SrcStageMask)
	checkStageFlags(ctx, env, cmd, cmd.DstStageMask)
}

func checkQueueSubmit(ctx context.Context, env *Env, cmd *vulkan.VkQueueSubmit) {
	for _, s := range cmd.Submits {
		for _, m := range s.WaitDstStageMasks {
			checkStageFlags(ctx, env, cmd, m)
		}
	}
}

// checkSmallIndexedDraws warns once per recording, on the draw that takes the
// tally of small indexed draws to its limit.
func checkSmallIndexedDraws(ctx context.Context, env *Env, cmd *vulkan.VkCmdDrawIndexed) {
	th := env.thresholds()
	if th.MaxSmallIndexedDraws == 0 {
		return
	}
	if uint64(cmd.IndexCount)*uint64(cmd.InstanceCount) > uint64(th.SmallIndexedDrawIndices) {
		return
	}
	n, ok := env.Store.SmallIndexedDraws(cmd.CommandBuffer)
	if !ok {
		log.D(ctx, "%v: no record of %v", cmd.CmdName(), cmd.CommandBuffer)
		return
	}
	if n == th.MaxSmallIndexedDraws-1 {
		env.report(ctx, cmd.Object(), "BestPractices-vkCmdDrawIndexed-many-small-indexed-drawcalls", report.PerformanceWarning,
			"The command buffer contains many small indexed drawcalls (at least %d drawcalls with less than %d indices "+
				"each). This may cause pipeline bubbles. You can try batching drawcalls or instancing when applicable.",
			th.MaxSmallIndexedDraws, th.SmallIndexedDrawIndices)
	}
}

// checkIndexBuffer scores the indices of the draw against a model of the
// post-transform vertex cache.
func checkIndexBuffer(ctx context.Context, env *Env, cmd *vulkan.VkCmdDrawIndexed) {
	if cmd.Indices == nil {
		return
	}
	th := env.thresholds()
	a := ptcache.Analyze(cmd.Indices, cmd.PrimitiveRestart, cmd.IndexType.RestartValue(), ptcache.Config{
		MinUtilization: th.MinIndexBufferUtilization,
		MinHitRate:     th.MinCacheHitRate,
	})
	if a.Degenerate {
		return
	}
	if a.Sparse {
		env.report(ctx, cmd.Object(), "BestPractices-vkCmdDrawIndexed-sparse-index-buffer", report.PerformanceWarning,
			"The indices which were specified for the draw call only utilise approximately %.2f%% of the bound vertex "+
				"range [%d, %d]. Consider compacting the vertices referenced by the index buffer.",
			a.Density, a.MinIndex, a.MaxIndex)
		return
	}
	if a.LowUtilization {
		env.report(ctx, cmd.Object(), "BestPractices-vkCmdDrawIndexed-index-buffer-utilization", report.PerformanceWarning,
			"The indices which were specified for the draw call reference %d distinct vertices of the range [%d, %d] "+
				"(%.2f%% utilization, threshold %.2f%%). Consider compacting the vertices referenced by the index buffer.",
			a.DistinctReferenced, a.MinIndex, a.MaxIndex, a.Utilization*100, th.MinIndexBufferUtilization*100)
	}
	if a.Thrashing {
		env.report(ctx, cmd.Object(), "BestPractices-vkCmdDrawIndexed-post-transform-cache-thrashing", report.PerformanceWarning,
			"The indices which were specified for the draw call are estimated to cause thrashing of the post-transform "+
				"vertex cache, with a hit-rate of %.2f%%. Consider reordering the indices to improve locality.",
			a.CacheHitRate*100)
	}
}
