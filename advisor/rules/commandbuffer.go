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

func registerCommandBuffer(e *Engine) {
	on(e, 0, checkBeginCommandBuffer)
	on(e, config.VendorArm, checkBeginCommandBufferArm)
	on(e, config.VendorArm, checkCreateCommandPool)
}

func checkBeginCommandBuffer(ctx context.Context, env *Env, cmd *vulkan.VkBeginCommandBuffer) {
	if cmd.Flags&vulkan.VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT != 0 {
		env.report(ctx, cmd.Object(), "BestPractices-vkBeginCommandBuffer-simultaneous-use", report.Warning,
			"vkBeginCommandBuffer(): VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT is set.")
	}
}

func checkBeginCommandBufferArm(ctx context.Context, env *Env, cmd *vulkan.VkBeginCommandBuffer) {
	if cmd.Flags&vulkan.VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT == 0 {
		env.report(ctx, cmd.Object(), "BestPractices-vkBeginCommandBuffer-one-time-submit", report.PerformanceWarning,
			"vkBeginCommandBuffer(): VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT is not set. "+
				"For best performance on Mali GPUs, consider setting ONE_TIME_SUBMIT by default.")
	}
}

func checkCreateCommandPool(ctx context.Context, env *Env, cmd *vulkan.VkCreateCommandPool) {
	if cmd.Flags&vulkan.VkCommandPoolCreateFlagBits_VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT != 0 {
		env.report(ctx, cmd.Object(), "BestPractices-vkCreateCommandPool-command-buffer-reset", report.PerformanceWarning,
			"vkCreateCommandPool(): VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT is set. "+
				"Consider resetting entire pools instead.")
	}
}
