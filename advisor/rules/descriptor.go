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

func registerDescriptor(e *Engine) {
	on(e, config.VendorArm, checkAllocateDescriptorSets)
}

func checkAllocateDescriptorSets(ctx context.Context, env *Env, cmd *vulkan.VkAllocateDescriptorSets) {
	if free := env.Store.FreeDescriptorSetCount(cmd.DescriptorPool); free > 0 {
		env.report(ctx, cmd.Object(), "BestPractices-vkAllocateDescriptorSets-suboptimal-reuse", report.PerformanceWarning,
			"Descriptor set memory was allocated via vkAllocateDescriptorSets() for sets which were previously freed "+
				"in the same logical device (%d freed sets in the pool). On some drivers or architectures it may be "+
				"most optimal to re-use existing descriptor sets.", free)
	}
}
