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
	"github.com/google/vkadvisor/advisor/query"
	"github.com/google/vkadvisor/advisor/report"
	"github.com/google/vkadvisor/core/log"
)

func registerSwapchain(e *Engine) {
	on(e, 0, checkCreateSwapchain)
	on(e, config.VendorArm, checkSwapchainImageCount)
	on(e, 0, checkAcquireNextImage)
}

// surfaceQueries are the surface queries expected before a swapchain is
// created, with the command that answers each.
var surfaceQueries = []struct {
	family query.Family
	cmd    string
}{
	{query.SurfaceCapabilities, "vkGetPhysicalDeviceSurfaceCapabilitiesKHR"},
	{query.SurfacePresentModes, "vkGetPhysicalDeviceSurfacePresentModesKHR"},
	{query.SurfaceFormats, "vkGetPhysicalDeviceSurfaceFormatsKHR"},
}

func checkCreateSwapchain(ctx context.Context, env *Env, cmd *vulkan.VkCreateSwapchainKHR) {
	if pd, ok := env.Store.PhysicalDeviceOf(cmd.Device); ok {
		for _, q := range surfaceQueries {
			if env.Store.Queries.State(api.Handle(pd), q.family) == query.Uncalled {
				env.report(ctx, cmd.Object(), "BestPractices-vkCreateSwapchainKHR-surface-not-retrieved", report.Warning,
					"vkCreateSwapchainKHR() called before getting surface information from %s().", q.cmd)
			}
		}
	} else {
		log.D(ctx, "%v: no record of the physical device of %v", cmd.CmdName(), cmd.Device)
	}

	if cmd.ImageSharingMode == vulkan.VkSharingMode_VK_SHARING_MODE_EXCLUSIVE && cmd.QueueFamilyIndexCount > 1 {
		env.report(ctx, cmd.Object(), "BestPractices-vkCreateSwapchainKHR-sharing-mode-exclusive", report.Warning,
			"vkCreateSwapchainKHR() called with imageSharingMode VK_SHARING_MODE_EXCLUSIVE and %d queue family indices. "+
				"The queue family indices are ignored in exclusive mode.", cmd.QueueFamilyIndexCount)
	}
}

func checkSwapchainImageCount(ctx context.Context, env *Env, cmd *vulkan.VkCreateSwapchainKHR) {
	if cmd.MinImageCount == 2 {
		env.report(ctx, cmd.Object(), "BestPractices-vkCreateSwapchainKHR-suboptimal-swapchain-image-count", report.PerformanceWarning,
			"A swapchain with minImageCount of 2 was requested. Use at least 3 images to let the GPU and CPU work "+
				"in parallel with vertical sync enabled.")
	}
}

func checkAcquireNextImage(ctx context.Context, env *Env, cmd *vulkan.VkAcquireNextImageKHR) {
	sc := env.Store.Swapchain(cmd.Swapchain)
	if sc == nil {
		log.D(ctx, "%v: no record of %v", cmd.CmdName(), cmd.Swapchain)
		return
	}
	if sc.Images.State == query.Uncalled {
		env.report(ctx, cmd.Object(), "BestPractices-vkAcquireNextImageKHR-SwapchainImagesNotFound", report.Warning,
			"vkAcquireNextImageKHR() called before vkGetSwapchainImagesKHR(). The application cannot know which image was acquired.")
	}
}
