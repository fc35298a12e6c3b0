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
	"github.com/google/vkadvisor/advisor/query"
	"github.com/google/vkadvisor/advisor/report"
	"github.com/google/vkadvisor/core/log"
)

func registerQueries(e *Engine) {
	on(e, 0, func(ctx context.Context, env *Env, cmd *vulkan.VkEnumeratePhysicalDevices) {
		checkQuery(ctx, env, cmd, api.Handle(cmd.Instance), query.PhysicalDevices,
			cmd.Count, cmd.HasOutput, "pPhysicalDevices", "pPhysicalDeviceCount")
	})
	on(e, 0, func(ctx context.Context, env *Env, cmd *vulkan.VkGetPhysicalDeviceQueueFamilyProperties) {
		checkQuery(ctx, env, cmd, api.Handle(cmd.PhysicalDevice), query.QueueFamilyProperties,
			cmd.Count, cmd.HasOutput, "pQueueFamilyProperties", "pQueueFamilyPropertyCount")
	})
	on(e, 0, func(ctx context.Context, env *Env, cmd *vulkan.VkGetPhysicalDeviceSurfaceFormatsKHR) {
		checkQuery(ctx, env, cmd, api.Handle(cmd.PhysicalDevice), query.SurfaceFormats,
			cmd.Count, cmd.HasOutput, "pSurfaceFormats", "pSurfaceFormatCount")
	})
	on(e, 0, func(ctx context.Context, env *Env, cmd *vulkan.VkGetPhysicalDeviceSurfacePresentModesKHR) {
		checkQuery(ctx, env, cmd, api.Handle(cmd.PhysicalDevice), query.SurfacePresentModes,
			cmd.Count, cmd.HasOutput, "pPresentModes", "pPresentModeCount")
	})
	on(e, 0, func(ctx context.Context, env *Env, cmd *vulkan.VkGetPhysicalDeviceDisplayPlanePropertiesKHR) {
		checkQuery(ctx, env, cmd, api.Handle(cmd.PhysicalDevice), query.DisplayPlaneProperties,
			cmd.Count, cmd.HasOutput, "pProperties", "pPropertyCount")
	})
	on(e, 0, checkSwapchainImagesQuery)
	on(e, 0, func(ctx context.Context, env *Env, cmd *vulkan.VkGetDisplayPlaneSupportedDisplaysKHR) {
		checkDisplayPlane(ctx, env, cmd, cmd.PhysicalDevice)
	})
	on(e, 0, func(ctx context.Context, env *Env, cmd *vulkan.VkGetDisplayPlaneCapabilitiesKHR) {
		checkDisplayPlane(ctx, env, cmd, cmd.PhysicalDevice)
	})
}

// checkQuery reports a details call of a two-call enumeration that was not
// preceded by a count call, or that supplies a capacity different from the
// count last returned.
func checkQuery(ctx context.Context, env *Env, cmd api.Cmd, h api.Handle, f query.Family, count uint32, hasOutput bool, array, countName string) {
	if !hasOutput {
		return
	}
	reportQuery(ctx, env, cmd, env.Store.Queries.CheckUsedBeforeQuery(h, f, count), array, countName)
}

func reportQuery(ctx context.Context, env *Env, cmd api.Cmd, s query.Snapshot, array, countName string) {
	name := cmd.CmdName()
	switch {
	case s.NeverQueried():
		env.report(ctx, cmd.Object(), "BestPractices-"+name+"-MissingQueryCount", report.Warning,
			"%s() called with non-NULL %s, but no prior positive value has been seen for %s.",
			name, array, countName)
	case s.CountMismatch():
		env.report(ctx, cmd.Object(), "BestPractices-"+name+"-CountMismatch", report.Warning,
			"%s() called with non-NULL %s and %s value %d, but the %s previously returned was %d.",
			name, array, countName, s.Supplied, countName, s.KnownCount)
	}
}

func checkSwapchainImagesQuery(ctx context.Context, env *Env, cmd *vulkan.VkGetSwapchainImagesKHR) {
	if !cmd.HasOutput {
		return
	}
	sc := env.Store.Swapchain(cmd.Swapchain)
	if sc == nil {
		log.D(ctx, "%v: no record of %v", cmd.CmdName(), cmd.Swapchain)
		return
	}
	reportQuery(ctx, env, cmd, sc.Images.Check(cmd.Count), "pSwapchainImages", "pSwapchainImageCount")
}

func checkDisplayPlane(ctx context.Context, env *Env, cmd api.Cmd, pd vulkan.VkPhysicalDevice) {
	if env.Store.Queries.State(api.Handle(pd), query.DisplayPlaneProperties) != query.Uncalled {
		return
	}
	env.report(ctx, cmd.Object(), "BestPractices-vkGetDisplayPlane-properties-not-queried", report.Warning,
		"%s() called before getting display plane properties from vkGetPhysicalDeviceDisplayPlanePropertiesKHR().",
		cmd.CmdName())
}
