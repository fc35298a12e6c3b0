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
	"github.com/google/vkadvisor/advisor/extensions"
	"github.com/google/vkadvisor/advisor/query"
	"github.com/google/vkadvisor/advisor/report"
)

func registerInstance(e *Engine) {
	on(e, 0, checkCreateInstance)
	on(e, 0, checkCreateDevice)
}

func checkCreateInstance(ctx context.Context, env *Env, cmd *vulkan.VkCreateInstance) {
	for _, name := range cmd.EnabledExtensionNames {
		if extensions.IsDevice(name) {
			env.report(ctx, cmd.Object(), "BestPractices-vkCreateInstance-extension-mismatch", report.Warning,
				"Attempting to enable Device Extension %s at CreateInstance time.", name)
		}
		checkExtension(ctx, env, cmd, name, cmd.APIVersion)
	}
}

func checkCreateDevice(ctx context.Context, env *Env, cmd *vulkan.VkCreateDevice) {
	apiVersion := env.Store.APIVersionOf(cmd.PhysicalDevice)
	for _, name := range cmd.EnabledExtensionNames {
		if extensions.IsInstance(name) {
			env.report(ctx, cmd.Object(), "BestPractices-vkCreateDevice-extension-mismatch", report.Warning,
				"Attempting to enable Instance Extension %s at CreateDevice time.", name)
		}
		checkExtension(ctx, env, cmd, name, apiVersion)
	}

	if cmd.EnabledFeatures && env.Store.Queries.State(api.Handle(cmd.PhysicalDevice), query.DeviceFeatures) == query.Uncalled {
		env.report(ctx, cmd.Object(), "BestPractices-vkCreateDevice-PhysicalDeviceFeatures-NotCalled", report.Warning,
			"vkCreateDevice() called before getting physical device features from vkGetPhysicalDeviceFeatures().")
	}
}

// checkExtension reports the deprecation and special use of an extension
// enabled by cmd.
func checkExtension(ctx context.Context, env *Env, cmd api.Cmd, name string, apiVersion uint32) {
	prefix := "BestPractices-" + cmd.CmdName()
	if d, ok := extensions.Deprecated(name); ok && d.AppliesTo(apiVersion) {
		env.report(ctx, cmd.Object(), prefix+"-deprecated-extension", report.Warning, "%s", d.Message(name))
	}
	if uses, ok := extensions.SpecialUse(name); ok {
		env.report(ctx, cmd.Object(), prefix+"-specialuse-extension", report.Warning,
			"%s", extensions.SpecialUseMessage(cmd.CmdName(), name, uses))
	}
}
