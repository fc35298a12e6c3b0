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
	"github.com/google/vkadvisor/core/log"
)

func registerRenderPass(e *Engine) {
	on(e, 0, checkCreateRenderPass)
	on(e, 0, checkCreateFramebuffer)
	on(e, config.VendorArm, checkDepthPrePass)
}

// loadsUndefined returns true when an attachment loads contents that its
// initial layout leaves undefined.
func loadsUndefined(a vulkan.VkAttachmentDescription) bool {
	if a.InitialLayout != vulkan.VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED {
		return false
	}
	load := vulkan.VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_LOAD
	if a.Format != vulkan.VkFormat_VK_FORMAT_S8_UINT && a.LoadOp == load {
		return true
	}
	return a.Format.HasStencil() && a.StencilLoadOp == load
}

func checkCreateRenderPass(ctx context.Context, env *Env, cmd *vulkan.VkCreateRenderPass) {
	for i, a := range cmd.Attachments {
		if loadsUndefined(a) {
			env.report(ctx, cmd.Object(), "BestPractices-vkCreateRenderPass-attatchment", report.Warning,
				"Render pass has attachment %d with loadOp == VK_ATTACHMENT_LOAD_OP_LOAD and initialLayout == "+
					"VK_IMAGE_LAYOUT_UNDEFINED. This is probably not what you intended. Consider using "+
					"VK_ATTACHMENT_LOAD_OP_DONT_CARE instead if the image truly is undefined at the start of the render pass.", i)
		}
	}
}

// canBeTransient returns true when neither the load nor the store of the
// attachment needs its contents in memory.
func canBeTransient(a vulkan.VkAttachmentDescription) bool {
	noMemory := func(load vulkan.VkAttachmentLoadOp, store vulkan.VkAttachmentStoreOp) bool {
		return load != vulkan.VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_LOAD &&
			store != vulkan.VkAttachmentStoreOp_VK_ATTACHMENT_STORE_OP_STORE
	}
	switch {
	case a.Format == vulkan.VkFormat_VK_FORMAT_S8_UINT:
		return noMemory(a.StencilLoadOp, a.StencilStoreOp)
	case a.Format.HasStencil():
		return noMemory(a.LoadOp, a.StoreOp) && noMemory(a.StencilLoadOp, a.StencilStoreOp)
	default:
		return noMemory(a.LoadOp, a.StoreOp)
	}
}

func checkCreateFramebuffer(ctx context.Context, env *Env, cmd *vulkan.VkCreateFramebuffer) {
	lazy := env.Store.DeviceSupportsLazyMemory(cmd.Device)
	for i, a := range cmd.Attachments {
		should := canBeTransient(a.Description)
		is := a.ImageUsage&vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT != 0
		switch {
		case should && !is && lazy:
			env.report(ctx, cmd.Object(), "BestPractices-vkCreateFramebuffer-attachment-should-be-transient", report.PerformanceWarning,
				"Attachment %d in VkFramebuffer uses loadOp/storeOps which never have to be backed by physical memory, "+
					"but the image backing the image view does not have VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT set. "+
					"You can save physical memory by using transient attachment backed by lazily allocated memory here.", i)
		case !should && is:
			env.report(ctx, cmd.Object(), "BestPractices-vkCreateFramebuffer-attachment-should-not-be-transient", report.PerformanceWarning,
				"Attachment %d in VkFramebuffer uses loadOp/storeOps which need to access physical memory, "+
					"but the image backing the image view has VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT set. "+
					"Physical memory will need to be backed lazily to this image, potentially causing stalls.", i)
		}
	}
}

func checkDepthPrePass(ctx context.Context, env *Env, cmd *vulkan.VkCmdEndRenderPass) {
	rp, ok := env.Store.RenderPass(cmd.CommandBuffer)
	if !ok {
		log.D(ctx, "%v: no record of %v", cmd.CmdName(), cmd.CommandBuffer)
		return
	}
	if !rp.DepthAttachment && !rp.ColorAttachment {
		return
	}
	th := env.thresholds().DepthPrePassDrawCalls
	if rp.DepthOnlyDraws >= th && rp.DepthEqualDraws >= th {
		env.report(ctx, cmd.Object(), "BestPractices-vkCmdEndRenderPass-depth-pre-pass-usage", report.PerformanceWarning,
			"Depth pre-passes may be in use. In general, this is not recommended, as in tile-based rendering hidden "+
				"surface removal is performed per fragment. %d depth only draws and %d draws with an equal depth test "+
				"were recorded in this render pass.", rp.DepthOnlyDraws, rp.DepthEqualDraws)
	}
}
