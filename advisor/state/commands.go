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

package state

import "github.com/google/vkadvisor/advisor/api/vulkan"

// DepthPrePassTracker follows the pipelines bound and the draws recorded in
// the current render pass of a command buffer.
type DepthPrePassTracker struct {
	DepthAttachment      bool
	ColorAttachment      bool
	DepthOnly            bool
	DepthEqualComparison bool
	DepthOnlyDraws       uint32
	DepthEqualDraws      uint32
}

// CommandBuffer is the advisory record of a command buffer.
type CommandBuffer struct {
	RenderPass        DepthPrePassTracker
	SmallIndexedDraws uint32
}

// GraphicsPipeline is the part of a graphics pipeline's creation state that
// the depth pre-pass heuristic needs. It is never modified once created.
type GraphicsPipeline struct {
	ColorWriteMasks []vulkan.VkColorComponentFlags
	DepthStencil    *vulkan.VkPipelineDepthStencilStateCreateInfo
}

// NewGraphicsPipeline captures the relevant state of info.
func NewGraphicsPipeline(info vulkan.VkGraphicsPipelineCreateInfo) *GraphicsPipeline {
	p := &GraphicsPipeline{}
	for _, a := range info.ColorBlendAttachments {
		p.ColorWriteMasks = append(p.ColorWriteMasks, a.ColorWriteMask)
	}
	if ds := info.DepthStencil; ds != nil {
		c := *ds
		p.DepthStencil = &c
	}
	return p
}

// AllocateCommandBuffers starts a record for each command buffer.
func (s *Store) AllocateCommandBuffers(cbs []vulkan.VkCommandBuffer) {
	for _, cb := range cbs {
		s.commandBuffers.put(cb, &CommandBuffer{})
	}
}

// FreeCommandBuffers drops the record of each command buffer.
func (s *Store) FreeCommandBuffers(cbs []vulkan.VkCommandBuffer) {
	for _, cb := range cbs {
		s.commandBuffers.remove(cb)
	}
}

// CommandBuffer returns the record of cb, or nil.
func (s *Store) CommandBuffer(cb vulkan.VkCommandBuffer) *CommandBuffer {
	r, _ := s.commandBuffers.get(cb)
	return r
}

// BeginCommandBuffer resets the per-recording counters of cb.
func (s *Store) BeginCommandBuffer(cb vulkan.VkCommandBuffer) {
	if r := s.CommandBuffer(cb); r != nil {
		r.SmallIndexedDraws = 0
	}
}

// BeginRenderPass resets the depth pre-pass tracker of cb and notes whether
// any subpass uses a depth/stencil or a color attachment.
func (s *Store) BeginRenderPass(cb vulkan.VkCommandBuffer, subpasses []vulkan.VkSubpassDescription) {
	r := s.CommandBuffer(cb)
	if r == nil {
		return
	}
	t := DepthPrePassTracker{}
	for _, sp := range subpasses {
		if a := sp.DepthStencilAttachment; a != nil && a.Attachment != vulkan.VK_ATTACHMENT_UNUSED {
			t.DepthAttachment = true
		}
		for _, a := range sp.ColorAttachments {
			if a.Attachment != vulkan.VK_ATTACHMENT_UNUSED {
				t.ColorAttachment = true
			}
		}
	}
	r.RenderPass = t
}

// BindPipeline updates the depth pre-pass tracker of cb for a pipeline bound
// at the given bind point.
func (s *Store) BindPipeline(cb vulkan.VkCommandBuffer, bindPoint vulkan.VkPipelineBindPoint, pipeline vulkan.VkPipeline) {
	if bindPoint != vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS {
		return
	}
	r := s.CommandBuffer(cb)
	if r == nil {
		return
	}
	t := &r.RenderPass
	p := s.GraphicsPipeline(pipeline)
	if p == nil {
		t.DepthOnly, t.DepthEqualComparison = false, false
		return
	}
	t.DepthOnly = true
	for _, m := range p.ColorWriteMasks {
		if m != 0 {
			t.DepthOnly = false
			break
		}
	}
	t.DepthEqualComparison = false
	if ds := p.DepthStencil; ds != nil && ds.DepthTestEnable {
		switch ds.DepthCompareOp {
		case vulkan.VkCompareOp_VK_COMPARE_OP_EQUAL,
			vulkan.VkCompareOp_VK_COMPARE_OP_GREATER_OR_EQUAL,
			vulkan.VkCompareOp_VK_COMPARE_OP_LESS_OR_EQUAL:
			t.DepthEqualComparison = true
		}
	}
}

// RecordDraw counts a draw of elements vertices or indices against the
// active pipeline flags of cb. Draws smaller than minElements are ignored.
func (s *Store) RecordDraw(cb vulkan.VkCommandBuffer, elements uint64, minElements uint32) {
	r := s.CommandBuffer(cb)
	if r == nil || elements < uint64(minElements) {
		return
	}
	if r.RenderPass.DepthOnly {
		r.RenderPass.DepthOnlyDraws++
	}
	if r.RenderPass.DepthEqualComparison {
		r.RenderPass.DepthEqualDraws++
	}
}

// RenderPass returns a copy of the depth pre-pass tracker of cb.
func (s *Store) RenderPass(cb vulkan.VkCommandBuffer) (DepthPrePassTracker, bool) {
	r := s.CommandBuffer(cb)
	if r == nil {
		return DepthPrePassTracker{}, false
	}
	return r.RenderPass, true
}

// RecordSmallIndexedDraw increments the small indexed draw tally of cb.
func (s *Store) RecordSmallIndexedDraw(cb vulkan.VkCommandBuffer) {
	if r := s.CommandBuffer(cb); r != nil {
		r.SmallIndexedDraws++
	}
}

// SmallIndexedDraws returns the small indexed draw tally of cb.
func (s *Store) SmallIndexedDraws(cb vulkan.VkCommandBuffer) (uint32, bool) {
	r := s.CommandBuffer(cb)
	if r == nil {
		return 0, false
	}
	return r.SmallIndexedDraws, true
}

// AddGraphicsPipeline stores the creation snapshot of p.
func (s *Store) AddGraphicsPipeline(p vulkan.VkPipeline, snapshot *GraphicsPipeline) {
	s.pipelines.put(p, snapshot)
}

// DestroyPipeline drops the snapshot of p, if any.
func (s *Store) DestroyPipeline(p vulkan.VkPipeline) {
	s.pipelines.remove(p)
}

// GraphicsPipeline returns the snapshot of p, or nil for compute and unknown
// pipelines.
func (s *Store) GraphicsPipeline(p vulkan.VkPipeline) *GraphicsPipeline {
	r, _ := s.pipelines.get(p)
	return r
}
