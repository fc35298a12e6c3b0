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

package result_test

import (
	"testing"

	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/report"
	"github.com/google/vkadvisor/advisor/result"
	"github.com/google/vkadvisor/core/assert"
	"github.com/google/vkadvisor/core/log"
)

func TestClassify(t *testing.T) {
	ctx := log.Testing(t)
	errors := []vulkan.VkResult{
		vulkan.VkResult_VK_ERROR_OUT_OF_HOST_MEMORY,
		vulkan.VkResult_VK_ERROR_OUT_OF_DATE_KHR,
		vulkan.VkResult_VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT,
	}
	successes := []vulkan.VkResult{vulkan.VkResult_VK_SUBOPTIMAL_KHR}

	for _, test := range []struct {
		result   vulkan.VkResult
		ok       bool
		severity report.Severity
		kind     result.Kind
	}{
		{vulkan.VkResult_VK_ERROR_OUT_OF_DATE_KHR, true, report.Info, result.Failure},
		{vulkan.VkResult_VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT, true, report.Info, result.Failure},
		{vulkan.VkResult_VK_ERROR_OUT_OF_HOST_MEMORY, true, report.Warning, result.Error},
		{vulkan.VkResult_VK_SUBOPTIMAL_KHR, true, report.Info, result.NonSuccess},
		{vulkan.VkResult_VK_SUCCESS, false, 0, ""},
		{vulkan.VkResult_VK_ERROR_DEVICE_LOST, false, 0, ""},
	} {
		sev, kind, ok := result.Classify(test.result, errors, successes)
		assert.For(ctx, "%v ok", test.result).ThatBoolean(ok).Equals(test.ok)
		assert.For(ctx, "%v severity", test.result).That(sev).Equals(test.severity)
		assert.For(ctx, "%v kind", test.result).That(kind).Equals(test.kind)
	}
}

func TestDiagnose(t *testing.T) {
	ctx := log.Testing(t)
	d, ok := result.Diagnose("vkQueuePresentKHR", 0x5, vulkan.VkResult_VK_ERROR_OUT_OF_DATE_KHR)
	assert.For(ctx, "out of date").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "out of date diag").That(d).DeepEquals(report.Diagnostic{
		Object:   0x5,
		Code:     "BestPractices-Failure-Result",
		Severity: report.Info,
		Message:  "vkQueuePresentKHR(): Returned error VK_ERROR_OUT_OF_DATE_KHR.",
	})

	d, ok = result.Diagnose("vkAllocateMemory", 0x6, vulkan.VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY)
	assert.For(ctx, "oom").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "oom severity").That(d.Severity).Equals(report.Warning)
	assert.For(ctx, "oom code").ThatString(d.Code).Equals("BestPractices-Error-Result")

	d, ok = result.Diagnose("vkGetSwapchainImagesKHR", 0x7, vulkan.VkResult_VK_INCOMPLETE)
	assert.For(ctx, "incomplete").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "incomplete message").ThatString(d.Message).Equals(
		"vkGetSwapchainImagesKHR(): Returned non-success return code VK_INCOMPLETE.")

	_, ok = result.Diagnose("vkAcquireNextImageKHR", 0x8, vulkan.VkResult_VK_SUCCESS)
	assert.For(ctx, "success").ThatBoolean(ok).IsFalse()
	_, ok = result.Diagnose("vkCmdDraw", 0x8, vulkan.VkResult_VK_ERROR_DEVICE_LOST)
	assert.For(ctx, "no table entry").ThatBoolean(ok).IsFalse()
}

func TestTableHasNoOverlap(t *testing.T) {
	ctx := log.Testing(t)
	for _, cmd := range []string{"vkAcquireNextImageKHR", "vkQueuePresentKHR", "vkWaitForFences", "vkCreateInstance"} {
		codes, ok := result.For(cmd)
		assert.For(ctx, "%s listed", cmd).ThatBoolean(ok).IsTrue()
		for _, e := range codes.Errors {
			assert.For(ctx, "%s %v is an error", cmd, e).ThatBoolean(e.IsError()).IsTrue()
		}
		for _, s := range codes.Successes {
			assert.For(ctx, "%s %v is a success", cmd, s).ThatBoolean(s.IsError()).IsFalse()
		}
	}
}
