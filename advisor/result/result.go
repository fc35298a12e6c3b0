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

// Package result classifies the VkResult a command returned against the
// codes documented for that command.
package result

import (
	"fmt"

	"github.com/google/vkadvisor/advisor/api"
	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/report"
)

// Kind is the diagnostic code of a classified result.
type Kind string

const (
	// Error is a documented error code.
	Error Kind = "BestPractices-Error-Result"
	// Failure is an error code applications are expected to handle
	// routinely, such as an out of date swapchain.
	Failure Kind = "BestPractices-Failure-Result"
	// NonSuccess is a documented success code other than VK_SUCCESS.
	NonSuccess Kind = "BestPractices-NonSuccess-Result"
)

// common are the error codes reported as Info rather than Warning.
var common = map[vulkan.VkResult]struct{}{
	vulkan.VkResult_VK_ERROR_OUT_OF_DATE_KHR:                     {},
	vulkan.VkResult_VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT: {},
}

func contains(l []vulkan.VkResult, r vulkan.VkResult) bool {
	for _, c := range l {
		if c == r {
			return true
		}
	}
	return false
}

// Classify returns the severity and kind of result r given the error and
// non-primary success codes documented for the command. ok is false when r is
// in neither list.
func Classify(r vulkan.VkResult, errors, successes []vulkan.VkResult) (sev report.Severity, kind Kind, ok bool) {
	switch {
	case contains(errors, r):
		if _, isCommon := common[r]; isCommon {
			return report.Info, Failure, true
		}
		return report.Warning, Error, true
	case contains(successes, r):
		return report.Info, NonSuccess, true
	default:
		return 0, "", false
	}
}

// Diagnose classifies the result r of the command named cmd using the table
// of documented codes, returning the diagnostic to report against object.
func Diagnose(cmd string, object api.Handle, r vulkan.VkResult) (report.Diagnostic, bool) {
	codes, ok := For(cmd)
	if !ok {
		return report.Diagnostic{}, false
	}
	sev, kind, ok := Classify(r, codes.Errors, codes.Successes)
	if !ok {
		return report.Diagnostic{}, false
	}
	msg := fmt.Sprintf("%s(): Returned error %v.", cmd, r)
	if kind == NonSuccess {
		msg = fmt.Sprintf("%s(): Returned non-success return code %v.", cmd, r)
	}
	return report.Diagnostic{Object: object, Code: string(kind), Severity: sev, Message: msg}, true
}
