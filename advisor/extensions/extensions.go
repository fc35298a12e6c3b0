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

// Package extensions holds static information about Vulkan extensions: which
// object they extend, whether they are deprecated and whether they are meant
// for special use only.
package extensions

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/vkadvisor/advisor/api/vulkan"
)

// IsInstance returns true for a known instance extension.
func IsInstance(name string) bool {
	_, ok := instance[name]
	return ok
}

// IsDevice returns true for a known device extension.
func IsDevice(name string) bool {
	_, ok := device[name]
	return ok
}

// Reason is why an extension is deprecated.
type Reason int

const (
	// Promoted extensions became part of a core version or another
	// extension.
	Promoted Reason = iota
	// Obsoleted extensions were replaced by an incompatible alternative.
	Obsoleted
	// DeprecatedReason extensions should no longer be used. Target names the
	// replacement, if any.
	DeprecatedReason
)

func (r Reason) String() string {
	switch r {
	case Promoted:
		return "promoted"
	case Obsoleted:
		return "obsoleted"
	case DeprecatedReason:
		return "deprecated"
	default:
		return fmt.Sprintf("Reason<%d>", int(r))
	}
}

// Deprecation describes a deprecated extension.
type Deprecation struct {
	Reason Reason
	// Target is the replacing core version (VK_VERSION_X_Y) or extension, or
	// empty.
	Target string
}

const versionPrefix = "VK_VERSION_"

// TargetVersion returns the core version Target names, if it names one.
func (d Deprecation) TargetVersion() (*semver.Version, bool) {
	if !strings.HasPrefix(d.Target, versionPrefix) {
		return nil, false
	}
	v, err := semver.NewVersion(strings.ReplaceAll(strings.TrimPrefix(d.Target, versionPrefix), "_", "."))
	if err != nil {
		return nil, false
	}
	return v, true
}

// AppliesTo returns true if the deprecation is relevant to an application
// requesting apiVersion: always for extension targets, and only while the
// requested version is below the target for version targets.
func (d Deprecation) AppliesTo(apiVersion uint32) bool {
	target, ok := d.TargetVersion()
	if !ok {
		return true
	}
	return APIVersion(apiVersion).LessThan(target)
}

// Message returns the advice for enabling the deprecated extension name.
func (d Deprecation) Message(name string) string {
	switch {
	case d.Reason == Promoted:
		return fmt.Sprintf("Attempting to enable deprecated extension %s, but this extension has been promoted to %s.", name, d.Target)
	case d.Reason == Obsoleted:
		return fmt.Sprintf("Attempting to enable deprecated extension %s, but this extension has been obsoleted by %s.", name, d.Target)
	case d.Target != "":
		return fmt.Sprintf("Attempting to enable deprecated extension %s, but this extension has been deprecated by %s.", name, d.Target)
	default:
		return fmt.Sprintf("Attempting to enable deprecated extension %s, but this extension has been deprecated without replacement.", name)
	}
}

// APIVersion converts a packed API version to a semantic version.
func APIVersion(v uint32) *semver.Version {
	return semver.New(
		uint64(vulkan.APIVersionMajor(v)),
		uint64(vulkan.APIVersionMinor(v)),
		uint64(vulkan.APIVersionPatch(v)), "", "")
}

// Deprecated returns the deprecation of the extension name, if it is
// deprecated.
func Deprecated(name string) (Deprecation, bool) {
	d, ok := deprecated[name]
	return d, ok
}

// SpecialUse returns the special uses of the extension name, if it has any.
func SpecialUse(name string) ([]string, bool) {
	u, ok := specialUse[name]
	return u, ok
}

var specialUseDescriptions = map[string]string{
	"cadsupport":   "specialized functionality used by CAD/CAM applications",
	"d3demulation": "D3D emulation layers, and applications ported from D3D, by adding functionality specific to D3D",
	"devtools":     "developer tools such as capture-replay libraries",
	"debugging":    "use by applications when debugging",
	"glemulation":  "OpenGL and/or OpenGL ES emulation layers, and applications ported from those APIs, by adding functionality specific to those APIs",
}

// SpecialUseMessage returns the advice for enabling the special use
// extension name from the command cmd.
func SpecialUseMessage(cmd, name string, uses []string) string {
	descs := make([]string, len(uses))
	for i, u := range uses {
		if d, ok := specialUseDescriptions[u]; ok {
			descs[i] = d
		} else {
			descs[i] = u
		}
	}
	return fmt.Sprintf("%s(): Attempting to enable extension %s, but this extension is intended to support %s "+
		"and it is strongly recommended that it be otherwise avoided.", cmd, name, strings.Join(descs, ", "))
}
