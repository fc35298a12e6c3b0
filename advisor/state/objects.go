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

import (
	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/query"
)

// Instance is the advisory record of an instance.
type Instance struct {
	APIVersion uint32
}

// AddInstance records a created instance and the API version it requested.
func (s *Store) AddInstance(inst vulkan.VkInstance, apiVersion uint32) {
	s.instances.put(inst, &Instance{APIVersion: apiVersion})
}

// DestroyInstance forgets the instance.
func (s *Store) DestroyInstance(inst vulkan.VkInstance) {
	s.instances.remove(inst)
}

// Instance returns the record of inst, or nil.
func (s *Store) Instance(inst vulkan.VkInstance) *Instance {
	r, _ := s.instances.get(inst)
	return r
}

// PhysicalDevice is the advisory record of a physical device. It lives as long
// as the layer.
type PhysicalDevice struct {
	Instance    vulkan.VkInstance
	MemoryTypes []vulkan.VkMemoryType
}

// HasLazyMemory returns true if any memory type is lazily allocated.
func (p *PhysicalDevice) HasLazyMemory() bool {
	for _, t := range p.MemoryTypes {
		if t.PropertyFlags&vulkan.VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT != 0 {
			return true
		}
	}
	return false
}

// AddPhysicalDevice records a physical device returned by instance inst.
// An existing record keeps its memory types.
func (s *Store) AddPhysicalDevice(inst vulkan.VkInstance, pd vulkan.VkPhysicalDevice) *PhysicalDevice {
	r := s.physicalDevices.getOrPut(pd, func() *PhysicalDevice { return &PhysicalDevice{} })
	r.Instance = inst
	return r
}

// PhysicalDevice returns the record of pd, or nil.
func (s *Store) PhysicalDevice(pd vulkan.VkPhysicalDevice) *PhysicalDevice {
	r, _ := s.physicalDevices.get(pd)
	return r
}

// SetMemoryTypes records the memory types reported for pd.
func (s *Store) SetMemoryTypes(pd vulkan.VkPhysicalDevice, types []vulkan.VkMemoryType) {
	r := s.physicalDevices.getOrPut(pd, func() *PhysicalDevice { return &PhysicalDevice{} })
	r.MemoryTypes = append([]vulkan.VkMemoryType(nil), types...)
}

// AddDevice records that dev was created from pd.
func (s *Store) AddDevice(dev vulkan.VkDevice, pd vulkan.VkPhysicalDevice) {
	s.devices.put(dev, pd)
}

// DestroyDevice forgets dev.
func (s *Store) DestroyDevice(dev vulkan.VkDevice) {
	s.devices.remove(dev)
}

// PhysicalDeviceOf returns the physical device dev was created from.
func (s *Store) PhysicalDeviceOf(dev vulkan.VkDevice) (vulkan.VkPhysicalDevice, bool) {
	return s.devices.get(dev)
}

// DeviceSupportsLazyMemory returns true if the physical device of dev exposes
// a lazily allocated memory type. Unknown devices report false.
func (s *Store) DeviceSupportsLazyMemory(dev vulkan.VkDevice) bool {
	pd, ok := s.PhysicalDeviceOf(dev)
	if !ok {
		return false
	}
	r := s.PhysicalDevice(pd)
	return r != nil && r.HasLazyMemory()
}

// MemoryTypeFlags returns the property flags of memory type index on the
// physical device of dev.
func (s *Store) MemoryTypeFlags(dev vulkan.VkDevice, index uint32) (vulkan.VkMemoryPropertyFlags, bool) {
	pd, ok := s.PhysicalDeviceOf(dev)
	if !ok {
		return 0, false
	}
	r := s.PhysicalDevice(pd)
	if r == nil || int(index) >= len(r.MemoryTypes) {
		return 0, false
	}
	return r.MemoryTypes[index].PropertyFlags, true
}

// APIVersionOf returns the API version requested by the instance owning pd,
// or 1.0 if it is not known.
func (s *Store) APIVersionOf(pd vulkan.VkPhysicalDevice) uint32 {
	if r := s.PhysicalDevice(pd); r != nil {
		if i := s.Instance(r.Instance); i != nil {
			return i.APIVersion
		}
	}
	return vulkan.VK_API_VERSION_1_0
}

// Swapchain is the advisory record of a swapchain.
type Swapchain struct {
	Images query.Record
}

// CreateSwapchain starts a fresh record for sc.
func (s *Store) CreateSwapchain(sc vulkan.VkSwapchainKHR) *Swapchain {
	r := &Swapchain{}
	s.swapchains.put(sc, r)
	return r
}

// DestroySwapchain drops the record of sc.
func (s *Store) DestroySwapchain(sc vulkan.VkSwapchainKHR) {
	s.swapchains.remove(sc)
}

// Swapchain returns the record of sc, or nil.
func (s *Store) Swapchain(sc vulkan.VkSwapchainKHR) *Swapchain {
	r, _ := s.swapchains.get(sc)
	return r
}
