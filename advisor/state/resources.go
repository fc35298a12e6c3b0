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

// DescriptorPool counts the sets freed back to a pool that have not been
// allocated again.
type DescriptorPool struct {
	FreeSets uint32
}

// FreeDescriptorSets adds n sets to the free count of pool.
func (s *Store) FreeDescriptorSets(pool vulkan.VkDescriptorPool, n uint32) {
	r := s.descriptorPools.getOrPut(pool, func() *DescriptorPool { return &DescriptorPool{} })
	r.FreeSets += n
}

// AllocatedDescriptorSets removes n sets from the free count of pool, stopping
// at zero.
func (s *Store) AllocatedDescriptorSets(pool vulkan.VkDescriptorPool, n uint32) {
	r, ok := s.descriptorPools.get(pool)
	if !ok {
		return
	}
	if n >= r.FreeSets {
		r.FreeSets = 0
	} else {
		r.FreeSets -= n
	}
}

// FreeDescriptorSetCount returns the free count of pool.
func (s *Store) FreeDescriptorSetCount(pool vulkan.VkDescriptorPool) uint32 {
	if r, ok := s.descriptorPools.get(pool); ok {
		return r.FreeSets
	}
	return 0
}

// DestroyDescriptorPool drops the free count of pool.
func (s *Store) DestroyDescriptorPool(pool vulkan.VkDescriptorPool) {
	s.descriptorPools.remove(pool)
}

// AllocatedMemory counts a successful memory allocation.
func (s *Store) AllocatedMemory() { s.liveMemory.Add(1) }

// FreedMemory counts a freed memory object. Freeing the null handle is a
// no-op.
func (s *Store) FreedMemory(mem vulkan.VkDeviceMemory) {
	if mem != 0 {
		s.liveMemory.Add(-1)
	}
}

// LiveMemoryObjects returns the number of memory objects currently allocated.
func (s *Store) LiveMemoryObjects() int64 { return s.liveMemory.Load() }
