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

// Package state holds the per-object records the advisory rules read.
//
// Every handle keyed map has its own lock, held only while the map itself is
// accessed. The records are mutated outside the lock: the API already requires
// applications to externally synchronize access to a single object.
package state

import (
	"sync"
	"sync/atomic"

	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/query"
)

// Store is the complete advisory state of one layer instance.
type Store struct {
	// Queries tracks the enumeration call state of physical devices,
	// instances and surfaces.
	Queries *query.Tracker

	instances       lockedMap[vulkan.VkInstance, *Instance]
	physicalDevices lockedMap[vulkan.VkPhysicalDevice, *PhysicalDevice]
	devices         lockedMap[vulkan.VkDevice, vulkan.VkPhysicalDevice]
	swapchains      lockedMap[vulkan.VkSwapchainKHR, *Swapchain]
	commandBuffers  lockedMap[vulkan.VkCommandBuffer, *CommandBuffer]
	descriptorPools lockedMap[vulkan.VkDescriptorPool, *DescriptorPool]
	pipelines       lockedMap[vulkan.VkPipeline, *GraphicsPipeline]

	liveMemory atomic.Int64
}

// New returns an empty Store.
func New() *Store {
	return &Store{Queries: query.NewTracker()}
}

// lockedMap is a map guarded by its own mutex.
type lockedMap[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]V
}

func (l *lockedMap[K, V]) get(k K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.m[k]
	return v, ok
}

func (l *lockedMap[K, V]) put(k K, v V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.m == nil {
		l.m = map[K]V{}
	}
	l.m[k] = v
}

// getOrPut returns the value for k, inserting the result of create if absent.
func (l *lockedMap[K, V]) getOrPut(k K, create func() V) V {
	l.mu.Lock()
	defer l.mu.Unlock()
	if v, ok := l.m[k]; ok {
		return v
	}
	if l.m == nil {
		l.m = map[K]V{}
	}
	v := create()
	l.m[k] = v
	return v
}

func (l *lockedMap[K, V]) remove(k K) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.m, k)
}
