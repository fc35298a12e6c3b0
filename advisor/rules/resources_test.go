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

package rules_test

import (
	"testing"

	"github.com/google/vkadvisor/advisor/api"
	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/config"
	"github.com/google/vkadvisor/advisor/query"
	"github.com/google/vkadvisor/core/assert"
)

var lazyMemoryTypes = []vulkan.VkMemoryType{
	{PropertyFlags: vulkan.VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_DEVICE_LOCAL_BIT},
	{PropertyFlags: vulkan.VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_DEVICE_LOCAL_BIT |
		vulkan.VkMemoryPropertyFlagBits_VK_MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT},
}

func TestCreateSwapchain(t *testing.T) {
	const (
		exclusive  = "BestPractices-vkCreateSwapchainKHR-sharing-mode-exclusive"
		imageCount = "BestPractices-vkCreateSwapchainKHR-suboptimal-swapchain-image-count"
		surface    = "BestPractices-vkCreateSwapchainKHR-surface-not-retrieved"
	)
	cmd := &vulkan.VkCreateSwapchainKHR{
		Device:                dev,
		Swapchain:             sc,
		MinImageCount:         2,
		ImageSharingMode:      vulkan.VkSharingMode_VK_SHARING_MODE_EXCLUSIVE,
		QueueFamilyIndexCount: 2,
	}

	f := newFixture(t, 0)
	assert.For(f.ctx, "unknown device").ThatSlice(f.check(cmd)).Equals(codes(exclusive))

	f = newFixture(t, config.VendorArm)
	assert.For(f.ctx, "arm").ThatSlice(f.check(cmd)).Equals(codes(exclusive, imageCount))

	f.store.AddDevice(dev, pd)
	f.store.Queries.RecordQuery(api.Handle(pd), query.SurfaceCapabilities, 0, true)
	ok := &vulkan.VkCreateSwapchainKHR{Device: dev, Swapchain: sc, MinImageCount: 3}
	assert.For(f.ctx, "surface queries").ThatSlice(f.check(ok)).Equals(codes(surface, surface))

	f.store.Queries.RecordQuery(api.Handle(pd), query.SurfaceFormats, 4, true)
	f.store.Queries.RecordQuery(api.Handle(pd), query.SurfacePresentModes, 2, true)
	assert.For(f.ctx, "all queried").ThatSlice(f.check(ok)).Equals(codes())
}

func TestSwapchainImages(t *testing.T) {
	const (
		notFound = "BestPractices-vkAcquireNextImageKHR-SwapchainImagesNotFound"
		missing  = "BestPractices-vkGetSwapchainImagesKHR-MissingQueryCount"
		mismatch = "BestPractices-vkGetSwapchainImagesKHR-CountMismatch"
	)
	f := newFixture(t, 0)
	acquire := &vulkan.VkAcquireNextImageKHR{Device: dev, Swapchain: sc}
	images := func(n uint32) *vulkan.VkGetSwapchainImagesKHR {
		return &vulkan.VkGetSwapchainImagesKHR{Device: dev, Swapchain: sc, Count: n, HasOutput: true}
	}

	assert.For(f.ctx, "unknown swapchain").ThatSlice(f.check(acquire, images(3))).Equals(codes())

	r := f.store.CreateSwapchain(sc)
	assert.For(f.ctx, "no images").ThatSlice(f.check(acquire, images(3))).Equals(codes(notFound, missing))

	r.Images.Advance(3, false)
	assert.For(f.ctx, "count queried").ThatSlice(f.check(acquire, images(3))).Equals(codes())
	assert.For(f.ctx, "wrong count").ThatSlice(f.check(images(2))).Equals(codes(mismatch))
}

func TestAllocateMemory(t *testing.T) {
	const (
		small   = "BestPractices-vkAllocateMemory-small-allocation"
		tooMany = "BestPractices-vkAllocateMemory-too-many-objects"
	)
	f := newFixture(t, 0)
	f.settings.Thresholds.MaxMemoryObjects = 2
	alloc := func(size vulkan.VkDeviceSize) *vulkan.VkAllocateMemory {
		return &vulkan.VkAllocateMemory{Device: dev, AllocationSize: size}
	}

	assert.For(f.ctx, "small").ThatSlice(f.check(alloc(1024))).Equals(codes(small))
	assert.For(f.ctx, "large").ThatSlice(f.check(alloc(1 << 20))).Equals(codes())

	f.store.AllocatedMemory()
	assert.For(f.ctx, "one live").ThatSlice(f.check(alloc(1 << 20))).Equals(codes())
	f.store.AllocatedMemory()
	assert.For(f.ctx, "two live").ThatSlice(f.check(alloc(1 << 20))).Equals(codes(tooMany))
	f.store.FreedMemory(vulkan.VkDeviceMemory(1))
	assert.For(f.ctx, "after free").ThatSlice(f.check(alloc(1 << 20))).Equals(codes())
}

func TestBindMemory(t *testing.T) {
	const (
		smallBuffer = "BestPractices-vkBindBufferMemory-small-dedicated-allocation"
		smallImage  = "BestPractices-vkBindImageMemory-small-dedicated-allocation"
		nonLazy     = "BestPractices-vkBindImageMemory-non-lazy-transient-image"
	)
	f := newFixture(t, 0)
	buffer := func(alloc, req vulkan.VkDeviceSize) *vulkan.VkBindBufferMemory {
		return &vulkan.VkBindBufferMemory{Device: dev, Buffer: 1, AllocationSize: alloc, RequirementsSize: req}
	}
	assert.For(f.ctx, "dedicated").ThatSlice(f.check(buffer(4096, 4096))).Equals(codes(smallBuffer))
	assert.For(f.ctx, "shared").ThatSlice(f.check(buffer(8192, 4096))).Equals(codes())
	assert.For(f.ctx, "large").ThatSlice(f.check(buffer(2<<20, 2<<20))).Equals(codes())

	image := func(alloc vulkan.VkDeviceSize, memoryType uint32) *vulkan.VkBindImageMemory {
		return &vulkan.VkBindImageMemory{
			Device:           dev,
			Image:            2,
			AllocationSize:   alloc,
			RequirementsSize: 4096,
			MemoryTypeIndex:  memoryType,
			ImageUsage:       vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT,
		}
	}
	assert.For(f.ctx, "image dedicated").ThatSlice(f.check(image(4096, 0))).Equals(codes(smallImage))
	assert.For(f.ctx, "unknown device").ThatSlice(f.check(image(1<<20, 0))).Equals(codes())

	f.store.SetMemoryTypes(pd, lazyMemoryTypes)
	f.store.AddDevice(dev, pd)
	assert.For(f.ctx, "non lazy").ThatSlice(f.check(image(1<<20, 0))).Equals(codes(nonLazy))
	assert.For(f.ctx, "lazy").ThatSlice(f.check(image(1<<20, 1))).Equals(codes())
	assert.For(f.ctx, "out of range").ThatSlice(f.check(image(1<<20, 7))).Equals(codes())
}

func TestSharingMode(t *testing.T) {
	f := newFixture(t, 0)
	exclusive := vulkan.VkSharingMode_VK_SHARING_MODE_EXCLUSIVE
	got := f.check(
		&vulkan.VkCreateBuffer{Device: dev, SharingMode: exclusive, QueueFamilyIndexCount: 2},
		&vulkan.VkCreateBuffer{Device: dev, SharingMode: exclusive, QueueFamilyIndexCount: 1},
		&vulkan.VkCreateBuffer{Device: dev, SharingMode: vulkan.VkSharingMode_VK_SHARING_MODE_CONCURRENT, QueueFamilyIndexCount: 2},
		&vulkan.VkCreateImage{Device: dev, SharingMode: exclusive, QueueFamilyIndexCount: 3, Samples: 1},
	)
	assert.For(f.ctx, "codes").ThatSlice(got).Equals(codes(
		"BestPractices-vkCreateBuffer-sharing-mode-exclusive",
		"BestPractices-vkCreateImage-sharing-mode-exclusive",
	))
}

func TestCreateImageSamples(t *testing.T) {
	f := newFixture(t, config.VendorArm)
	color := vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT
	transient := color | vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT
	image := func(samples vulkan.VkSampleCountFlagBits, usage vulkan.VkImageUsageFlags) *vulkan.VkCreateImage {
		return &vulkan.VkCreateImage{Device: dev, Samples: samples, Usage: usage}
	}

	assert.For(f.ctx, "8 samples").ThatSlice(f.check(image(vulkan.VkSampleCountFlagBits_VK_SAMPLE_COUNT_8_BIT, color))).Equals(codes(
		"BestPractices-vkCreateImage-too-large-sample-count",
		"BestPractices-vkCreateImage-non-transient-ms-image",
	))
	assert.For(f.ctx, "4 samples transient").ThatSlice(f.check(image(vulkan.VkSampleCountFlagBits_VK_SAMPLE_COUNT_4_BIT, transient))).Equals(codes())
	assert.For(f.ctx, "single sample").ThatSlice(f.check(image(vulkan.VkSampleCountFlagBits_VK_SAMPLE_COUNT_1_BIT, color))).Equals(codes())
}

func TestAllocateDescriptorSets(t *testing.T) {
	const code = "BestPractices-vkAllocateDescriptorSets-suboptimal-reuse"
	pool := vulkan.VkDescriptorPool(0x60)
	alloc := &vulkan.VkAllocateDescriptorSets{Device: dev, DescriptorPool: pool, DescriptorSets: []vulkan.VkDescriptorSet{1}}

	f := newFixture(t, config.VendorArm)
	assert.For(f.ctx, "nothing freed").ThatSlice(f.check(alloc)).Equals(codes())
	f.store.FreeDescriptorSets(pool, 2)
	assert.For(f.ctx, "freed sets").ThatSlice(f.check(alloc)).Equals(codes(code))

	f = newFixture(t, 0)
	f.store.FreeDescriptorSets(pool, 2)
	assert.For(f.ctx, "neutral").ThatSlice(f.check(alloc)).Equals(codes())
}
