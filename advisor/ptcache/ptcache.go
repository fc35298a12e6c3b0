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

// Package ptcache scores the index order of indexed draws against a simple
// model of a GPU's post-transform vertex cache.
//
// The model is a small fully associative cache with least-recently-used
// replacement. It is not a model of any particular GPU; it exists to catch
// index buffers that are badly ordered or sparse.
package ptcache

// CacheSize is the number of entries in the modelled cache.
const CacheSize = 32

type entry struct {
	value    uint32
	lastUsed uint64
	occupied bool
}

// LRU is a fixed size least-recently-used cache of vertex indices.
// The zero value is an empty cache.
type LRU struct {
	entries   [CacheSize]entry
	iteration uint64
}

// Query looks up value, returning true on a hit. A miss inserts value,
// evicting the entry with the oldest use when the cache is full; ties go to
// the lowest slot.
func (c *LRU) Query(value uint32) bool {
	c.iteration++
	victim := -1
	for i := range c.entries {
		e := &c.entries[i]
		if !e.occupied {
			if victim < 0 || c.entries[victim].occupied {
				victim = i
			}
			continue
		}
		if e.value == value {
			e.lastUsed = c.iteration
			return true
		}
		if victim < 0 || (c.entries[victim].occupied && e.lastUsed < c.entries[victim].lastUsed) {
			victim = i
		}
	}
	c.entries[victim] = entry{value: value, lastUsed: c.iteration, occupied: true}
	return false
}

// Config holds the thresholds of the analysis.
type Config struct {
	// MinUtilization is the fraction of the index range that must be
	// referenced.
	MinUtilization float64
	// MinHitRate is the cache hit rate at or below which the draw is
	// considered to thrash the cache.
	MinHitRate float64
}

// Analysis is the result of scoring one index buffer.
type Analysis struct {
	MinIndex, MaxIndex uint32
	// IndexCount is the number of indices analysed, restart values
	// included.
	IndexCount int

	// Degenerate is set when there are no indices or every index is the
	// same. Nothing else is computed.
	Degenerate bool

	// Sparse is set when the index range is at least as large as the number
	// of indices. Density is then the percentage of the range that could be
	// referenced, and nothing else is computed.
	Sparse  bool
	Density float64

	VertexShadeCount   int
	DistinctReferenced int
	Utilization        float64
	CacheHitRate       float64
	LowUtilization     bool
	Thrashing          bool
}

// LowUtilization returns true if utilization is below threshold.
func LowUtilization(utilization, threshold float64) bool { return utilization < threshold }

// Thrashing returns true if hitRate is at or below threshold.
func Thrashing(hitRate, threshold float64) bool { return hitRate <= threshold }

// Analyze scores indices. When restart is set, restartValue is ignored
// wherever it appears.
func Analyze(indices []uint32, restart bool, restartValue uint32, cfg Config) Analysis {
	a := Analysis{IndexCount: len(indices)}
	skip := func(i uint32) bool { return restart && i == restartValue }

	found := false
	for _, i := range indices {
		if skip(i) {
			continue
		}
		if !found {
			a.MinIndex, a.MaxIndex, found = i, i, true
			continue
		}
		if i < a.MinIndex {
			a.MinIndex = i
		}
		if i > a.MaxIndex {
			a.MaxIndex = i
		}
	}
	if !found || a.MinIndex == a.MaxIndex {
		a.Degenerate = true
		return a
	}

	span := uint64(a.MaxIndex-a.MinIndex) + 1
	if span >= uint64(a.IndexCount) {
		a.Sparse = true
		a.Density = float64(a.IndexCount) / float64(a.MaxIndex-a.MinIndex) * 100
		return a
	}

	cache := LRU{}
	for _, i := range indices {
		if skip(i) {
			continue
		}
		if !cache.Query(i) {
			a.VertexShadeCount++
		}
	}

	// span < len(indices) here, so the bitset is bounded by the input size.
	buckets := make([]uint64, (span+63)/64)
	for _, i := range indices {
		if skip(i) {
			continue
		}
		o := i - a.MinIndex
		bit := uint64(1) << (o % 64)
		if buckets[o/64]&bit == 0 {
			buckets[o/64] |= bit
			a.DistinctReferenced++
		}
	}

	a.Utilization = float64(a.DistinctReferenced) / float64(span)
	a.CacheHitRate = float64(a.DistinctReferenced) / float64(a.VertexShadeCount)
	a.LowUtilization = LowUtilization(a.Utilization, cfg.MinUtilization)
	a.Thrashing = Thrashing(a.CacheHitRate, cfg.MinHitRate)
	return a
}
