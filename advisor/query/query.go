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

// Package query tracks whether the two-call enumeration commands were used
// the way the API intends: first with a null array to obtain the count, then
// with an array of that size.
package query

import (
	"fmt"
	"sync"

	"github.com/google/vkadvisor/advisor/api"
)

// CallState is the progress of an enumeration family on one handle.
type CallState int

const (
	// Uncalled means the family has never been queried for the handle.
	Uncalled CallState = iota
	// QueryCount means only the element count has been queried.
	QueryCount
	// QueryDetails means the elements themselves have been queried.
	QueryDetails
)

func (s CallState) String() string {
	switch s {
	case Uncalled:
		return "Uncalled"
	case QueryCount:
		return "QueryCount"
	case QueryDetails:
		return "QueryDetails"
	default:
		return fmt.Sprintf("CallState<%d>", int(s))
	}
}

// Family identifies an introspection command family.
type Family int

const (
	PhysicalDevices Family = iota
	QueueFamilyProperties
	DeviceFeatures
	SurfaceCapabilities
	SurfaceFormats
	SurfacePresentModes
	DisplayPlaneProperties
	SwapchainImages
)

var familyNames = [...]string{
	PhysicalDevices:        "physical devices",
	QueueFamilyProperties:  "queue family properties",
	DeviceFeatures:         "device features",
	SurfaceCapabilities:    "surface capabilities",
	SurfaceFormats:         "surface formats",
	SurfacePresentModes:    "surface present modes",
	DisplayPlaneProperties: "display plane properties",
	SwapchainImages:        "swapchain images",
}

func (f Family) String() string {
	if f >= 0 && int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family<%d>", int(f))
}

// Record is the call state of one family on one handle.
type Record struct {
	State CallState
	// Count is the largest element count the driver has reported.
	Count uint32
}

// Advance moves the record forward for a query returning count elements.
// The state never moves backwards.
func (r *Record) Advance(count uint32, hasOutput bool) {
	next := QueryCount
	if hasOutput {
		next = QueryDetails
	}
	if next > r.State {
		r.State = next
	}
	if count > r.Count {
		r.Count = count
	}
}

// Check returns a snapshot of the record for a use supplying the given count.
func (r *Record) Check(supplied uint32) Snapshot {
	if r == nil {
		return Snapshot{Supplied: supplied}
	}
	return Snapshot{State: r.State, KnownCount: r.Count, Supplied: supplied}
}

// Snapshot is the state observed by a dependent call.
type Snapshot struct {
	State      CallState
	KnownCount uint32
	Supplied   uint32
}

// NeverQueried returns true if the family was never queried.
func (s Snapshot) NeverQueried() bool { return s.State == Uncalled }

// CountMismatch returns true if the family was queried and the count supplied
// now differs from the one the driver reported.
func (s Snapshot) CountMismatch() bool {
	return s.State != Uncalled && s.Supplied != s.KnownCount
}

type key struct {
	handle api.Handle
	family Family
}

// Tracker holds the call state records of every handle and family.
// It is safe for concurrent use on different handles.
type Tracker struct {
	mu      sync.Mutex
	records map[key]*Record
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{records: map[key]*Record{}}
}

func (t *Tracker) record(h api.Handle, f Family, create bool) *Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.records[key{h, f}]
	if !ok && create {
		r = &Record{}
		t.records[key{h, f}] = r
	}
	return r
}

// RecordQuery advances the state of family f on handle h.
func (t *Tracker) RecordQuery(h api.Handle, f Family, count uint32, hasOutput bool) {
	t.record(h, f, true).Advance(count, hasOutput)
}

// CheckUsedBeforeQuery returns the state of family f on handle h as seen by
// a call supplying the given count.
func (t *Tracker) CheckUsedBeforeQuery(h api.Handle, f Family, supplied uint32) Snapshot {
	return t.record(h, f, false).Check(supplied)
}

// State returns the current state of family f on handle h.
func (t *Tracker) State(h api.Handle, f Family) CallState {
	return t.CheckUsedBeforeQuery(h, f, 0).State
}

// Forget drops every record held for handle h.
func (t *Tracker) Forget(h api.Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k := range t.records {
		if k.handle == h {
			delete(t.records, k)
		}
	}
}
