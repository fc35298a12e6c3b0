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

// Package api holds the API-independent vocabulary shared by the advisory
// layer: intercepted commands and the handles they refer to.
package api

// Handle is an opaque, non-dispatchable or dispatchable API object handle.
// Zero is the null handle.
type Handle uint64

// Cmd is the interface implemented by all intercepted graphics API commands.
//
// A Cmd carries only the arguments the advisory rules inspect, with any
// referenced objects already resolved by the dispatch layer.
type Cmd interface {
	// CmdName returns the name of the command as spelled by the API.
	// It must not depend on the receiver's fields so it can be called on a
	// nil pointer.
	CmdName() string

	// Object returns the handle diagnostics about this command are reported
	// against.
	Object() Handle
}
