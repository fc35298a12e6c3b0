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

// Package advisor hosts the Layer, which checks each intercepted Vulkan
// command against the best-practices rules before it executes and records
// the state the rules need after it returns.
//
// The Layer only observes. It never modifies, blocks or corrects a command.
package advisor

import (
	"context"
	"sync/atomic"

	"github.com/google/vkadvisor/advisor/api"
	"github.com/google/vkadvisor/advisor/api/vulkan"
	"github.com/google/vkadvisor/advisor/config"
	"github.com/google/vkadvisor/advisor/report"
	"github.com/google/vkadvisor/advisor/result"
	"github.com/google/vkadvisor/advisor/rules"
	"github.com/google/vkadvisor/advisor/state"
	"github.com/google/vkadvisor/core/log"
)

// Layer is the advisory layer for one Vulkan loader instance. It is safe for
// concurrent use under the Vulkan external synchronization rules.
type Layer struct {
	settings  atomic.Pointer[config.Settings]
	store     *state.Store
	engine    *rules.Engine
	sink      report.Sink
	recorders map[string][]recorder
}

// New returns a Layer reporting to sink. A nil sink reports to the log.
func New(ctx context.Context, settings config.Settings, sink report.Sink) *Layer {
	ctx = log.Enter(ctx, "advisor.New")
	if sink == nil {
		sink = report.LogSink{}
	}
	l := &Layer{
		store:     state.New(),
		engine:    rules.New(),
		sink:      sink,
		recorders: map[string][]recorder{},
	}
	registerRecorders(l)
	l.SetSettings(ctx, settings)
	return l
}

// Settings returns the settings currently in effect.
func (l *Layer) Settings() config.Settings { return *l.settings.Load() }

// SetSettings replaces the settings. The change applies from the next call.
func (l *Layer) SetSettings(ctx context.Context, s config.Settings) {
	l.settings.Store(&s)
	log.I(ctx, "Settings: vendors %v, %d suppressed codes", s.Vendors, len(s.Suppress))
}

// State returns the state store of the layer.
func (l *Layer) State() *state.Store { return l.store }

// PreCall runs the rules registered for cmd. It returns whether the call
// should be skipped, which is never.
func (l *Layer) PreCall(ctx context.Context, cmd api.Cmd) bool {
	env := &rules.Env{Settings: l.settings.Load(), Store: l.store, Sink: l.sink}
	l.engine.Check(ctx, env, cmd)
	return false
}

// PostCall records the effect of cmd, which returned r, and reports r if it
// is a documented error or non-success code. Commands that do not return a
// VkResult are passed VK_SUCCESS.
func (l *Layer) PostCall(ctx context.Context, cmd api.Cmd, r vulkan.VkResult) {
	s := l.settings.Load()
	rec := &recording{store: l.store, settings: s, result: r}
	for _, f := range l.recorders[cmd.CmdName()] {
		f(rec, cmd)
	}
	if d, ok := result.Diagnose(cmd.CmdName(), cmd.Object(), r); ok && !s.Suppressed(d.Code) {
		l.sink.Emit(ctx, d)
	}
}

// Watch reloads the settings from the file at path whenever it changes, until
// ctx is cancelled. A file that fails to load leaves the settings unchanged.
func (l *Layer) Watch(ctx context.Context, path string) error {
	ctx = log.Enter(ctx, "advisor.Watch")
	return config.Watch(ctx, path, func(s config.Settings, err error) {
		if err != nil {
			log.W(ctx, "Settings not reloaded: %v", err)
			return
		}
		l.SetSettings(ctx, s)
	})
}
