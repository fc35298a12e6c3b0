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

// Package rules holds the advisory checks run before each intercepted
// command.
//
// Rules only read the command, the state store and the settings. They never
// modify state; the layer records state after the command has executed.
package rules

import (
	"context"
	"fmt"

	"github.com/google/vkadvisor/advisor/api"
	"github.com/google/vkadvisor/advisor/config"
	"github.com/google/vkadvisor/advisor/report"
	"github.com/google/vkadvisor/advisor/state"
)

// Env is the view of the layer a rule runs against.
type Env struct {
	Settings *config.Settings
	Store    *state.Store
	Sink     report.Sink

	// vendor is the vendor of the running rule, or 0.
	vendor config.Vendor
}

var vendorTags = map[config.Vendor]string{
	config.VendorArm: "[Arm]",
}

func (e *Env) thresholds() *config.Thresholds { return &e.Settings.Thresholds }

// report emits a diagnostic unless its code is suppressed. Diagnostics of
// vendor rules are tagged with the vendor.
func (e *Env) report(ctx context.Context, object api.Handle, code string, sev report.Severity, format string, args ...interface{}) {
	if e.Settings.Suppressed(code) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if tag, ok := vendorTags[e.vendor]; ok {
		msg = tag + " " + msg
	}
	e.Sink.Emit(ctx, report.Diagnostic{Object: object, Code: code, Severity: sev, Message: msg})
}

type rule struct {
	vendor config.Vendor
	check  func(context.Context, *Env, api.Cmd)
}

// Engine maps command names to the rules checked for them.
type Engine struct {
	rules map[string][]rule
}

// on registers check for the command type T. A non-zero vendor makes the rule
// run only when that vendor is enabled.
func on[T api.Cmd](e *Engine, vendor config.Vendor, check func(context.Context, *Env, T)) {
	var cmd T
	name := cmd.CmdName()
	e.rules[name] = append(e.rules[name], rule{
		vendor: vendor,
		check:  func(ctx context.Context, env *Env, c api.Cmd) { check(ctx, env, c.(T)) },
	})
}

// New returns an Engine with every rule registered.
func New() *Engine {
	e := &Engine{rules: map[string][]rule{}}
	registerInstance(e)
	registerQueries(e)
	registerSwapchain(e)
	registerMemory(e)
	registerRenderPass(e)
	registerPipeline(e)
	registerCommandBuffer(e)
	registerDraw(e)
	registerDescriptor(e)
	return e
}

// Check runs every rule registered for cmd whose vendor is enabled in
// env.Settings.
func (e *Engine) Check(ctx context.Context, env *Env, cmd api.Cmd) {
	for _, r := range e.rules[cmd.CmdName()] {
		if r.vendor != 0 && !env.Settings.Vendors.Has(r.vendor) {
			continue
		}
		scoped := *env
		scoped.vendor = r.vendor
		r.check(ctx, &scoped, cmd)
	}
}

// Rules returns the number of rules registered for the named command.
func (e *Engine) Rules(cmd string) int { return len(e.rules[cmd]) }
