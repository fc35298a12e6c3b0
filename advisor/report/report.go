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

// Package report defines the diagnostics the layer produces and the sinks
// they are delivered to.
package report

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/vkadvisor/advisor/api"
	"github.com/google/vkadvisor/core/log"
)

// Severity is the classification of a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	PerformanceWarning
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case PerformanceWarning:
		return "PerformanceWarning"
	default:
		return fmt.Sprintf("Severity<%d>", int(s))
	}
}

// Diagnostic is a single advisory message about an object.
type Diagnostic struct {
	Object   api.Handle
	Code     string
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%v [%s] 0x%x: %s", d.Severity, d.Code, uint64(d.Object), d.Message)
}

// Sink receives diagnostics.
// Emit is called inline from the intercepted call and must not block for
// long.
type Sink interface {
	Emit(ctx context.Context, d Diagnostic)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, d Diagnostic)

func (f SinkFunc) Emit(ctx context.Context, d Diagnostic) { f(ctx, d) }

// Broadcast returns a Sink that forwards to every sink in l.
func Broadcast(l ...Sink) Sink {
	return SinkFunc(func(ctx context.Context, d Diagnostic) {
		for _, s := range l {
			s.Emit(ctx, d)
		}
	})
}

// Suppress returns a Sink that drops diagnostics with any of the given codes.
func Suppress(s Sink, codes ...string) Sink {
	if len(codes) == 0 {
		return s
	}
	drop := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		drop[c] = struct{}{}
	}
	return SinkFunc(func(ctx context.Context, d Diagnostic) {
		if _, ok := drop[d.Code]; !ok {
			s.Emit(ctx, d)
		}
	})
}

// LogSink writes diagnostics to the logger of the context, with the code and
// object bound as values.
type LogSink struct{}

func (LogSink) Emit(ctx context.Context, d Diagnostic) {
	l := log.Bind(ctx, log.V{"code": d.Code, "object": fmt.Sprintf("0x%x", uint64(d.Object))})
	switch d.Severity {
	case Info:
		l.Log(log.Info, d.Message)
	default:
		l.Log(log.Warning, d.Message)
	}
}

// Collector is a Sink that keeps every diagnostic it receives.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

func (c *Collector) Emit(ctx context.Context, d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// Diagnostics returns a copy of the collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.diags...)
}

// Codes returns the codes of the collected diagnostics in emission order.
func (c *Collector) Codes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.diags))
	for i, d := range c.diags {
		out[i] = d.Code
	}
	return out
}

// Count returns the number of collected diagnostics with the given code.
func (c *Collector) Count(code string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.diags {
		if d.Code == code {
			n++
		}
	}
	return n
}

// Reset drops every collected diagnostic.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = nil
}
