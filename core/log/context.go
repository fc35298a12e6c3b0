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

package log

import (
	"context"
	"time"
)

// ctxKey identifies each piece of logging state carried by a context.
type ctxKey int

const (
	handlerKey ctxKey = iota
	filterKey
	clockKey
	tagKey
	traceKey
)

func get[V any](ctx context.Context, key ctxKey) V {
	v, _ := ctx.Value(key).(V)
	return v
}

// PutHandler returns ctx with messages sent to h.
func PutHandler(ctx context.Context, h Handler) context.Context {
	return context.WithValue(ctx, handlerKey, h)
}

// GetHandler returns the Handler of ctx, or nil. Without a handler nothing
// is logged.
func GetHandler(ctx context.Context) Handler { return get[Handler](ctx, handlerKey) }

// Filter decides which severities are logged.
type Filter interface {
	ShowSeverity(s Severity) bool
}

// SeverityFilter shows messages of at least its severity.
type SeverityFilter Severity

func (f SeverityFilter) ShowSeverity(s Severity) bool { return s >= Severity(f) }

// PutFilter returns ctx with f applied to its messages.
func PutFilter(ctx context.Context, f Filter) context.Context {
	return context.WithValue(ctx, filterKey, f)
}

func GetFilter(ctx context.Context) Filter { return get[Filter](ctx, filterKey) }

// Clock stamps messages.
type Clock interface {
	Time() time.Time
}

// FixedClock always returns the same time. Tests use it for stable output.
type FixedClock time.Time

func (c FixedClock) Time() time.Time { return time.Time(c) }

// PutClock returns ctx with messages stamped by c.
func PutClock(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, clockKey, c)
}

// GetClock returns the Clock of ctx, or nil for the wall clock.
func GetClock(ctx context.Context) Clock { return get[Clock](ctx, clockKey) }

// PutTag returns ctx with messages tagged by tag.
func PutTag(ctx context.Context, tag string) context.Context {
	return context.WithValue(ctx, tagKey, tag)
}

func GetTag(ctx context.Context) string { return get[string](ctx, tagKey) }

// frame is one Enter on the trace stack.
type frame struct {
	name   string
	parent *frame
}

// Enter returns ctx with name pushed on its trace stack.
func Enter(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, traceKey, &frame{name, get[*frame](ctx, traceKey)})
}

// GetTrace returns the trace stack of ctx, innermost first.
func GetTrace(ctx context.Context) []string {
	var out []string
	for f := get[*frame](ctx, traceKey); f != nil; f = f.parent {
		out = append(out, f.name)
	}
	return out
}
