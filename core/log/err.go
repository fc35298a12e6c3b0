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
	"fmt"
)

// logErr is an error carrying the log message, with its tag, trace and
// values, of the point where it was raised.
type logErr struct {
	cause error
	msg   *Message
}

func (e *logErr) Cause() error  { return e.cause }
func (e *logErr) Unwrap() error { return e.cause }

func (e *logErr) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%v\n   Cause: %v", e.msg.Text, e.cause)
	}
	return e.msg.Text
}

// Err wraps cause with msg and the logging context of l.
func (l *Logger) Err(cause error, msg string) error {
	return &logErr{cause, l.Message(Error, msg)}
}

// Errf is Err with a formatted message.
func (l *Logger) Errf(cause error, format string, args ...interface{}) error {
	return l.Err(cause, fmt.Sprintf(format, args...))
}

// Err wraps cause with msg and the logging context of ctx.
func Err(ctx context.Context, cause error, msg string) error { return From(ctx).Err(cause, msg) }

// Errf is Err with a formatted message.
func Errf(ctx context.Context, cause error, format string, args ...interface{}) error {
	return From(ctx).Errf(cause, format, args...)
}
