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

import "context"

// T is the part of testing.TB that test logging reports through.
type T interface {
	Fatal(...interface{})
	Error(...interface{})
	Log(...interface{})
}

// Testing returns a context that logs to t in the Normal style. Messages of
// Error severity fail the test and Fatal messages stop it.
func Testing(t T) context.Context {
	if t == nil {
		panic("log.Testing needs a test")
	}
	return PutHandler(context.Background(), NewHandler(func(m *Message) {
		text := Normal.Print(m)
		switch {
		case m.Severity >= Fatal:
			t.Fatal(text)
		case m.Severity >= Error:
			t.Error(text)
		default:
			t.Log(text)
		}
	}, nil))
}
