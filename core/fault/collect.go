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

package fault

import "strings"

// List is the type for a list of errors.
type List []error

// First returns the first error added to it.
func (l *List) First() error {
	if len(*l) <= 0 {
		return nil
	}
	return (*l)[0]
}

// Collect adds an error to the list. nil errors are ignored.
func (l *List) Collect(err error) {
	if err != nil {
		*l = append(*l, err)
	}
}

// Err returns nil if the list is empty, the single error if it holds one, and
// the list itself otherwise.
func (l List) Err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return l[0]
	default:
		return l
	}
}

// Error joins the messages of all the errors in the list.
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap returns the collected errors so errors.Is and errors.As can see
// through the list.
func (l List) Unwrap() []error { return l }
