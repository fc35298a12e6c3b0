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

package assert

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// OnSlice holds a slice or array under test. Non slice values panic.
type OnSlice struct {
	Assertion
	slice reflect.Value
}

// ThatSlice starts a test of a slice or array.
func (a Assertion) ThatSlice(slice interface{}) OnSlice {
	return OnSlice{a, reflect.ValueOf(slice)}
}

func (o OnSlice) IsEmpty() bool {
	n := o.slice.Len()
	return o.CompareRaw(n, "is", "empty").Test(n == 0)
}

func (o OnSlice) IsNotEmpty() bool {
	n := o.slice.Len()
	return o.verdict(n, "length >", 0, n > 0)
}

func (o OnSlice) IsLength(length int) bool {
	n := o.slice.Len()
	return o.verdict(n, "length ==", length, n == length)
}

// Equals compares element by element with ==. A failure lists the missing
// (-), extra (+) and changed (*) indices.
func (o OnSlice) Equals(expected interface{}) bool {
	want := reflect.ValueOf(expected)
	same := true
	for i := 0; i < o.slice.Len() || i < want.Len(); i++ {
		if i >= o.slice.Len() {
			o.Printf("-\t%d\t", i).Println(want.Index(i).Interface())
			same = false
			continue
		}
		got := o.slice.Index(i).Interface()
		if i >= want.Len() {
			o.Printf("+\t%d\t", i).Println(got)
			same = false
			continue
		}
		if exp := want.Index(i).Interface(); got != exp {
			o.Printf("*\t%d\t", i).Print(got).Printf("\t==>\t").Println(exp)
			same = false
		}
	}
	return o.Test(same)
}

// OnString holds a string under test.
type OnString struct {
	Assertion
	value string
}

// ThatString starts a test of a string. Byte slices are converted directly,
// anything else goes through fmt.Sprint.
func (a Assertion) ThatString(value interface{}) OnString {
	switch v := value.(type) {
	case string:
		return OnString{a, v}
	case []byte:
		return OnString{a, string(v)}
	}
	return OnString{a, fmt.Sprint(value)}
}

func (o OnString) Equals(expect string) bool {
	return o.verdict(o.value, "==", expect, o.value == expect)
}

func (o OnString) NotEquals(test string) bool {
	return o.verdict(o.value, "!=", test, o.value != test)
}

func (o OnString) Contains(substr string) bool {
	return o.verdict(o.value, "contains", substr, strings.Contains(o.value, substr))
}

func (o OnString) HasPrefix(prefix string) bool {
	return o.verdict(o.value, "starts with", prefix, strings.HasPrefix(o.value, prefix))
}

// OnError holds an error under test.
type OnError struct {
	Assertion
	err error
}

// ThatError starts a test of an error.
func (a Assertion) ThatError(err error) OnError {
	return OnError{a, err}
}

// Succeeded passes when the error is nil.
func (o OnError) Succeeded() bool {
	return o.CompareRaw(o.err, "", "success").Test(o.err == nil)
}

// Failed passes when the error is not nil.
func (o OnError) Failed() bool {
	return o.ExpectRaw("", "failure").Test(o.err != nil)
}

// HasMessage compares the error text.
func (o OnError) HasMessage(expect string) bool {
	if o.err == nil {
		return o.verdict(nil, "has message", expect, false)
	}
	msg := o.err.Error()
	return o.verdict(msg, "has message", expect, msg == expect)
}

// HasCause compares the root cause of a pkg/errors chain.
func (o OnError) HasCause(expect error) bool {
	cause := errors.Cause(o.err)
	return o.Got(o.err).Add("Cause", cause).Expect("==", expect).Test(cause == expect)
}
