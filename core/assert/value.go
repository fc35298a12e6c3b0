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
	"reflect"

	"github.com/kr/pretty"
)

// verdict writes the Got and Expect rows and tests ok.
func (a *Assertion) verdict(got interface{}, op string, expect interface{}, ok bool) bool {
	return a.Compare(got, op, expect).Test(ok)
}

// OnValue holds a value of any type under test.
type OnValue struct {
	Assertion
	value interface{}
}

// That starts a test of an arbitrary value.
func (a Assertion) That(value interface{}) OnValue {
	return OnValue{a, value}
}

// nilable reports whether v is nil, including typed nils.
func nilable(v interface{}) bool {
	if v == nil {
		return true
	}
	switch r := reflect.ValueOf(v); r.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Interface, reflect.Slice:
		return r.IsNil()
	}
	return false
}

// IsNil passes for nil and typed nil values.
func (o OnValue) IsNil() bool { return o.verdict(o.value, "==", "nil", nilable(o.value)) }

// IsNotNil fails for nil and typed nil values.
func (o OnValue) IsNotNil() bool { return o.verdict(o.value, "!=", "nil", !nilable(o.value)) }

// Equals compares with ==.
func (o OnValue) Equals(expect interface{}) bool {
	return o.verdict(o.value, "==", expect, o.value == expect)
}

// NotEquals compares with !=.
func (o OnValue) NotEquals(test interface{}) bool {
	return o.verdict(o.value, "!=", test, o.value != test)
}

// DeepEquals compares with reflect.DeepEqual. A failure lists each
// differing field.
func (o OnValue) DeepEquals(expect interface{}) bool {
	if reflect.DeepEqual(o.value, expect) {
		return true
	}
	o.Compare(o.value, "deep ==", expect)
	for _, line := range pretty.Diff(o.value, expect) {
		o.Rawln(line)
	}
	return o.Test(false)
}

// OnBoolean holds a bool under test.
type OnBoolean struct {
	Assertion
	value bool
}

// ThatBoolean starts a test of a bool.
func (a Assertion) ThatBoolean(value bool) OnBoolean {
	return OnBoolean{a, value}
}

func (o OnBoolean) Equals(expect bool) bool {
	return o.verdict(o.value, "==", expect, o.value == expect)
}

func (o OnBoolean) IsTrue() bool  { return o.Equals(true) }
func (o OnBoolean) IsFalse() bool { return o.Equals(false) }

// OnInteger holds an int under test.
type OnInteger struct {
	Assertion
	value int
}

// ThatInteger starts a test of an int.
func (a Assertion) ThatInteger(value int) OnInteger {
	return OnInteger{a, value}
}

func (o OnInteger) Equals(expect int) bool {
	return o.verdict(o.value, "==", expect, o.value == expect)
}

func (o OnInteger) NotEquals(test int) bool {
	return o.verdict(o.value, "!=", test, o.value != test)
}

func (o OnInteger) IsAtLeast(min int) bool {
	return o.verdict(o.value, ">=", min, o.value >= min)
}

func (o OnInteger) IsAtMost(max int) bool {
	return o.verdict(o.value, "<=", max, o.value <= max)
}

// OnFloat holds a float64 under test.
type OnFloat struct {
	Assertion
	value float64
}

// ThatFloat starts a test of a float64.
func (a Assertion) ThatFloat(value float64) OnFloat {
	return OnFloat{a, value}
}

func (o OnFloat) IsAtLeast(min float64) bool {
	return o.verdict(o.value, ">=", min, o.value >= min)
}

func (o OnFloat) IsAtMost(max float64) bool {
	return o.verdict(o.value, "<=", max, o.value <= max)
}

// Equals passes when the value is within tolerance of v.
func (o OnFloat) Equals(v, tolerance float64) bool {
	lo, hi := v-tolerance, v+tolerance
	return o.CompareRaw(o.value, "in", lo, "to", hi).Test(lo <= o.value && o.value <= hi)
}
