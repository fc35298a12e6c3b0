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

// Package assert is a fluent assertion library for tests.
//
// A typical assertion reads:
//
//	ctx := log.Testing(t)
//	assert.For(ctx, "shade count").ThatInteger(got).Equals(32)
//
// A failed assertion reports its title followed by a table of what was got
// and what was expected, at Error level. The test carries on.
package assert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"unicode"

	"github.com/google/vkadvisor/core/log"
)

// Output is the part of testing.TB that failures are reported through.
type Output interface {
	Fatal(...interface{})
	Error(...interface{})
	Log(...interface{})
}

// Target builds assertions that report to one Output.
type Target struct {
	out Output
}

// To returns a Target reporting to t. t may be a context.Context, whose log
// handler receives the failures, an Output, or nil to print to stdout.
func To(t interface{}) Target {
	switch t := t.(type) {
	case nil:
		return Target{stdout{}}
	case context.Context:
		return Target{logged{t}}
	case Output:
		return Target{t}
	}
	panic(fmt.Errorf("Unsupported assertion target type %T", t))
}

// For is shorthand for To(t).For(msg, args...).
func For(t interface{}, msg string, args ...interface{}) *Assertion {
	return To(t).For(msg, args...)
}

// For starts an assertion titled by the formatted msg.
func (t Target) For(msg string, args ...interface{}) *Assertion {
	a := &Assertion{to: t.out, text: &bytes.Buffer{}}
	return a.Printf(msg, args...).Println()
}

type logged struct{ ctx context.Context }

func (o logged) Fatal(args ...interface{}) { log.From(o.ctx).Logf(log.Fatal, "%v", fmt.Sprint(args...)) }
func (o logged) Error(args ...interface{}) { log.E(o.ctx, "%v", fmt.Sprint(args...)) }
func (o logged) Log(args ...interface{})   { log.I(o.ctx, "%v", fmt.Sprint(args...)) }

type stdout struct{}

func (stdout) Fatal(args ...interface{}) {
	fmt.Fprintln(os.Stdout, args...)
	panic("Fatal assertion without a test")
}
func (stdout) Error(args ...interface{}) { fmt.Fprintln(os.Stdout, args...) }
func (stdout) Log(args ...interface{})   { fmt.Fprintln(os.Stdout, args...) }

// Assertion accumulates the report of one assertion. Nothing is written to
// the Output unless the assertion fails.
//
// Reports are tab separated tables; columns are aligned when committed.
type Assertion struct {
	to   Output
	text *bytes.Buffer
}

// indent starts every line after the title.
const indent = "\n    "

func (a *Assertion) cells(quote bool, values []interface{}) {
	for i, v := range values {
		if i > 0 {
			a.text.WriteByte('\t')
		}
		switch v := v.(type) {
		case string:
			if quote {
				fmt.Fprintf(a.text, "`%s`", v)
				continue
			}
		case error:
			if quote {
				fmt.Fprintf(a.text, "`%v`", v)
				continue
			}
		}
		fmt.Fprint(a.text, v)
	}
}

// Print writes values separated by tabs, quoting strings and errors.
func (a *Assertion) Print(values ...interface{}) *Assertion {
	a.cells(true, values)
	return a
}

// Println is Print followed by a new line.
func (a *Assertion) Println(values ...interface{}) *Assertion {
	a.cells(true, values)
	a.text.WriteString(indent)
	return a
}

// Rawln is Println without quoting.
func (a *Assertion) Rawln(values ...interface{}) *Assertion {
	a.cells(false, values)
	a.text.WriteString(indent)
	return a
}

// Printf writes unquoted formatted text.
func (a *Assertion) Printf(format string, args ...interface{}) *Assertion {
	fmt.Fprintf(a.text, format, args...)
	return a
}

// Add writes a row labelled key.
func (a *Assertion) Add(key string, values ...interface{}) *Assertion {
	return a.Printf("%s\t\t", key).Println(values...)
}

// Got writes the row of observed values.
func (a *Assertion) Got(values ...interface{}) *Assertion {
	return a.Add("Got", values...)
}

// Expect writes the row of expected values, led by the comparison op.
func (a *Assertion) Expect(op string, values ...interface{}) *Assertion {
	return a.Printf("Expect\t%s\t", op).Println(values...)
}

// ExpectRaw is Expect without quoting.
func (a *Assertion) ExpectRaw(op string, values ...interface{}) *Assertion {
	return a.Printf("Expect\t%s\t", op).Rawln(values...)
}

// Compare writes both the Got and the Expect rows.
func (a *Assertion) Compare(value interface{}, op string, expect ...interface{}) *Assertion {
	return a.Got(value).Expect(op, expect...)
}

// CompareRaw is Compare without quoting the expected values.
func (a *Assertion) CompareRaw(value interface{}, op string, expect ...interface{}) *Assertion {
	return a.Got(value).ExpectRaw(op, expect...)
}

// Test reports the assertion as an error if condition is false, and returns
// condition.
func (a *Assertion) Test(condition bool) bool {
	if !condition {
		a.to.Error("Error:" + a.table())
	}
	return condition
}

func (a *Assertion) table() string {
	out := &bytes.Buffer{}
	w := tabwriter.NewWriter(out, 1, 4, 1, ' ', tabwriter.StripEscape)
	w.Write(a.text.Bytes())
	w.Flush()
	return strings.TrimRightFunc(out.String(), unicode.IsSpace)
}
