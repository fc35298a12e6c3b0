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
	"fmt"
	"strings"
	"time"
)

// Style controls which parts of a Message are printed, and how.
type Style struct {
	Name      string
	Timestamp bool
	Tag       bool
	Trace     bool
	Severity  SeverityStyle
	Values    ValueStyle
}

// SeverityStyle selects how a severity is printed.
type SeverityStyle int

const (
	NoSeverity SeverityStyle = iota
	SeverityShort
	SeverityLong
)

// ValueStyle selects how bound values are printed.
type ValueStyle int

const (
	NoValues ValueStyle = iota
	ValuesSingleLine
	ValuesMultiLine
)

var (
	// Raw prints only the message text.
	Raw = Style{Name: "raw"}
	// Brief adds the one letter severity.
	Brief = Style{Name: "brief", Severity: SeverityShort}
	// Normal is the default for tests and the command line.
	Normal = Style{Name: "normal", Timestamp: true, Tag: true, Trace: true, Severity: SeverityShort}
	// Detailed spells out the severity and lists values one per line.
	Detailed = Style{Name: "detailed", Timestamp: true, Tag: true, Trace: true, Severity: SeverityLong, Values: ValuesMultiLine}
)

func (s Style) String() string { return s.Name }

// Handler returns a Handler that passes each message, printed in style s,
// to w.
func (s Style) Handler(w Writer) Handler {
	return NewHandler(func(m *Message) { w(s.Print(m), m.Severity) }, nil)
}

// Print renders m in style s. Parts are space separated.
func (s Style) Print(m *Message) string {
	parts := make([]string, 0, 6)
	if s.Timestamp && !m.Time.IsZero() {
		parts = append(parts, HHMMSSsss(m.Time))
	}
	switch s.Severity {
	case SeverityShort:
		parts = append(parts, m.Severity.Short()+":")
	case SeverityLong:
		parts = append(parts, m.Severity.String()+":")
	}
	if s.Trace && len(m.Trace) > 0 {
		parts = append(parts, fmt.Sprint(m.Trace))
	}
	if s.Tag && m.Tag != "" {
		parts = append(parts, "["+m.Tag+"]")
	}
	parts = append(parts, m.Text)
	if len(m.Values) > 0 {
		switch s.Values {
		case ValuesSingleLine:
			pairs := make([]string, len(m.Values))
			for i, v := range m.Values {
				pairs[i] = fmt.Sprintf("%v: %v", v.Name, v.Value)
			}
			parts = append(parts, "("+strings.Join(pairs, ", ")+")")
		case ValuesMultiLine:
			sb := strings.Builder{}
			for _, v := range m.Values {
				fmt.Fprintf(&sb, "\n  %v: %v", v.Name, v.Value)
			}
			parts = append(parts, sb.String())
		}
	}
	return strings.Join(parts, " ")
}

// HHMMSSsss formats t as a wall clock time with milliseconds.
func HHMMSSsss(t time.Time) string {
	return t.Format("15:04:05.000")
}
