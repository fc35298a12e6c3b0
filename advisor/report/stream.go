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

package report

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/vkadvisor/core/log"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// StreamSink writes each diagnostic as one line of protobuf JSON to a writer,
// for consumption by tools that filter diagnostics by code.
//
//	{"code":"BestPractices-vkCmdDraw-instance-count-zero","message":"...","object":"0x2a","severity":"Warning","time":"2026-01-02T03:04:05Z"}
type StreamSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStreamSink returns a StreamSink writing to w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

func (s *StreamSink) Emit(ctx context.Context, d Diagnostic) {
	now := time.Now()
	if c := log.GetClock(ctx); c != nil {
		now = c.Time()
	}
	line, err := Encode(d, timestamppb.New(now))
	if err != nil {
		log.E(ctx, "Encoding diagnostic %v: %v", d.Code, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(append(line, '\n')); err != nil {
		log.E(ctx, "Writing diagnostic %v: %v", d.Code, err)
	}
}

// Encode returns the JSON form of a diagnostic used by StreamSink.
// A nil time is omitted.
func Encode(d Diagnostic, at *timestamppb.Timestamp) ([]byte, error) {
	fields := map[string]*structpb.Value{
		"object":   structpb.NewStringValue(fmt.Sprintf("0x%x", uint64(d.Object))),
		"code":     structpb.NewStringValue(d.Code),
		"severity": structpb.NewStringValue(d.Severity.String()),
		"message":  structpb.NewStringValue(d.Message),
	}
	if at != nil {
		if err := at.CheckValid(); err != nil {
			return nil, err
		}
		fields["time"] = structpb.NewStringValue(at.AsTime().UTC().Format(time.RFC3339Nano))
	}
	return protojson.MarshalOptions{}.Marshal(&structpb.Struct{Fields: fields})
}
