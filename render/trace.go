/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package render

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/exception/apis"
)

const (
	// TraceHeader carries the trace id back to the client.
	TraceHeader = "Trace-Id"

	// SpanName is the name of the child span recorded for every rendered
	// error.
	SpanName = "exception"

	tracerName = "dirpx.dev/exception/render"
)

// traceEvent is annotated on the span. Field order is part of the format.
type traceEvent struct {
	Event   string `json:"event"`
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// trace records a child span of the request span, when there is one, and
// exposes the trace id on the response.
func (h *Handler) trace(ctx context.Context, res *apis.Result, file string, line int) {
	parent := trace.SpanFromContext(ctx)
	sc := parent.SpanContext()
	if !sc.IsValid() {
		return
	}

	tp := h.tracer
	if tp == nil {
		tp = parent.TracerProvider()
	}
	_, span := tp.Tracer(tracerName).Start(ctx, SpanName)
	span.SetAttributes(attribute.String("error.code", strconv.Itoa(res.Status.Code)))

	blob, _ := json.Marshal(traceEvent{
		Event:   "error",
		Message: res.Message,
		Stack:   fmt.Sprintf("Exception:%s|%d", file, line),
	})
	span.AddEvent(string(blob))
	span.End()

	res.TraceID = sc.TraceID().String()
	res.Header[TraceHeader] = res.TraceID
}
