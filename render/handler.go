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
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/exception/adapter"
	"dirpx.dev/exception/apis"
	"dirpx.dev/exception/category"
	"dirpx.dev/exception/config"
	"dirpx.dev/exception/kind"
	"dirpx.dev/exception/logger"
	"dirpx.dev/exception/mapper"
	"dirpx.dev/exception/report"
	"dirpx.dev/exception/requestid"
)

// TimeLayout formats the timestamp member of the request metadata.
const TimeLayout = "2006-01-02 15:04:05"

// Handler reports and renders errors. It is built once from a configuration
// snapshot and is safe for concurrent use.
type Handler struct {
	enable bool
	debug  bool
	fields apis.BodyFields

	mapper apis.Mapper
	filter *report.Filter
	log    logger.Logger

	now    func() time.Time
	tracer trace.TracerProvider
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock replaces time.Now for the timestamp member.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// WithTracerProvider sets the provider used for the "exception" span. By
// default the provider of the span found on the request context is used,
// which does nothing for remote (propagated only) span contexts.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(h *Handler) { h.tracer = tp }
}

// New builds a Handler from cfg. A nil cfg means config.Default(); a nil log
// discards log entries.
func New(cfg *config.Config, log logger.Logger, opts ...Option) (*Handler, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	m, err := mapper.New(cfg.Exception.MapperOptions()...)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	f, err := cfg.Exception.Filter()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	h := &Handler{
		enable: cfg.Enable,
		debug:  cfg.Debug,
		fields: cfg.Exception.Body.Fields(),
		mapper: m,
		filter: f,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Enabled reports whether the integration is switched on. Transports fall
// back to their native error handling when it is not.
func (h *Handler) Enabled() bool { return h.enable }

// Fields returns the configured response member names.
func (h *Handler) Fields() apis.BodyFields { return h.fields }

// Mapper returns the status mapper built from the configuration.
func (h *Handler) Mapper() apis.Mapper { return h.mapper }

// Report logs err at error level unless the dont_report allow-list covers
// one of its kinds or its category. Database and unclassified errors are
// skipped here because Render always logs them.
func (h *Handler) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}
	c := Classify(err)
	if c == category.Database || c == category.ServerError {
		return
	}
	kinds := append(report.Kinds(err), kind.Kind(c))
	if h.filter.Suppressed(kinds...) {
		return
	}

	d := descriptorOf(err)
	cl := classify(err, d)
	res := apis.Result{
		Category: c,
		Kind:     kinds[0],
		Status:   h.mapper.Status(c, d),
		Message:  cl.message,
		Internal: cl.internal,
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		res.TraceID = sc.TraceID().String()
	}

	fields := adapter.ToLogFields(res)
	if res.Internal == "" {
		fields["error"] = err.Error()
	}
	if id := requestid.FromContext(ctx); id != "" {
		fields["request_id"] = id
	}
	h.log.Error(res.Message, fields)
}

// Resolve runs the render pipeline up to, but not including, serialization:
// request metadata, descriptor data, classification, overrides, debug
// fields and tracing. gRPC uses it directly; HTTP goes through Render.
func (h *Handler) Resolve(req apis.Request, err error) apis.Result {
	ctx := context.Background()
	if req != nil && req.Context() != nil {
		ctx = req.Context()
	}

	data := h.requestInfo(ctx, req).Fields()
	res := apis.Result{Header: map[string]string{}}

	d := descriptorOf(err)
	if d != nil {
		for k, v := range d.Headers() {
			res.Header[k] = v
		}
		for k, v := range d.ErrorData() {
			data[k] = v
		}
	}

	cl := classify(err, d)
	res.Category = cl.category
	res.Message = cl.message
	res.Internal = cl.internal
	res.Status = h.mapper.Status(cl.category, d)
	if ks := report.Kinds(err); len(ks) > 0 {
		res.Kind = ks[0]
	} else {
		res.Kind = kind.Kind(cl.category)
	}

	frames := stackOf(err)
	file, line := origin(frames)

	h.trace(ctx, &res, file, line)

	switch cl.category {
	case category.Database:
		h.log.Error(res.Message, merge(data, adapter.ToLogFields(res)))
	case category.ServerError:
		h.log.Error(res.Message, merge(data, adapter.ToLogFields(res), map[string]any{
			"file": file,
			"line": line,
		}))
	}

	if h.debug {
		data["error_message"] = res.Message
		data["error_trace"] = formatTrace(frames)
		data["file"] = file
		data["line"] = line
	}
	res.Data = data
	return res
}

func (h *Handler) requestInfo(ctx context.Context, req apis.Request) apis.RequestInfo {
	ri := apis.RequestInfo{
		Timestamp: h.now().Format(TimeLayout),
		RequestID: requestid.FromContext(ctx),
	}
	if req == nil {
		return ri
	}
	ri.Domain = req.Host()
	ri.Method = req.Method()
	ri.RequestURL = req.Method() + " " + req.URI()
	ri.ClientIP = req.RealIP()
	ri.Params = req.Params()
	return ri
}

// merge returns a new map holding ms, later maps overriding earlier ones.
func merge(ms ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
