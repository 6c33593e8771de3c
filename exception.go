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

package exception

import (
	"fmt"
	"runtime"

	"dirpx.dev/exception/apis"
	"dirpx.dev/exception/kind"
)

// Error is an application error that carries its own presentation.
//
// It carries:
//   - Kind: type identifier matched against the dont_report allow-list;
//   - Status: HTTP response status;
//   - Code: business code, independent of Status;
//   - Message: what the client sees;
//   - Header: extra response headers;
//   - Data: extra fields merged into the response data;
//   - Internal: detail that is logged but never sent to the client;
//   - Cause: wrapped underlying error, for errors.Is / errors.As.
//
// All WithX helpers return a shallow copy with fresh maps, so an Error can be
// shared between goroutines and refined in a functional style.
type Error struct {
	Kind     kind.Kind
	Status   int
	Code     int
	Message  string
	Header   map[string]string
	Data     map[string]any
	Internal string
	Cause    error

	// stack holds the program counters captured at construction.
	stack []uintptr
}

var (
	_ apis.Descriptor  = (*Error)(nil)
	_ apis.KindedError = (*Error)(nil)
	_ apis.StackTracer = (*Error)(nil)
)

// New builds an Error of kind k. An empty msg is allowed; variants use it to
// mean "keep the default message".
//
// Usage:
//
//	var ErrQuota = kind.MustParse("acme.billing.quota_exceeded")
//
//	return exception.New(ErrQuota, http.StatusPaymentRequired, 40201, "quota exceeded",
//	    exception.WithDataValue("limit", 100),
//	)
func New(k kind.Kind, status, code int, msg string, opts ...Option) *Error {
	return build(2, k, status, code, msg, nil, nil, opts)
}

// build creates the Error, recording the stack from skip frames above its
// own caller.
func build(skip int, k kind.Kind, status, code int, msg string, header map[string]string, data map[string]any, opts []Option) *Error {
	e := &Error{
		Kind:    k,
		Status:  status,
		Code:    code,
		Message: msg,
		Header:  copyHeader(header),
		Data:    copyData(data),
		stack:   callers(skip),
	}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
//
// or, when Cause is present:
//
//	<kind>: <message>: <cause>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Message
	if e.Kind != kind.Empty {
		s = fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Cause != nil {
		s = fmt.Sprintf("%s: %v", s, e.Cause)
	}
	return s
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// HTTPStatus implements apis.Descriptor.
func (e *Error) HTTPStatus() int { return e.Status }

// BusinessCode implements apis.Descriptor.
func (e *Error) BusinessCode() int { return e.Code }

// ErrorMessage implements apis.Descriptor.
func (e *Error) ErrorMessage() string { return e.Message }

// Headers implements apis.Descriptor.
func (e *Error) Headers() map[string]string { return e.Header }

// ErrorData implements apis.Descriptor.
func (e *Error) ErrorData() map[string]any { return e.Data }

// InternalError implements apis.Descriptor.
func (e *Error) InternalError() string { return e.Internal }

// ErrorKind implements apis.KindedError.
func (e *Error) ErrorKind() kind.Kind { return e.Kind }

// StackTrace implements apis.StackTracer.
func (e *Error) StackTrace() []runtime.Frame { return frames(e.stack) }

// WithMessage returns a copy of e with a replaced client message.
// An empty msg keeps the current one.
func (e *Error) WithMessage(msg string) *Error {
	if msg == "" {
		return e
	}
	cp := *e
	cp.Message = msg
	return &cp
}

// WithStatusCode returns a copy of e with the HTTP status replaced.
// The business code is left untouched.
func (e *Error) WithStatusCode(status int) *Error {
	cp := *e
	cp.Status = status
	return &cp
}

// WithErrorCode returns a copy of e with the business code replaced.
func (e *Error) WithErrorCode(code int) *Error {
	cp := *e
	cp.Code = code
	return &cp
}

// WithHeaders returns a copy of e whose headers are exactly h.
func (e *Error) WithHeaders(h map[string]string) *Error {
	cp := *e
	cp.Header = copyHeader(h)
	return &cp
}

// WithHeader returns a copy of e with one header added or replaced.
func (e *Error) WithHeader(k, v string) *Error {
	cp := *e
	m := make(map[string]string, len(e.Header)+1)
	for k0, v0 := range e.Header {
		m[k0] = v0
	}
	m[k] = v
	cp.Header = m
	return &cp
}

// WithData returns a copy of e whose data is exactly d.
func (e *Error) WithData(d map[string]any) *Error {
	cp := *e
	cp.Data = copyData(d)
	return &cp
}

// WithDataValue returns a copy of e with one data key added or replaced.
func (e *Error) WithDataValue(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(e.Data)+1)
	for k0, v0 := range e.Data {
		m[k0] = v0
	}
	m[k] = v
	cp.Data = m
	return &cp
}

// WithInternal returns a copy of e with log-only detail attached.
// An empty detail keeps the current one.
func (e *Error) WithInternal(detail string) *Error {
	if detail == "" {
		return e
	}
	cp := *e
	cp.Internal = detail
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

func copyHeader(src map[string]string) map[string]string {
	if len(src) == 0 {
		return map[string]string{}
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyData(src map[string]any) map[string]any {
	if len(src) == 0 {
		return map[string]any{}
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
