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

// Option is a functional option applied while constructing an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithStatusCode overrides the variant's HTTP status. The business code is
// not affected.
func WithStatusCode(status int) Option {
	return func(e *Error) *Error { return e.WithStatusCode(status) }
}

// WithErrorCode overrides the variant's business code.
func WithErrorCode(code int) Option {
	return func(e *Error) *Error { return e.WithErrorCode(code) }
}

// WithHeaders replaces the variant's headers.
func WithHeaders(h map[string]string) Option {
	return func(e *Error) *Error { return e.WithHeaders(h) }
}

// WithHeader adds one header on top of the variant's headers.
func WithHeader(k, v string) Option {
	return func(e *Error) *Error { return e.WithHeader(k, v) }
}

// WithData replaces the variant's data.
func WithData(d map[string]any) Option {
	return func(e *Error) *Error { return e.WithData(d) }
}

// WithDataValue adds one data key on top of the variant's data.
func WithDataValue(k string, v any) Option {
	return func(e *Error) *Error { return e.WithDataValue(k, v) }
}

// WithInternal attaches detail that is logged but never sent to the client.
func WithInternal(detail string) Option {
	return func(e *Error) *Error { return e.WithInternal(detail) }
}

// WithCause wraps an underlying error.
func WithCause(err error) Option {
	return func(e *Error) *Error { return e.WithCause(err) }
}
