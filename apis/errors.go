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

package apis

import (
	"runtime"

	"dirpx.dev/exception/kind"
)

// Descriptor is an error that knows how it should be presented to a client.
//
// HTTPStatus and BusinessCode are independent: the business code is not
// required to equal the HTTP status, and configuration may neutralize either
// of them.
type Descriptor interface {
	error

	// HTTPStatus returns the HTTP response status.
	HTTPStatus() int

	// BusinessCode returns the application-level error code placed in the
	// response body.
	BusinessCode() int

	// ErrorMessage returns the message shown to the client.
	ErrorMessage() string

	// Headers returns extra response headers. May return nil.
	// Callers must not modify the returned map.
	Headers() map[string]string

	// ErrorData returns extra fields merged into the response data.
	// May return nil. Callers must not modify the returned map.
	ErrorData() map[string]any

	// InternalError returns detail that is logged but never sent to the
	// client. May be empty.
	InternalError() string
}

// KindedError is an error that declares its type identifier. The kind is
// what the dont_report allow-list is matched against.
type KindedError interface {
	error

	// ErrorKind returns the kind. May return kind.Empty.
	ErrorKind() kind.Kind
}

// StackTracer is an error that remembers where it was created.
//
// Frames are ordered innermost first. Errors without a recorded stack simply
// do not implement this interface; debug output then carries an empty trace.
type StackTracer interface {
	error

	// StackTrace returns the recorded frames. May return nil.
	StackTrace() []runtime.Frame
}
