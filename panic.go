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
)

// PanicError wraps a value recovered from a panic together with the stack of
// the panicking goroutine.
type PanicError struct {
	Value any
	stack []uintptr
}

var _ apis.StackTracer = (*PanicError)(nil)

// FromPanic wraps a recovered value. It must be called directly from the
// deferred function that called recover, so the captured stack starts inside
// the panicking code. A nil v returns nil.
//
//	defer func() {
//	    if v := recover(); v != nil {
//	        err = exception.FromPanic(v)
//	    }
//	}()
func FromPanic(v any) error {
	if v == nil {
		return nil
	}
	return &PanicError{Value: v, stack: callers(2)}
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap exposes the panic value when it is itself an error, so a panicking
// *Error keeps its classification.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// StackTrace implements apis.StackTracer.
func (p *PanicError) StackTrace() []runtime.Frame { return frames(p.stack) }
