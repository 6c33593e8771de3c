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
	"errors"
	"fmt"
	"runtime"

	"dirpx.dev/exception/apis"
)

// stackOf returns the frames recorded by the outermost error on the chain
// that has any.
func stackOf(err error) []runtime.Frame {
	for err != nil {
		if st, ok := err.(apis.StackTracer); ok {
			if fs := st.StackTrace(); len(fs) > 0 {
				return fs
			}
		}
		err = errors.Unwrap(err)
	}
	return nil
}

// origin returns the file and line of the innermost frame, where the error
// was created. Errors without a stack yield "" and 0.
func origin(frames []runtime.Frame) (string, int) {
	if len(frames) == 0 {
		return "", 0
	}
	return frames[0].File, frames[0].Line
}

// formatTrace renders one line per frame, numbered from the innermost, and
// closes with the entry point marker:
//
//	#0 /srv/app/user.go(42): app.(*Users).Get
//	#1 /srv/app/router.go(17): app.route
//	#2 {main}
func formatTrace(frames []runtime.Frame) []string {
	out := make([]string, 0, len(frames)+1)
	for i, f := range frames {
		out = append(out, fmt.Sprintf("#%d %s(%d): %s", i, f.File, f.Line, f.Function))
	}
	return append(out, fmt.Sprintf("#%d {main}", len(frames)))
}
