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
	"testing"

	"dirpx.dev/exception"
	"dirpx.dev/exception/config"
)

func benchRender(b *testing.B, err error) {
	h, hErr := New(config.Default(), nil)
	if hErr != nil {
		b.Fatalf("New: %v", hErr)
	}
	req := newRequest()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if h.Render(req, err) == nil {
			b.Fatal("nil response")
		}
	}
}

func BenchmarkRender_Descriptor(b *testing.B)   { benchRender(b, exception.NewForbidden("")) }
func BenchmarkRender_ServerError(b *testing.B)  { benchRender(b, errors.New("boom")) }
func BenchmarkRender_WrappedPanic(b *testing.B) { benchRender(b, exception.FromPanic("boom")) }
