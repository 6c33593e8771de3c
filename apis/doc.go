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

// Package apis defines the public Go-level contracts shared by the render
// routine and its transport integrations.
//
// Application errors implement Descriptor (and optionally KindedError and
// StackTracer) to carry their own presentation. Transports hand the renderer
// a Request, and the renderer hands back a Result that adapters turn into a
// Body on the wire.
//
// Concrete error variants live in the root package; callers should depend on
// these interfaces rather than on the concrete type when they write their own
// variants. This package only holds interfaces and small value types.
package apis
