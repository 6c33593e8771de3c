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

// Package category defines the closed set of classification branches an
// error can fall into when it is rendered, e.g. "route", "validate",
// "jwt_token" or "server_error".
//
// The render routine evaluates the categories in the order of All and picks
// the first one that matches. The same identifiers are used as keys of the
// status_code and error_code override mappings in configuration, which is why
// they are normalized the same way operators are likely to type them:
//
//   - trimmed;
//   - lowercased;
//   - '-' replaced with '_'.
package category
