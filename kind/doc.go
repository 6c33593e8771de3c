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

// Package kind defines the type identifiers used to decide whether an error
// is worth logging.
//
// Where a category answers "which branch renders this error?", a kind answers
// "what exactly is this error?", e.g.:
//
//   - "exception.bad_request"
//   - "exception.not_team_member"
//   - "jwt_token"
//
// Every built-in exception variant lives under the "exception" namespace.
// Errors that are classified by category but declare no kind of their own are
// reported under the category name.
package kind
