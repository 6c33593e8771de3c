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

// Package render turns any error into the uniform JSON error response.
//
// A Handler is built once from a config.Config snapshot. For every error it
// classifies the error into exactly one category, resolves the HTTP status
// and the business code through the mapper, merges request metadata into the
// response data and, when the request is traced, records an "exception" span.
//
// Classification is an ordered table; the first matching branch wins:
//
//	route                      echo 404 / 405
//	validate                   validator.ValidationErrors
//	jwt_token                  golang-jwt errors other than expiry
//	jwt_token_expired          jwt.ErrTokenExpired
//	jwt_refresh_token_expired  exception.ErrRefreshTokenExpired
//	invalid_argument           exception.ErrInvalidArgument, *validator.InvalidValidationError
//	database                   *pgconn.PgError, gorm.ErrRecordNotFound, sql.ErrNoRows
//	descriptor                 any apis.Descriptor
//	server_error               everything else
//
// Database and server errors are always logged. Everything else goes through
// Report, which honours the dont_report allow-list.
//
// Transports live in httpx, echox and grpcx.
package render
