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

import "errors"

var (
	// ErrInvalidArgument marks a programming or configuration mistake in the
	// arguments passed to a library. Wrap it to render the error under the
	// invalid_argument category.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRefreshTokenExpired marks an expired refresh token. golang-jwt has
	// no notion of refresh tokens, so auth code wraps this sentinel
	// (fmt.Errorf("%w: ...", exception.ErrRefreshTokenExpired)) to get the
	// jwt_refresh_token_expired category.
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
