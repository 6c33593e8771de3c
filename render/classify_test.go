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
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dirpx.dev/exception"
	"dirpx.dev/exception/category"
)

type signup struct {
	Email string `validate:"required,email"`
}

func TestClassify(t *testing.T) {
	v := validator.New()
	validationErr := v.Struct(signup{})
	require.Error(t, validationErr)
	invalidValidation := v.Struct(nil)
	require.Error(t, invalidValidation)

	tests := []struct {
		name string
		err  error
		want category.Category
	}{
		{"nil", nil, category.ServerError},
		{"echo not found", echo.ErrNotFound, category.Route},
		{"echo method not allowed", echo.ErrMethodNotAllowed, category.Route},
		{"echo other status", echo.NewHTTPError(http.StatusTeapot), category.ServerError},
		{"validation errors", validationErr, category.Validate},
		{"wrapped validation errors", fmt.Errorf("signup: %w", validationErr), category.Validate},
		{"malformed token", fmt.Errorf("%w: bad segment", jwt.ErrTokenMalformed), category.JWTToken},
		{"bad signature", jwt.ErrTokenSignatureInvalid, category.JWTToken},
		{"expired token", errors.Join(jwt.ErrTokenInvalidClaims, jwt.ErrTokenExpired), category.JWTTokenExpired},
		{"refresh expired", fmt.Errorf("%w: %w", exception.ErrRefreshTokenExpired, jwt.ErrTokenExpired), category.JWTRefreshTokenExpired},
		{"invalid argument", fmt.Errorf("%w: cache size", exception.ErrInvalidArgument), category.InvalidArgument},
		{"invalid validation", invalidValidation, category.InvalidArgument},
		{"pg error", &pgconn.PgError{Code: "23505", Message: "duplicate key"}, category.Database},
		{"record not found", gorm.ErrRecordNotFound, category.Database},
		{"no rows", fmt.Errorf("load user: %w", sql.ErrNoRows), category.Database},
		{"descriptor", exception.NewForbidden(""), category.Descriptor},
		{"plain", errors.New("boom"), category.ServerError},
		{"panic", exception.FromPanic("boom"), category.ServerError},
		{"panic with descriptor", exception.FromPanic(exception.NewNotFound("")), category.Descriptor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// A descriptor wrapping a collaborator error takes the collaborator's
	// category, not descriptor.
	err := exception.NewBadRequest("no such user", exception.WithCause(sql.ErrNoRows))
	require.Equal(t, category.Database, Classify(err))
}

func TestClassifyMessages(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessage  string
		wantInternal string
	}{
		{
			name:        "echo message",
			err:         echo.ErrNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "invalid argument prefix",
			err:         fmt.Errorf("%w: cache size", exception.ErrInvalidArgument),
			wantMessage: InvalidArgumentPrefix + "invalid argument: cache size",
		},
		{
			name:         "database prefix",
			err:          sql.ErrNoRows,
			wantMessage:  DatabasePrefix + "sql: no rows in result set",
			wantInternal: "sql: no rows in result set",
		},
		{
			name:         "server error is generalized",
			err:          errors.New("dial tcp 10.0.0.7:5432: refused"),
			wantMessage:  InternalServerErrorMessage,
			wantInternal: "dial tcp 10.0.0.7:5432: refused",
		},
		{
			name:         "descriptor keeps its own message",
			err:          exception.NewForbidden("not yours", exception.WithInternal("owner=7")),
			wantMessage:  "not yours",
			wantInternal: "owner=7",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := classify(tt.err, descriptorOf(tt.err))
			require.Equal(t, tt.wantMessage, cl.message)
			require.Equal(t, tt.wantInternal, cl.internal)
		})
	}
}
