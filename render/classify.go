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

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"dirpx.dev/exception"
	"dirpx.dev/exception/apis"
	"dirpx.dev/exception/category"
)

const (
	// InternalServerErrorMessage replaces the message of unclassified errors.
	InternalServerErrorMessage = "Internal Server Error"

	// InvalidArgumentPrefix is prepended to invalid_argument messages.
	InvalidArgumentPrefix = "Parameter configuration error: "

	// DatabasePrefix is prepended to database messages.
	DatabasePrefix = "Db: "
)

// matcher is one branch of the classification. Branches are tried in order
// and the first one whose test succeeds decides the category.
type matcher struct {
	category category.Category
	test     func(err error) bool
}

// matchers follows category.All. server_error has no entry: it is what is
// left when nothing matched.
var matchers = []matcher{
	{category.Route, isRoute},
	{category.Validate, isValidate},
	{category.JWTToken, isJWTToken},
	{category.JWTTokenExpired, isJWTTokenExpired},
	{category.JWTRefreshTokenExpired, isJWTRefreshTokenExpired},
	{category.InvalidArgument, isInvalidArgument},
	{category.Database, isDatabase},
	{category.Descriptor, isDescriptor},
}

// Classify returns the category err falls into. A nil err is a server error.
func Classify(err error) category.Category {
	if err == nil {
		return category.ServerError
	}
	for _, m := range matchers {
		if m.test(err) {
			return m.category
		}
	}
	return category.ServerError
}

// classification is what the render routine takes from the matched branch.
type classification struct {
	category category.Category
	message  string
	internal string
}

// classify picks the category and derives the client message. d is the
// descriptor found on the chain, if any; its message is preferred over the
// raw error text for every category but server_error.
func classify(err error, d apis.Descriptor) classification {
	c := Classify(err)

	base := ""
	internal := ""
	if d != nil {
		base = d.ErrorMessage()
		internal = d.InternalError()
	} else if err != nil {
		base = err.Error()
	}

	switch c {
	case category.Route:
		var he *echo.HTTPError
		if errors.As(err, &he) && d == nil {
			base = fmt.Sprint(he.Message)
		}
		return classification{category: c, message: base, internal: internal}
	case category.InvalidArgument:
		return classification{category: c, message: InvalidArgumentPrefix + base, internal: internal}
	case category.Database:
		return classification{category: c, message: DatabasePrefix + base, internal: err.Error()}
	case category.ServerError:
		detail := ""
		if err != nil {
			detail = err.Error()
		}
		return classification{category: c, message: InternalServerErrorMessage, internal: detail}
	default:
		return classification{category: c, message: base, internal: internal}
	}
}

// descriptorOf returns the outermost descriptor on err's chain, or nil.
func descriptorOf(err error) apis.Descriptor {
	var d apis.Descriptor
	if errors.As(err, &d) {
		return d
	}
	return nil
}

func isRoute(err error) bool {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return false
	}
	return he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed
}

func isValidate(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}

// jwtErrors are the golang-jwt sentinels that mean the token could not be
// trusted. Expiry is handled separately.
var jwtErrors = []error{
	jwt.ErrTokenMalformed,
	jwt.ErrTokenUnverifiable,
	jwt.ErrTokenSignatureInvalid,
	jwt.ErrTokenRequiredClaimMissing,
	jwt.ErrTokenInvalidAudience,
	jwt.ErrTokenUsedBeforeIssued,
	jwt.ErrTokenInvalidIssuer,
	jwt.ErrTokenInvalidSubject,
	jwt.ErrTokenNotValidYet,
	jwt.ErrTokenInvalidId,
	jwt.ErrTokenInvalidClaims,
	jwt.ErrInvalidKey,
	jwt.ErrInvalidKeyType,
	jwt.ErrHashUnavailable,
	jwt.ErrInvalidType,
}

// isJWTToken matches token errors other than expiry. golang-jwt reports an
// expired token as ErrTokenInvalidClaims joined with ErrTokenExpired, so the
// expiry checks come first.
func isJWTToken(err error) bool {
	if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, exception.ErrRefreshTokenExpired) {
		return false
	}
	for _, target := range jwtErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isJWTTokenExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, exception.ErrRefreshTokenExpired)
}

func isJWTRefreshTokenExpired(err error) bool {
	return errors.Is(err, exception.ErrRefreshTokenExpired)
}

func isInvalidArgument(err error) bool {
	if errors.Is(err, exception.ErrInvalidArgument) {
		return true
	}
	var ive *validator.InvalidValidationError
	return errors.As(err, &ive)
}

func isDatabase(err error) bool {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return true
	}
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows)
}

func isDescriptor(err error) bool {
	var d apis.Descriptor
	return errors.As(err, &d)
}
