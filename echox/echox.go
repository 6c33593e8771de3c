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

// Package echox plugs the renderer into echo.
//
//	e := echo.New()
//	e.Use(echox.RequestID())
//	e.HTTPErrorHandler = echox.ErrorHandler(h)
package echox

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"dirpx.dev/exception"
	"dirpx.dev/exception/category"
	"dirpx.dev/exception/kind"
	"dirpx.dev/exception/render"
	"dirpx.dev/exception/requestid"
)

// KindHTTPError marks client errors echo raised itself (bad binding,
// unsupported media type, middleware rejections) that nothing else
// classified.
var KindHTTPError = kind.MustParse("echo.http_error")

// ErrorHandler returns an echo.HTTPErrorHandler that reports and renders
// errors with h. Errors on committed responses are reported and logged but
// not written; when h is disabled echo's default handler takes over.
func ErrorHandler(h *render.Handler) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if !h.Enabled() {
			c.Echo().DefaultHTTPErrorHandler(err, c)
			return
		}

		err = fromHTTPError(err)
		h.Report(c.Request().Context(), err)
		if c.Response().Committed {
			h.Resolve(NewRequest(c), err)
			return
		}
		resp := h.Render(NewRequest(c), err)
		if resp == nil {
			return
		}

		header := c.Response().Header()
		for k, vs := range resp.Header {
			header[k] = append([]string(nil), vs...)
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(resp.Status)
		} else {
			err = c.Blob(resp.Status, resp.Header.Get(echo.HeaderContentType), resp.Body)
		}
		if err != nil {
			c.Logger().Error(err)
		}
	}
}

// fromHTTPError turns a 4xx *echo.HTTPError that would otherwise fall through
// to server_error into a descriptor carrying the same status and message.
// Route errors and errors wrapping a classified cause are returned as is.
func fromHTTPError(err error) error {
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code < 400 || he.Code >= 500 {
		return err
	}
	if render.Classify(err) != category.ServerError {
		return err
	}
	return exception.New(KindHTTPError, he.Code, he.Code, fmt.Sprint(he.Message),
		exception.WithCause(he))
}

// RequestID makes sure every request carries an id: an inbound X-Request-ID
// is kept, otherwise a UUID v4 is generated.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			id := r.Header.Get(requestid.Header)
			if id == "" {
				id = requestid.New()
			}
			c.Response().Header().Set(requestid.Header, id)
			c.SetRequest(r.WithContext(requestid.NewContext(r.Context(), id)))
			return next(c)
		}
	}
}
