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

package logger_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"dirpx.dev/exception/config"
	"dirpx.dev/exception/httpx"
	"dirpx.dev/exception/logger"
	"dirpx.dev/exception/render"
)

func ExampleNew() {
	cfg := config.Default()
	zl, err := logger.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = zl.Sync() }()

	h, err := render.New(cfg, logger.Zap(zl))
	if err != nil {
		panic(err)
	}
	srv := httpx.Handle(h, func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("connection reset")
	})
	srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
