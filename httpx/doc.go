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

// Package httpx plugs the renderer into net/http.
//
//	cfg, err := config.Load("config/exception.yaml")
//	if err != nil {
//	    return err
//	}
//	zl, err := logger.New(cfg.Debug)
//	if err != nil {
//	    return err
//	}
//	h, err := render.New(cfg, logger.Zap(zl))
//	if err != nil {
//	    return err
//	}
//	mux.Handle("/users/", httpx.RequestID(httpx.Handle(h, users.Get)))
//
// Handle renders returned errors and recovered panics. Handlers that already
// wrote a response are left alone.
package httpx
