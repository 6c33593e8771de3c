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

// Package config loads the exception handler configuration.
//
// The file format is YAML:
//
//	enable: true
//	debug: false
//	exception:
//	  dont_report: [exception, validate, jwt_token]
//	  status_code: {validate: 400, jwt_token: 401, server_error: 500}
//	  error_code: {server_error: 500}
//	  body: {code: 0, msg: "", data: null}
//
// status_code and error_code have three states: absent (library defaults),
// present but empty ("{}" or "[]": every status becomes 200, every code 0)
// and populated. Only the keys of body matter; they rename the code, message
// and data members of the response in that order.
//
// Malformed configuration is rejected at load time.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"dirpx.dev/exception/apis"
	"dirpx.dev/exception/mapper"
	"dirpx.dev/exception/report"
)

// EnvDebug overrides Config.Debug when set.
const EnvDebug = "APP_DEBUG"

// ErrInvalid wraps every configuration error.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the exception handler configuration. It is read once and
// treated as immutable afterwards.
type Config struct {
	// Enable toggles the whole integration. When false, transports fall
	// back to their native error handling.
	Enable bool `yaml:"enable"`

	// Debug adds error_message, error_trace, file and line to every
	// response.
	Debug bool `yaml:"debug"`

	Exception Exception `yaml:"exception"`
}

// Exception holds the error rendering settings.
type Exception struct {
	// DontReport lists kind patterns exempt from error logging.
	DontReport []string `yaml:"dont_report"`

	// StatusCode overrides HTTP statuses per category.
	StatusCode Overrides `yaml:"status_code"`

	// ErrorCode overrides business codes per category.
	ErrorCode Overrides `yaml:"error_code"`

	// Body renames the response members.
	Body Body `yaml:"body"`
}

// Default returns the configuration used when none is provided: enabled,
// debug off, built-in variants plus validation and token errors kept out of
// the error log, library status and code defaults, default body names.
func Default() *Config {
	return &Config{
		Enable: true,
		Exception: Exception{
			DontReport: []string{"exception", "validate", "jwt_token"},
			Body:       Body(apis.DefaultBodyFields),
		},
	}
}

// Parse decodes YAML on top of Default and validates the result. Unknown
// keys and multiple documents are rejected. Empty input yields Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		return cfg, nil
	}

	var extra any
	if err := dec.Decode(&extra); err == nil {
		return nil, fmt.Errorf("%w: multiple YAML documents are not allowed", ErrInvalid)
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path, then applies the APP_DEBUG
// environment overlay.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	v, ok := os.LookupEnv(EnvDebug)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, EnvDebug, v)
	}
	c.Debug = b
	return nil
}

// Validate checks a configuration built in code. Parse already calls it.
func (c *Config) Validate() error {
	if _, err := report.New(c.Exception.DontReport...); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Exception.StatusCode.validate("status_code", true); err != nil {
		return err
	}
	if err := c.Exception.ErrorCode.validate("error_code", false); err != nil {
		return err
	}
	return c.Exception.Body.validate()
}

// MapperOptions translates the status_code and error_code settings into
// mapper options.
func (e Exception) MapperOptions() []mapper.Option {
	var opts []mapper.Option
	if e.StatusCode.Neutral() {
		opts = append(opts, mapper.WithHTTPNeutral())
	}
	for c, v := range e.StatusCode.values {
		opts = append(opts, mapper.WithHTTPOverride(c, v))
	}
	if e.ErrorCode.Neutral() {
		opts = append(opts, mapper.WithCodeNeutral())
	}
	for c, v := range e.ErrorCode.values {
		opts = append(opts, mapper.WithCodeOverride(c, v))
	}
	return opts
}

// Filter compiles DontReport.
func (e Exception) Filter() (*report.Filter, error) {
	return report.New(e.DontReport...)
}
