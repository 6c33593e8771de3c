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

// Package logger is the only door from the exception handler to the host's
// logging facility. It exposes error-level logging and nothing else.
package logger

import (
	"context"
	"log/slog"
	"sort"

	"go.uber.org/zap"
)

// Logger records an error-level entry with structured fields.
type Logger interface {
	Error(msg string, fields map[string]any)
}

// Func adapts a plain function to Logger.
type Func func(msg string, fields map[string]any)

// Error calls f.
func (f Func) Error(msg string, fields map[string]any) { f(msg, fields) }

// Zap forwards to l at error level. A nil l gives Nop.
func Zap(l *zap.Logger) Logger {
	if l == nil {
		return Nop()
	}
	return zapLogger{l: l}
}

type zapLogger struct{ l *zap.Logger }

func (z zapLogger) Error(msg string, fields map[string]any) {
	zf := make([]zap.Field, 0, len(fields))
	for _, k := range sortedKeys(fields) {
		zf = append(zf, zap.Any(k, fields[k]))
	}
	z.l.Error(msg, zf...)
}

// Slog forwards to l at error level. A nil l gives Nop.
func Slog(l *slog.Logger) Logger {
	if l == nil {
		return Nop()
	}
	return slogLogger{l: l}
}

type slogLogger struct{ l *slog.Logger }

func (s slogLogger) Error(msg string, fields map[string]any) {
	attrs := make([]slog.Attr, 0, len(fields))
	for _, k := range sortedKeys(fields) {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	s.l.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// Nop discards everything.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Error(string, map[string]any) {}

// New builds a zap logger with the production preset, or the development
// preset when debug is set.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// sortedKeys keeps field order stable across entries.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
