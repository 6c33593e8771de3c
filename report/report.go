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

// Package report decides whether an error is worth an error-level log entry.
//
// The decision is driven by the dont_report allow-list: a list of kind
// patterns. A pattern suppresses every kind it is a segment prefix of, so
// "exception" silences all built-in variants while "exception.server_error"
// silences only one. "*" stands for exactly one segment.
package report

import (
	"errors"
	"fmt"

	"dirpx.dev/exception/apis"
	"dirpx.dev/exception/internal/segmenttrie"
	"dirpx.dev/exception/kind"
)

// Filter is an immutable dont_report allow-list. The zero value and a nil
// *Filter suppress nothing.
type Filter struct {
	trie *segmenttrie.Trie[struct{}]
}

// New compiles patterns into a Filter. Patterns are normalized like kinds
// (trimmed, lowercased, "/" to ".", "-" to "_") before insertion.
func New(patterns ...string) (*Filter, error) {
	t := segmenttrie.New[struct{}]()
	for _, raw := range patterns {
		p := kind.Normalize(raw)
		if err := t.Insert(p, struct{}{}); err != nil {
			return nil, fmt.Errorf("report: dont_report pattern %q: %w", raw, err)
		}
	}
	return &Filter{trie: t}, nil
}

// Match reports whether k is covered by the allow-list and, if so, by which
// pattern.
func (f *Filter) Match(k kind.Kind) (string, bool) {
	if f == nil || f.trie == nil || k == kind.Empty {
		return "", false
	}
	_, ok, p := f.trie.MatchWithPattern(string(k))
	return p, ok
}

// Suppressed reports whether any of kinds is covered by the allow-list.
func (f *Filter) Suppressed(kinds ...kind.Kind) bool {
	for _, k := range kinds {
		if _, ok := f.Match(k); ok {
			return true
		}
	}
	return false
}

// Patterns lists the compiled patterns in lexical order.
func (f *Filter) Patterns() []string {
	if f == nil {
		return nil
	}
	return f.trie.Patterns()
}

// Kinds collects every kind declared along err's chain, outermost first.
// Joined errors are walked depth first. Duplicates are dropped.
func Kinds(err error) []kind.Kind {
	var out []kind.Kind
	seen := make(map[kind.Kind]struct{})
	var walk func(error)
	walk = func(e error) {
		for e != nil {
			if ke, ok := e.(apis.KindedError); ok {
				if k := ke.ErrorKind(); k != kind.Empty {
					if _, dup := seen[k]; !dup {
						seen[k] = struct{}{}
						out = append(out, k)
					}
				}
			}
			if j, ok := e.(interface{ Unwrap() []error }); ok {
				for _, inner := range j.Unwrap() {
					walk(inner)
				}
				return
			}
			e = errors.Unwrap(e)
		}
	}
	walk(err)
	return out
}
