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

// Package segmenttrie implements a segment-aware prefix index over
// dot-separated identifiers such as "exception.bad_request".
package segmenttrie

import (
	"errors"
	"sort"
	"strings"
)

// Trie maps dot-separated patterns to values. A pattern matches every key
// that starts with the same segments; "*" stands for exactly one segment.
// Lookups return the deepest matching pattern.
//
// A Trie is not safe for concurrent Insert, but any number of goroutines may
// call Match once inserts are done.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the original pattern, kept for diagnostics.
	pattern string
}

// ErrInvalidPattern is returned by Insert for empty patterns, empty segments,
// segments outside [a-z][a-z0-9_]*, and patterns made only of wildcards.
var ErrInvalidPattern = errors.New("segmenttrie: invalid pattern")

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with pattern. Inserting the same pattern twice keeps
// the last value.
func (t *Trie[T]) Insert(pattern string, val T) error {
	if t == nil || pattern == "" {
		return ErrInvalidPattern
	}
	segs := strings.Split(pattern, ".")
	wildOnly := true
	for _, s := range segs {
		if !validSegment(s, true) {
			return ErrInvalidPattern
		}
		if s != "*" {
			wildOnly = false
		}
	}
	if wildOnly {
		return ErrInvalidPattern
	}

	cur := t
	for _, s := range segs {
		next, ok := cur.children[s]
		if !ok {
			next = New[T]()
			cur.children[s] = next
		}
		cur = next
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = pattern
	return nil
}

// Match returns the value of the deepest pattern that is a segment prefix of
// key. Exact segments and "*" branches are both explored, so a deeper
// wildcard path beats a shallower exact one.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also reports which pattern matched.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil || key == "" {
		return zero, false, ""
	}
	segs := strings.Split(key, ".")
	for _, s := range segs {
		if !validSegment(s, false) {
			return zero, false, ""
		}
	}

	best := -1
	var bestNode *Trie[T]
	var walk func(n *Trie[T], depth int)
	walk = func(n *Trie[T], depth int) {
		if n.hasVal && depth > best {
			best = depth
			bestNode = n
		}
		if depth == len(segs) {
			return
		}
		if next, ok := n.children[segs[depth]]; ok {
			walk(next, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			walk(next, depth+1)
		}
	}
	walk(t, 0)

	if bestNode == nil {
		return zero, false, ""
	}
	return bestNode.val, true, bestNode.pattern
}

// Patterns lists every inserted pattern in lexical order.
func (t *Trie[T]) Patterns() []string {
	if t == nil {
		return nil
	}
	var out []string
	var walk func(n *Trie[T])
	walk = func(n *Trie[T]) {
		if n.hasVal {
			out = append(out, n.pattern)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t)
	sort.Strings(out)
	return out
}

// validSegment accepts [a-z][a-z0-9_]* and, when allowWildcard is set, "*".
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
