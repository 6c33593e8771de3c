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

package segmenttrie

import (
	"reflect"
	"testing"
)

func TestInsertAndMatch_Prefix(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("exception", 1))
	must(t, tr.Insert("exception.too_many_requests", 2))
	must(t, tr.Insert("validate", 3))

	if v, ok, p := tr.MatchWithPattern("exception.bad_request"); !ok || v != 1 || p != "exception" {
		t.Fatalf("exception.bad_request => ok=%v v=%v p=%q; want 1, exception", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("exception.too_many_requests"); !ok || v != 2 || p != "exception.too_many_requests" {
		t.Fatalf("deeper pattern must win: ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok := tr.Match("validate"); !ok || v != 3 {
		t.Fatalf("exact key must match: ok=%v v=%v", ok, v)
	}
}

func TestMatch_SegmentBoundary(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("jwt_token", 1))

	if _, ok := tr.Match("jwt_token_expired"); ok {
		t.Fatalf("jwt_token must not match jwt_token_expired across a segment")
	}
	if _, ok := tr.Match("jwt"); ok {
		t.Fatalf("shorter key must not match")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("acme.*.denied", 7))
	must(t, tr.Insert("acme.billing", 1))

	if v, ok, p := tr.MatchWithPattern("acme.billing.denied"); !ok || v != 7 || p != "acme.*.denied" {
		t.Fatalf("deeper wildcard path must win: ok=%v v=%v p=%q", ok, v, p)
	}
	if _, ok := tr.Match("acme.denied"); ok {
		t.Fatalf("wildcard must not match zero segments")
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "UPPER.case", "a..b", "*", "*.*", "1abc"} {
		if err := tr.Insert(p, 1); err != ErrInvalidPattern {
			t.Fatalf("Insert(%q) error = %v, want ErrInvalidPattern", p, err)
		}
	}
	must(t, tr.Insert("abc", 1))
	for _, k := range []string{"", "ABC", "abc..x", "abc.*"} {
		if _, ok := tr.Match(k); ok {
			t.Fatalf("Match(%q) must be false for an invalid key", k)
		}
	}

	var nilTrie *Trie[int]
	if _, ok := nilTrie.Match("abc"); ok {
		t.Fatalf("nil trie must not match")
	}
}

func TestPatterns_Sorted(t *testing.T) {
	tr := New[struct{}]()
	must(t, tr.Insert("validate", struct{}{}))
	must(t, tr.Insert("exception.*", struct{}{}))
	must(t, tr.Insert("exception", struct{}{}))

	want := []string{"exception", "exception.*", "validate"}
	if got := tr.Patterns(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Patterns() = %v, want %v", got, want)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
