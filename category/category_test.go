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

package category

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  route  ", "route"},
		{"to lower", "VaLiDaTe", "validate"},
		{"dash to underscore", "jwt-token-expired", "jwt_token_expired"},
		{"mixed", "  SERVER-ERROR ", "server_error"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "ab", "1route", "route!", "a_very_long_category_that_is_definitely_more_than_sixty_four_chars"} {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			if !errors.Is(err, ErrCategoryInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrCategoryInvalid", in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", in, got)
			}
		})
	}
}

func TestParseKnown(t *testing.T) {
	c, err := ParseKnown(" JWT-Refresh-Token-Expired ")
	if err != nil {
		t.Fatalf("ParseKnown unexpected error: %v", err)
	}
	if c != JWTRefreshTokenExpired {
		t.Fatalf("ParseKnown = %q, want %q", c, JWTRefreshTokenExpired)
	}

	if _, err := ParseKnown("timeout"); !errors.Is(err, ErrCategoryUnknown) {
		t.Fatalf("ParseKnown(timeout) error = %v, want ErrCategoryUnknown", err)
	}
}

func TestAll_OrderAndMembership(t *testing.T) {
	if All[0] != Route || All[len(All)-1] != ServerError {
		t.Fatalf("classification order changed: %v", All)
	}
	seen := map[Category]bool{}
	for _, c := range All {
		if err := Check(c); err != nil {
			t.Fatalf("Check(%q) unexpected error: %v", c, err)
		}
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true
		if !c.Known() {
			t.Fatalf("%q must be known", c)
		}
	}
}

func TestConfigurable(t *testing.T) {
	for _, c := range []Category{Route, Validate, JWTToken, JWTTokenExpired, JWTRefreshTokenExpired, InvalidArgument, ServerError} {
		if !c.Configurable() {
			t.Fatalf("%q must be configurable", c)
		}
	}
	for _, c := range []Category{Database, Descriptor, Empty} {
		if c.Configurable() {
			t.Fatalf("%q must not be configurable", c)
		}
	}
}

func TestCategory_TextRoundTrip(t *testing.T) {
	var c Category
	if err := c.UnmarshalText([]byte("  Invalid-Argument ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if c != InvalidArgument {
		t.Fatalf("UnmarshalText = %q, want %q", c, InvalidArgument)
	}
	text, err := c.MarshalText()
	if err != nil || string(text) != "invalid_argument" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}

	if _, err := Category("Bad Value").MarshalText(); err == nil {
		t.Fatalf("MarshalText on invalid category must fail")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("??")
}
