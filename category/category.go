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
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Category is the canonical identifier of one classification branch of the
// render routine, e.g. "route", "validate" or "server_error".
//
// Categories double as the keys of the status_code / error_code override
// mappings, so they follow the same lowercase, underscore-separated form that
// operators type into configuration files.
type Category string

const (
	// MinLength is the minimum length for a valid category.
	MinLength = 3

	// MaxLength is the maximum length for a valid category.
	MaxLength = 64
)

// categoryFmt mirrors MinLength / MaxLength: one leading letter followed by
// 2..63 letters, digits or underscores.
const categoryFmt = `^[a-z][a-z0-9_]{2,63}$`

var categoryRe = regexp.MustCompile(categoryFmt)

var (
	// ErrCategoryInvalid is returned when a value is not a well-formed category.
	ErrCategoryInvalid = errors.New("exception: invalid category")

	// ErrCategoryUnknown is returned by ParseKnown when a well-formed value
	// does not name one of the categories the render routine knows about.
	ErrCategoryUnknown = errors.New("exception: unknown category")
)

var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// Empty is the zero-value category. It never matches a classification branch.
var Empty Category = ""

// Parse normalizes and validates s. It does not check membership in the
// known set; use ParseKnown for that.
func Parse(s string) (Category, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Category(s), nil
}

// ParseKnown is Parse restricted to the categories listed in All.
func ParseKnown(s string) (Category, error) {
	c, err := Parse(s)
	if err != nil {
		return Empty, err
	}
	if !c.Known() {
		return Empty, ErrCategoryUnknown
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Category {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims, lowercases and replaces '-' with '_'. The result still
// has to go through Parse or Check.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Check reports whether c is well-formed. The empty category is invalid.
func Check(c Category) error {
	return validate(string(c))
}

// String returns the canonical string representation of the category.
func (c Category) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if err := Check(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !categoryRe.MatchString(s) {
		return ErrCategoryInvalid
	}
	return nil
}
