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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind is the canonical type identifier of a renderable error.
//
// Kinds are dot-separated, 1 to 4 segments, each [a-z][a-z0-9_]*:
//
//   - "exception.bad_request"
//   - "exception.too_many_requests"
//   - "validate"
//   - "acme.billing.quota_exceeded"
//
// The dont_report allow-list is a list of kinds, and an entry suppresses
// every kind it is a segment prefix of, so "exception" covers all of the
// built-in variants.
type Kind string

const (
	// MinLength is the minimum length for a valid kind.
	MinLength = 3

	// MaxLength is the maximum length for a valid kind.
	MaxLength = 128
)

// kindFmt: 1..4 segments, each starting with a lowercase letter.
const kindFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var kindRe = regexp.MustCompile(kindFmt)

var (
	// ErrKindInvalidFormat is returned when a kind does not match kindFmt.
	ErrKindInvalidFormat = errors.New("exception: invalid kind format")
	// ErrKindInvalidLength is returned when a kind is too short or too long.
	ErrKindInvalidLength = errors.New("exception: invalid kind length")
)

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind, carried by errors that did not declare one.
var Empty Kind = ""

// Normalize trims, lowercases, turns "/" into "." and "-" into "_".
// The result still has to go through Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string is rejected.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse, for package-level vars.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate checks whether k is in canonical form.
func Validate(k Kind) error {
	return validate(string(k))
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Segments splits k on ".".
func (k Kind) Segments() []string {
	if k == Empty {
		return nil
	}
	return strings.Split(string(k), ".")
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrKindInvalidLength
	}
	if !kindRe.MatchString(s) {
		return ErrKindInvalidFormat
	}
	return nil
}
