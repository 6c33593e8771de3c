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

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"dirpx.dev/exception/category"
)

// Overrides is a category to integer mapping that remembers whether it was
// configured at all. The zero value is "absent".
type Overrides struct {
	present bool
	// keyed is set when the mapping had keys, even if all of them were null.
	keyed  bool
	values map[category.Category]int
}

// OverridesOf builds a present mapping. An empty or nil m is the neutral
// mapping.
func OverridesOf(m map[category.Category]int) Overrides {
	o := Overrides{present: true, keyed: len(m) > 0}
	if len(m) > 0 {
		o.values = make(map[category.Category]int, len(m))
		for k, v := range m {
			o.values[k] = v
		}
	}
	return o
}

// Present reports whether the mapping was configured.
func (o Overrides) Present() bool { return o.present }

// Neutral reports whether the mapping was configured as empty.
func (o Overrides) Neutral() bool { return o.present && !o.keyed }

// Get returns the configured value for c.
func (o Overrides) Get(c category.Category) (int, bool) {
	v, ok := o.values[c]
	return v, ok
}

// Len returns the number of configured categories.
func (o Overrides) Len() int { return len(o.values) }

// UnmarshalYAML accepts a mapping of category keys to integers, or an empty
// sequence. yaml.v3 does not call it for null, which therefore stays absent.
// A null value for a single key leaves that category on its default.
func (o *Overrides) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		if len(n.Content) != 0 {
			return fmt.Errorf("line %d: expected a mapping of category to integer, got a list", n.Line)
		}
		*o = Overrides{present: true}
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: expected a mapping of category to integer", n.Line)
	}

	values := make(map[category.Category]int, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		c, err := category.ParseKnown(kn.Value)
		if err != nil {
			return fmt.Errorf("line %d: %q: %w", kn.Line, kn.Value, err)
		}
		if !c.Configurable() {
			return fmt.Errorf("line %d: category %q is not configurable", kn.Line, c)
		}
		if _, dup := values[c]; dup {
			return fmt.Errorf("line %d: duplicate category %q", kn.Line, c)
		}
		if vn.Kind == yaml.ScalarNode && vn.ShortTag() == "!!null" {
			continue
		}
		var v int
		if vn.Kind != yaml.ScalarNode || vn.Decode(&v) != nil {
			return fmt.Errorf("line %d: value for %q must be an integer", vn.Line, c)
		}
		values[c] = v
	}

	*o = Overrides{present: true, keyed: len(n.Content) > 0}
	if len(values) > 0 {
		o.values = values
	}
	return nil
}

func (o Overrides) validate(name string, httpStatus bool) error {
	for c, v := range o.values {
		if !c.Configurable() {
			return fmt.Errorf("%w: %s: category %q is not configurable", ErrInvalid, name, c)
		}
		if httpStatus && (v < 100 || v > 599) {
			return fmt.Errorf("%w: %s: %d is not an HTTP status (%s)", ErrInvalid, name, v, c)
		}
	}
	return nil
}
