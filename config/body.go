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
	"strings"

	"gopkg.in/yaml.v3"

	"dirpx.dev/exception/apis"
)

// Body holds the response member names for code, message and data.
// Empty positions fall back to apis.DefaultBodyFields.
type Body apis.BodyFields

// Fields returns b as apis.BodyFields.
func (b Body) Fields() apis.BodyFields { return apis.BodyFields(b) }

// UnmarshalYAML reads the keys of a mapping in document order. Values are
// ignored. At most three keys are accepted.
func (b *Body) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: body must be a mapping", n.Line)
	}
	if len(n.Content)/2 > len(apis.DefaultBodyFields) {
		return fmt.Errorf("line %d: body accepts at most %d keys, got %d", n.Line, len(apis.DefaultBodyFields), len(n.Content)/2)
	}

	var out Body
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn := n.Content[i]
		if kn.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: body keys must be strings", kn.Line)
		}
		name := strings.TrimSpace(kn.Value)
		if name == "" {
			return fmt.Errorf("line %d: body key must not be empty", kn.Line)
		}
		out[i/2] = name
	}
	if err := out.validate(); err != nil {
		return err
	}
	*b = out
	return nil
}

// validate rejects duplicate member names after defaults are applied, e.g.
// {msg: ~} renames code to "msg" and collides with the default message name.
func (b Body) validate() error {
	f := b.Fields()
	seen := make(map[string]int, len(f))
	for i := range f {
		name := f.Name(i)
		if j, dup := seen[name]; dup {
			return fmt.Errorf("%w: body: positions %d and %d both named %q", ErrInvalid, j, i, name)
		}
		seen[name] = i
	}
	return nil
}
