// Copyright (c) 2026, The aixfacts Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package facts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Name identifies one fact in the aggregate.
type Name string

// String returns the string representation of the fact Name.
func (n Name) String() string {
	return string(n)
}

const (
	NameOSLevel     Name = "oslevel"
	NameBuild       Name = "build"
	NameLPPs        Name = "lpps"
	NameFilesystems Name = "filesystems"
	NameMounts      Name = "mounts"
	NameVGs         Name = "vgs"
	NameLssrc       Name = "lssrc"
	NameNiminfo     Name = "niminfo"
)

// Names is the list of all supported facts in collection order.
var Names = []Name{
	NameOSLevel,
	NameBuild,
	NameLPPs,
	NameFilesystems,
	NameMounts,
	NameVGs,
	NameLssrc,
	NameNiminfo,
}

// ParseName parses a string into a fact Name.
// Returns the Name and true if parsing succeeds, or empty Name and false if the string is invalid.
func ParseName(s string) (Name, bool) {
	s = strings.TrimSpace(s)
	for _, n := range Names {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

// ParseNames parses a list of fact names, preserving Names order and
// dropping duplicates. An empty list selects every fact.
func ParseNames(list []string) ([]Name, error) {
	if len(list) == 0 {
		return append([]Name(nil), Names...), nil
	}

	selected := make(map[Name]bool, len(list))
	for _, s := range list {
		n, ok := ParseName(s)
		if !ok {
			return nil, fmt.Errorf("unknown fact %q, expected one of %v", s, Names)
		}
		selected[n] = true
	}

	out := make([]Name, 0, len(selected))
	for _, n := range Names {
		if selected[n] {
			out = append(out, n)
		}
	}
	return out, nil
}

// Policy is the behavior of the aggregator when a collector fails.
type Policy int

const (
	// PolicyAbort fails the whole aggregation.
	PolicyAbort Policy = iota
	// PolicyDegrade logs the failure and stores the collector's default value.
	PolicyDegrade
)

// String returns the string representation of the Policy.
func (p Policy) String() string {
	switch p {
	case PolicyAbort:
		return "abort"
	case PolicyDegrade:
		return "degrade"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ErrDuplicate is returned by Set.Put when a fact is stored twice.
var ErrDuplicate = errors.New("fact already set")

// Set holds the facts of one aggregation keyed by name. Values are not
// modified after they are stored.
type Set struct {
	names  []Name
	values map[Name]any
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{values: make(map[Name]any)}
}

// Put stores value under name. Storing the same name twice returns
// ErrDuplicate and keeps the first value.
func (s *Set) Put(name Name, value any) error {
	if s.values == nil {
		s.values = make(map[Name]any)
	}
	if _, exists := s.values[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	s.names = append(s.names, name)
	s.values[name] = value
	return nil
}

// Get returns the value stored under name.
func (s *Set) Get(name Name) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Names returns the stored fact names in insertion order.
func (s *Set) Names() []Name {
	if s == nil {
		return nil
	}
	return append([]Name(nil), s.names...)
}

// Len returns the number of stored facts.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// MarshalJSON encodes the set as a JSON object in insertion order.
func (s *Set) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range s.Names() {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(string(n))
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(s.values[n])
		if err != nil {
			return nil, fmt.Errorf("failed to encode fact %s: %w", n, err)
		}
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// MarshalYAML encodes the set as a YAML mapping in insertion order.
func (s *Set) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, n := range s.Names() {
		var value yaml.Node
		if err := value.Encode(s.values[n]); err != nil {
			return nil, fmt.Errorf("failed to encode fact %s: %w", n, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(n)}
		node.Content = append(node.Content, key, &value)
	}
	return node, nil
}

// UnmarshalJSON decodes a JSON object into the set. Values are kept in
// their generic JSON form.
func (s *Set) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read facts object: %w", err)
	}

	*s = Set{values: make(map[Name]any)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read fact name: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode fact %s: %w", key, err)
		}
		if err := s.Put(Name(key), value); err != nil {
			return err
		}
	}
	return nil
}
