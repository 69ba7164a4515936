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

package parser

import (
	"bytes"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnknownPPSize is the pp_size of members whose group could not be queried.
const UnknownPPSize = "0"

var (
	// groupPattern matches one group block of lsvg -p: the "name:" line,
	// the column header ending in FREE DISTRIBUTION and the member lines.
	groupPattern = regexp.MustCompile(
		`(?m)^(\S+):[ \t]*\n.*FREE DISTRIBUTION[ \t]*(?:\n\S+[ \t]+\w+[ \t]+\d+[ \t]+\d+.*)+`)

	// memberPattern matches one member line inside a group block.
	memberPattern = regexp.MustCompile(`(?m)^(\S+)[ \t]+(\w+)[ \t]+(\d+)[ \t]+(\d+)`)

	ppSizePattern = regexp.MustCompile(`PP SIZE:\s+(\d+\s+\S+)`)
)

// GroupBlock is a volume group found by DiscoverGroups along with the text
// of its block.
type GroupBlock struct {
	Name string
	Text string
}

// PhysicalVolume is one member of a volume group.
type PhysicalVolume struct {
	Name     string `json:"pv_name" yaml:"pv_name"`
	State    string `json:"pv_state" yaml:"pv_state"`
	TotalPPs int    `json:"total_pps" yaml:"total_pps"`
	FreePPs  int    `json:"free_pps" yaml:"free_pps"`
	PPSize   string `json:"pp_size" yaml:"pp_size"`
}

// VolumeGroup is a named list of physical volumes.
type VolumeGroup struct {
	Name            string
	PhysicalVolumes []PhysicalVolume
}

// VolumeGroups is the volume group fact in discovery order. It encodes as
// an object keyed by group name.
type VolumeGroups []VolumeGroup

// Get returns the members of the named group.
func (v VolumeGroups) Get(name string) ([]PhysicalVolume, bool) {
	for _, g := range v {
		if g.Name == name {
			return g.PhysicalVolumes, true
		}
	}
	return nil, false
}

// Names returns the group names in discovery order.
func (v VolumeGroups) Names() []string {
	names := make([]string, 0, len(v))
	for _, g := range v {
		names = append(names, g.Name)
	}
	return names
}

// MarshalJSON encodes the groups as a JSON object in discovery order.
func (v VolumeGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		members := g.PhysicalVolumes
		if members == nil {
			members = []PhysicalVolume{}
		}
		if err := writeJSONPair(&buf, g.Name, members); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the groups as a YAML mapping in discovery order.
func (v VolumeGroups) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, g := range v {
		var members yaml.Node
		list := g.PhysicalVolumes
		if list == nil {
			list = []PhysicalVolume{}
		}
		if err := members.Encode(list); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, stringNode(g.Name), &members)
	}
	return node, nil
}

// DiscoverGroups finds the volume group blocks in lsvg -p output, in the
// order they appear.
func DiscoverGroups(out string) []GroupBlock {
	out = strings.ReplaceAll(out, "\r\n", "\n")

	matches := groupPattern.FindAllStringSubmatch(out, -1)
	blocks := make([]GroupBlock, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, GroupBlock{Name: m[1], Text: m[0]})
	}
	return blocks
}

// ParsePPSize returns the physical partition size, such as "64 megabyte(s)",
// from the output of lsvg <group>.
func ParsePPSize(out string) (string, bool) {
	m := ppSizePattern.FindStringSubmatch(out)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractMembers scans a group block for member lines and stamps each member
// with ppSize.
func ExtractMembers(block GroupBlock, ppSize string) []PhysicalVolume {
	matches := memberPattern.FindAllStringSubmatch(block.Text, -1)
	members := make([]PhysicalVolume, 0, len(matches))
	for _, m := range matches {
		total, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		free, err := strconv.Atoi(m[4])
		if err != nil {
			continue
		}
		members = append(members, PhysicalVolume{
			Name:     m[1],
			State:    m[2],
			TotalPPs: total,
			FreePPs:  free,
			PPSize:   ppSize,
		})
	}
	return members
}

// ExtractVolumeGroups discovers the groups in lsvg -p output and resolves
// the pp_size of each one through lookup, which receives the group name and
// returns the output of the group-scoped query.
//
// A group that appears more than once keeps its first position and the
// members of its last block.
//
// lookup is called once per block. When it fails, or its output has no
// PP SIZE, the members of that group get UnknownPPSize and the remaining
// groups are still extracted.
func ExtractVolumeGroups(out string, lookup func(group string) (string, error)) VolumeGroups {
	blocks := DiscoverGroups(out)
	groups := make(VolumeGroups, 0, len(blocks))
	index := make(map[string]int, len(blocks))

	for _, block := range blocks {
		ppSize := UnknownPPSize
		detail, err := lookup(block.Name)
		switch {
		case err != nil:
			slog.Warn("failed to query volume group, using unknown pp size",
				"group", block.Name,
				"error", err,
			)
		default:
			if size, ok := ParsePPSize(detail); ok {
				ppSize = size
			} else {
				slog.Warn("volume group output has no pp size", "group", block.Name)
			}
		}

		group := VolumeGroup{
			Name:            block.Name,
			PhysicalVolumes: ExtractMembers(block, ppSize),
		}
		if i, ok := index[block.Name]; ok {
			slog.Debug("duplicate volume group block, later block wins", "group", block.Name)
			groups[i] = group
			continue
		}
		index[block.Name] = len(groups)
		groups = append(groups, group)
	}

	return groups
}
