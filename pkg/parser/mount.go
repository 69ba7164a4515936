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
	"strings"
)

// headerEchoToken is the first token of the second header line printed by
// mount; lines starting with it carry no data.
const headerEchoToken = "node"

// Mount is one entry of the mount table.
type Mount struct {
	Device        string  `json:"device" yaml:"device"`
	MountPoint    string  `json:"mount" yaml:"mount"`
	FSType        string  `json:"fstype" yaml:"fstype"`
	Options       string  `json:"options" yaml:"options"`
	SizeTotal     *uint64 `json:"size_total" yaml:"size_total"`
	SizeAvailable *uint64 `json:"size_available" yaml:"size_available"`
	Time          string  `json:"time" yaml:"time"`
}

// IsLocal reports whether the mount is backed by a local device rather than
// a remote host.
func (m Mount) IsLocal() bool {
	return strings.HasPrefix(m.Device, "/")
}

// ParseMounts parses the output of mount into Mount entries.
//
// The first line is a header and is discarded. Lines with no tokens, lines
// starting with "node" and separator lines starting with "-" are skipped.
// The shape of every other line is decided from its first token alone: a
// token starting with "/" is a local device, anything else is a remote host.
//
// Local lines read as: device, mount point, fstype, date (3 tokens),
// options. Network lines read as: host, remote path, mount point, fstype,
// date (3 tokens), options; the device is "host:remote-path" and options are
// empty when the line has fewer than 8 tokens. Missing tokens are read as
// empty strings. Sizes are left nil.
func ParseMounts(out string) []Mount {
	lines := splitLines(out)
	mounts := make([]Mount, 0, len(lines))

	for i, line := range lines {
		if i == 0 {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == headerEchoToken || strings.HasPrefix(fields[0], "-") {
			continue
		}

		if strings.HasPrefix(fields[0], "/") {
			mounts = append(mounts, localMount(fields))
			continue
		}
		mounts = append(mounts, networkMount(fields))
	}

	return mounts
}

func localMount(fields []string) Mount {
	return Mount{
		Device:     field(fields, 0),
		MountPoint: field(fields, 1),
		FSType:     field(fields, 2),
		Time:       joinFields(fields, 3, 6),
		Options:    field(fields, 6),
	}
}

func networkMount(fields []string) Mount {
	return Mount{
		Device:     field(fields, 0) + ":" + field(fields, 1),
		MountPoint: field(fields, 2),
		FSType:     field(fields, 3),
		Time:       joinFields(fields, 4, 7),
		Options:    field(fields, 7),
	}
}

// field returns fields[i], or an empty string when the line is too short.
func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

func joinFields(fields []string, from, to int) string {
	parts := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		parts = append(parts, field(fields, i))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
