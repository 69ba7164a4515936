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
	"log/slog"
	"strings"
)

// Column is a half-open byte range [Start, End) of a fixed-width line.
type Column struct {
	Start int
	End   int
}

// DefaultColumns are the value columns of lssrc -a output.
var DefaultColumns = []Column{
	{Start: 0, End: 18},
	{Start: 18, End: 34},
	{Start: 34, End: 48},
	{Start: 48, End: 60},
}

// slice returns the trimmed content of the column in line, clamped to the
// line length.
func (c Column) slice(line string) string {
	start := min(max(c.Start, 0), len(line))
	end := min(max(c.End, start), len(line))
	return strings.TrimSpace(line[start:end])
}

// ParseFixedWidth parses fixed-width command output into records.
//
// The first line is the header; its whitespace-separated tokens are the
// field names. Every later non-blank line is cut at the given columns
// (DefaultColumns when none are given) and the trimmed slices are zipped
// with the field names, truncating to the shorter of the two. Header token
// positions are not used to locate values.
func ParseFixedWidth(out string, columns ...Column) []Record {
	if len(columns) == 0 {
		columns = DefaultColumns
	}

	lines := splitLines(out)
	records := make([]Record, 0, len(lines))
	if len(lines) == 0 {
		return records
	}

	header := strings.Fields(lines[0])
	if len(header) != len(columns) {
		slog.Debug("fixed-width header does not match column count",
			"fields", len(header),
			"columns", len(columns),
		)
	}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := make([]string, len(columns))
		for i, c := range columns {
			values[i] = c.slice(line)
		}
		records = append(records, zip(header, values))
	}

	return records
}
