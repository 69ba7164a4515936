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

const (
	// DefaultHeaderMarker prefixes header lines of delimited tables.
	DefaultHeaderMarker = "#"

	// DefaultDelimiter separates fields of delimited tables.
	DefaultDelimiter = ":"

	// DefaultBlankJoin replaces blanks inside header field names.
	DefaultBlankJoin = "_"
)

// TableOption configures ParseDelimitedTable.
type TableOption func(*tableConfig)

type tableConfig struct {
	headerMarker string
	delimiter    string
	blankJoin    string
}

// WithHeaderMarker sets the prefix that identifies header lines.
// Default is "#".
func WithHeaderMarker(marker string) TableOption {
	return func(c *tableConfig) {
		c.headerMarker = marker
	}
}

// WithTableDelimiter sets the field delimiter for header and data lines.
// Default is ":".
func WithTableDelimiter(delim string) TableOption {
	return func(c *tableConfig) {
		c.delimiter = delim
	}
}

// WithBlankJoin sets the string that replaces blanks in header field names.
// Default is "_".
func WithBlankJoin(join string) TableOption {
	return func(c *tableConfig) {
		c.blankJoin = join
	}
}

// ParseDelimitedTable parses command output made of header lines and data
// lines into records.
//
// A line starting with the header marker is a header: the marker is removed,
// blanks are replaced with the blank join string and the result is split on
// the delimiter into the active field names. A later header replaces the
// active field names for all lines that follow it. Every other line is split
// on the delimiter and zipped positionally with the active field names,
// truncating to the shorter of the two.
//
// Empty lines and data lines that appear before the first header are
// skipped. The function never fails.
func ParseDelimitedTable(out string, opts ...TableOption) []Record {
	cfg := tableConfig{
		headerMarker: DefaultHeaderMarker,
		delimiter:    DefaultDelimiter,
		blankJoin:    DefaultBlankJoin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		header  []string
		records = make([]Record, 0)
	)

	for _, line := range splitLines(out) {
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, cfg.headerMarker) {
			names := strings.TrimPrefix(line, cfg.headerMarker)
			names = strings.ReplaceAll(names, " ", cfg.blankJoin)
			header = strings.Split(names, cfg.delimiter)
			continue
		}

		if header == nil {
			slog.Debug("skipping data line before header", "line", line)
			continue
		}

		values := strings.Split(line, cfg.delimiter)
		records = append(records, zip(header, values))
	}

	return records
}

// zip pairs names with values positionally, stopping at the shorter list.
func zip(names, values []string) Record {
	n := min(len(names), len(values))
	r := NewRecord(n)
	for i := 0; i < n; i++ {
		r.Set(names[i], values[i])
	}
	return r
}

// splitLines splits s into lines, accepting both LF and CRLF endings.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
