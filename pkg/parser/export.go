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
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExportOption configures an ExportParser.
type ExportOption func(*ExportParser)

// ExportParser parses files of shell export statements such as /etc/niminfo:
//
//	export NIM_NAME=aixhost01
//	export NIM_MASTER_HOSTNAME="nim.example.com"
type ExportParser struct {
	commentPrefix string
	kvDelimiter   string
	quote         string
	maxSize       int
}

// SyntaxError reports a line that is not a valid export statement.
type SyntaxError struct {
	Line   int
	Text   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// WithCommentPrefix sets the prefix of comment lines.
// Default is "#".
func WithCommentPrefix(prefix string) ExportOption {
	return func(p *ExportParser) {
		p.commentPrefix = prefix
	}
}

// WithExportDelimiter sets the key-value delimiter.
// Default is "=".
func WithExportDelimiter(delim string) ExportOption {
	return func(p *ExportParser) {
		p.kvDelimiter = delim
	}
}

// WithQuote sets the quote character stripped from around values.
// Default is `"`.
func WithQuote(quote string) ExportOption {
	return func(p *ExportParser) {
		p.quote = quote
	}
}

// WithExportMaxSize sets the maximum size (in bytes) of the content.
// Default is 1MB.
func WithExportMaxSize(size int) ExportOption {
	return func(p *ExportParser) {
		p.maxSize = size
	}
}

// NewExportParser creates a new export parser with the provided options.
func NewExportParser(opts ...ExportOption) *ExportParser {
	p := &ExportParser{
		commentPrefix: "#",
		kvDelimiter:   "=",
		quote:         `"`,
		maxSize:       1 << 20, // 1MB default
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses content into a map of variable names to values.
//
// Comment lines and empty lines are skipped. Every other line is split once
// on its first whitespace run, dropping the leading directive, and the rest
// is split once on the delimiter. Values are trimmed of whitespace, one
// surrounding layer of quotes and whitespace again. A later duplicate key
// replaces an earlier one.
//
// A line without whitespace or without the delimiter fails the whole
// content with a *SyntaxError.
func (p *ExportParser) Parse(content []byte) (map[string]string, error) {
	if len(content) > p.maxSize {
		return nil, fmt.Errorf("content exceeds maximum size of %d bytes", p.maxSize)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("content is not valid UTF-8")
	}

	result := make(map[string]string)
	for i, line := range splitLines(string(content)) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if p.commentPrefix != "" && strings.HasPrefix(line, p.commentPrefix) {
			continue
		}

		key, value, err := p.parseLine(line)
		if err != nil {
			return nil, &SyntaxError{Line: i + 1, Text: line, Reason: err.Error()}
		}

		if _, exists := result[key]; exists {
			slog.Debug("duplicate export, later value wins", "key", key)
		}
		result[key] = value
	}

	return result, nil
}

func (p *ExportParser) parseLine(line string) (string, string, error) {
	line = strings.TrimSpace(line)

	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return "", "", fmt.Errorf("missing directive")
	}
	statement := strings.TrimLeftFunc(line[idx:], unicode.IsSpace)

	kv := strings.SplitN(statement, p.kvDelimiter, 2)
	if len(kv) != 2 {
		return "", "", fmt.Errorf("missing %q", p.kvDelimiter)
	}

	key := strings.TrimSpace(kv[0])
	if key == "" {
		return "", "", fmt.Errorf("empty name")
	}

	return key, p.unquote(kv[1]), nil
}

// unquote trims whitespace, one surrounding layer of quotes and whitespace
// again.
func (p *ExportParser) unquote(v string) string {
	v = strings.TrimSpace(v)
	if p.quote != "" && len(v) >= 2*len(p.quote) &&
		strings.HasPrefix(v, p.quote) && strings.HasSuffix(v, p.quote) {
		v = v[len(p.quote) : len(v)-len(p.quote)]
	}
	return strings.TrimSpace(v)
}
