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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/header"
	"github.com/aixops/aixfacts/pkg/parser"
)

type testDoc struct {
	header.Header `json:",inline" yaml:",inline"`
	Facts         *facts.Set `json:"facts" yaml:"facts"`
}

func newTestDoc(t *testing.T) *testDoc {
	t.Helper()
	set := facts.NewSet()
	require.NoError(t, set.Put(facts.NameOSLevel, parser.DecomposeOSLevel("7200-05-03-2148\n")))
	require.NoError(t, set.Put(facts.NameBuild, "2010_2"))

	doc := &testDoc{Facts: set}
	doc.Init(header.KindFacts, "aixfacts.aixops.io/v1", "1.2.3")
	return doc
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatJSON, &buf).Serialize(context.TODO(), newTestDoc(t)))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Less(t, strings.Index(out, `"oslevel"`), strings.Index(out, `"build"`))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "AIXFacts", doc["kind"])
	assert.Equal(t, "2010_2", doc["facts"].(map[string]any)["build"])
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatYAML, &buf).Serialize(context.TODO(), newTestDoc(t)))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "AIXFacts", doc["kind"])

	fs := doc["facts"].(map[string]any)
	assert.Equal(t, "72", fs["oslevel"].(map[string]any)["OS_Ver"])
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.TODO(), newTestDoc(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Greater(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], "FIELD"))

	out := buf.String()
	assert.Contains(t, out, "kind")
	assert.Contains(t, out, "metadata.version")
	assert.Contains(t, out, "facts.oslevel.TL")
	assert.Contains(t, out, "facts.build")
	assert.NotContains(t, out, "Header")
}

func TestWriter_SerializeTable_Values(t *testing.T) {
	tests := []struct {
		name string
		data any
		want []string
	}{
		{name: "empty map", data: map[string]any{}, want: []string{"<empty>"}},
		{name: "scalar", data: 42, want: []string{"value", "42"}},
		{name: "nil pointer field", data: struct{ P *int }{}, want: []string{"P", "<nil>"}},
		{name: "slice", data: []string{"a", "b"}, want: []string{"[0]", "[1]"}},
		{name: "json tag", data: struct {
			A string `json:"alpha"`
			B string `json:"-"`
		}{A: "x", B: "y"}, want: []string{"alpha"}},
		{
			name: "record",
			data: []parser.Record{parser.ParseDelimitedTable("#a:b\n1:2\n")[0]},
			want: []string{"[0].a", "[0].b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(FormatTable, tt.data)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, string(out), w)
			}
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	_, err := Encode(Format("xml"), map[string]string{})
	assert.Error(t, err)
}

func TestEncode_JSONError(t *testing.T) {
	_, err := Encode(FormatJSON, make(chan int))
	assert.Error(t, err)
}

func TestNewWriter_Defaults(t *testing.T) {
	w := NewWriter(Format("xml"), nil)
	assert.Equal(t, FormatJSON, w.format)
	assert.Equal(t, os.Stdout, w.output)
	assert.NoError(t, w.Close())
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.yaml")

	w, err := NewFileWriter(FormatYAML, path)
	require.NoError(t, err)
	require.NoError(t, w.Serialize(context.TODO(), map[string]string{"a": "b"}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a: b\n", string(content))

	_, err = NewFileWriter(FormatJSON, filepath.Join(t.TempDir(), "missing", "facts.json"))
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format      Format
		unknown     bool
		ext         string
		contentType string
	}{
		{FormatJSON, false, "json", "application/json"},
		{FormatYAML, false, "yaml", "application/yaml"},
		{FormatTable, false, "txt", "text/plain; charset=utf-8"},
		{Format("xml"), true, "json", "application/json"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.unknown, tt.format.IsUnknown())
			assert.Equal(t, tt.ext, tt.format.Extension())
			assert.Equal(t, tt.contentType, tt.format.ContentType())
		})
	}

	assert.Equal(t, []string{"json", "yaml", "table"}, SupportedFormats())
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"facts.json":     FormatJSON,
		"facts.YAML":     FormatYAML,
		"/tmp/facts.yml": FormatYAML,
		"facts.txt":      FormatTable,
		"facts.table":    FormatTable,
		"facts":          FormatJSON,
		"s3://b/k.yaml":  FormatYAML,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatFromPath(path), path)
	}
}
