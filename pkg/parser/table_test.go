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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lsfsOutput = `#MountPoint:Device:Vfs:Nodename:Type:Size:Options:AutoMount:Acct
/:/dev/hd4:jfs2::bootfs:2097152:rw:yes:no
/home:/dev/hd1:jfs2::::rw:yes:no
/proc:/proc:procfs::::rw:yes:no
`

func TestParseDelimitedTable(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []TableOption
		wantLen  int
		wantKeys []string
		check    func(t *testing.T, records []Record)
	}{
		{
			name:     "lsfs output",
			input:    lsfsOutput,
			wantLen:  3,
			wantKeys: []string{"MountPoint", "Device", "Vfs", "Nodename", "Type", "Size", "Options", "AutoMount", "Acct"},
			check: func(t *testing.T, records []Record) {
				v, ok := records[0].Get("Device")
				assert.True(t, ok)
				assert.Equal(t, "/dev/hd4", v)
				v, _ = records[1].Get("Size")
				assert.Equal(t, "", v)
			},
		},
		{
			name:     "blanks in header are joined",
			input:    "#Package Name:Fileset:Level\nbos.rte:bos.rte:7.2.5.0\n",
			wantLen:  1,
			wantKeys: []string{"Package_Name", "Fileset", "Level"},
		},
		{
			name:     "short row omits trailing keys",
			input:    "#A:B:C\n1:2\n",
			wantLen:  1,
			wantKeys: []string{"A", "B"},
			check: func(t *testing.T, records []Record) {
				_, ok := records[0].Get("C")
				assert.False(t, ok)
			},
		},
		{
			name:     "long row is truncated",
			input:    "#A:B\n1:2:3:4\n",
			wantLen:  1,
			wantKeys: []string{"A", "B"},
		},
		{
			name:    "data before header is skipped",
			input:   "orphan:line\n#A:B\n1:2\n",
			wantLen: 1,
		},
		{
			name:    "empty lines are skipped",
			input:   "#A:B\n\n1:2\n\n3:4\n",
			wantLen: 2,
		},
		{
			name:     "custom delimiter and marker",
			input:    "%X|Y\n1|2\n",
			opts:     []TableOption{WithHeaderMarker("%"), WithTableDelimiter("|")},
			wantLen:  1,
			wantKeys: []string{"X", "Y"},
		},
		{
			name:    "empty input",
			input:   "",
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := ParseDelimitedTable(tt.input, tt.opts...)
			require.Len(t, records, tt.wantLen)
			if tt.wantKeys != nil {
				assert.Equal(t, tt.wantKeys, records[0].Keys())
			}
			if tt.check != nil {
				tt.check(t, records)
			}
		})
	}
}

func TestParseDelimitedTable_HeaderReplacement(t *testing.T) {
	input := "#A:B\n1:2\n#C:D:E\n3:4:5\n6:7\n"

	records := ParseDelimitedTable(input)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"A", "B"}, records[0].Keys())
	assert.Equal(t, []string{"C", "D", "E"}, records[1].Keys())
	assert.Equal(t, []string{"C", "D"}, records[2].Keys())

	v, _ := records[1].Get("E")
	assert.Equal(t, "5", v)
}

func TestParseDelimitedTable_KeysArePrefixOfHeader(t *testing.T) {
	header := []string{"MountPoint", "Device", "Vfs", "Nodename", "Type", "Size", "Options", "AutoMount", "Acct"}
	input := lsfsOutput + "/tmp:/dev/hd3\n/var\n"

	for _, r := range ParseDelimitedTable(input) {
		keys := r.Keys()
		require.LessOrEqual(t, len(keys), len(header))
		assert.Equal(t, header[:len(keys)], keys)
	}
}

func TestParseDelimitedTable_CRLF(t *testing.T) {
	records := ParseDelimitedTable("#A:B\r\n1:2\r\n")
	require.Len(t, records, 1)
	v, _ := records[0].Get("B")
	assert.Equal(t, "2", v)
}
