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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseName(t *testing.T) {
	for _, n := range Names {
		got, ok := ParseName(n.String())
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}

	_, ok := ParseName("gpu")
	assert.False(t, ok)
}

func TestParseNames(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []Name
		wantErr bool
	}{
		{name: "empty selects all", input: nil, want: Names},
		{name: "ordered and deduplicated", input: []string{"vgs", "oslevel", "vgs"}, want: []Name{NameOSLevel, NameVGs}},
		{name: "unknown", input: []string{"oslevel", "bogus"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNames(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "abort", PolicyAbort.String())
	assert.Equal(t, "degrade", PolicyDegrade.String())
	assert.Equal(t, "Policy(7)", Policy(7).String())
}

func TestSet_PutIsWriteOnce(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Put(NameBuild, "first"))

	err := s.Put(NameBuild, "second")
	assert.True(t, errors.Is(err, ErrDuplicate))

	v, ok := s.Get(NameBuild)
	assert.True(t, ok)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, s.Len())
}

func TestSet_JSONOrder(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Put(NameVGs, map[string]int{"a": 1}))
	require.NoError(t, s.Put(NameBuild, ""))
	require.NoError(t, s.Put(NameOSLevel, "7200"))

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"vgs":{"a":1},"build":"","oslevel":"7200"}`, string(b))

	var decoded Set
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, []Name{NameVGs, NameBuild, NameOSLevel}, decoded.Names())
	v, _ := decoded.Get(NameOSLevel)
	assert.Equal(t, "7200", v)
}

func TestSet_YAML(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Put(NameNiminfo, map[string]string{"NIM_NAME": "aix01"}))
	require.NoError(t, s.Put(NameBuild, "b1"))

	b, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(b), "niminfo:"), strings.Index(string(b), "build:"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(b, &decoded))
	assert.Equal(t, "b1", decoded["build"])
	assert.Equal(t, map[string]any{"NIM_NAME": "aix01"}, decoded["niminfo"])
}

func TestSet_Nil(t *testing.T) {
	var s *Set
	_, ok := s.Get(NameBuild)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Names())
}
