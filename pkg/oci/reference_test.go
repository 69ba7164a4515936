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

package oci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantReg  string
		wantRepo string
		wantTag  string
		wantErr  bool
	}{
		{
			name:     "with tag",
			input:    "oci://ghcr.io/acme/aix-facts:aix01",
			wantReg:  "ghcr.io",
			wantRepo: "acme/aix-facts",
			wantTag:  "aix01",
		},
		{
			name:     "without tag",
			input:    "oci://ghcr.io/acme/aix-facts",
			wantReg:  "ghcr.io",
			wantRepo: "acme/aix-facts",
		},
		{
			name:     "port and tag",
			input:    "oci://localhost:5000/facts/hosts:v1",
			wantReg:  "localhost:5000",
			wantRepo: "facts/hosts",
			wantTag:  "v1",
		},
		{
			name:     "surrounding whitespace",
			input:    "  oci://registry.example.com/a/b/c:latest ",
			wantReg:  "registry.example.com",
			wantRepo: "a/b/c",
			wantTag:  "latest",
		},
		{name: "no scheme", input: "ghcr.io/acme/facts:v1", wantErr: true},
		{name: "empty", input: "oci://", wantErr: true},
		{name: "uppercase", input: "oci://ghcr.io/ACME/Facts:v1", wantErr: true},
		{
			name:    "digest",
			input:   "oci://ghcr.io/acme/facts@sha256:0000000000000000000000000000000000000000000000000000000000000000",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseReference(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantReg, ref.Registry)
			assert.Equal(t, tt.wantRepo, ref.Repository)
			assert.Equal(t, tt.wantTag, ref.Tag)
		})
	}
}

func TestReference_String(t *testing.T) {
	ref := &Reference{Registry: "ghcr.io", Repository: "acme/facts"}
	assert.Equal(t, "oci://ghcr.io/acme/facts", ref.String())
	assert.Equal(t, "ghcr.io/acme/facts", ref.ImageReference())

	tagged := ref.WithTag("aix01")
	assert.Equal(t, "oci://ghcr.io/acme/facts:aix01", tagged.String())
	assert.Empty(t, ref.Tag)
}

func TestIsURI(t *testing.T) {
	assert.True(t, IsURI("oci://ghcr.io/a/b"))
	assert.False(t, IsURI("/tmp/facts.json"))
	assert.False(t, IsURI("cm://ns/name"))
}

func TestStripProtocol(t *testing.T) {
	assert.Equal(t, "ghcr.io", stripProtocol("https://ghcr.io"))
	assert.Equal(t, "localhost:5000", stripProtocol("http://localhost:5000"))
	assert.Equal(t, "ghcr.io", stripProtocol("ghcr.io"))
}
