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

package header

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindFacts, true},
		{KindFilesystemResult, true},
		{Kind("Snapshot"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindFacts),
		WithAPIVersion("aixfacts.aixops.io/v1"),
		WithMetadata(MetadataSource, "aixhost01"),
	)

	assert.Equal(t, KindFacts, h.Kind)
	assert.Equal(t, "aixfacts.aixops.io/v1", h.APIVersion)
	assert.Equal(t, "aixhost01", h.Metadata[MetadataSource])
}

func TestInit(t *testing.T) {
	var h Header
	h.SetMetadata("stale", "value")
	h.Init(KindFacts, "aixfacts.aixops.io/v1", "v1.0.0")

	assert.Equal(t, KindFacts, h.Kind)
	assert.NotContains(t, h.Metadata, "stale")
	assert.Equal(t, "v1.0.0", h.Metadata[MetadataVersion])

	_, err := uuid.Parse(h.Metadata[MetadataID])
	require.NoError(t, err)

	_, err = time.Parse(time.RFC3339, h.Metadata[MetadataTimestamp])
	require.NoError(t, err)

	var other Header
	other.Init(KindFacts, "aixfacts.aixops.io/v1", "")
	assert.NotEqual(t, h.Metadata[MetadataID], other.Metadata[MetadataID])
	assert.NotContains(t, other.Metadata, MetadataVersion)
}

func TestHeader_Getters(t *testing.T) {
	h := New(WithKind(KindFilesystemResult), WithMetadata(MetadataSource, "aix01"))
	assert.Equal(t, KindFilesystemResult, h.GetKind())
	assert.Equal(t, "aix01", h.GetMetadata()[MetadataSource])
}
