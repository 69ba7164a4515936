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
	"context"
	"encoding/json"
	"testing"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/memory"
)

func TestPushBytes(t *testing.T) {
	ctx := context.TODO()
	dst := memory.New()
	doc := []byte(`{"kind":"AIXFacts"}`)

	ref, err := ParseReference("oci://localhost:5000/facts/hosts")
	require.NoError(t, err)

	res, err := PushBytes(ctx, doc, PushOptions{
		Reference:   ref,
		FileName:    "facts.json",
		Annotations: map[string]string{"io.aixops.source": "aix01"},
		Target:      dst,
	})
	require.NoError(t, err)
	assert.Equal(t, "localhost:5000/facts/hosts:latest", res.Reference)
	assert.NotEmpty(t, res.Digest)

	desc, raw, err := oras.FetchBytes(ctx, dst, DefaultTag, oras.DefaultFetchBytesOptions)
	require.NoError(t, err)
	assert.Equal(t, res.Digest, desc.Digest.String())

	var manifest ociv1.Manifest
	require.NoError(t, json.Unmarshal(raw, &manifest))
	assert.Equal(t, ArtifactType, manifest.ArtifactType)
	assert.Equal(t, "aix01", manifest.Annotations["io.aixops.source"])
	require.Len(t, manifest.Layers, 1)

	layer := manifest.Layers[0]
	assert.Equal(t, MediaTypeFactsJSON, layer.MediaType)
	assert.Equal(t, "facts.json", layer.Annotations[ociv1.AnnotationTitle])

	got, err := content.FetchAll(ctx, dst, layer)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestPushBytes_Tagged(t *testing.T) {
	ctx := context.TODO()
	dst := memory.New()

	res, err := PushBytes(ctx, []byte("kind: AIXFacts\n"), PushOptions{
		Reference: &Reference{Registry: "ghcr.io", Repository: "acme/facts", Tag: "aix01"},
		MediaType: MediaTypeFactsYAML,
		Target:    dst,
	})
	require.NoError(t, err)
	assert.Equal(t, "ghcr.io/acme/facts:aix01", res.Reference)

	_, err = dst.Resolve(ctx, "aix01")
	assert.NoError(t, err)
}

func TestPushBytes_NoReference(t *testing.T) {
	_, err := PushBytes(context.TODO(), []byte("x"), PushOptions{})
	assert.Error(t, err)
}
