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
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/memory"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	apperrors "github.com/aixops/aixfacts/pkg/errors"
)

const (
	// ArtifactType is the artifact type of pushed fact documents.
	ArtifactType = "application/vnd.aixops.aixfacts.facts.v1"

	// MediaTypeFactsJSON is the layer media type of a JSON fact document.
	MediaTypeFactsJSON = "application/vnd.aixops.aixfacts.facts.v1+json"

	// MediaTypeFactsYAML is the layer media type of a YAML fact document.
	MediaTypeFactsYAML = "application/vnd.aixops.aixfacts.facts.v1+yaml"

	// MediaTypeFactsText is the layer media type of a table fact document.
	MediaTypeFactsText = "text/plain"
)

// PushOptions configures the OCI push operation.
type PushOptions struct {
	// Reference is the destination. A missing tag defaults to DefaultTag.
	Reference *Reference
	// MediaType is the layer media type.
	MediaType string
	// FileName is recorded as the layer title annotation.
	FileName string
	// Annotations are additional manifest annotations.
	Annotations map[string]string
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
	// Target overrides the remote repository destination.
	Target oras.Target
}

// PushResult contains the result of a successful OCI push.
type PushResult struct {
	// Digest is the SHA256 digest of the pushed manifest.
	Digest string
	// Reference is the full image reference (registry/repository:tag).
	Reference string
}

// PushBytes pushes content as a single-layer OCI artifact.
func PushBytes(ctx context.Context, content []byte, opts PushOptions) (*PushResult, error) {
	if opts.Reference == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required")
	}
	ref := opts.Reference
	if ref.Tag == "" {
		ref = ref.WithTag(DefaultTag)
	}
	mediaType := opts.MediaType
	if mediaType == "" {
		mediaType = MediaTypeFactsJSON
	}

	store := memory.New()

	layer, err := oras.PushBytes(ctx, store, mediaType, content)
	if err != nil {
		return nil, fmt.Errorf("failed to stage layer: %w", err)
	}
	if opts.FileName != "" {
		layer.Annotations = map[string]string{ociv1.AnnotationTitle: opts.FileName}
	}

	manifest, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{
			Layers:              []ociv1.Descriptor{layer},
			ManifestAnnotations: opts.Annotations,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to pack manifest: %w", err)
	}

	if tagErr := store.Tag(ctx, manifest, ref.Tag); tagErr != nil {
		return nil, fmt.Errorf("failed to tag manifest in local store: %w", tagErr)
	}

	dst := opts.Target
	if dst == nil {
		repo, repoErr := remote.NewRepository(fmt.Sprintf("%s/%s", stripProtocol(ref.Registry), ref.Repository))
		if repoErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to initialize remote repository", repoErr)
		}
		repo.PlainHTTP = opts.PlainHTTP
		repo.Client = createAuthClient(opts.PlainHTTP, opts.InsecureTLS)
		dst = repo
	}

	slog.Info("pushing facts artifact",
		"registry", ref.Registry,
		"repository", ref.Repository,
		"tag", ref.Tag)

	desc, err := oras.Copy(ctx, store, ref.Tag, dst, ref.Tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to push artifact to registry", err)
	}

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: ref.ImageReference(),
	}, nil
}

// createAuthClient creates an HTTP client with optional TLS configuration
// and Docker credential support.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, err := credentials.NewStoreFromDocker(credentials.StoreOptions{})
	if err != nil {
		slog.Debug("docker credentials unavailable", "error", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	client := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}
	if credStore != nil {
		client.Credential = credentials.Credential(credStore)
	}
	return client
}
