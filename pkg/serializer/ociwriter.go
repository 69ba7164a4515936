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
	"context"
	"fmt"
	"log/slog"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"

	"github.com/aixops/aixfacts/pkg/config"
	"github.com/aixops/aixfacts/pkg/defaults"
	"github.com/aixops/aixfacts/pkg/header"
	"github.com/aixops/aixfacts/pkg/oci"
)

// OCIWriter publishes serialized data as an OCI artifact.
type OCIWriter struct {
	ref      *oci.Reference
	format   Format
	registry config.RegistryConfig
	version  string
	target   oras.Target
}

// NewOCIWriter creates a writer that pushes to ref.
func NewOCIWriter(ref *oci.Reference, format Format, registry config.RegistryConfig, version string) *OCIWriter {
	return &OCIWriter{
		ref:      ref,
		format:   normalizeFormat(format),
		registry: registry,
		version:  version,
	}
}

// Serialize pushes the encoded document as a single-layer artifact.
func (w *OCIWriter) Serialize(ctx context.Context, snapshot any) error {
	pushCtx, cancel := context.WithTimeout(ctx, defaults.RegistryPushTimeout)
	defer cancel()

	content, err := Encode(w.format, snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize facts: %w", err)
	}

	_, version, timestamp := documentInfo(snapshot, w.version)
	annotations := map[string]string{
		ociv1.AnnotationCreated: timestamp,
		ociv1.AnnotationVersion: version,
		ociv1.AnnotationTitle:   "aixfacts",
	}
	if h, ok := snapshot.(headered); ok {
		if source := h.GetMetadata()[header.MetadataSource]; source != "" {
			annotations[ociv1.AnnotationDescription] = "facts of " + source
		}
	}

	res, err := oci.PushBytes(pushCtx, content, oci.PushOptions{
		Reference:   w.ref,
		MediaType:   w.mediaType(),
		FileName:    "facts." + w.format.Extension(),
		Annotations: annotations,
		PlainHTTP:   w.registry.PlainHTTP,
		InsecureTLS: w.registry.InsecureTLS,
		Target:      w.target,
	})
	if err != nil {
		return fmt.Errorf("failed to publish facts: %w", err)
	}

	slog.Info("facts published", "reference", res.Reference, "digest", res.Digest)
	return nil
}

// Close is a no-op for OCIWriter.
func (w *OCIWriter) Close() error {
	return nil
}

func (w *OCIWriter) mediaType() string {
	switch w.format {
	case FormatYAML:
		return oci.MediaTypeFactsYAML
	case FormatTable:
		return oci.MediaTypeFactsText
	default:
		return oci.MediaTypeFactsJSON
	}
}
