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

// Package oci publishes aggregated fact documents to OCI registries as
// single-layer artifacts.
//
// # Usage
//
//	ref, err := oci.ParseReference("oci://ghcr.io/acme/aix-facts:aix01")
//	if err != nil {
//	    return err
//	}
//	res, err := oci.PushBytes(ctx, content, oci.PushOptions{
//	    Reference: ref,
//	    MediaType: oci.MediaTypeFactsJSON,
//	    FileName:  "facts.json",
//	})
//
// The document is staged in an in-memory store, packed into an OCI 1.1
// manifest with ArtifactType, then copied to the remote repository.
//
// # Configuration
//
// PushOptions supports several configuration options:
//   - PlainHTTP: Use HTTP instead of HTTPS (for local development registries)
//   - InsecureTLS: Skip TLS certificate verification
//   - Annotations: Extra manifest annotations
//
// # Authentication
//
// Credentials are loaded from the standard Docker configuration
// (~/.docker/config.json) using the ORAS credentials package.
package oci
