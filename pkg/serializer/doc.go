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

// Package serializer writes aggregated facts in JSON, YAML or table form
// to stdout, files and remote sinks.
//
// # Formats
//
//   - JSON: indented, key order preserved for ordered fact values
//   - YAML: gopkg.in/yaml.v3, two-space indentation
//   - Table: FIELD/VALUE rows of flattened dotted keys, sorted
//
// # Destinations
//
// NewFileWriterOrStdout picks the destination from the output path:
//
//	""                          stdout
//	/path/to/facts.yaml         local file
//	cm://namespace/name         Kubernetes ConfigMap (server-side apply)
//	s3://bucket/key             S3-compatible object store (MinIO client)
//	oci://registry/repo:tag     OCI artifact
//
// Remote sinks take their settings from SinkOption values:
//
//	s, err := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "s3://facts/aix01.json",
//	    serializer.WithStorage(cfg.Storage))
//	if err != nil {
//	    return err
//	}
//	defer serializer.CloseIfCloser(s)
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
package serializer
