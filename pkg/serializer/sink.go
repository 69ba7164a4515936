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
	"strings"

	"github.com/aixops/aixfacts/pkg/config"
	"github.com/aixops/aixfacts/pkg/k8s/client"
	"github.com/aixops/aixfacts/pkg/oci"
)

// sinkOptions carries the settings of remote output sinks.
type sinkOptions struct {
	storage    config.StorageConfig
	registry   config.RegistryConfig
	kubeClient client.Interface
	version    string
}

// SinkOption configures a remote output sink.
type SinkOption func(*sinkOptions)

// WithStorage sets the object store connection used by s3:// outputs.
func WithStorage(cfg config.StorageConfig) SinkOption {
	return func(o *sinkOptions) {
		o.storage = cfg
	}
}

// WithRegistry sets the registry connection settings used by oci:// outputs.
func WithRegistry(cfg config.RegistryConfig) SinkOption {
	return func(o *sinkOptions) {
		o.registry = cfg
	}
}

// WithKubeClient sets the client used by cm:// outputs instead of the
// shared client from the default kubeconfig.
func WithKubeClient(c client.Interface) SinkOption {
	return func(o *sinkOptions) {
		o.kubeClient = c
	}
}

// WithVersion sets the tool version recorded on remote sinks.
func WithVersion(v string) SinkOption {
	return func(o *sinkOptions) {
		o.version = v
	}
}

// NewFileWriterOrStdout returns the Serializer for path: stdout when path is
// empty, a ConfigMap for cm://, an object for s3://, an OCI artifact for
// oci:// and a local file otherwise. Call CloseIfCloser when done.
func NewFileWriterOrStdout(format Format, path string, opts ...SinkOption) (Serializer, error) {
	o := &sinkOptions{}
	for _, opt := range opts {
		opt(o)
	}

	trimmed := strings.TrimSpace(path)
	switch {
	case trimmed == "":
		return NewStdoutWriter(format), nil
	case strings.HasPrefix(trimmed, ConfigMapURIScheme):
		namespace, name, err := parseConfigMapURI(trimmed)
		if err != nil {
			return nil, err
		}
		w := NewConfigMapWriter(namespace, name, format)
		w.client = o.kubeClient
		w.version = o.version
		return w, nil
	case strings.HasPrefix(trimmed, ObjectStoreURIScheme):
		bucket, key, err := parseObjectStoreURI(trimmed)
		if err != nil {
			return nil, err
		}
		return NewObjectStoreWriter(bucket, key, format, o.storage)
	case oci.IsURI(trimmed):
		ref, err := oci.ParseReference(trimmed)
		if err != nil {
			return nil, err
		}
		return NewOCIWriter(ref, format, o.registry, o.version), nil
	default:
		return NewFileWriter(format, trimmed)
	}
}
