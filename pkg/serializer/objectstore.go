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
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/aixops/aixfacts/pkg/config"
	"github.com/aixops/aixfacts/pkg/defaults"
)

// ObjectStoreURIScheme is the URI scheme for object store output (s3://bucket/key).
const ObjectStoreURIScheme = "s3://"

// ObjectStoreWriter uploads serialized data to an S3-compatible object store.
type ObjectStoreWriter struct {
	client *minio.Client
	bucket string
	key    string
	format Format
}

// NewObjectStoreWriter creates a writer that uploads to bucket/key using
// the endpoint and credentials in cfg. Empty credentials are read from the
// standard AWS and MinIO environment variables.
func NewObjectStoreWriter(bucket, key string, format Format, cfg config.StorageConfig) (*ObjectStoreWriter, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("object store endpoint is required for %s output", ObjectStoreURIScheme)
	}

	creds := credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, "")
	if cfg.AccessKey == "" {
		creds = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvAWS{},
			&credentials.EnvMinio{},
		})
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  creds,
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	return &ObjectStoreWriter{
		client: client,
		bucket: bucket,
		key:    key,
		format: normalizeFormat(format),
	}, nil
}

// Serialize uploads the encoded document, replacing any existing object.
func (w *ObjectStoreWriter) Serialize(ctx context.Context, snapshot any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ObjectStoreWriteTimeout)
	defer cancel()

	content, err := Encode(w.format, snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize facts: %w", err)
	}

	kind, version, _ := documentInfo(snapshot, "")

	info, err := w.client.PutObject(writeCtx, w.bucket, w.key, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{
			ContentType: w.format.ContentType(),
			UserMetadata: map[string]string{
				"kind":    kind,
				"version": version,
			},
		})
	if err != nil {
		return fmt.Errorf("failed to upload %s%s/%s: %w", ObjectStoreURIScheme, w.bucket, w.key, err)
	}

	slog.Info("facts uploaded",
		"bucket", info.Bucket,
		"key", info.Key,
		"size", info.Size,
		"etag", info.ETag)

	return nil
}

// Close is a no-op for ObjectStoreWriter.
func (w *ObjectStoreWriter) Close() error {
	return nil
}

// parseObjectStoreURI parses s3://bucket/key.
func parseObjectStoreURI(uri string) (bucket, key string, err error) {
	if !strings.HasPrefix(uri, ObjectStoreURIScheme) {
		return "", "", fmt.Errorf("invalid object store URI: must start with %s", ObjectStoreURIScheme)
	}

	bucket, key, _ = strings.Cut(strings.TrimPrefix(uri, ObjectStoreURIScheme), "/")
	key = strings.TrimLeft(key, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("invalid object store URI format: expected %sbucket/key, got %s", ObjectStoreURIScheme, uri)
	}
	return bucket, key, nil
}
