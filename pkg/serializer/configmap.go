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
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/aixops/aixfacts/pkg/defaults"
	"github.com/aixops/aixfacts/pkg/header"
	"github.com/aixops/aixfacts/pkg/k8s/client"
)

const (
	// ConfigMapURIScheme is the URI scheme for ConfigMap output (cm://namespace/name).
	ConfigMapURIScheme = "cm://"

	fieldManager = "aixfacts"
	unknownValue = "unknown"
)

// headered is implemented by documents that embed header.Header.
type headered interface {
	GetKind() header.Kind
	GetMetadata() map[string]string
}

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap.
// The ConfigMap is created if it doesn't exist, or updated if it does.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	version   string
	client    client.Interface
}

// NewConfigMapWriter creates a new ConfigMapWriter that writes to the specified
// namespace and ConfigMap name in the given format.
func NewConfigMapWriter(namespace, name string, format Format) *ConfigMapWriter {
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalizeFormat(format),
	}
}

// Serialize writes the document to the ConfigMap under data.facts.{json|yaml|txt},
// along with data.format and data.timestamp.
func (w *ConfigMapWriter) Serialize(ctx context.Context, snapshot any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	c := w.client
	if c == nil {
		kc, config, err := client.GetKubeClient()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
		c = kc
		slog.Info("configmap operation",
			"namespace", w.namespace,
			"name", w.name,
			"auth_method", client.AuthMethod(config),
			"format", w.format)
	}

	content, err := Encode(w.format, snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize facts: %w", err)
	}

	kind, version, timestamp := documentInfo(snapshot, w.version)

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "aixfacts",
			"app.kubernetes.io/component": labelValue(kind),
			"app.kubernetes.io/version":   labelValue(version),
		}).
		WithData(map[string]string{
			"facts." + w.format.Extension(): string(content),
			"format":                        string(w.format),
			"timestamp":                     timestamp,
		})

	slog.Debug("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	// Force takes ownership from earlier field managers.
	_, err = c.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, configMap,
		metav1.ApplyOptions{
			FieldManager: fieldManager,
			Force:        true,
		})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap: %w", err)
	}

	return nil
}

// Close is a no-op for ConfigMapWriter.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// documentInfo extracts kind, version and timestamp from a headered
// document, falling back to defaults.
func documentInfo(doc any, version string) (kind, ver, timestamp string) {
	kind, ver = header.KindFacts.String(), version
	if h, ok := doc.(headered); ok {
		if k := h.GetKind(); k != "" {
			kind = k.String()
		}
		md := h.GetMetadata()
		if v := md[header.MetadataVersion]; v != "" {
			ver = v
		}
		timestamp = md[header.MetadataTimestamp]
	}
	if ver == "" {
		ver = unknownValue
	}
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return kind, ver, timestamp
}

// labelValue trims v to the characters allowed in a label value.
func labelValue(v string) string {
	v = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '-'
		}
	}, v)
	if len(v) > 63 {
		v = v[:63]
	}
	return strings.Trim(v, "-_.")
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" || strings.Contains(parts[1], "/") {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	return parts[0], parts[1], nil
}
