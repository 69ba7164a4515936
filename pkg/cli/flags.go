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

package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/k8s/client"
	"github.com/aixops/aixfacts/pkg/serializer"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage: "output destination: file path, cm://namespace/name, s3://bucket/key " +
			"or oci://registry/repository[:tag] (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage: fmt.Sprintf("output format (supported values: %s, default: json or from the --output extension)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func kubeconfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Usage:   "kubeconfig used by cm:// outputs",
		Sources: cli.EnvVars(client.EnvKubeconfig),
	}
}

// parseOutputFormat returns the --format value, or the format implied by
// the --output extension when --format is not set.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	raw := strings.ToLower(strings.TrimSpace(cmd.String("format")))
	if raw == "" {
		if output := cmd.String("output"); output != "" && !strings.Contains(output, "://") {
			return serializer.FormatFromPath(output), nil
		}
		return serializer.FormatJSON, nil
	}

	format := serializer.Format(raw)
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q (supported values: %s)",
			raw, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return format, nil
}

// parseFactFlags parses --fact values. It returns nil when no fact was
// selected so that the configured collectors apply.
func parseFactFlags(values []string) ([]facts.Name, error) {
	var list []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
	}
	if len(list) == 0 {
		return nil, nil
	}
	return facts.ParseNames(list)
}

// newSink returns the serializer for the --output destination.
func (a *app) newSink(cmd *cli.Command, format serializer.Format) (serializer.Serializer, error) {
	output := strings.TrimSpace(cmd.String("output"))
	if output == "" {
		return serializer.NewWriter(format, a.stdout), nil
	}

	opts := []serializer.SinkOption{
		serializer.WithStorage(a.cfg.Storage),
		serializer.WithRegistry(a.cfg.Registry),
		serializer.WithVersion(version),
	}
	if strings.HasPrefix(output, serializer.ConfigMapURIScheme) {
		if kubeconfig := cmd.String("kubeconfig"); kubeconfig != "" {
			kc, _, err := client.BuildKubeClient(kubeconfig)
			if err != nil {
				return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
			}
			opts = append(opts, serializer.WithKubeClient(kc))
		}
	}
	return serializer.NewFileWriterOrStdout(format, output, opts...)
}
