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

package aix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aixops/aixfacts/pkg/executor"
	"github.com/aixops/aixfacts/pkg/facts"
)

// BuildCollector reports the installation build identifier from the
// autoinstall BUILD file, or from the fallback copy when the primary file
// cannot be read.
type BuildCollector struct {
	Runner
	Path         string
	FallbackPath string
}

// Name returns facts.NameBuild.
func (c *BuildCollector) Name() facts.Name { return facts.NameBuild }

// Policy returns facts.PolicyDegrade; hosts not installed from NIM have no
// BUILD file.
func (c *BuildCollector) Policy() facts.Policy { return facts.PolicyDegrade }

// Default returns an empty build identifier.
func (c *BuildCollector) Default() any { return "" }

// Collect returns the build identifier: the trimmed lines of the file
// concatenated.
func (c *BuildCollector) Collect(ctx context.Context) (any, error) {
	b, err := c.ReadFile(ctx, c.Path)
	if err != nil {
		slog.Debug("primary build file not readable, trying fallback",
			"path", c.Path,
			"fallback", c.FallbackPath,
			"error", err,
		)

		var fallbackErr error
		b, fallbackErr = c.ReadFile(ctx, c.FallbackPath)
		if fallbackErr != nil {
			return nil, fmt.Errorf("could not determine build: %w", errors.Join(err, fallbackErr))
		}
	}

	var sb strings.Builder
	for _, line := range strings.Split(executor.DecodeOutput(b), "\n") {
		sb.WriteString(strings.TrimSpace(line))
	}
	return sb.String(), nil
}
