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
	"fmt"

	"github.com/aixops/aixfacts/pkg/errors"
	"github.com/aixops/aixfacts/pkg/executor"
	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/parser"
)

// NiminfoCollector reports the NIM client configuration from /etc/niminfo.
type NiminfoCollector struct {
	Runner
	Path string
}

// Name returns facts.NameNiminfo.
func (c *NiminfoCollector) Name() facts.Name { return facts.NameNiminfo }

// Policy returns facts.PolicyAbort.
func (c *NiminfoCollector) Policy() facts.Policy { return facts.PolicyAbort }

// Default returns nil.
func (c *NiminfoCollector) Default() any { return nil }

// Collect returns the exported variables of the niminfo file. A malformed
// line fails the collection.
func (c *NiminfoCollector) Collect(ctx context.Context) (any, error) {
	b, err := c.ReadFile(ctx, c.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", c.Path, err)
	}

	content := []byte(executor.DecodeOutput(b))
	vars, err := parser.NewExportParser().Parse(content)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeParseFailed,
			"malformed niminfo", err, map[string]any{"path": c.Path})
	}
	return vars, nil
}
