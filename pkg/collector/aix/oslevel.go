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
	"log/slog"

	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/parser"
)

// OSLevelCollector reports the operating system level from oslevel -s.
type OSLevelCollector struct {
	Runner
	Command string
}

// Name returns facts.NameOSLevel.
func (c *OSLevelCollector) Name() facts.Name { return facts.NameOSLevel }

// Policy returns facts.PolicyAbort.
func (c *OSLevelCollector) Policy() facts.Policy { return facts.PolicyAbort }

// Default returns nil.
func (c *OSLevelCollector) Default() any { return nil }

// Collect returns the parser.OSLevel of the host.
func (c *OSLevelCollector) Collect(ctx context.Context) (any, error) {
	slog.Debug("collecting os level")

	out, err := c.Output(ctx, c.Command, "-s")
	if err != nil {
		return nil, fmt.Errorf("failed to get os level: %w", err)
	}

	return parser.DecomposeOSLevel(out), nil
}
