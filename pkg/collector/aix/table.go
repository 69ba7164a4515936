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

// LPPCollector reports installed filesets and fixes from lslpp -Lc.
type LPPCollector struct {
	Runner
	Command string
}

// Name returns facts.NameLPPs.
func (c *LPPCollector) Name() facts.Name { return facts.NameLPPs }

// Policy returns facts.PolicyAbort.
func (c *LPPCollector) Policy() facts.Policy { return facts.PolicyAbort }

// Default returns nil.
func (c *LPPCollector) Default() any { return nil }

// Collect returns one parser.Record per installed fileset.
func (c *LPPCollector) Collect(ctx context.Context) (any, error) {
	out, err := c.Output(ctx, c.Command, "-Lc")
	if err != nil {
		return nil, fmt.Errorf("failed to list installed filesets: %w", err)
	}

	records := parser.ParseDelimitedTable(out)
	slog.Debug("collected filesets", "count", len(records))
	return records, nil
}

// FilesystemCollector reports configured filesystems from lsfs -c.
type FilesystemCollector struct {
	Runner
	Command string
}

// Name returns facts.NameFilesystems.
func (c *FilesystemCollector) Name() facts.Name { return facts.NameFilesystems }

// Policy returns facts.PolicyAbort.
func (c *FilesystemCollector) Policy() facts.Policy { return facts.PolicyAbort }

// Default returns nil.
func (c *FilesystemCollector) Default() any { return nil }

// Collect returns one parser.Record per filesystem.
func (c *FilesystemCollector) Collect(ctx context.Context) (any, error) {
	out, err := c.Output(ctx, c.Command, "-c")
	if err != nil {
		return nil, fmt.Errorf("failed to list filesystems: %w", err)
	}

	return parser.ParseDelimitedTable(out), nil
}
