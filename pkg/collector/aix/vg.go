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
	"strings"

	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/parser"
)

// VGCollector reports the physical volumes of every varied-on volume group.
//
// Discovery lists the active groups with lsvg -o and their members with
// lsvg -p. The PP size of each group comes from a separate lsvg <group>
// query; a failed query only affects that group.
type VGCollector struct {
	Runner
	Command string
}

// Name returns facts.NameVGs.
func (c *VGCollector) Name() facts.Name { return facts.NameVGs }

// Policy returns facts.PolicyAbort.
func (c *VGCollector) Policy() facts.Policy { return facts.PolicyAbort }

// Default returns nil.
func (c *VGCollector) Default() any { return nil }

// Collect returns the parser.VolumeGroups of the host.
func (c *VGCollector) Collect(ctx context.Context) (any, error) {
	active, err := c.Output(ctx, c.Command, "-o")
	if err != nil {
		return nil, fmt.Errorf("failed to list active volume groups: %w", err)
	}

	names := strings.Fields(active)
	if len(names) == 0 {
		slog.Debug("no active volume groups")
		return parser.VolumeGroups{}, nil
	}

	argv := append([]string{c.Command, "-p"}, names...)
	members, err := c.Output(ctx, argv...)
	if err != nil {
		return nil, fmt.Errorf("failed to list physical volumes: %w", err)
	}

	lookup := func(group string) (string, error) {
		return c.Output(ctx, c.Command, group)
	}

	groups := parser.ExtractVolumeGroups(members, lookup)
	slog.Debug("collected volume groups", "groups", groups.Names())
	return groups, nil
}
