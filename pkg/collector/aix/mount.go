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

	"k8s.io/utils/ptr"

	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/parser"
)

// MountCollector reports mounted filesystems from mount, with sizes of
// local filesystems.
type MountCollector struct {
	Runner
	Command string
}

// Name returns facts.NameMounts.
func (c *MountCollector) Name() facts.Name { return facts.NameMounts }

// Policy returns facts.PolicyAbort.
func (c *MountCollector) Policy() facts.Policy { return facts.PolicyAbort }

// Default returns nil.
func (c *MountCollector) Default() any { return nil }

// Collect returns the mounted filesystems. Sizes are filled for local mounts
// only and are left nil when the filesystem cannot be queried.
func (c *MountCollector) Collect(ctx context.Context) (any, error) {
	out, err := c.Output(ctx, c.Command)
	if err != nil {
		return nil, fmt.Errorf("failed to list mounts: %w", err)
	}

	mounts := parser.ParseMounts(out)
	for i := range mounts {
		m := &mounts[i]
		if !m.IsLocal() {
			continue
		}

		st, err := c.StatFS(ctx, m.MountPoint)
		if err != nil {
			slog.Debug("failed to stat mounted filesystem",
				"mount", m.MountPoint,
				"error", err,
			)
			continue
		}
		m.SizeTotal = ptr.To(st.TotalBytes())
		m.SizeAvailable = ptr.To(st.AvailableBytes())
	}

	return mounts, nil
}
