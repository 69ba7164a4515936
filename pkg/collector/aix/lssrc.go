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

	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/parser"
)

// LssrcCollector reports System Resource Controller subsystems from lssrc -a.
type LssrcCollector struct {
	Runner
	Command string
}

// Name returns facts.NameLssrc.
func (c *LssrcCollector) Name() facts.Name { return facts.NameLssrc }

// Policy returns facts.PolicyAbort.
func (c *LssrcCollector) Policy() facts.Policy { return facts.PolicyAbort }

// Default returns nil.
func (c *LssrcCollector) Default() any { return nil }

// Collect returns one parser.Record per subsystem.
func (c *LssrcCollector) Collect(ctx context.Context) (any, error) {
	out, err := c.Output(ctx, c.Command, "-a")
	if err != nil {
		return nil, fmt.Errorf("failed to list subsystems: %w", err)
	}

	return parser.ParseFixedWidth(out), nil
}
