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
	"time"

	"github.com/aixops/aixfacts/pkg/defaults"
	"github.com/aixops/aixfacts/pkg/executor"
)

// Runner executes commands for a collector with a per-command timeout.
type Runner struct {
	Exec    executor.Executor
	Timeout time.Duration
}

// Output runs argv and returns its stdout, failing on a non-zero exit status.
func (r Runner) Output(ctx context.Context, argv ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()
	return executor.Output(ctx, r.Exec, argv...)
}

// ReadFile returns the content of path on the target host.
func (r Runner) ReadFile(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()
	return r.Exec.ReadFile(ctx, path)
}

// StatFS returns filesystem statistics of path on the target host.
func (r Runner) StatFS(ctx context.Context, path string) (*executor.FSStats, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()
	return r.Exec.StatFS(ctx, path)
}

func (r Runner) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return defaults.CommandTimeout
}
