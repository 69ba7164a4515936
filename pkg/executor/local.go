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

package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after the command
// was killed by its context.
const waitDelay = 2 * time.Second

// Local runs commands on the current host.
type Local struct {
	// Env is appended to the process environment of every command.
	Env []string
}

// NewLocal returns a Local executor that runs commands in the C locale so
// that headers and labels are not translated.
func NewLocal() *Local {
	return &Local{Env: []string{"LC_ALL=C"}}
}

// Run executes argv on the local host.
func (l *Local) Run(ctx context.Context, argv ...string) (*Result, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), l.Env...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	slog.Debug("running command", "command", QuoteCommand(argv))

	start := time.Now()
	err := cmd.Run()
	res := &Result{
		Command:  argv,
		Duration: time.Since(start),
		Stdout:   DecodeOutput(stdout.Bytes()),
		Stderr:   DecodeOutput(stderr.Bytes()),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("command %q interrupted: %w", QuoteCommand(argv), ctxErr)
			observe(argv, res, err)
			return nil, err
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			err = fmt.Errorf("failed to run %q: %w", QuoteCommand(argv), err)
			observe(argv, res, err)
			return nil, err
		}
		res.ExitCode = exitErr.ExitCode()
	}

	observe(argv, res, nil)
	return res, nil
}

// ReadFile returns the content of the local file at path.
func (l *Local) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return b, nil
}

// StatFS returns block statistics of the local filesystem containing path.
func (l *Local) StatFS(ctx context.Context, path string) (*FSStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return statfs(path)
}

// Close is a no-op for Local.
func (l *Local) Close() error {
	return nil
}
