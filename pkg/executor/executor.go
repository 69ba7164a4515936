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
	"io"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/aixops/aixfacts/pkg/config"
)

var (
	// ErrUnsupported is returned by operations an executor cannot perform.
	ErrUnsupported = errors.New("operation not supported by executor")

	// ErrEmptyCommand is returned by Run when argv is empty.
	ErrEmptyCommand = errors.New("empty command")
)

// Executor runs commands and reads files on the target host.
type Executor interface {
	// Run executes argv and returns its result. A non-zero exit status is
	// reported in the Result, not as an error.
	Run(ctx context.Context, argv ...string) (*Result, error)

	// ReadFile returns the raw content of the file at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// StatFS returns block statistics of the filesystem containing path.
	StatFS(ctx context.Context, path string) (*FSStats, error)

	// Close releases resources held by the executor.
	Close() error
}

// Result is the outcome of one command.
type Result struct {
	Command  []string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// CommandLine returns the command as a shell-quoted string.
func (r *Result) CommandLine() string {
	return QuoteCommand(r.Command)
}

// Err returns a *CommandError when the command exited with a non-zero
// status, and nil otherwise.
func (r *Result) Err() error {
	if r.ExitCode == 0 {
		return nil
	}
	return &CommandError{
		Command:  r.CommandLine(),
		ExitCode: r.ExitCode,
		Stderr:   r.Stderr,
	}
}

// CommandError reports a command that exited with a non-zero status.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command %q exited with status %d: %s", e.Command, e.ExitCode, e.Stderr)
}

// FSStats holds block statistics of a filesystem.
type FSStats struct {
	// BlockSize is the fragment size in bytes.
	BlockSize uint64
	// Blocks is the total number of blocks.
	Blocks uint64
	// Available is the number of blocks available to unprivileged users.
	Available uint64
}

// TotalBytes returns the size of the filesystem in bytes.
func (s FSStats) TotalBytes() uint64 {
	return s.BlockSize * s.Blocks
}

// AvailableBytes returns the space available to unprivileged users in bytes.
func (s FSStats) AvailableBytes() uint64 {
	return s.BlockSize * s.Available
}

// Output runs argv and returns its stdout. A non-zero exit status is
// returned as a *CommandError.
func Output(ctx context.Context, e Executor, argv ...string) (string, error) {
	res, err := e.Run(ctx, argv...)
	if err != nil {
		return "", err
	}
	if err := res.Err(); err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// New returns the executor selected by cfg.Target.Mode. SSH executors are
// connected before they are returned.
func New(ctx context.Context, cfg *config.Config) (Executor, error) {
	switch cfg.Target.Mode {
	case config.ModeLocal, "":
		return NewLocal(), nil
	case config.ModeSSH:
		return DialSSH(ctx, SSHConfig{
			Host:           cfg.Target.Host,
			Port:           cfg.Target.Port,
			User:           cfg.Target.User,
			Password:       cfg.Target.Password,
			KeyFile:        cfg.Target.KeyFile,
			KnownHostsFile: cfg.Target.KnownHosts,
			DialTimeout:    cfg.Target.DialTimeout,
		})
	default:
		return nil, fmt.Errorf("unsupported target mode %q", cfg.Target.Mode)
	}
}

// DecodeOutput returns b as a UTF-8 string, decoding it as ISO-8859-1 when
// it is not valid UTF-8.
func DecodeOutput(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	r := transform.NewReader(bytes.NewReader(b), charmap.ISO8859_1.NewDecoder())
	decoded, err := io.ReadAll(r)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}
