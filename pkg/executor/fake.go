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
	"context"
	"fmt"
	"io/fs"
	"strings"
	"sync"
)

// FakeResponse is the scripted outcome of one command.
type FakeResponse struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Err makes Run fail as if the command could not be started.
	Err error
}

// Fake is an Executor with scripted command results and files. Commands
// that were not scripted exit with status 127. It is safe for concurrent use.
type Fake struct {
	mu       sync.Mutex
	commands map[string]FakeResponse
	files    map[string][]byte
	fileErrs map[string]error
	fsStats  map[string]FSStats
	calls    [][]string
}

// NewFake returns an empty Fake.
func NewFake() *Fake {
	return &Fake{
		commands: make(map[string]FakeResponse),
		files:    make(map[string][]byte),
		fileErrs: make(map[string]error),
		fsStats:  make(map[string]FSStats),
	}
}

// SetCommand scripts the response to argv.
func (f *Fake) SetCommand(resp FakeResponse, argv ...string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands[strings.Join(argv, " ")] = resp
	return f
}

// SetOutput scripts a successful command printing stdout.
func (f *Fake) SetOutput(stdout string, argv ...string) *Fake {
	return f.SetCommand(FakeResponse{Stdout: stdout}, argv...)
}

// SetFile scripts the content of a file.
func (f *Fake) SetFile(path string, content string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = []byte(content)
	return f
}

// SetFileError makes ReadFile of path fail with err.
func (f *Fake) SetFileError(path string, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fileErrs[path] = err
	return f
}

// SetStatFS scripts the filesystem statistics of path.
func (f *Fake) SetStatFS(path string, stats FSStats) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fsStats[path] = stats
	return f
}

// Calls returns the commands run so far, in order.
func (f *Fake) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// Run returns the scripted response for argv.
func (f *Fake) Run(ctx context.Context, argv ...string) (*Result, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.calls = append(f.calls, append([]string(nil), argv...))
	resp, ok := f.commands[strings.Join(argv, " ")]
	f.mu.Unlock()

	if !ok {
		resp = FakeResponse{
			ExitCode: 127,
			Stderr:   fmt.Sprintf("%s: not found", argv[0]),
		}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Result{
		Command:  argv,
		ExitCode: resp.ExitCode,
		Stdout:   resp.Stdout,
		Stderr:   resp.Stderr,
	}, nil
}

// ReadFile returns the scripted content of path.
func (f *Fake) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.fileErrs[path]; ok {
		return nil, err
	}
	b, ok := f.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), b...), nil
}

// StatFS returns the scripted statistics of path.
func (f *Fake) StatFS(ctx context.Context, path string) (*FSStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.fsStats[path]
	if !ok {
		return nil, fmt.Errorf("stat filesystem %q: %w", path, ErrUnsupported)
	}
	return &st, nil
}

// Close is a no-op for Fake.
func (f *Fake) Close() error {
	return nil
}
