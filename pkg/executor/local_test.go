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
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) string {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestLocal_Run(t *testing.T) {
	sh := requireShell(t)
	l := NewLocal()

	res, err := l.Run(context.TODO(), sh, "-c", "echo out; echo err >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.Equal(t, 3, res.ExitCode)

	var ce *CommandError
	require.True(t, errors.As(res.Err(), &ce))
	assert.Equal(t, 3, ce.ExitCode)
}

func TestLocal_RunLocale(t *testing.T) {
	sh := requireShell(t)

	res, err := NewLocal().Run(context.TODO(), sh, "-c", "echo $LC_ALL")
	require.NoError(t, err)
	assert.Equal(t, "C\n", res.Stdout)
}

func TestLocal_RunErrors(t *testing.T) {
	l := NewLocal()

	_, err := l.Run(context.TODO())
	assert.ErrorIs(t, err, ErrEmptyCommand)

	_, err = l.Run(context.TODO(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLocal_RunTimeout(t *testing.T) {
	sh := requireShell(t)

	ctx, cancel := context.WithTimeout(context.TODO(), 100*time.Millisecond)
	defer cancel()

	_, err := NewLocal().Run(ctx, sh, "-c", "sleep 5")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocal_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BUILD")
	require.NoError(t, os.WriteFile(path, []byte("build-42\n"), 0o600))

	l := NewLocal()
	b, err := l.ReadFile(context.TODO(), path)
	require.NoError(t, err)
	assert.Equal(t, "build-42\n", string(b))

	_, err = l.ReadFile(context.TODO(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocal_StatFS(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "aix", "darwin", "freebsd":
	default:
		t.Skip("statfs not supported on " + runtime.GOOS)
	}

	st, err := NewLocal().StatFS(context.TODO(), t.TempDir())
	require.NoError(t, err)
	assert.NotZero(t, st.BlockSize)
	assert.NotZero(t, st.Blocks)
	assert.LessOrEqual(t, st.Available, st.Blocks)
}
