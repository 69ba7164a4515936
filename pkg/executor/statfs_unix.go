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

//go:build aix || darwin || freebsd

package executor

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func statfs(path string) (*FSStats, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return nil, fmt.Errorf("failed to stat filesystem %q: %w", path, err)
	}
	return &FSStats{
		BlockSize: uint64(st.Bsize),
		Blocks:    uint64(st.Blocks),
		Available: uint64(st.Bavail),
	}, nil
}
