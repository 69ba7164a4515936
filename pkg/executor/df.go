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
	"fmt"
	"strconv"
	"strings"
)

const dfBlocksSuffix = "-blocks"

// ParseDF reads the first filesystem of df -P output. The block size is
// taken from the size column header, such as "1024-blocks".
func ParseDF(out string) (*FSStats, error) {
	lines := strings.Split(strings.ReplaceAll(out, "\r\n", "\n"), "\n")

	var blockSize uint64
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if blockSize == 0 {
			if len(fields) < 2 || !strings.HasSuffix(fields[1], dfBlocksSuffix) {
				return nil, fmt.Errorf("unexpected df header %q", line)
			}
			size, err := strconv.ParseUint(strings.TrimSuffix(fields[1], dfBlocksSuffix), 10, 64)
			if err != nil || size == 0 {
				return nil, fmt.Errorf("invalid df block size %q", fields[1])
			}
			blockSize = size
			continue
		}

		if len(fields) < 5 {
			return nil, fmt.Errorf("unexpected df line %q", line)
		}
		total, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid df total %q: %w", fields[1], err)
		}
		avail, err := strconv.ParseUint(fields[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid df available %q: %w", fields[3], err)
		}
		return &FSStats{BlockSize: blockSize, Blocks: total, Available: avail}, nil
	}

	return nil, fmt.Errorf("no filesystem in df output")
}
