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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDF(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    *FSStats
		wantErr bool
	}{
		{
			name: "aix",
			out: "Filesystem    1024-blocks      Used Available Capacity Mounted on\n" +
				"/dev/hd4           524288    401408    122880      77% /\n",
			want: &FSStats{BlockSize: 1024, Blocks: 524288, Available: 122880},
		},
		{
			name: "512 byte blocks",
			out: "Filesystem    512-blocks      Used Available Capacity Mounted on\n" +
				"/dev/fslv00       2097152     65536   2031616       4% /data\n",
			want: &FSStats{BlockSize: 512, Blocks: 2097152, Available: 2031616},
		},
		{
			name: "mount point with spaces",
			out: "Filesystem 1024-blocks Used Available Capacity Mounted on\r\n" +
				"/dev/lv01 100 40 60 40% /my data\r\n",
			want: &FSStats{BlockSize: 1024, Blocks: 100, Available: 60},
		},
		{
			name:    "empty",
			out:     "",
			wantErr: true,
		},
		{
			name:    "header only",
			out:     "Filesystem 1024-blocks Used Available Capacity Mounted on\n",
			wantErr: true,
		},
		{
			name:    "not posix format",
			out:     "Filesystem    GB blocks      Free %Used\n/dev/hd4 0.50 0.12 77%\n",
			wantErr: true,
		},
		{
			name:    "non numeric size",
			out:     "Filesystem 1024-blocks Used Available Capacity Mounted on\n/dev/hd4 - - - - /\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDF(tt.out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
