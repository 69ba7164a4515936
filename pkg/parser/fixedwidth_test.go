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

package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lssrcLine(subsystem, group, pid, status string) string {
	return fmt.Sprintf("%-18s%-16s%-14s%s", subsystem, group, pid, status)
}

func TestParseFixedWidth_Lssrc(t *testing.T) {
	input := "Subsystem         Group            PID          Status\n" +
		lssrcLine(" named", "tcpip", "4260004", "active") + "\n" +
		lssrcLine(" sendmail", "mail", "", "inoperative") + "\n" +
		"\n"

	records := ParseFixedWidth(input)
	require.Len(t, records, 2)

	assert.Equal(t, map[string]string{
		"Subsystem": "named",
		"Group":     "tcpip",
		"PID":       "4260004",
		"Status":    "active",
	}, records[0].Map())
	assert.Equal(t, []string{"Subsystem", "Group", "PID", "Status"}, records[0].Keys())

	pid, ok := records[1].Get("PID")
	assert.True(t, ok)
	assert.Equal(t, "", pid)
	status, _ := records[1].Get("Status")
	assert.Equal(t, "inoperative", status)
}

func TestParseFixedWidth_HeaderMismatch(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKeys []string
	}{
		{name: "fewer names", header: "A B", wantKeys: []string{"A", "B"}},
		{name: "more names", header: "A B C D E", wantKeys: []string{"A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := ParseFixedWidth(tt.header + "\n" + lssrcLine("x", "y", "1", "z"))
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantKeys, records[0].Keys())
		})
	}
}

func TestParseFixedWidth_ShortLineClamped(t *testing.T) {
	records := ParseFixedWidth("A B C D\n" + fmt.Sprintf("%-18s%s", " inetd", "tcp"))
	require.Len(t, records, 1)
	assert.Equal(t, map[string]string{"A": "inetd", "B": "tcp", "C": "", "D": ""}, records[0].Map())
}

func TestParseFixedWidth_CustomColumns(t *testing.T) {
	records := ParseFixedWidth("K V\nab12", Column{0, 2}, Column{2, 4})
	require.Len(t, records, 1)
	assert.Equal(t, map[string]string{"K": "ab", "V": "12"}, records[0].Map())
}

func TestParseFixedWidth_Empty(t *testing.T) {
	assert.Empty(t, ParseFixedWidth(""))
	assert.Empty(t, ParseFixedWidth("Subsystem Group PID Status\n"))
}
