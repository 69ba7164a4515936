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

// Package parser normalizes the text output of AIX administration commands
// into structured records.
//
// # Overview
//
// AIX commands print their state in several loosely structured formats. Each
// format gets its own parsing strategy:
//
//   - Delimited tables (lslpp -Lc, lsfs -c): a '#'-prefixed header line
//     names colon-separated fields. See ParseDelimitedTable.
//   - Whitespace-columnar mount listings (mount): two row shapes, local and
//     network, told apart by the first token. See ParseMounts.
//   - Fixed-width columns (lssrc -a): values sit at fixed byte ranges that
//     do not line up with the header tokens. See ParseFixedWidth.
//   - Grouped output (lsvg -p): volume group blocks with member lines, refined
//     by a per-group query. See DiscoverGroups, ExtractMembers and
//     ExtractVolumeGroups.
//   - Export statements (/etc/niminfo): "export NAME=value" lines. See
//     ExportParser.
//   - Dash-separated version strings (oslevel -s). See DecomposeOSLevel.
//
// # Records
//
// Field names of tables are discovered from the header at parse time, so
// tabular results are returned as Record values: ordered mappings of field
// name to string. A row with fewer values than header fields produces a
// Record without the trailing keys. Callers must treat a missing key as
// absent rather than as a defect.
//
// # Tolerance
//
// The table, columnar and fixed-width parsers never fail: short rows are
// truncated or padded. The export parser is strict and returns a
// *SyntaxError for any malformed line, failing the whole file.
//
// All functions in this package are pure. They do not run commands or touch
// the filesystem; per-group lookups are injected by the caller.
package parser
