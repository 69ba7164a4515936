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

// Package aix implements one collector per AIX fact.
//
// Each collector runs its commands through an executor.Executor, bounds
// every command with its own timeout and hands the output to the matching
// pkg/parser function:
//
//	oslevel      oslevel -s           parser.DecomposeOSLevel
//	build        BUILD file           joined trimmed lines
//	lpps         lslpp -Lc            parser.ParseDelimitedTable
//	filesystems  lsfs -c              parser.ParseDelimitedTable
//	mounts       mount + statfs       parser.ParseMounts
//	vgs          lsvg -o, -p, <vg>    parser.ExtractVolumeGroups
//	lssrc        lssrc -a             parser.ParseFixedWidth
//	niminfo      /etc/niminfo         parser.ExportParser
//
// Collectors are created by collector.DefaultFactory from configuration.
package aix
