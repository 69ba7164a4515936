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

// Package executor runs AIX administration commands and reads files on the
// target host, either locally or over SSH.
//
// # Results
//
// Run never treats a non-zero exit status as an error: the status, stdout
// and stderr are returned in a Result. Callers decide whether the status is
// fatal by calling Result.Err, which returns a *CommandError carrying the
// command, exit status and stderr verbatim. Failure to start a command, a
// broken connection or an expired context are returned as errors.
//
// # Encoding
//
// AIX commands print in the codeset of the process locale, ISO-8859-1 for the
// default en_US locale. Output that is not valid UTF-8 is decoded as
// ISO-8859-1 so parsers always see UTF-8 text.
//
// # Implementations
//
//   - Local runs commands with os/exec and reads files directly.
//   - SSH runs commands on a remote host; StatFS reads df -P output.
//   - Fake returns scripted results for tests.
//
// Use New to build the implementation selected by configuration:
//
//	exec, err := executor.New(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer exec.Close()
//
//	out, err := executor.Output(ctx, exec, "/usr/bin/oslevel", "-s")
package executor
