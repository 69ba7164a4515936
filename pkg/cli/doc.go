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

// Package cli implements the aixfacts command-line interface.
//
// # Commands
//
// facts - Collect AIX facts:
//
//	aixfacts facts [--fact oslevel,vgs] [--output facts.yaml]
//
// Runs the enabled collectors on the target host and writes the
// normalized facts. Output defaults to stdout in JSON format.
//
// filesystem - Create or remove a filesystem:
//
//	aixfacts filesystem --mount-point /data --lv datalv [--state absent] [--dry-run]
//
// serve - Serve facts over HTTP (see pkg/api):
//
//	aixfacts serve --port 8080
//
// version - Print version information.
//
// # Global Flags
//
//	--config, -c        Config file (default $HOME/.aixfacts.yaml or ./.aixfacts.yaml)
//	--log-level         Log level (debug, info, warn, error)
//	--log-file          Also write logs to a rotating file
//	--host              Collect over SSH from this host
//	--ssh-port, --user, --key-file
//	                    SSH connection settings for --host
//	--command-timeout   Timeout of a single AIX command
//
// # Output
//
// --output accepts a file path or one of the remote sinks:
//
//	cm://namespace/name                 Kubernetes ConfigMap
//	s3://bucket/key                     S3-compatible object store
//	oci://registry/repository[:tag]     OCI registry artifact
//
// --format selects json, yaml or table. Without --format, the format is
// taken from the --output file extension and defaults to JSON.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, collector or command failure)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/aixops/aixfacts/pkg/cli.version=1.0.0'"
package cli
