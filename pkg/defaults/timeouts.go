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

package defaults

import "time"

// Command timeouts for AIX command execution.
const (
	// CommandTimeout bounds a single external command such as lslpp or lsvg.
	CommandTimeout = 2 * time.Minute

	// SSHDialTimeout is the timeout for connecting to a remote AIX host.
	SSHDialTimeout = 15 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// FactsHandlerTimeout is the timeout for fact aggregation requests.
	// A full aggregation runs eight collectors in sequence.
	FactsHandlerTimeout = 10 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Must cover FactsHandlerTimeout.
	ServerWriteTimeout = 11 * time.Minute

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 12 * time.Minute

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Output sink timeouts.
const (
	// ConfigMapWriteTimeout is the timeout for writing to ConfigMaps.
	ConfigMapWriteTimeout = 30 * time.Second

	// ObjectStoreWriteTimeout is the timeout for uploading to an object store.
	ObjectStoreWriteTimeout = 60 * time.Second

	// RegistryPushTimeout is the timeout for pushing an OCI artifact.
	RegistryPushTimeout = 2 * time.Minute
)

// CLI timeouts for command-line operations.
const (
	// CLIFactsTimeout is the default timeout for a full fact aggregation.
	CLIFactsTimeout = 10 * time.Minute

	// CLIFilesystemTimeout is the default timeout for filesystem changes.
	CLIFilesystemTimeout = 5 * time.Minute
)
