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

// Package api wires the aixfacts configuration, executor and collectors
// into the HTTP fact service.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(""); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// Serve loads the configuration (see pkg/config), installs the structured
// logger, connects to the target host and blocks until SIGINT or SIGTERM.
//
// # Endpoints
//
//   - GET /v1/facts         - aggregated facts, optionally ?fact=a,b
//   - GET /v1/facts/{name}  - a single fact
//   - GET /health, /ready   - probes
//   - GET /metrics          - Prometheus metrics
//
// # Build Variables
//
// version, commit and date are set at build time with -ldflags.
package api
