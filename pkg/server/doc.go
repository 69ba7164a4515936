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

// Package server implements the aixfacts HTTP fact service.
//
// # Architecture
//
// The server is a stateless HTTP API in front of an AggregateFunc:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking (X-Request-Id)
//   - Panic recovery for resilience
//   - Concurrent identical requests share one aggregation (singleflight)
//   - Graceful shutdown on SIGINT and SIGTERM
//   - Health and readiness probes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("aixfactsd"),
//	    server.WithVersion(version),
//	    server.WithAggregate(func(ctx context.Context, names []facts.Name) (*aggregator.Snapshot, error) {
//	        a := &aggregator.Aggregator{Config: cfg, Facts: names, Version: version}
//	        return a.Aggregate(ctx)
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /v1/facts          - all enabled facts, or the ?fact=a,b selection
//   - GET /v1/facts/{name}   - a single fact
//
// Both accept ?format=json|yaml|table. JSON is the default.
//
// System endpoints (no rate limiting):
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Errors
//
// Failures are returned as ErrorResponse documents. The HTTP status is
// derived from the StructuredError code: INVALID_REQUEST maps to 400,
// NOT_FOUND to 404, collector and command failures to 502 and TIMEOUT
// to 504.
//
// # Configuration
//
// NewConfig reads PORT and SHUTDOWN_TIMEOUT_SECONDS from the environment.
// WithServerConfig overlays the server section of the aixfacts config.
package server
