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

// Package aggregator runs the enabled AIX fact collectors and assembles
// their results into a single Snapshot.
//
// Collectors run sequentially in the fixed fact order. Each collector
// declares a failure policy: an Abort collector that fails stops the
// aggregation with a COLLECTOR_FAILED structured error wrapping the
// original cause, while a Degrade collector logs a warning and contributes
// its default value instead.
//
// Usage:
//
//	agg := &aggregator.Aggregator{
//	    Config:     cfg,
//	    Version:    version,
//	    Serializer: serializer.NewStdoutWriter(serializer.FormatYAML),
//	}
//	if err := agg.Run(ctx); err != nil {
//	    return err
//	}
//
// Aggregate returns the Snapshot without serializing it, which is what the
// API server uses to answer requests.
//
// Nothing is cached between aggregations: every call re-runs the
// collectors against the target host.
package aggregator
