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

// Package collector defines the Collector interface and the factory that
// builds the AIX fact collectors from configuration.
//
// # Core Interface
//
//	type Collector interface {
//	    Name() facts.Name
//	    Policy() facts.Policy
//	    Default() any
//	    Collect(ctx context.Context) (any, error)
//	}
//
// Every collector declares what happens when it fails. PolicyAbort fails
// the whole aggregation; PolicyDegrade logs the failure and stores Default
// instead. All collectors support context-based cancellation, and every
// command they run is bounded by the configured command timeout.
//
// # Factory Pattern
//
// The Factory interface abstracts collector creation for testing:
//
//	factory := collector.NewDefaultFactory(cfg,
//	    collector.WithExecutor(executor.NewFake()),
//	)
//	c, err := factory.Create(facts.NameVGs)
//
// Without WithExecutor, commands run on the local host.
//
// # Subpackages
//
//   - collector/aix - one collector per AIX fact
package collector
