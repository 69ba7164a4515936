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

package collector

import (
	"context"

	"github.com/aixops/aixfacts/pkg/facts"
)

// Collector gathers one fact from the target host.
type Collector interface {
	// Name is the fact the collector produces.
	Name() facts.Name

	// Policy is the behavior of the aggregator when Collect fails.
	Policy() facts.Policy

	// Default is the value stored under PolicyDegrade when Collect fails.
	// A nil default leaves the fact out of the aggregate.
	Default() any

	// Collect returns the structured value of the fact.
	Collect(ctx context.Context) (any, error)
}

// Factory creates collectors by fact name.
type Factory interface {
	Create(name facts.Name) (Collector, error)
}
