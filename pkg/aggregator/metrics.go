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

package aggregator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aixfacts_aggregation_duration_seconds",
			Help:    "Time taken to aggregate all enabled facts",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	aggregationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aixfacts_aggregation_total",
			Help: "Total number of fact aggregation attempts",
		},
		[]string{"status"}, // success or error
	)

	collectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aixfacts_collector_duration_seconds",
			Help:    "Time taken by individual fact collectors",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"fact"},
	)

	collectorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aixfacts_collector_failures_total",
			Help: "Total number of fact collector failures",
		},
		[]string{"fact", "policy"},
	)

	factCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "aixfacts_facts",
			Help: "Number of facts in the last aggregated snapshot",
		},
	)
)
