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

package executor

import (
	"path"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandExecutionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aixfacts_command_executions_total",
			Help: "Total number of AIX commands executed",
		},
		[]string{"command", "status"}, // success, exit_error or error
	)

	commandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aixfacts_command_duration_seconds",
			Help:    "Time taken by individual AIX commands",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30, 120},
		},
		[]string{"command"},
	)
)

// observe records the outcome of a command in the executor metrics.
func observe(argv []string, res *Result, err error) {
	name := path.Base(argv[0])

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case res.ExitCode != 0:
		status = "exit_error"
	}
	commandExecutionTotal.WithLabelValues(name, status).Inc()

	if res != nil {
		commandDuration.WithLabelValues(name).Observe(res.Duration.Seconds())
	}
}
