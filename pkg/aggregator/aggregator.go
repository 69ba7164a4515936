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
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aixops/aixfacts/pkg/collector"
	"github.com/aixops/aixfacts/pkg/config"
	"github.com/aixops/aixfacts/pkg/errors"
	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/header"
	"github.com/aixops/aixfacts/pkg/serializer"
)

// Aggregator collects the enabled AIX facts and serializes the result.
type Aggregator struct {
	// Config holds the target, command and collector settings.
	// If nil, config.Default() is used.
	Config *config.Config

	// Factory is the collector factory to use. If nil, a default factory
	// built from Config is used.
	Factory collector.Factory

	// Serializer is the serializer to use for output. If nil, a default
	// stdout JSON serializer is used.
	Serializer serializer.Serializer

	// Version is the tool version recorded in the snapshot metadata.
	Version string

	// Facts restricts the aggregation to the named facts.
	// If empty, the facts enabled in Config are collected.
	Facts []facts.Name

	// Source names the host the facts were collected from.
	// If empty, it is derived from the configured target.
	Source string
}

// Run aggregates the enabled facts and serializes the snapshot.
func (a *Aggregator) Run(ctx context.Context) error {
	snap, err := a.Aggregate(ctx)
	if err != nil {
		return err
	}

	if a.Serializer == nil {
		a.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := a.Serializer.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}

// Aggregate runs the enabled collectors in fact order and returns the
// resulting Snapshot. The first failure of an Abort collector stops the
// aggregation and is returned as a COLLECTOR_FAILED error.
func (a *Aggregator) Aggregate(ctx context.Context) (*Snapshot, error) {
	if a.Config == nil {
		a.Config = config.Default()
	}
	if a.Factory == nil {
		a.Factory = collector.NewDefaultFactory(a.Config)
	}

	names, err := a.factNames()
	if err != nil {
		return nil, err
	}

	collectors, err := collector.CreateAll(a.Factory, names)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to create collectors", err)
	}

	slog.Debug("starting fact aggregation", slog.Int("collectors", len(collectors)))

	start := time.Now()
	defer func() {
		aggregationDuration.Observe(time.Since(start).Seconds())
	}()

	snap := NewSnapshot()
	snap.Init(header.KindFacts, FullAPIVersion, a.Version)
	if source := a.source(); source != "" {
		snap.SetMetadata(header.MetadataSource, source)
	}

	for _, c := range collectors {
		if err := ctx.Err(); err != nil {
			aggregationTotal.WithLabelValues("error").Inc()
			return nil, errors.Wrap(errors.ErrCodeTimeout, "fact aggregation canceled", err)
		}

		value, err := a.collect(ctx, c)
		if err != nil {
			aggregationTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		if value == nil {
			continue
		}
		if err := snap.Facts.Put(c.Name(), value); err != nil {
			aggregationTotal.WithLabelValues("error").Inc()
			return nil, errors.WrapWithContext(errors.ErrCodeInternal, "failed to store fact", err,
				map[string]any{"fact": c.Name().String()})
		}
	}

	aggregationTotal.WithLabelValues("success").Inc()
	factCount.Set(float64(snap.Facts.Len()))

	slog.Debug("fact aggregation complete",
		slog.Int("facts", snap.Facts.Len()),
		slog.Duration("duration", time.Since(start)))

	return snap, nil
}

// collect runs one collector and applies its failure policy. A nil value
// with a nil error means the fact is left out of the snapshot.
func (a *Aggregator) collect(ctx context.Context, c collector.Collector) (any, error) {
	name := c.Name().String()

	collectorStart := time.Now()
	defer func() {
		collectorDuration.WithLabelValues(name).Observe(time.Since(collectorStart).Seconds())
	}()

	slog.Debug("collecting fact", slog.String("fact", name))

	value, err := c.Collect(ctx)
	if err == nil {
		return value, nil
	}

	policy := c.Policy()
	collectorFailures.WithLabelValues(name, policy.String()).Inc()

	if policy == facts.PolicyDegrade {
		slog.Warn("fact collection degraded",
			slog.String("fact", name),
			slog.String("error", err.Error()))
		return c.Default(), nil
	}

	slog.Error("fact collection failed",
		slog.String("fact", name),
		slog.String("error", err.Error()))
	return nil, errors.WrapWithContext(errors.ErrCodeCollectorFailed,
		fmt.Sprintf("failed to collect %s", name), err,
		map[string]any{"fact": name})
}

func (a *Aggregator) factNames() ([]facts.Name, error) {
	if len(a.Facts) > 0 {
		return a.Facts, nil
	}
	names, err := a.Config.FactNames()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid collectors configuration", err)
	}
	return names, nil
}

func (a *Aggregator) source() string {
	if a.Source != "" {
		return a.Source
	}
	if a.Config.Target.Mode == config.ModeSSH {
		return a.Config.Target.Host
	}
	host, err := os.Hostname()
	if err != nil {
		slog.Debug("failed to resolve hostname", slog.String("error", err.Error()))
		return ""
	}
	return host
}
