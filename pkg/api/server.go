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

package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aixops/aixfacts/pkg/aggregator"
	"github.com/aixops/aixfacts/pkg/collector"
	"github.com/aixops/aixfacts/pkg/config"
	"github.com/aixops/aixfacts/pkg/executor"
	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/logging"
	"github.com/aixops/aixfacts/pkg/server"
)

const (
	name           = "aixfactsd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/aixops/aixfacts/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve loads the configuration at configPath (or the default locations
// when empty), starts the fact service and blocks until shutdown.
func Serve(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	closer := logging.SetDefaultStructuredLoggerWithFile(name, version, cfg.Log.Level, logging.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	defer closer.Close()

	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"target", cfg.Target.Mode,
	)

	return Run(context.Background(), cfg)
}

// Run connects to the configured target and serves facts until ctx is
// canceled or the process is signaled.
func Run(ctx context.Context, cfg *config.Config) error {
	exec, err := executor.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create executor: %w", err)
	}
	defer exec.Close()

	s := NewServer(cfg, exec)
	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer returns the fact server for cfg, running commands through exec.
func NewServer(cfg *config.Config, exec executor.Executor) *server.Server {
	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithServerConfig(cfg.Server),
		server.WithAggregate(Aggregate(cfg, exec)),
	)
}

// Aggregate returns a server.AggregateFunc that collects facts from exec.
func Aggregate(cfg *config.Config, exec executor.Executor) server.AggregateFunc {
	factory := collector.NewDefaultFactory(cfg, collector.WithExecutor(exec))
	return func(ctx context.Context, names []facts.Name) (*aggregator.Snapshot, error) {
		a := &aggregator.Aggregator{
			Config:  cfg,
			Factory: factory,
			Version: version,
			Facts:   names,
		}
		return a.Aggregate(ctx)
	}
}
