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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/aixops/aixfacts/pkg/aggregator"
	"github.com/aixops/aixfacts/pkg/collector"
	"github.com/aixops/aixfacts/pkg/defaults"
	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/serializer"
)

func (a *app) factsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "facts",
		EnableShellCompletion: true,
		Usage:                 "Collect AIX facts",
		Description: `Run the AIX inventory commands and print the normalized facts:
  - oslevel      OS level (oslevel -s)
  - build        autoinstall build identifier (BUILD file)
  - lpps         installed filesets (lslpp -Lc)
  - filesystems  filesystem definitions (lsfs -c)
  - mounts       mounted filesystems with sizes (mount)
  - vgs          active volume groups and their physical volumes (lsvg)
  - lssrc        subsystem status (lssrc -a)
  - niminfo      NIM client settings (/etc/niminfo)

All enabled facts are collected unless --fact is given.

# Examples

  aixfacts facts
  aixfacts facts --fact oslevel,vgs --format yaml
  aixfacts --host aix01 --user root facts --output cm://aix/aix01-facts
  aixfacts facts --output s3://inventory/hosts/aix01.json`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "fact",
				Aliases: []string{"f"},
				Usage:   fmt.Sprintf("fact to collect, can be repeated (supported values: %v)", facts.Names),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "timeout for the whole aggregation",
				Value: defaults.CLIFactsTimeout,
			},
			outputFlag(),
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: a.runFacts,
	}
}

func (a *app) runFacts(ctx context.Context, cmd *cli.Command) error {
	if err := a.setup(cmd); err != nil {
		return err
	}

	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	names, err := parseFactFlags(cmd.StringSlice("fact"))
	if err != nil {
		return err
	}

	sink, err := a.newSink(cmd, format)
	if err != nil {
		return err
	}
	defer func() {
		if err := serializer.CloseIfCloser(sink); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()

	exec, err := a.newExecutor(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to target: %w", err)
	}
	defer exec.Close()

	ctx, cancel := withTimeout(ctx, cmd)
	defer cancel()

	agg := &aggregator.Aggregator{
		Config:     a.cfg,
		Factory:    collector.NewDefaultFactory(a.cfg, collector.WithExecutor(exec)),
		Serializer: sink,
		Version:    version,
		Facts:      names,
	}
	return agg.Run(ctx)
}
