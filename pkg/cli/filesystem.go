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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/aixops/aixfacts/pkg/defaults"
	"github.com/aixops/aixfacts/pkg/filesystem"
	"github.com/aixops/aixfacts/pkg/serializer"
)

func (a *app) filesystemCmd() *cli.Command {
	return &cli.Command{
		Name:                  "filesystem",
		Aliases:               []string{"fs"},
		EnableShellCompletion: true,
		Usage:                 "Create or remove a filesystem",
		Description: `Converge the filesystem mounted at --mount-point to --state.

A present filesystem is created with crfs on --lv when it does not exist.
An absent filesystem is removed with rmfs, including its logical volume.
Nothing is changed when the filesystem is already in the requested state.

# Examples

  aixfacts filesystem --mount-point /data --lv datalv --at-restart
  aixfacts filesystem --mount-point /data --state absent --dry-run`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "mount-point",
				Aliases:  []string{"m"},
				Usage:    "absolute mount point of the filesystem",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "lv",
				Usage: "logical volume that hosts the filesystem (required when --state=present)",
			},
			&cli.StringFlag{
				Name:  "fstype",
				Usage: fmt.Sprintf("filesystem type (supported values: %s)", strings.Join(filesystem.SupportedFSTypes, ", ")),
				Value: filesystem.DefaultFSType,
			},
			&cli.BoolFlag{
				Name:  "at-restart",
				Usage: "mount the filesystem at system restart",
			},
			&cli.StringFlag{
				Name:  "state",
				Usage: fmt.Sprintf("desired state (%s or %s)", filesystem.StatePresent, filesystem.StateAbsent),
				Value: string(filesystem.StatePresent),
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "report the change without making it",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "timeout for the whole operation",
				Value: defaults.CLIFilesystemTimeout,
			},
			outputFlag(),
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: a.runFilesystem,
	}
}

func (a *app) runFilesystem(ctx context.Context, cmd *cli.Command) error {
	if err := a.setup(cmd); err != nil {
		return err
	}

	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	state, err := filesystem.ParseState(cmd.String("state"))
	if err != nil {
		return err
	}

	req := filesystem.Request{
		MountPoint:    cmd.String("mount-point"),
		LogicalVolume: cmd.String("lv"),
		FSType:        cmd.String("fstype"),
		AtRestart:     cmd.Bool("at-restart"),
		State:         state,
		DryRun:        cmd.Bool("dry-run"),
	}
	if err := req.Validate(); err != nil {
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

	ctrl := filesystem.NewController(a.cfg, exec)
	ctrl.Version = version

	res, err := ctrl.Ensure(ctx, req)
	if err != nil {
		return err
	}

	return sink.Serialize(ctx, res)
}
