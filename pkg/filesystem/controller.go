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

package filesystem

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aixops/aixfacts/pkg/config"
	"github.com/aixops/aixfacts/pkg/defaults"
	"github.com/aixops/aixfacts/pkg/errors"
	"github.com/aixops/aixfacts/pkg/executor"
	"github.com/aixops/aixfacts/pkg/header"
)

// APIVersion is the apiVersion written into every Result.
const APIVersion = "aixfacts.aixops.io/v1"

// Controller converges filesystems on a target host.
type Controller struct {
	Exec     executor.Executor
	Commands config.CommandsConfig
	Timeout  time.Duration
	Version  string
}

// NewController returns a Controller running the commands configured in cfg.
func NewController(cfg *config.Config, exec executor.Executor) *Controller {
	return &Controller{
		Exec:     exec,
		Commands: cfg.Commands,
		Timeout:  cfg.CommandTimeout,
	}
}

// Ensure converges the filesystem at req.MountPoint to req.State.
func (c *Controller) Ensure(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		MountPoint: req.MountPoint,
		State:      req.State,
		DryRun:     req.DryRun,
	}
	res.Init(header.KindFilesystemResult, APIVersion, c.Version)

	exists, err := c.exists(ctx, req.MountPoint)
	if err != nil {
		return nil, err
	}

	switch {
	case exists && req.State == StatePresent:
		res.Message = fmt.Sprintf("filesystem %s already exists", req.MountPoint)
		return c.done(res, "none"), nil
	case !exists && req.State == StateAbsent:
		res.Message = fmt.Sprintf("filesystem %s does not exist", req.MountPoint)
		return c.done(res, "none"), nil
	case exists:
		return c.remove(ctx, req, res)
	default:
		return c.create(ctx, req, res)
	}
}

// exists reports whether lsfs knows the mount point.
func (c *Controller) exists(ctx context.Context, mountPoint string) (bool, error) {
	r, err := c.run(ctx, c.Commands.Lsfs, mountPoint)
	if err != nil {
		return false, err
	}
	slog.Debug("filesystem lookup",
		slog.String("mount_point", mountPoint),
		slog.Int("exit_code", r.ExitCode))
	return r.ExitCode == 0, nil
}

func (c *Controller) remove(ctx context.Context, req Request, res *Result) (*Result, error) {
	argv := []string{c.Commands.Rmfs, "-r", req.MountPoint}
	res.Changed = true
	res.Command = executor.QuoteCommand(argv)

	if req.DryRun {
		res.Message = fmt.Sprintf("filesystem %s would be removed", req.MountPoint)
		return c.done(res, "remove"), nil
	}

	r, err := c.run(ctx, argv...)
	if err != nil {
		return nil, err
	}
	if cerr := r.Err(); cerr != nil {
		filesystemOperations.WithLabelValues("remove", "error").Inc()
		return nil, errors.WrapWithContext(errors.ErrCodeCommandFailed,
			fmt.Sprintf("removing filesystem %s failed", req.MountPoint), cerr,
			map[string]any{"mount_point": req.MountPoint})
	}

	res.Message = fmt.Sprintf("filesystem %s removed", req.MountPoint)
	slog.Info("filesystem removed", slog.String("mount_point", req.MountPoint))
	return c.done(res, "remove"), nil
}

func (c *Controller) create(ctx context.Context, req Request, res *Result) (*Result, error) {
	r, err := c.run(ctx, c.Commands.Lslv, req.LogicalVolume)
	if err != nil {
		return nil, err
	}
	if cerr := r.Err(); cerr != nil {
		filesystemOperations.WithLabelValues("create", "error").Inc()
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("logical volume %s does not exist", req.LogicalVolume), cerr,
			map[string]any{"logical_volume": req.LogicalVolume})
	}

	if !slices.Contains(SupportedFSTypes, req.FSType) {
		res.Message = fmt.Sprintf("filesystem type %s not supported", req.FSType)
		slog.Warn("unsupported filesystem type",
			slog.String("fstype", req.FSType),
			slog.String("mount_point", req.MountPoint))
		return c.done(res, "none"), nil
	}

	atRestart := "no"
	if req.AtRestart {
		atRestart = "yes"
	}
	argv := []string{c.Commands.Crfs,
		"-v", req.FSType,
		"-A", atRestart,
		"-d", req.LogicalVolume,
		"-m", req.MountPoint,
		"-a", "logname=INLINE",
	}
	res.Changed = true
	res.Command = executor.QuoteCommand(argv)

	if req.DryRun {
		res.Message = fmt.Sprintf("filesystem %s would be created on %s", req.MountPoint, req.LogicalVolume)
		return c.done(res, "create"), nil
	}

	r, err = c.run(ctx, argv...)
	if err != nil {
		return nil, err
	}
	if cerr := r.Err(); cerr != nil {
		filesystemOperations.WithLabelValues("create", "error").Inc()
		return nil, errors.WrapWithContext(errors.ErrCodeCommandFailed,
			fmt.Sprintf("creating filesystem %s on logical volume %s failed", req.MountPoint, req.LogicalVolume), cerr,
			map[string]any{"mount_point": req.MountPoint, "logical_volume": req.LogicalVolume})
	}

	res.Message = fmt.Sprintf("filesystem %s created on %s", req.MountPoint, req.LogicalVolume)
	slog.Info("filesystem created",
		slog.String("mount_point", req.MountPoint),
		slog.String("logical_volume", req.LogicalVolume),
		slog.String("fstype", req.FSType))
	return c.done(res, "create"), nil
}

func (c *Controller) done(res *Result, action string) *Result {
	result := "unchanged"
	switch {
	case res.DryRun && res.Changed:
		result = "dry_run"
	case res.Changed:
		result = "changed"
	}
	filesystemOperations.WithLabelValues(action, result).Inc()
	return res
}

// run executes argv with the controller timeout. Only a failure to run the
// command is an error; the exit status is left to the caller.
func (c *Controller) run(ctx context.Context, argv ...string) (*executor.Result, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaults.CommandTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r, err := c.Exec.Run(ctx, argv...)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeCommandFailed, "failed to run command", err,
			map[string]any{"command": executor.QuoteCommand(argv)})
	}
	return r, nil
}
