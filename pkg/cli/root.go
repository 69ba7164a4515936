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
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/aixops/aixfacts/pkg/config"
	"github.com/aixops/aixfacts/pkg/executor"
	"github.com/aixops/aixfacts/pkg/logging"
)

const (
	name           = "aixfacts"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitError    = 1
	exitCanceled = 2
)

// app holds the state shared by the commands of one invocation.
type app struct {
	cfg       *config.Config
	logCloser io.Closer
	stdout    io.Writer

	// newExecutor connects to the configured target.
	newExecutor func(ctx context.Context, cfg *config.Config) (executor.Executor, error)
}

func newApp() *app {
	return &app{
		stdout:      os.Stdout,
		newExecutor: executor.New,
	}
}

// Execute runs the CLI with the process arguments and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return exitCanceled
	}
	return exitError
}

func (a *app) rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Collect normalized facts from AIX hosts",
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `aixfacts runs the AIX inventory commands (oslevel, lslpp, lsfs, mount,
lsvg, lssrc) on a local or remote host and normalizes their text output
into structured facts.

Commands run locally by default. Use --host to collect over SSH.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (default is $HOME/.aixfacts.yaml or ./.aixfacts.yaml)",
				Sources: cli.EnvVars("AIXFACTS_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "also write logs to this rotating file",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "collect from this host over SSH instead of locally",
			},
			&cli.IntFlag{
				Name:  "ssh-port",
				Usage: "SSH port of --host",
			},
			&cli.StringFlag{
				Name:  "user",
				Usage: "SSH user for --host",
			},
			&cli.StringFlag{
				Name:  "key-file",
				Usage: "SSH private key for --host",
			},
			&cli.DurationFlag{
				Name:  "command-timeout",
				Usage: "timeout of a single AIX command",
			},
		},
		After: a.after,
		Commands: []*cli.Command{
			a.factsCmd(),
			a.filesystemCmd(),
			a.serveCmd(),
			a.versionCmd(),
		},
	}
}

// setup loads the configuration, applies the global flag overrides and
// installs the structured logger. Commands call it first so that global
// flags given after the command name are honored.
func (a *app) setup(cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, cmd); err != nil {
		return err
	}
	a.cfg = cfg

	a.logCloser = logging.SetDefaultStructuredLoggerWithFile(name, version, cfg.Log.Level, logging.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"target", cfg.Target.Mode)

	return nil
}

func (a *app) after(_ context.Context, _ *cli.Command) error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}

// applyFlags overlays the global flags that were set on cfg.
func applyFlags(cfg *config.Config, cmd *cli.Command) error {
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}
	if cmd.IsSet("host") {
		cfg.Target.Mode = config.ModeSSH
		cfg.Target.Host = cmd.String("host")
	}
	if cmd.IsSet("ssh-port") {
		cfg.Target.Port = int(cmd.Int("ssh-port"))
	}
	if cmd.IsSet("user") {
		cfg.Target.User = cmd.String("user")
	}
	if cmd.IsSet("key-file") {
		cfg.Target.KeyFile = cmd.String("key-file")
	}
	if cmd.IsSet("command-timeout") {
		cfg.CommandTimeout = cmd.Duration("command-timeout")
	}
	return cfg.Validate()
}

// withTimeout bounds ctx by the --timeout flag of cmd when it is positive.
func withTimeout(ctx context.Context, cmd *cli.Command) (context.Context, context.CancelFunc) {
	if d := cmd.Duration("timeout"); d > time.Duration(0) {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

func (a *app) versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			_, err := fmt.Fprintf(a.stdout, "%s %s\ncommit: %s\nbuilt:  %s\n", name, version, commit, date)
			return err
		},
	}
}
