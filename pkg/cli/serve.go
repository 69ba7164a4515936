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

	"github.com/urfave/cli/v3"

	"github.com/aixops/aixfacts/pkg/api"
)

func (a *app) serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve facts over HTTP",
		Description: `Start the fact service. Facts are collected from the configured target
on each request; concurrent identical requests share one collection.

  GET /v1/facts[?fact=a,b][&format=json|yaml|table]
  GET /v1/facts/{name}
  GET /health, /ready, /metrics`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen address",
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "listen port",
				Sources: cli.EnvVars("PORT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			if cmd.IsSet("address") {
				a.cfg.Server.Address = cmd.String("address")
			}
			if cmd.IsSet("port") {
				a.cfg.Server.Port = int(cmd.Int("port"))
			}
			return api.Run(ctx, a.cfg)
		},
	}
}
