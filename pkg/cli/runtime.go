// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

	"github.com/urfave/cli/v3"

	"github.com/Nyaadanbou/minecraft-versions/pkg/api"
	"github.com/Nyaadanbou/minecraft-versions/pkg/defaults"
	"github.com/Nyaadanbou/minecraft-versions/pkg/host"
	"github.com/Nyaadanbou/minecraft-versions/pkg/resolver"
)

func runtimeCmd() *cli.Command {
	return &cli.Command{
		Name:  "runtime",
		Usage: "Ask the host for its version and show its generations",
		Description: `Query the configured host source once. When the host is unavailable
the newest known version is reported with fallback set.

Publish the result for other processes to read with cm:// hosts:

  mcver runtime --host ping://mc.example.com --output cm://minecraft/mc-version`,
		Flags: []cli.Flag{hostFlag(), outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			h, err := hostFrom(ctx, cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.HostQueryTimeout)
			defer cancel()

			res, err := resolver.Resolve(ctx, h)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, res.Report())
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the resolution API over HTTP",
		Flags: []cli.Flag{
			hostFlag(),
			&cli.IntFlag{
				Name:  "port",
				Usage: "listen port; overrides the config file and PORT",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := *configFrom(ctx)
			if cmd.IsSet("host") {
				cfg.Host = cmd.String("host")
			}
			if cmd.IsSet("port") {
				cfg.Server.Port = int(cmd.Int("port"))
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return api.Serve(ctx, &cfg)
		},
	}
}

// hostFrom prefers --host over the configured host source.
func hostFrom(ctx context.Context, cmd *cli.Command) (host.Host, error) {
	uri := configFrom(ctx).Host
	if cmd.IsSet("host") {
		uri = cmd.String("host")
	}
	h, err := host.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("runtime: %w", err)
	}
	return h, nil
}
