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

	"github.com/urfave/cli/v3"

	"github.com/Nyaadanbou/minecraft-versions/pkg/minecraft"
	"github.com/Nyaadanbou/minecraft-versions/pkg/resolver"
)

// ParsedVersion is the output of the parse command.
type ParsedVersion struct {
	Input      string `json:"input" yaml:"input"`
	Version    string `json:"version" yaml:"version"`
	Key        string `json:"key" yaml:"key"`
	Components []int  `json:"components" yaml:"components"`
	Known      bool   `json:"known" yaml:"known"`
	Symbol     string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
}

func versionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "versions",
		Usage: "List the known Minecraft versions and their generations",
		Flags: []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeResult(ctx, cmd, resolver.KnownVersions())
		},
	}
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a version string",
		ArgsUsage: "VERSION",
		Description: `Parse a dotted version such as 1.20.4 or a registry symbol such as
v1_20_4. Components must be non-negative integers; 1.21 and 1.21.0 share
the same key.`,
		Flags: []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, 1, "VERSION")
			if err != nil {
				return err
			}
			v, err := resolver.ParseVersion(args[0])
			if err != nil {
				return err
			}

			out := ParsedVersion{
				Input:      args[0],
				Version:    v.String(),
				Key:        v.Key(),
				Components: v.Components(),
				Known:      minecraft.IsKnown(v),
			}
			if out.Known {
				out.Symbol = minecraft.Symbol(v)
			}
			return writeResult(ctx, cmd, out)
		},
	}
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two versions",
		ArgsUsage: "A B",
		Flags:     []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, 2, "A B")
			if err != nil {
				return err
			}
			c, err := resolver.CompareVersions(args[0], args[1])
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, c)
		},
	}
}
