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

	"github.com/Nyaadanbou/minecraft-versions/pkg/resolver"
)

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Show the generations of a version in every catalog",
		ArgsUsage: "VERSION",
		Description: `Look up a version in both catalogs. Only versions a generation declares
resolve to it; any other version resolves to NONE.`,
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
			return writeResult(ctx, cmd, resolver.Describe(v))
		},
	}
}

func generationsCmd() *cli.Command {
	return &cli.Command{
		Name:  "generations",
		Usage: "List the generations of one or all catalogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "only list this catalog",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.String("catalog")
			if name == "" {
				return writeResult(ctx, cmd, resolver.DescribeAll())
			}
			c, err := resolver.LookupCatalog(name)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, resolver.DescribeCatalog(c))
		},
	}
}

func orderCmd() *cli.Command {
	return &cli.Command{
		Name:      "order",
		Usage:     "Order two generations of a catalog",
		ArgsUsage: "A B",
		Description: `A and B are generation names (v1_20_R3) or versions (1.20.4). Ordering
fails when either side is NONE or names a version no generation declares.`,
		Flags: []cli.Flag{catalogFlag(), outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, 2, "A B")
			if err != nil {
				return err
			}
			rep, err := resolver.Order(cmd.String("catalog"), args[0], args[1])
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, rep)
		},
	}
}

func classCmd() *cli.Command {
	return &cli.Command{
		Name:      "class",
		Usage:     "Print the fully qualified name of a server class for a generation",
		ArgsUsage: "NAME",
		Description: `Prefix NAME with the NMS or OBC package of a generation:

  mcver class --generation v1_20_R3 --obc entity.CraftPlayer
  org.bukkit.craftbukkit.v1_20_R3.entity.CraftPlayer`,
		Flags: []cli.Flag{
			catalogFlag(),
			&cli.StringFlag{
				Name:     "generation",
				Aliases:  []string{"g"},
				Required: true,
				Usage:    "generation name or version",
			},
			&cli.BoolFlag{
				Name:  "nms",
				Usage: "use the NMS package (default)",
			},
			&cli.BoolFlag{
				Name:  "obc",
				Usage: "use the CraftBukkit package",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, 1, "NAME")
			if err != nil {
				return err
			}
			if cmd.Bool("nms") && cmd.Bool("obc") {
				return fmt.Errorf("class: --nms and --obc are mutually exclusive")
			}
			kind := resolver.ClassKindNMS
			if cmd.Bool("obc") {
				kind = resolver.ClassKindOBC
			}

			fqn, err := resolver.ClassName(cmd.String("catalog"), cmd.String("generation"), kind, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(writerOf(cmd), fqn)
			return err
		},
	}
}
