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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Nyaadanbou/minecraft-versions/pkg/resolver"
	"github.com/Nyaadanbou/minecraft-versions/pkg/serializer"
)

// Flags are built per command: a cli.Flag records whether it was set, so
// one instance cannot be shared between commands.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output destination: file path, ConfigMap URI (cm://namespace/name), or stdout (default)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func catalogFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "catalog",
		Value: "nms",
		Usage: fmt.Sprintf("generation catalog (%s)", strings.Join(resolver.CatalogNames(), ", ")),
	}
}

func hostFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "host",
		Usage: "host source URI (offline, env:NAME, paper:PATH, jar:PATH, cm://ns/name[#key], ping://host[:port], or a version); comma-separated URIs are tried in order",
	}
}

// parseOutputFormat returns the Format named by --format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// outputFormat prefers an explicit --format over the config file.
func outputFormat(ctx context.Context, cmd *cli.Command) (serializer.Format, error) {
	if !cmd.IsSet("format") {
		return configFrom(ctx).OutputFormat(), nil
	}
	return parseOutputFormat(cmd)
}

func outputPath(ctx context.Context, cmd *cli.Command) string {
	if cmd.IsSet("output") {
		return cmd.String("output")
	}
	return configFrom(ctx).Output
}

// writeResult serializes data to --output in --format. Stdout goes through
// the command's writer.
func writeResult(ctx context.Context, cmd *cli.Command, data any) error {
	format, err := outputFormat(ctx, cmd)
	if err != nil {
		return err
	}

	var ser serializer.Serializer
	switch path := strings.TrimSpace(outputPath(ctx, cmd)); path {
	case "", "-":
		ser = serializer.NewWriter(format, writerOf(cmd))
	default:
		ser = serializer.NewFileWriterOrStdout(format, path)
	}
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, data)
}

// requireArgs returns exactly n positional arguments.
func requireArgs(cmd *cli.Command, n int, usage string) ([]string, error) {
	if cmd.NArg() != n {
		return nil, fmt.Errorf("%s: expected %d argument(s), got %d (usage: %s %s)",
			cmd.Name, n, cmd.NArg(), cmd.Name, usage)
	}
	return cmd.Args().Slice(), nil
}
