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
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"

	"github.com/Nyaadanbou/minecraft-versions/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{name: "valid yaml format", format: "yaml", wantFormat: serializer.FormatYAML},
		{name: "valid json format", format: "json", wantFormat: serializer.FormatJSON},
		{name: "valid table format", format: "table", wantFormat: serializer.FormatTable},
		{name: "upper case", format: "JSON", wantFormat: serializer.FormatJSON},
		{name: "invalid format xml", format: "xml", wantErr: true},
		{name: "invalid format csv", format: "csv", wantErr: true},
		{name: "empty format", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestOutputFormatFallsBackToConfig(t *testing.T) {
	cfg := configFrom(context.Background())
	cfg.Format = string(serializer.FormatJSON)
	ctx := withConfig(context.Background(), cfg)

	cmd := &cli.Command{
		Flags: []cli.Flag{formatFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			got, err := outputFormat(ctx, c)
			assert.NoError(t, err)
			assert.Equal(t, serializer.FormatJSON, got)
			return nil
		},
	}
	assert.NoError(t, cmd.Run(ctx, []string{"test"}))
}

func TestRequireArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		n       int
		wantErr bool
	}{
		{"exact", []string{"test", "a", "b"}, 2, false},
		{"missing", []string{"test", "a"}, 2, true},
		{"extra", []string{"test", "a", "b", "c"}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Name: "test",
				Action: func(_ context.Context, c *cli.Command) error {
					_, err := requireArgs(c, tt.n, "A B")
					return err
				},
			}
			err := cmd.Run(context.Background(), tt.args)
			if tt.wantErr {
				assert.ErrorContains(t, err, "usage: test A B")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCommandLister(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cli.Command{
		Name:   "root",
		Writer: &buf,
		Commands: []*cli.Command{
			{Name: "visible"},
			{Name: "hidden", Hidden: true},
		},
	}

	commandLister(context.Background(), cmd)
	assert.Equal(t, "visible\n", buf.String())

	assert.NotPanics(t, func() { commandLister(context.Background(), nil) })
}
