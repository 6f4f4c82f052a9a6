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

package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ErrUnavailable is returned (possibly wrapped) by a Host that cannot
// report a version at all: no server is running, the file or ConfigMap
// does not exist, the variable is unset. Callers treat it as "no host"
// and fall back to the newest known version.
var ErrUnavailable = errors.New("host: version unavailable")

// Host reports the version string of the running Minecraft server.
//
// The returned string is passed to version.Parse as is; a source that
// reads branded text (e.g. "git-Paper-496 (MC: 1.20.4)") extracts the
// dotted version first.
type Host interface {
	ReportedVersion(ctx context.Context) (string, error)
}

// Func adapts a function to the Host interface.
type Func func(ctx context.Context) (string, error)

// ReportedVersion calls f(ctx).
func (f Func) ReportedVersion(ctx context.Context) (string, error) {
	return f(ctx)
}

type offline struct{}

func (offline) ReportedVersion(context.Context) (string, error) {
	return "", ErrUnavailable
}

func (offline) String() string { return "offline" }

// Offline returns a Host that never reports a version. It stands for
// tests and tooling that run without a server.
func Offline() Host {
	return offline{}
}

type static string

func (s static) ReportedVersion(context.Context) (string, error) {
	if s == "" {
		return "", ErrUnavailable
	}
	return extractOrRaw(string(s)), nil
}

func (s static) String() string { return "static:" + string(s) }

// Static returns a Host that always reports s, reduced to its Minecraft
// version when s is a branded string such as "Paper 1.20.4". An empty s
// is unavailable.
func Static(s string) Host {
	return static(strings.TrimSpace(s))
}

type env string

func (e env) ReportedVersion(context.Context) (string, error) {
	v, ok := os.LookupEnv(string(e))
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: environment variable %s is not set", ErrUnavailable, string(e))
	}
	return extractOrRaw(v), nil
}

func (e env) String() string { return "env:" + string(e) }

// Env returns a Host that reads the version from the environment
// variable name, accepting branded values like Static. Unset or blank is
// unavailable.
func Env(name string) Host {
	return env(name)
}

type chain []Host

func (c chain) ReportedVersion(ctx context.Context) (string, error) {
	for _, h := range c {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		v, err := h.ReportedVersion(ctx)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrUnavailable) {
			return "", err
		}
		slog.Debug("host source unavailable, trying next", "host", Describe(h), "error", err)
	}
	return "", fmt.Errorf("%w: no source in chain reported a version", ErrUnavailable)
}

func (c chain) String() string {
	names := make([]string, 0, len(c))
	for _, h := range c {
		names = append(names, Describe(h))
	}
	return strings.Join(names, ",")
}

// Chain returns a Host that asks each source in turn and reports the
// first version found. A source error other than ErrUnavailable stops the
// chain. Nil sources are skipped.
func Chain(hosts ...Host) Host {
	c := make(chain, 0, len(hosts))
	for _, h := range hosts {
		if h != nil {
			c = append(c, h)
		}
	}
	return c
}

// Describe returns a short human-readable name for h, used in logs and
// resolution reports.
func Describe(h Host) string {
	if h == nil {
		return "offline"
	}
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", h)
}
