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

package resolver

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Nyaadanbou/minecraft-versions/pkg/defaults"
	"github.com/Nyaadanbou/minecraft-versions/pkg/errors"
	"github.com/Nyaadanbou/minecraft-versions/pkg/generation"
	"github.com/Nyaadanbou/minecraft-versions/pkg/host"
	"github.com/Nyaadanbou/minecraft-versions/pkg/minecraft"
	"github.com/Nyaadanbou/minecraft-versions/pkg/nmsversion"
	"github.com/Nyaadanbou/minecraft-versions/pkg/packageversion"
	"github.com/Nyaadanbou/minecraft-versions/pkg/version"
)

var (
	// ErrMalformedHostVersion is wrapped when the host reports a string
	// that is not a version.
	ErrMalformedHostVersion = stderrors.New("resolver: host reported a malformed version")

	// ErrAlreadyResolved is returned by SetHost and Init once the runtime
	// resolution has happened.
	ErrAlreadyResolved = stderrors.New("resolver: runtime version already resolved")
)

// Resolution is the outcome of asking a host for its version.
type Resolution struct {
	// Version is the parsed host version, or minecraft.Newest on fallback.
	Version version.Version
	// Reported is the raw string the host returned; empty on fallback.
	Reported string
	// Source describes the host that was asked.
	Source string
	// Fallback is true when the host was unavailable.
	Fallback bool
	// Package is the packageversion generation of Version.
	Package *generation.Generation
	// NMS is the nmsversion generation of Version.
	NMS *generation.Generation
}

// In returns the generation of the resolved version in c.
func (r *Resolution) In(c *generation.Catalog) *generation.Generation {
	return c.Lookup(r.Version)
}

func newResolution(v version.Version, reported, source string, fallback bool) *Resolution {
	r := &Resolution{
		Version:  v,
		Reported: reported,
		Source:   source,
		Fallback: fallback,
	}
	r.Package = r.In(packageversion.Catalog)
	r.NMS = r.In(nmsversion.Catalog)
	return r
}

// Resolve asks h for its version and looks it up in both catalogs.
//
// An unavailable host (nil, or an error wrapping host.ErrUnavailable)
// resolves to minecraft.Newest with Fallback set. Any other host error is
// returned with code SERVICE_UNAVAILABLE. A reported string that does not
// parse is returned as INTERNAL wrapping ErrMalformedHostVersion and the
// *version.ParseError.
func Resolve(ctx context.Context, h host.Host) (*Resolution, error) {
	if h == nil {
		h = host.Offline()
	}
	source := host.Describe(h)

	reported, err := h.ReportedVersion(ctx)
	if err != nil {
		if stderrors.Is(err, host.ErrUnavailable) {
			slog.Debug("host version unavailable, using newest known version",
				"host", source, "fallback", minecraft.NewestVersion, "reason", err)
			return newResolution(minecraft.Newest, "", source, true), nil
		}
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to query host version", err,
			map[string]any{"source": source})
	}

	v, err := version.Parse(reported)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal, "host reported a malformed version",
			fmt.Errorf("%w: %w", ErrMalformedHostVersion, err),
			map[string]any{"source": source, "reported": reported})
	}

	if !minecraft.IsKnown(v) {
		slog.Warn("host version is not a known minecraft version", "host", source, "minecraft", v.String())
	}
	return newResolution(v, reported, source, false), nil
}

// process-wide runtime resolution
var (
	mu          sync.Mutex
	runtimeHost host.Host = host.Offline()
	resolved    bool

	runtimeOnce       sync.Once
	runtimeResolution *Resolution
	runtimeErr        error
)

// SetHost selects the host the runtime resolution will ask. It must be
// called before the first Runtime, Init or MustRuntime call and returns
// ErrAlreadyResolved afterwards.
func SetHost(h host.Host) error {
	mu.Lock()
	defer mu.Unlock()
	if resolved {
		return ErrAlreadyResolved
	}
	runtimeHost = h
	return nil
}

// Init sets the host and performs the runtime resolution with ctx. It is
// meant to be called once at startup.
func Init(ctx context.Context, h host.Host) (*Resolution, error) {
	if err := SetHost(h); err != nil {
		return nil, err
	}
	return resolveRuntime(ctx)
}

// Runtime returns the process-wide resolution, resolving on first use
// with defaults.HostQueryTimeout. The result, success or error, is never
// recomputed.
func Runtime() (*Resolution, error) {
	return resolveRuntime(context.Background())
}

// MustRuntime is like Runtime but panics if the resolution failed.
func MustRuntime() *Resolution {
	r, err := Runtime()
	if err != nil {
		panic(fmt.Sprintf("resolver: runtime resolution failed: %v", err))
	}
	return r
}

func resolveRuntime(ctx context.Context) (*Resolution, error) {
	runtimeOnce.Do(func() {
		mu.Lock()
		resolved = true
		h := runtimeHost
		mu.Unlock()

		ctx, cancel := context.WithTimeout(ctx, defaults.HostQueryTimeout)
		defer cancel()

		runtimeResolution, runtimeErr = Resolve(ctx, h)
		if runtimeErr != nil {
			slog.Error("runtime version resolution failed", "error", runtimeErr)
			return
		}
		slog.Info("resolved runtime version",
			"minecraft", runtimeResolution.Version.String(),
			"host", runtimeResolution.Source,
			"fallback", runtimeResolution.Fallback,
			"package", runtimeResolution.Package.Name(),
			"nms", runtimeResolution.NMS.Name(),
		)
	})
	return runtimeResolution, runtimeErr
}
