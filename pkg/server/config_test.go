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

package server

import (
	"testing"
	"time"

	"github.com/Nyaadanbou/minecraft-versions/pkg/defaults"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		t.Setenv(EnvPort, "")
		t.Setenv(EnvShutdownTimeout, "")

		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != defaults.ServerPort {
			t.Errorf("expected port %d, got %d", defaults.ServerPort, cfg.Port)
		}
		if cfg.RateLimit != defaults.ServerRateLimit {
			t.Errorf("expected rate limit %d, got %v", defaults.ServerRateLimit, cfg.RateLimit)
		}
		if cfg.RateLimitBurst != defaults.ServerRateLimitBurst {
			t.Errorf("expected rate limit burst %d, got %d", defaults.ServerRateLimitBurst, cfg.RateLimitBurst)
		}
		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("expected read timeout 10s, got %v", cfg.ReadTimeout)
		}
		if cfg.ReadHeaderTimeout != 5*time.Second {
			t.Errorf("expected read header timeout 5s, got %v", cfg.ReadHeaderTimeout)
		}
		if cfg.WriteTimeout != 30*time.Second {
			t.Errorf("expected write timeout 30s, got %v", cfg.WriteTimeout)
		}
		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("expected idle timeout 120s, got %v", cfg.IdleTimeout)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("custom port from environment", func(t *testing.T) {
		t.Setenv(EnvPort, "9090")

		if cfg := parseConfig(); cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
	})

	for _, bad := range []string{"invalid", "0", "-1", "70000"} {
		t.Run("invalid port "+bad+" uses default", func(t *testing.T) {
			t.Setenv(EnvPort, bad)

			if cfg := parseConfig(); cfg.Port != defaults.ServerPort {
				t.Errorf("expected default port for %q, got %d", bad, cfg.Port)
			}
		})
	}

	t.Run("shutdown timeout from environment", func(t *testing.T) {
		t.Setenv(EnvShutdownTimeout, "45")

		if cfg := parseConfig(); cfg.ShutdownTimeout != 45*time.Second {
			t.Errorf("expected 45s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("non-positive shutdown timeout ignored", func(t *testing.T) {
		t.Setenv(EnvShutdownTimeout, "0")

		if cfg := parseConfig(); cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
			t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
		}
	})
}
