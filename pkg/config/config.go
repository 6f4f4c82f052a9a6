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

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Nyaadanbou/minecraft-versions/pkg/defaults"
	"github.com/Nyaadanbou/minecraft-versions/pkg/errors"
	"github.com/Nyaadanbou/minecraft-versions/pkg/host"
	"github.com/Nyaadanbou/minecraft-versions/pkg/logging"
	"github.com/Nyaadanbou/minecraft-versions/pkg/serializer"
	"github.com/Nyaadanbou/minecraft-versions/pkg/server"
	"golang.org/x/time/rate"
)

const (
	// EnvConfig names the config file when --config is not given.
	EnvConfig = "MCVER_CONFIG"

	// EnvHost overrides the host source URI.
	EnvHost = "MCVER_HOST"
)

// Duration is a time.Duration written as "30s" in both YAML and JSON.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Server holds the listener settings of mcverd.
type Server struct {
	Address         string   `json:"address,omitempty" yaml:"address,omitempty"`
	Port            int      `json:"port,omitempty" yaml:"port,omitempty"`
	RateLimit       float64  `json:"rateLimit,omitempty" yaml:"rateLimit,omitempty"`
	RateLimitBurst  int      `json:"rateLimitBurst,omitempty" yaml:"rateLimitBurst,omitempty"`
	ShutdownTimeout Duration `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`
}

// Config is the mcver configuration file. Zero fields keep their defaults.
//
//	host: env:MC_VERSION,paper:/srv/minecraft/version_history.json
//	logLevel: info
//	format: yaml
//	server:
//	  port: 8080
//	  rateLimit: 100
//	  shutdownTimeout: 30s
type Config struct {
	Host     string `json:"host,omitempty" yaml:"host,omitempty"`
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	Format   string `json:"format,omitempty" yaml:"format,omitempty"`
	Output   string `json:"output,omitempty" yaml:"output,omitempty"`
	Server   Server `json:"server" yaml:"server"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Host:     host.SchemeOffline,
		LogLevel: "info",
		Format:   string(serializer.FormatYAML),
		Server: Server{
			Port:            defaults.ServerPort,
			RateLimit:       defaults.ServerRateLimit,
			RateLimitBurst:  defaults.ServerRateLimitBurst,
			ShutdownTimeout: Duration(defaults.ServerShutdownTimeout),
		},
	}
}

// Load layers defaults, the file at path (if any) and environment overrides,
// then validates the result. An empty path falls back to MCVER_CONFIG.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		file, err := serializer.FromFile[Config](path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("failed to load config %q", path), err)
		}
		cfg.merge(file)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Host != "" {
		c.Host = o.Host
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Server.Address != "" {
		c.Server.Address = o.Server.Address
	}
	if o.Server.Port != 0 {
		c.Server.Port = o.Server.Port
	}
	if o.Server.RateLimit != 0 {
		c.Server.RateLimit = o.Server.RateLimit
	}
	if o.Server.RateLimitBurst != 0 {
		c.Server.RateLimitBurst = o.Server.RateLimitBurst
	}
	if o.Server.ShutdownTimeout != 0 {
		c.Server.ShutdownTimeout = o.Server.ShutdownTimeout
	}
}

// applyEnv overrides file values with MCVER_HOST, LOG_LEVEL, PORT and
// SHUTDOWN_TIMEOUT_SECONDS. Unparsable numbers are ignored, as the server
// does.
func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvHost)); v != "" {
		c.Host = v
	}
	if v := strings.TrimSpace(os.Getenv(logging.EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if port, err := strconv.Atoi(os.Getenv(server.EnvPort)); err == nil && port > 0 {
		c.Server.Port = port
	}
	if seconds, err := strconv.Atoi(os.Getenv(server.EnvShutdownTimeout)); err == nil && seconds > 0 {
		c.Server.ShutdownTimeout = Duration(time.Duration(seconds) * time.Second)
	}
}

// Validate checks every field that can be checked without I/O.
func (c *Config) Validate() error {
	if _, err := serializer.ParseFormat(c.Format); err != nil {
		return invalid("format", c.Format, err)
	}
	if _, err := host.Parse(c.Host); err != nil {
		return invalid("host", c.Host, err)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return invalid("logLevel", c.LogLevel, nil)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return invalid("server.port", strconv.Itoa(c.Server.Port), nil)
	}
	if c.Server.RateLimit <= 0 {
		return invalid("server.rateLimit", strconv.FormatFloat(c.Server.RateLimit, 'g', -1, 64), nil)
	}
	if c.Server.RateLimitBurst < 1 {
		return invalid("server.rateLimitBurst", strconv.Itoa(c.Server.RateLimitBurst), nil)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return invalid("server.shutdownTimeout", time.Duration(c.Server.ShutdownTimeout).String(), nil)
	}
	return nil
}

func invalid(field, value string, cause error) error {
	msg := fmt.Sprintf("invalid config %s %q", field, value)
	ctx := map[string]any{"field": field}
	if cause != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest, msg, cause, ctx)
	}
	return errors.NewWithContext(errors.ErrCodeInvalidRequest, msg, ctx)
}

// HostSource parses Host into a host.Host.
func (c *Config) HostSource() (host.Host, error) {
	return host.Parse(c.Host)
}

// OutputFormat returns the parsed Format.
func (c *Config) OutputFormat() serializer.Format {
	f, err := serializer.ParseFormat(c.Format)
	if err != nil {
		return serializer.FormatYAML
	}
	return f
}

// ServerConfig builds the HTTP server configuration.
func (c *Config) ServerConfig(name, version string) *server.Config {
	sc := server.NewConfig()
	sc.Name = name
	sc.Version = version
	sc.Address = c.Server.Address
	sc.Port = c.Server.Port
	sc.RateLimit = rate.Limit(c.Server.RateLimit)
	sc.RateLimitBurst = c.Server.RateLimitBurst
	sc.ShutdownTimeout = time.Duration(c.Server.ShutdownTimeout)
	return sc
}
