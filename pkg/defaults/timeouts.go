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

package defaults

import "time"

// Host timeouts for querying the running server's reported version.
const (
	// HostQueryTimeout bounds a single runtime resolution, including every
	// source of a host chain.
	HostQueryTimeout = 15 * time.Second

	// PingTimeout is the default deadline for a server list ping round trip.
	PingTimeout = 5 * time.Second

	// ConfigMapReadTimeout is the timeout for reading a version ConfigMap.
	ConfigMapReadTimeout = 10 * time.Second
)

// ConfigMapWriteTimeout is the timeout for publishing a report to a ConfigMap.
const ConfigMapWriteTimeout = 30 * time.Second

// Handler timeouts for HTTP request processing.
const (
	// HandlerTimeout is the timeout for resolution API requests.
	HandlerTimeout = 10 * time.Second

	// CatalogCacheTTL is the Cache-Control max-age of responses computed
	// only from the built-in registry and catalogs.
	CatalogCacheTTL = 1 * time.Hour
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server limits.
const (
	// ServerPort is the listen port when PORT is unset.
	ServerPort = 8080

	// ServerRateLimit is the sustained request rate in requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket size.
	ServerRateLimitBurst = 200
)
