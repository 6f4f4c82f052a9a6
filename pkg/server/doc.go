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

// Package server provides the HTTP scaffolding for the version resolution
// API: routing, a middleware chain, structured error responses, Prometheus
// metrics, health probes and graceful shutdown.
//
// API routes are supplied by the caller and each one runs behind the same
// chain:
//
//	metrics -> version negotiation -> request ID -> panic recovery ->
//	rate limit -> handler timeout -> logging -> handler
//
// The system routes /health, /ready and /metrics bypass the chain. When no
// handler is registered for "/", a default root handler lists the routes.
//
// Usage:
//
//	s := server.New(
//	    server.WithName("mcverd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/resolve": handleResolve,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig applies defaults from pkg/defaults, then the PORT and
// SHUTDOWN_TIMEOUT_SECONDS environment variables. A Config passed through
// WithConfig replaces it wholesale.
//
// # Errors
//
// Handlers report failures with WriteErrorFromErr. A StructuredError in the
// chain selects the HTTP status via HTTPStatusFromCode:
//
//	INVALID_REQUEST, INVALID_ARGUMENT  400
//	NOT_FOUND                          404
//	METHOD_NOT_ALLOWED                 405
//	CONFLICT                           409
//	RATE_LIMIT_EXCEEDED                429
//	SERVICE_UNAVAILABLE                503
//	TIMEOUT                            504
//	anything else                      500
//
// # API Versioning
//
// Clients may request a version with Accept: application/vnd.mcver.v1+json.
// The negotiated version is echoed in X-API-Version.
package server
