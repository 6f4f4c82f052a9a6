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

package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Nyaadanbou/minecraft-versions/pkg/defaults"
	"github.com/Nyaadanbou/minecraft-versions/pkg/errors"
	"github.com/Nyaadanbou/minecraft-versions/pkg/resolver"
	"github.com/Nyaadanbou/minecraft-versions/pkg/serializer"
	"github.com/Nyaadanbou/minecraft-versions/pkg/server"
)

// API routes.
const (
	RouteVersions    = "/v1/versions"
	RouteResolve     = "/v1/resolve"
	RouteCompare     = "/v1/compare"
	RouteGenerations = "/v1/generations"
	RouteOrder       = "/v1/order"
	RouteClass       = "/v1/class"
	RouteRuntime     = "/v1/runtime"
)

// Handler serves the resolution API.
type Handler struct {
	runtime func() (*resolver.Resolution, error)
}

// NewHandler returns a Handler reporting the process-wide runtime resolution.
func NewHandler() *Handler {
	return &Handler{runtime: resolver.Runtime}
}

// Routes returns the API routes for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RouteVersions:    h.HandleVersions,
		RouteResolve:     h.HandleResolve,
		RouteCompare:     h.HandleCompare,
		RouteGenerations: h.HandleGenerations,
		RouteOrder:       h.HandleOrder,
		RouteClass:       h.HandleClass,
		RouteRuntime:     h.HandleRuntime,
	}
}

// HandleVersions handles GET /v1/versions: every known version with its
// generations.
func (h *Handler) HandleVersions(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	respondCached(w, resolver.KnownVersions())
}

// HandleResolve handles GET /v1/resolve?version=.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	raw, ok := requireParams(w, r, "version")
	if !ok {
		return
	}

	v, err := resolver.ParseVersion(raw[0])
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid version", nil)
		return
	}

	rep := resolver.Describe(v)
	recordLookup(rep)
	slog.Debug("resolved version", "minecraft", rep.Version, "package", rep.Package.Name, "nms", rep.NMS.Name)

	respondCached(w, rep)
}

// HandleCompare handles GET /v1/compare?a=&b=.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	p, ok := requireParams(w, r, "a", "b")
	if !ok {
		return
	}

	c, err := resolver.CompareVersions(p[0], p[1])
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid version", nil)
		return
	}
	respondCached(w, c)
}

// HandleGenerations handles GET /v1/generations[?catalog=]. Without a
// catalog every catalog is returned, keyed by name.
func (h *Handler) HandleGenerations(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("catalog"))
	if name == "" {
		respondCached(w, resolver.DescribeAll())
		return
	}

	c, err := resolver.LookupCatalog(name)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Unknown catalog", nil)
		return
	}
	respondCached(w, resolver.DescribeCatalog(c))
}

// HandleOrder handles GET /v1/order?catalog=&a=&b=. a and b are generation
// names or versions.
func (h *Handler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	p, ok := requireParams(w, r, "catalog", "a", "b")
	if !ok {
		return
	}

	rep, err := resolver.Order(p[0], p[1], p[2])
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to order generations", nil)
		return
	}
	respondCached(w, rep)
}

// ClassResponse is the body of GET /v1/class.
type ClassResponse struct {
	Catalog    string `json:"catalog"`
	Generation string `json:"generation"`
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	Class      string `json:"class"`
}

// HandleClass handles GET /v1/class?catalog=&generation=&name=[&kind=nms|obc].
func (h *Handler) HandleClass(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	p, ok := requireParams(w, r, "catalog", "generation", "name")
	if !ok {
		return
	}
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = resolver.ClassKindNMS
	}

	fqn, err := resolver.ClassName(p[0], p[1], kind, p[2])
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to build class name", nil)
		return
	}
	respondCached(w, ClassResponse{
		Catalog:    p[0],
		Generation: p[1],
		Kind:       strings.ToLower(kind),
		Name:       p[2],
		Class:      fqn,
	})
}

// HandleRuntime handles GET /v1/runtime: the version the host reported at
// startup and its generations.
func (h *Handler) HandleRuntime(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	res, err := h.runtime()
	if err != nil {
		// resolution runs once per process; the same error is returned on every request
		server.WritePermanentErrorFromErr(w, r, err, "Runtime version unavailable", nil)
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	serializer.RespondJSON(w, http.StatusOK, res.Report())
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{http.MethodGet},
		})
	return false
}

// requireParams returns the trimmed values of the named query parameters,
// writing a 400 naming every missing one.
func requireParams(w http.ResponseWriter, r *http.Request, names ...string) ([]string, bool) {
	q := r.URL.Query()
	values := make([]string, len(names))
	var missing []string
	for i, n := range names {
		values[i] = strings.TrimSpace(q.Get(n))
		if values[i] == "" {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			fmt.Sprintf("missing query parameter: %s", strings.Join(missing, ", ")), false,
			map[string]any{"missing": missing})
		return nil, false
	}
	return values, true
}

// respondCached writes data with a Cache-Control header; the registry and
// catalogs are compiled in, so these answers never change for a build.
func respondCached(w http.ResponseWriter, data any) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.CatalogCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, data)
}
