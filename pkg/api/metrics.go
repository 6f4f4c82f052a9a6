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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Nyaadanbou/minecraft-versions/pkg/resolver"
)

var (
	lookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcver_generation_lookups_total",
			Help: "Total number of version to generation lookups served, by catalog and generation",
		},
		[]string{"catalog", "generation"},
	)

	runtimeInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mcver_runtime_info",
			Help: "Resolved runtime version of the host; the value is always 1",
		},
		[]string{"version", "package", "nms", "fallback"},
	)
)

func recordLookup(rep resolver.Report) {
	lookupsTotal.WithLabelValues(rep.Package.Catalog, rep.Package.Name).Inc()
	lookupsTotal.WithLabelValues(rep.NMS.Catalog, rep.NMS.Name).Inc()
}

func recordRuntime(res *resolver.Resolution) {
	fallback := "false"
	if res.Fallback {
		fallback = "true"
	}
	runtimeInfo.Reset()
	runtimeInfo.WithLabelValues(res.Version.String(), res.Package.Name(), res.NMS.Name(), fallback).Set(1)
}
