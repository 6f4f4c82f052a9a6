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

// Package serializer renders reports as JSON, YAML or a FIELD/VALUE table
// and reads JSON or YAML input.
//
// Output destinations:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	if c, ok := w.(serializer.Closer); ok {
//	    defer c.Close()
//	}
//	err := w.Serialize(ctx, report)
//
// path may be empty (stdout), a file, or cm://namespace/name, which
// applies a ConfigMap holding the report (see ConfigMapWriter).
//
// Table output flattens nested fields into dotted keys named after their
// json tags (package.name, nms.obcPrefix); values with a MarshalText
// method, such as versions, occupy a single cell.
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, report)
//
// Input:
//
//	cfg, err := serializer.FromFile[config.File]("mcver.yaml")
package serializer
