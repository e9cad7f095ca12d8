// Copyright 2026 The Pathcast Authors
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

// Package pathcast parses dynamic URL path templates and interpolates
// structured values into them.
//
// A template mixes static segments, named captures, and an optional
// trailing wildcard capture:
//
//	/users/{id}/files/{*path}
//
// The same parsed [Template] drives both sides of an HTTP contract: a
// client serializes call arguments into a concrete, percent-encoded
// request path, and a server renders the identical template into its
// router's native pattern syntax (see the ginroute, echoroute, and
// chiroute subpackages). Because both directions read one template,
// client paths and server routes cannot drift apart.
//
// # Key Features
//
//   - Template parsing with strict validation of captures, wildcards,
//     and static URL path characters
//   - Value interpolation from scalars, tuples, flat structs, maps, and
//     wildcard sequences, driven by reflection with cached struct metadata
//   - Aggressive percent-encoding: every scalar is encoded with the
//     reserved set "non-alphanumeric except '-' and '_'", so any input
//     yields a valid URL path
//   - Process-wide template cache for generated code ([Cached])
//   - Optional OpenTelemetry metrics ([Instrument])
//
// # Quick Start
//
//	t, err := pathcast.Parse("/users/{id}/files/{*path}")
//	if err != nil {
//	    // malformed pattern: fail the build, not the request
//	}
//
//	path, err := pathcast.Serialize(t, pathcast.Tuple{42, []string{"docs", "a.txt"}})
//	// path == "/users/42/files/docs/a%2Etxt"
//
// Struct and map inputs assign captures by name instead of position:
//
//	type FileArgs struct {
//	    ID    int      `path:"id"`
//	    Parts []string `path:"path"`
//	}
//	path, err = pathcast.Serialize(t, FileArgs{ID: 42, Parts: []string{"docs"}})
//
// # Construction Pattern
//
// Templates are parsed once, usually at process start from generated
// pattern literals, and shared by reference afterward; a Template is
// immutable and safe for concurrent use. The ephemeral [Serializer] is
// created per conversion (or reused serially) and is not safe for
// concurrent use. [Parse] returns an error for build-time validation;
// [MustParse] panics and is meant for literals in variable declarations.
package pathcast
