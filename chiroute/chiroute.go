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

// Package chiroute registers pathcast templates on chi routers.
//
// It renders a [pathcast.Template] into chi's pattern syntax ("{name}"
// captures, a trailing "*" wildcard) and extracts capture values from a
// request under the template's own names.
package chiroute

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pathcast-dev/pathcast"
)

// Pattern renders the template into chi route syntax.
//
//	/users/{id}/files/{*path}  →  /users/{id}/files/*
func Pattern(t *pathcast.Template) string {
	var b strings.Builder
	for _, seg := range t.Segments() {
		b.WriteByte('/')
		if seg.Static {
			b.WriteString(seg.Value)
		} else {
			b.WriteByte('{')
			b.WriteString(seg.Value)
			b.WriteByte('}')
		}
	}
	if _, ok := t.Wildcard(); ok {
		b.WriteString("/*")
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// Handle registers a handler for the template on a chi router.
func Handle(r chi.Router, method string, t *pathcast.Template, h http.HandlerFunc) {
	r.Method(method, Pattern(t), h)
}

// Params extracts the template's capture values from a routed request.
// Chi exposes the wildcard match under the parameter name "*"; Params
// maps it back to the template's wildcard capture name.
func Params(r *http.Request, t *pathcast.Template) map[string]string {
	params := make(map[string]string, t.ParamCount())
	for _, name := range t.Captures() {
		params[name] = chi.URLParam(r, name)
	}
	if name, ok := t.Wildcard(); ok {
		params[name] = chi.URLParam(r, "*")
	}
	return params
}
