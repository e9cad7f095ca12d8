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

// Package echoroute registers pathcast templates on echo routers.
//
// It renders a [pathcast.Template] into echo's pattern syntax (":name"
// captures, a trailing "*" wildcard) and extracts capture values from an
// echo context under the template's own names.
package echoroute

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pathcast-dev/pathcast"
)

// Pattern renders the template into echo route syntax.
//
//	/users/{id}/files/{*path}  →  /users/:id/files/*
func Pattern(t *pathcast.Template) string {
	var b strings.Builder
	for _, seg := range t.Segments() {
		b.WriteByte('/')
		if seg.Static {
			b.WriteString(seg.Value)
		} else {
			b.WriteByte(':')
			b.WriteString(seg.Value)
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

// Handle registers a handler for the template on an echo instance.
func Handle(e *echo.Echo, method string, t *pathcast.Template, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return e.Add(method, Pattern(t), h, m...)
}

// Params extracts the template's capture values from an echo context.
// Echo exposes the wildcard match under the parameter name "*"; Params
// maps it back to the template's wildcard capture name.
func Params(c echo.Context, t *pathcast.Template) map[string]string {
	params := make(map[string]string, t.ParamCount())
	for _, name := range t.Captures() {
		params[name] = c.Param(name)
	}
	if name, ok := t.Wildcard(); ok {
		params[name] = c.Param("*")
	}
	return params
}
