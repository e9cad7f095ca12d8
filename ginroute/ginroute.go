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

// Package ginroute registers pathcast templates on gin routers.
//
// It renders a [pathcast.Template] into gin's pattern syntax (":name"
// captures, a trailing "*name" wildcard) and extracts capture values from
// a request context under the template's own names, so server handlers
// and generated clients agree on one pattern source.
package ginroute

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pathcast-dev/pathcast"
)

// Pattern renders the template into gin route syntax.
//
//	/users/{id}/files/{*path}  →  /users/:id/files/*path
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
	if name, ok := t.Wildcard(); ok {
		b.WriteString("/*")
		b.WriteString(name)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// Handle registers handlers for the template on a gin router.
func Handle(r gin.IRoutes, method string, t *pathcast.Template, handlers ...gin.HandlerFunc) gin.IRoutes {
	return r.Handle(method, Pattern(t), handlers...)
}

// Params extracts the template's capture values from a request context.
// The wildcard value is returned without gin's leading slash, so it holds
// the joined trailing components ("a/b/c", or "" when none matched).
func Params(c *gin.Context, t *pathcast.Template) map[string]string {
	params := make(map[string]string, t.ParamCount())
	for _, name := range t.Captures() {
		params[name] = c.Param(name)
	}
	if name, ok := t.Wildcard(); ok {
		params[name] = strings.TrimPrefix(c.Param(name), "/")
	}
	return params
}
