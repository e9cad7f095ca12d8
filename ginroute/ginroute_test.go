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

package ginroute_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathcast-dev/pathcast"
	"github.com/pathcast-dev/pathcast/ginroute"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		template string
		want     string
	}{
		{"/", "/"},
		{"/users", "/users"},
		{"/users/{id}", "/users/:id"},
		{"/users/{id}/posts/{pid}", "/users/:id/posts/:pid"},
		{"/users/{id}/files/{*path}", "/users/:id/files/*path"},
		{"/{*path}", "/*path"},
	}

	for _, tt := range tests {
		tmpl := pathcast.MustParse(tt.template)
		assert.Equal(t, tt.want, ginroute.Pattern(tmpl), "template %q", tt.template)
	}
}

func TestHandle_ExtractsParams(t *testing.T) {
	t.Parallel()

	tmpl := pathcast.MustParse("/users/{id}/files/{*path}")

	var got map[string]string
	r := gin.New()
	ginroute.Handle(r, http.MethodGet, tmpl, func(c *gin.Context) {
		got = ginroute.Params(c, tmpl)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/42/files/docs/a.txt", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, map[string]string{
		"id":   "42",
		"path": "docs/a.txt",
	}, got)
}

// Serialized client paths must land on the route registered from the
// same template, with the original values extracted on the server side.
func TestRoundTrip_SerializeThenRoute(t *testing.T) {
	t.Parallel()

	tmpl := pathcast.MustParse("/users/{id}/files/{*path}")

	var got map[string]string
	r := gin.New()
	ginroute.Handle(r, http.MethodGet, tmpl, func(c *gin.Context) {
		got = ginroute.Params(c, tmpl)
		c.Status(http.StatusNoContent)
	})

	path, err := pathcast.Serialize(tmpl, pathcast.Tuple{"my user", []string{"a b", "c.txt"}})
	require.NoError(t, err)
	require.Equal(t, "/users/my%20user/files/a%20b/c%2Etxt", path)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "my user", got["id"])
	assert.Equal(t, "a b/c.txt", got["path"])
}
