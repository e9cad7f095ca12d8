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

package pathcast

import (
	"maps"
	"sync"
	"sync/atomic"
)

var (
	// RCU pattern: atomic pointer to immutable map, copy-on-write updates.
	// Templates are parsed from a small fixed set of generated literals, so
	// the map only ever grows.
	templateCachePtr atomic.Pointer[map[string]*Template]

	// Write-side lock (only for cache updates).
	templateCacheMu sync.Mutex
)

func init() {
	m := make(map[string]*Template)
	templateCachePtr.Store(&m)
}

// Cached returns the process-wide shared Template for the pattern,
// parsing it on first use. Repeated calls with the same pattern return
// the same *Template, so per-call code (generated request builders,
// route registration) can use pattern literals without re-parsing.
//
// Parse failures are returned and not cached. Safe for concurrent use.
func Cached(pattern string) (*Template, error) {
	m := templateCachePtr.Load()
	if t, ok := (*m)[pattern]; ok {
		return t, nil
	}

	templateCacheMu.Lock()
	defer templateCacheMu.Unlock()

	// Double-check: another goroutine might have parsed it.
	m = templateCachePtr.Load()
	if t, ok := (*m)[pattern]; ok {
		return t, nil
	}

	t, err := Parse(pattern)
	if err != nil {
		return nil, err
	}

	next := make(map[string]*Template, len(*m)+1)
	maps.Copy(next, *m)
	next[pattern] = t
	templateCachePtr.Store(&next)
	return t, nil
}
