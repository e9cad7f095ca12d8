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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached_ReturnsSharedTemplate(t *testing.T) {
	t.Parallel()

	first, err := Cached("/cache-test/{id}")
	require.NoError(t, err)

	second, err := Cached("/cache-test/{id}")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestCached_ParseError(t *testing.T) {
	t.Parallel()

	_, err := Cached("/cache-test/{broken")
	assert.ErrorIs(t, err, ErrUnclosedCapture)

	// Errors are not cached; the same pattern keeps failing consistently.
	_, err = Cached("/cache-test/{broken")
	assert.ErrorIs(t, err, ErrUnclosedCapture)
}

func TestCached_Concurrent(t *testing.T) {
	t.Parallel()

	const goroutines = 16

	var wg sync.WaitGroup
	results := make([]*Template, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tmpl, err := Cached("/cache-concurrent/{a}/{*b}")
			assert.NoError(t, err)
			results[i] = tmpl
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}
