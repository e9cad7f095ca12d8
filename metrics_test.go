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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// counterValue sums all data points of a named int64 counter.
func counterValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()

	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestInstrument_RecordsSerializations(t *testing.T) {
	// Not parallel: instrumentation is process-global.
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	require.NoError(t, Instrument(WithMeterProvider(provider)))
	defer Uninstrument()

	tmpl := MustParse("/{a}")

	_, err := Serialize(tmpl, "ok")
	require.NoError(t, err)
	_, err = Serialize(tmpl, "also-ok")
	require.NoError(t, err)
	_, err = Serialize(tmpl, Tuple{1, 2})
	require.Error(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	assert.Equal(t, int64(3), counterValue(t, rm, "pathcast.serialize.total"))
	assert.Equal(t, int64(1), counterValue(t, rm, "pathcast.serialize.errors"))
}

func TestUninstrument_StopsRecording(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	require.NoError(t, Instrument(WithMeterProvider(provider)))
	Uninstrument()

	_, err := Serialize(MustParse("/{a}"), "ok")
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	assert.Equal(t, int64(0), counterValue(t, rm, "pathcast.serialize.total"))
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		kind string
	}{
		{ErrTypeNotSupported, "type_not_supported"},
		{ErrInvalidLen, "invalid_len"},
		{ErrNonWildcardCapture, "non_wildcard_capture"},
		{ErrDeepNesting, "deep_nesting"},
		{ErrMissingCapture, "missing_capture"},
		{ErrUnknownCapture, "unknown_capture"},
		{ErrMarshalValue, "marshal_value"},
		{context.Canceled, "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, errorKind(tt.err))
	}
}
