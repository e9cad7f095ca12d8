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
	"errors"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName identifies this library to OpenTelemetry meter providers.
const meterName = "github.com/pathcast-dev/pathcast"

// instruments holds the counters recorded by Serialize. Swapped
// atomically so instrumentation can be enabled after templates are
// already in use.
type instruments struct {
	serializeTotal  metric.Int64Counter
	serializeErrors metric.Int64Counter
}

var activeInstruments atomic.Pointer[instruments]

// MetricsOption configures [Instrument].
type MetricsOption func(*metricsConfig)

type metricsConfig struct {
	provider metric.MeterProvider
}

// WithMeterProvider sets a custom OpenTelemetry meter provider. Without
// it, Instrument uses the global provider from otel.GetMeterProvider().
func WithMeterProvider(p metric.MeterProvider) MetricsOption {
	return func(c *metricsConfig) {
		c.provider = p
	}
}

// Instrument enables OpenTelemetry metrics for path serialization:
//
//	pathcast.serialize.total  - serialization attempts
//	pathcast.serialize.errors - failed serializations, by error.kind
//
// Instrumentation is off by default; the library performs no metric work
// until Instrument is called. Safe for concurrent use with in-flight
// serializations.
func Instrument(opts ...MetricsOption) error {
	cfg := metricsConfig{provider: otel.GetMeterProvider()}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.provider.Meter(meterName)

	total, err := meter.Int64Counter("pathcast.serialize.total",
		metric.WithDescription("Total path serialization attempts."))
	if err != nil {
		return err
	}
	serr, err := meter.Int64Counter("pathcast.serialize.errors",
		metric.WithDescription("Failed path serializations, by error kind."))
	if err != nil {
		return err
	}

	activeInstruments.Store(&instruments{
		serializeTotal:  total,
		serializeErrors: serr,
	})
	return nil
}

// Uninstrument disables metric recording.
func Uninstrument() {
	activeInstruments.Store(nil)
}

func recordSerialize(err error) {
	in := activeInstruments.Load()
	if in == nil {
		return
	}

	ctx := context.Background()
	in.serializeTotal.Add(ctx, 1)
	if err != nil {
		in.serializeErrors.Add(ctx, 1,
			metric.WithAttributes(attribute.String("error.kind", errorKind(err))))
	}
}

// errorKind maps a serialization error to a low-cardinality attribute
// value.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrTypeNotSupported):
		return "type_not_supported"
	case errors.Is(err, ErrInvalidLen):
		return "invalid_len"
	case errors.Is(err, ErrNonWildcardCapture):
		return "non_wildcard_capture"
	case errors.Is(err, ErrDeepNesting):
		return "deep_nesting"
	case errors.Is(err, ErrMissingCapture):
		return "missing_capture"
	case errors.Is(err, ErrUnknownCapture):
		return "unknown_capture"
	case errors.Is(err, ErrMarshalValue):
		return "marshal_value"
	default:
		return "other"
	}
}
