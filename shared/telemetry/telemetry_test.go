package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricSDK "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	traceSDK "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestTelemetry(t *testing.T) (*Telemetry, *metricSDK.ManualReader, *tracetest.SpanRecorder) {
	t.Helper()
	reader := metricSDK.NewManualReader()
	recorder := tracetest.NewSpanRecorder()
	tel := NewTelemetryWithProviders(CheckoutServiceConfig,
		traceSDK.NewTracerProvider(traceSDK.WithSpanProcessor(recorder)),
		metricSDK.NewMeterProvider(metricSDK.WithReader(reader)),
	)
	return tel, reader, recorder
}

func counterTotal(t *testing.T, reader *metricSDK.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestRecordCounter_UsesContextTelemetry(t *testing.T) {
	tel, reader, _ := newTestTelemetry(t)
	ctx := WithTelemetry(context.Background(), tel)

	RecordCounter(ctx, "checkout_step_events_total", "Step events", 2)
	RecordCounter(ctx, "checkout_step_events_total", "Step events", 1)

	assert.Equal(t, int64(3), counterTotal(t, reader, "checkout_step_events_total"))
	assert.Equal(t, "checkout-service", GetServiceName(ctx))
	assert.Equal(t, "unknown", GetServiceName(context.Background()))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	tel, reader, recorder := newTestTelemetry(t)

	r := chi.NewRouter()
	r.Use(Middleware(tel))
	r.Get("/sessions/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
		assert.NotNil(t, FromContext(r.Context()))
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, int64(2), counterTotal(t, reader, "http_requests_total"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "HTTP GET /sessions/{sessionID}", spans[0].Name())
}

func TestGetStatusClass(t *testing.T) {
	assert.Equal(t, "1xx", getStatusClass(101))
	assert.Equal(t, "2xx", getStatusClass(204))
	assert.Equal(t, "3xx", getStatusClass(302))
	assert.Equal(t, "4xx", getStatusClass(404))
	assert.Equal(t, "5xx", getStatusClass(503))
	assert.Equal(t, "unknown", getStatusClass(0))
}
