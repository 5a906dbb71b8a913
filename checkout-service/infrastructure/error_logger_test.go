package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricSDK "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/logging"
	"github.com/draftea/checkout-system/shared/telemetry"
)

func TestErrorLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	reader := metricSDK.NewManualReader()
	tel := telemetry.NewTelemetryWithProviders(telemetry.CheckoutServiceConfig,
		noop.NewTracerProvider(),
		metricSDK.NewMeterProvider(metricSDK.WithReader(reader)),
	)

	logger, err := NewErrorLogger(logging.NewWithWriter(&buf, "checkout-service", "test", "dev", slog.LevelInfo), tel)
	require.NoError(t, err)

	logger.Log(&domain.CustomError{Title: "Card declined", Message: "Try another card"})
	logger.Log(errors.New("boom"))
	logger.Log(&domain.ShippingOptionExpiredError{})
	logger.Log(nil)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	kinds := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "checkout_errors_total" {
				continue
			}
			for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
				kind, _ := dp.Attributes.Value("kind")
				kinds[kind.AsString()] += dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{"custom": 1, "unhandled": 1, "shipping_option_expired": 1}, kinds)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "custom", first["kind"])
	assert.Equal(t, "Card declined", first["title"])
	assert.Equal(t, "Try another card", first["error"])
	assert.Equal(t, "checkout-service", first["service"])
}
