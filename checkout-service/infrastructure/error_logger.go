package infrastructure

import (
	"context"
	"log/slog"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/logging"
	"github.com/draftea/checkout-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var _ domain.ErrorLogger = (*ErrorLogger)(nil)

// ErrorLogger writes handled checkout errors to the structured log and counts them
// by kind
type ErrorLogger struct {
	logger  *slog.Logger
	counter metric.Int64Counter
}

func NewErrorLogger(logger *slog.Logger, tel *telemetry.Telemetry) (*ErrorLogger, error) {
	counter, err := tel.GetMeter().Int64Counter("checkout_errors_total",
		metric.WithDescription("Total checkout errors by kind"))
	if err != nil {
		return nil, err
	}
	return &ErrorLogger{logger: logger, counter: counter}, nil
}

func (l *ErrorLogger) Log(err error) {
	if err == nil {
		return
	}

	kind := domain.ErrorKind(err)
	l.counter.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind)))

	attrs := []any{slog.String("kind", kind), logging.Error(err)}
	if title := domain.ErrorTitle(err); title != "" {
		attrs = append(attrs, slog.String("title", title))
	}
	l.logger.Warn("Checkout error", attrs...)
}
