package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, FromContext(ctx))
	assert.Equal(t, "unknown", GetServiceName(ctx))

	tel := NewTelemetry(PaymentsServiceConfig.WithServiceName("payments-test"))
	ctx = WithTelemetry(ctx, tel)
	assert.Same(t, tel, FromContext(ctx))
	assert.Equal(t, "payments-test", GetServiceName(ctx))

	// Recording without a configured provider must not panic
	assert.NotPanics(t, func() {
		RecordCounter(ctx, "payment_attempts_total", "Total payment attempts", 1, attribute.String("status", "Approved"))
		RecordHistogram(ctx, "payment_operation_duration_seconds", "Payment duration", 0.5)
		RecordGauge(ctx, "wallet_balance", "Wallet balance", 100)
	})
}

func TestConfigBuilders(t *testing.T) {
	cfg := PaymentsServiceConfig.WithOTLPEndpoint("localhost:4318").WithServiceName("")
	assert.Equal(t, "payments-service", cfg.ServiceName)
	assert.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
	assert.Empty(t, PaymentsServiceConfig.OTLPEndpoint)
}

func TestMiddleware(t *testing.T) {
	tel := NewTelemetry(PaymentsServiceConfig)

	r := chi.NewRouter()
	r.Use(Middleware(tel))
	r.Get("/api/v1/payment-methods/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.NotNil(t, FromContext(r.Context()))
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/payment-methods/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestGetStatusClass(t *testing.T) {
	tests := map[int]string{
		101: "1xx",
		200: "2xx",
		302: "3xx",
		404: "4xx",
		503: "5xx",
		0:   "unknown",
	}
	for code, class := range tests {
		assert.Equal(t, class, getStatusClass(code))
	}
}
