package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/draftea/payment-simulator/payments-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRouter(t *testing.T) {
	deps, err := config.BuildDependencies(context.Background(), &config.Config{
		ServiceName: "payments-service",
		Env:         "test",
		Simulation:  config.Simulation{WalletStartingBalance: 500},
	})
	require.NoError(t, err)
	defer deps.Close()

	router := setupRouter(deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/payment-methods",
		strings.NewReader(`{"type":"wallet","account_id":"buyer@example.com"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
