package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotifier_Notify(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	notifier := NewNotifier(zap.New(core))

	notifier.Notify("Charging $10.00 to card ending in 1111 (A. Smith)...")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Charging $10.00 to card ending in 1111 (A. Smith)...", entries[0].Message)
	assert.Equal(t, "payment_notifications", entries[0].LoggerName)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("payments-service", "production")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
