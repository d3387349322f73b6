package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/draftea/payment-simulator/payments-service/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReadConfig_Local(t *testing.T) {
	cfg, err := ReadConfig()
	require.NoError(t, err)

	assert.Equal(t, "payments-service", cfg.ServiceName)
	assert.Equal(t, 500.0, cfg.Simulation.WalletStartingBalance)
	assert.Equal(t, time.Second, cfg.Simulation.WalletLatency)
	assert.Equal(t, "12/29", cfg.Simulation.CardDefaultExpiration)
	assert.True(t, cfg.Notifications.Console)
	assert.Empty(t, cfg.Notifications.SNSTopicArn)
}

func TestReadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := readConfig(viper.New(), t.TempDir(), "staging")
	require.NoError(t, err)

	assert.Equal(t, "payments-service", cfg.ServiceName)
	assert.Equal(t, 500.0, cfg.Simulation.WalletStartingBalance)
	assert.Equal(t, time.Second, cfg.Simulation.WalletLatency)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
}

func TestReadConfig_FileAndEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"port": "9090",
		"simulation": {"wallet_starting_balance": 125.5, "wallet_latency": "250ms", "random_seed": 42}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.json"), []byte(content), 0o600))

	t.Setenv("PAYMENT_SIMULATION_WALLET_LATENCY", "10ms")
	t.Setenv("PAYMENT_NOTIFICATIONS_CONSOLE", "false")

	cfg, err := readConfig(viper.New(), dir, "test")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 125.5, cfg.Simulation.WalletStartingBalance)
	assert.Equal(t, 10*time.Millisecond, cfg.Simulation.WalletLatency)
	assert.Equal(t, int64(42), cfg.Simulation.RandomSeed)
	assert.False(t, cfg.Notifications.Console)
}

func TestReadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"port":`), 0o600))

	_, err := readConfig(viper.New(), dir, "broken")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestPaymentMethodOptions(t *testing.T) {
	cfg := &Config{
		Simulation: Simulation{
			WalletStartingBalance: 80,
			CardDefaultExpiration: "01/31",
			RandomSeed:            1,
		},
	}

	factory := domain.NewPaymentMethodFactory(paymentMethodOptions(cfg, zap.NewNop())...)

	accountID := "buyer@example.com"
	method, err := factory.CreatePaymentMethod(domain.PaymentMethodTypeWallet, domain.NewWalletCreator(accountID))
	require.NoError(t, err)
	wallet, ok := method.(*domain.Wallet)
	require.True(t, ok)
	assert.Equal(t, "80.00", wallet.Balance().StringFixed(2))

	method, err = factory.CreatePaymentMethod(domain.PaymentMethodTypeCreditCard, domain.NewCreditCardCreator("4111111111111111", "A. Smith", ""))
	require.NoError(t, err)
	card, ok := method.(*domain.CreditCard)
	require.True(t, ok)
	assert.Equal(t, "01/31", card.ExpirationDate())
}

func TestBuildDependencies(t *testing.T) {
	cfg, err := readConfig(viper.New(), t.TempDir(), "missing")
	require.NoError(t, err)
	cfg.Telemetry.Enabled = false
	cfg.Notifications.Console = false

	deps, err := BuildDependencies(context.Background(), cfg)
	require.NoError(t, err)
	defer deps.Close()

	assert.NotNil(t, deps.Logger)
	assert.Nil(t, deps.Telemetry)
	assert.NotNil(t, deps.PaymentMethodRepository)
	assert.NotNil(t, deps.PaymentMethodHandlers)
	assert.NotNil(t, deps.EventPublisher)
}
