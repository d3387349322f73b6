package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string        `mapstructure:"service_name"`
	Env           string        `mapstructure:"env"`
	Port          string        `mapstructure:"port"`
	Simulation    Simulation    `mapstructure:"simulation"`
	Notifications Notifications `mapstructure:"notifications"`
	Telemetry     Telemetry     `mapstructure:"telemetry"`
	AWS           AWS           `mapstructure:"aws"`
}

type Simulation struct {
	WalletStartingBalance float64       `mapstructure:"wallet_starting_balance"`
	WalletLatency         time.Duration `mapstructure:"wallet_latency"`
	CardDefaultExpiration string        `mapstructure:"card_default_expiration"`
	// RandomSeed of 0 seeds card outcomes from the clock
	RandomSeed int64 `mapstructure:"random_seed"`
}

type Notifications struct {
	Console     bool   `mapstructure:"console"`
	SNSTopicArn string `mapstructure:"sns_topic_arn"`
}

type Telemetry struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

type AWS struct {
	Region string `mapstructure:"region"`
}

// ReadConfig loads <ENVIRONMENT>.json from this package's directory and
// applies PAYMENT_* environment overrides. A missing file is not an error.
func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, errors.New("unable to get current file")
	}

	return readConfig(viper.New(), filepath.Dir(filename), getConfigName())
}

func readConfig(v *viper.Viper, configDir, configName string) (*Config, error) {
	v.SetConfigName(configName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	// Allow environment variables to override config
	v.SetEnvPrefix("PAYMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}

func setDefaults(v *viper.Viper) {
	// Service defaults
	v.SetDefault("service_name", "payments-service")
	v.SetDefault("env", getEnv("ENV", "local"))
	v.SetDefault("port", getEnv("PORT", "8080"))

	// Simulation defaults
	v.SetDefault("simulation.wallet_starting_balance", 500.00)
	v.SetDefault("simulation.wallet_latency", "1s")
	v.SetDefault("simulation.card_default_expiration", "12/29")
	v.SetDefault("simulation.random_seed", 0)

	// Notification defaults
	v.SetDefault("notifications.console", true)
	v.SetDefault("notifications.sns_topic_arn", getEnv("SNS_TOPIC_ARN", ""))

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("telemetry.otlp_endpoint", getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""))

	// AWS defaults
	v.SetDefault("aws.region", getEnv("AWS_DEFAULT_REGION", "us-east-1"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
