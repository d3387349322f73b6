package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the production zap logger used by the services
func NewLogger(serviceName, env string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "timestamp"
	if env == "local" {
		cfg.Development = true
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build zap logger")
	}
	return logger.With(zap.String("service", serviceName)), nil
}

// Notifier forwards payment status lines to a zap logger
type Notifier struct {
	logger *zap.Logger
}

// NewNotifier creates a notifier writing at info level
func NewNotifier(logger *zap.Logger) *Notifier {
	return &Notifier{logger: logger.Named("payment_notifications")}
}

// Notify logs the message
func (n *Notifier) Notify(message string) {
	n.logger.Info(message)
}
