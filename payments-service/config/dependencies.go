package config

import (
	"context"
	"os"

	"github.com/draftea/payment-simulator/payments-service/application"
	"github.com/draftea/payment-simulator/payments-service/domain"
	"github.com/draftea/payment-simulator/payments-service/handlers"
	"github.com/draftea/payment-simulator/payments-service/infrastructure"
	"github.com/draftea/payment-simulator/shared/events"
	sharedinfra "github.com/draftea/payment-simulator/shared/infrastructure"
	"github.com/draftea/payment-simulator/shared/logging"
	"github.com/draftea/payment-simulator/shared/telemetry"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Dependencies struct {
	Logger    *zap.Logger
	Telemetry *telemetry.Telemetry

	// Repositories
	PaymentMethodRepository *infrastructure.MemoryPaymentMethodRepository

	// Use Cases
	RegisterPaymentMethod *application.RegisterPaymentMethod
	ProcessPayment        *application.ProcessPayment
	GetPaymentMethod      *application.GetPaymentMethod

	// HTTP Handlers
	PaymentMethodHandlers *handlers.PaymentMethodHandlers

	// Infrastructure
	EventPublisher events.Publisher
	snsAdapter     *sharedinfra.SNSPublisherAdapter

	telemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	logger, err := logging.NewLogger(config.ServiceName, config.Env)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}
	deps.Logger = logger

	if config.Telemetry.Enabled {
		telConfig := telemetry.PaymentsServiceConfig.
			WithServiceName(config.ServiceName).
			WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)

		tel, shutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialize telemetry")
		}
		deps.Telemetry = tel
		deps.telemetryShutdown = shutdown
	}

	// Event publishing is optional: without a topic events are dropped
	deps.EventPublisher = events.NopPublisher{}
	if config.Notifications.SNSTopicArn != "" {
		adapter, err := sharedinfra.NewSNSPublisherAdapter(ctx, config.Notifications.SNSTopicArn, config.AWS.Region)
		if err != nil {
			deps.Close()
			return nil, errors.Wrap(err, "failed to create SNS publisher")
		}
		deps.snsAdapter = adapter
		deps.EventPublisher = sharedinfra.NewBreakerPublisher(adapter, sharedinfra.BreakerSettings{
			Name: "sns",
		}, func(name string, from, to gobreaker.State) {
			logger.Warn("publisher circuit state changed",
				zap.String("publisher", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		})
	}

	deps.PaymentMethodRepository = infrastructure.NewMemoryPaymentMethodRepository()

	factory := domain.NewPaymentMethodFactory(paymentMethodOptions(config, logger)...)

	// Initialize use cases
	deps.RegisterPaymentMethod = application.NewRegisterPaymentMethod(factory, deps.PaymentMethodRepository, deps.EventPublisher, logger)
	deps.ProcessPayment = application.NewProcessPayment(deps.PaymentMethodRepository, deps.EventPublisher, logger)
	deps.GetPaymentMethod = application.NewGetPaymentMethod(deps.PaymentMethodRepository)

	// Initialize handlers
	deps.PaymentMethodHandlers = handlers.NewPaymentMethodHandlers(
		deps.RegisterPaymentMethod,
		deps.ProcessPayment,
		deps.GetPaymentMethod,
		logger,
	)

	return deps, nil
}

// paymentMethodOptions builds the options every registered method is created with
func paymentMethodOptions(config *Config, logger *zap.Logger) []domain.Option {
	notifiers := domain.MultiNotifier{logging.NewNotifier(logger)}
	if config.Notifications.Console {
		notifiers = append(notifiers, domain.NewWriterNotifier(os.Stdout))
	}

	opts := []domain.Option{
		domain.WithNotifier(notifiers),
		domain.WithRandomSource(domain.NewSeededRandomSource(config.Simulation.RandomSeed)),
		domain.WithLatency(config.Simulation.WalletLatency),
		domain.WithStartingBalance(decimal.NewFromFloat(config.Simulation.WalletStartingBalance)),
	}

	if config.Simulation.CardDefaultExpiration != "" {
		opts = append(opts, domain.WithExpirationDate(config.Simulation.CardDefaultExpiration))
	}

	return opts
}

// Close releases every dependency, collecting all errors
func (d *Dependencies) Close() error {
	var err error

	if d.snsAdapter != nil {
		err = multierr.Append(err, errors.Wrap(d.snsAdapter.Close(), "failed to close event publisher"))
	}

	if d.telemetryShutdown != nil {
		d.telemetryShutdown()
	}

	if d.Logger != nil {
		// Sync errors on a console stdout
		_ = d.Logger.Sync()
	}

	return err
}
