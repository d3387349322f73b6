package application

import (
	"context"
	"time"

	"github.com/draftea/payment-simulator/payments-service/domain"
	"github.com/draftea/payment-simulator/shared/events"
	"github.com/draftea/payment-simulator/shared/models"
	"github.com/draftea/payment-simulator/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ProcessPaymentCommand represents the command to charge a payment method
type ProcessPaymentCommand struct {
	PaymentMethodID string  `json:"payment_method_id"`
	Amount          float64 `json:"amount"`
}

// ProcessPaymentResponse represents the outcome of a charge
type ProcessPaymentResponse struct {
	PaymentMethodID string              `json:"payment_method_id"`
	Approved        bool                `json:"approved"`
	Transaction     TransactionResponse `json:"transaction"`
	Balance         *string             `json:"balance,omitempty"`
}

// TransactionLoggedData is the payload published for every recorded attempt
type TransactionLoggedData struct {
	PaymentMethodID models.ID `json:"payment_method_id"`
	Type            string    `json:"type"`
	TransactionID   models.ID `json:"transaction_id"`
	Method          string    `json:"method"`
	Amount          string    `json:"amount"`
	Status          string    `json:"status"`
	Timestamp       string    `json:"timestamp"`
	Balance         *string   `json:"balance,omitempty"`
}

// ProcessPayment use case charges a registered payment method
type ProcessPayment struct {
	repository     domain.PaymentMethodRepository
	eventPublisher events.Publisher
	logger         *zap.Logger
}

// NewProcessPayment creates a new ProcessPayment use case
func NewProcessPayment(
	repository domain.PaymentMethodRepository,
	eventPublisher events.Publisher,
	logger *zap.Logger,
) *ProcessPayment {
	return &ProcessPayment{
		repository:     repository,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Execute charges the payment method. A declined or failed payment is not an
// error: it is reported through Approved and the transaction status.
func (uc *ProcessPayment) Execute(ctx context.Context, cmd *ProcessPaymentCommand) (*ProcessPaymentResponse, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "process_payment",
		trace.WithAttributes(
			attribute.String("payment_method_id", cmd.PaymentMethodID),
			attribute.Float64("amount", cmd.Amount),
		),
	)
	defer span.End()

	status := "error"
	methodType := "unknown"
	defer func() {
		duration := time.Since(start)
		telemetry.RecordCounter(ctx, "payment_attempts_total", "Total payment attempts", 1,
			attribute.String("payment_method_type", methodType),
			attribute.String("status", status),
		)
		telemetry.RecordHistogram(ctx, "payment_operation_duration_seconds", "Payment operation duration", duration.Seconds(),
			attribute.String("payment_method_type", methodType),
			attribute.String("status", status),
		)
	}()

	if cmd.PaymentMethodID == "" {
		err := errors.New("payment method ID is required")
		span.RecordError(err)
		return nil, invalidCommand(err)
	}

	id, err := models.NewID(cmd.PaymentMethodID)
	if err != nil {
		span.RecordError(err)
		return nil, invalidCommand(errors.Wrap(err, "invalid payment method ID"))
	}

	amount, err := models.AmountFromFloat(cmd.Amount)
	if err != nil {
		span.RecordError(err)
		return nil, invalidCommand(err)
	}

	registration, err := uc.repository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to find payment method")
	}

	if registration == nil {
		span.RecordError(domain.ErrPaymentMethodNotFound)
		return nil, domain.ErrPaymentMethodNotFound
	}

	methodType = registration.Type.String()

	approved, record, err := registration.Process(amount)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to process payment")
	}

	status = record.Status.String()
	balance := balanceOf(registration.Method)

	span.SetAttributes(
		attribute.Bool("approved", approved),
		attribute.String("transaction_status", status),
		attribute.String("transaction_id", record.ID.String()),
	)

	if balance != nil {
		telemetry.RecordGauge(ctx, "wallet_balance", "Current wallet balance", balance.InexactFloat64(),
			attribute.String("payment_method_id", registration.ID.String()),
		)
	}

	event := events.NewEvent(registration.ID, events.TransactionLoggedEvent, TransactionLoggedData{
		PaymentMethodID: registration.ID,
		Type:            methodType,
		TransactionID:   record.ID,
		Method:          record.MethodName,
		Amount:          record.Amount.StringFixed(2),
		Status:          status,
		Timestamp:       record.Timestamp,
		Balance:         formatBalance(balance),
	}).WithMetadata("payment_method_type", methodType)

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("failed to publish transaction logged event",
			zap.String("payment_method_id", registration.ID.String()),
			zap.String("transaction_id", record.ID.String()),
			zap.Error(err),
		)
	}

	uc.logger.Info("payment processed",
		zap.String("payment_method_id", registration.ID.String()),
		zap.String("payment_method_type", methodType),
		zap.String("amount", record.Amount.StringFixed(2)),
		zap.String("status", status),
		zap.Bool("approved", approved),
	)

	return &ProcessPaymentResponse{
		PaymentMethodID: registration.ID.String(),
		Approved:        approved,
		Transaction:     toTransactionResponse(record),
		Balance:         formatBalance(balance),
	}, nil
}
