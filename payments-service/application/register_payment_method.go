package application

import (
	"context"

	"github.com/draftea/payment-simulator/payments-service/domain"
	"github.com/draftea/payment-simulator/shared/events"
	"github.com/draftea/payment-simulator/shared/models"
	"github.com/draftea/payment-simulator/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RegisterPaymentMethodCommand represents the command to register a payment method
type RegisterPaymentMethodCommand struct {
	Type           string  `json:"type"`
	CardNumber     *string `json:"card_number,omitempty"`
	HolderName     *string `json:"holder_name,omitempty"`
	ExpirationDate *string `json:"expiration_date,omitempty"`
	AccountID      *string `json:"account_id,omitempty"`
}

// RegisterPaymentMethodResponse represents the registered payment method
type RegisterPaymentMethodResponse struct {
	PaymentMethodID string `json:"payment_method_id"`
	Type            string `json:"type"`
	Name            string `json:"name"`
}

// PaymentMethodRegisteredData is the payload of the registration event.
// Card numbers never leave the process, only their last four digits.
type PaymentMethodRegisteredData struct {
	PaymentMethodID models.ID `json:"payment_method_id"`
	Type            string    `json:"type"`
	Name            string    `json:"name"`
	CardLastFour    string    `json:"card_last_four,omitempty"`
	AccountID       string    `json:"account_id,omitempty"`
}

// RegisterPaymentMethod use case creates a payment method and makes it addressable
type RegisterPaymentMethod struct {
	factory        *domain.PaymentMethodFactory
	repository     domain.PaymentMethodRepository
	eventPublisher events.Publisher
	logger         *zap.Logger
}

// NewRegisterPaymentMethod creates a new RegisterPaymentMethod use case
func NewRegisterPaymentMethod(
	factory *domain.PaymentMethodFactory,
	repository domain.PaymentMethodRepository,
	eventPublisher events.Publisher,
	logger *zap.Logger,
) *RegisterPaymentMethod {
	return &RegisterPaymentMethod{
		factory:        factory,
		repository:     repository,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Execute registers the payment method described by cmd
func (uc *RegisterPaymentMethod) Execute(ctx context.Context, cmd *RegisterPaymentMethodCommand) (*RegisterPaymentMethodResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "register_payment_method",
		trace.WithAttributes(attribute.String("payment_method_type", cmd.Type)),
	)
	defer span.End()

	paymentType, err := domain.NewPaymentMethodType(cmd.Type)
	if err != nil {
		span.RecordError(err)
		return nil, invalidCommand(err)
	}

	creator := &domain.PaymentMethodCreator{
		CardNumber:     cmd.CardNumber,
		HolderName:     cmd.HolderName,
		ExpirationDate: cmd.ExpirationDate,
		AccountID:      cmd.AccountID,
	}

	method, err := uc.factory.CreatePaymentMethod(*paymentType, creator)
	if err != nil {
		span.RecordError(err)
		return nil, invalidCommand(err)
	}

	registration := domain.NewRegistration(*paymentType, method)
	if err := uc.repository.Save(ctx, registration); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to save payment method")
	}

	span.SetAttributes(attribute.String("payment_method_id", registration.ID.String()))

	data := PaymentMethodRegisteredData{
		PaymentMethodID: registration.ID,
		Type:            paymentType.String(),
		Name:            method.Name(),
	}
	switch m := method.(type) {
	case *domain.CreditCard:
		data.CardLastFour = m.LastFour()
	case *domain.Wallet:
		data.AccountID = m.AccountID()
	}

	event := events.NewEvent(registration.ID, events.PaymentMethodRegisteredEvent, data).
		WithMetadata("payment_method_type", paymentType.String())
	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("failed to publish payment method registered event",
			zap.String("payment_method_id", registration.ID.String()),
			zap.Error(err),
		)
	}

	uc.logger.Info("payment method registered",
		zap.String("payment_method_id", registration.ID.String()),
		zap.String("type", paymentType.String()),
	)

	return &RegisterPaymentMethodResponse{
		PaymentMethodID: registration.ID.String(),
		Type:            paymentType.String(),
		Name:            method.Name(),
	}, nil
}
