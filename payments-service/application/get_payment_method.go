package application

import (
	"context"

	"github.com/draftea/payment-simulator/payments-service/domain"
	"github.com/draftea/payment-simulator/shared/models"
	"github.com/draftea/payment-simulator/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GetPaymentMethodQuery represents the query to get a payment method
type GetPaymentMethodQuery struct {
	PaymentMethodID string `json:"payment_method_id"`
}

// CardDetails is the non-sensitive part of a credit card
type CardDetails struct {
	HolderName     string `json:"holder_name"`
	LastFour       string `json:"last_four"`
	ExpirationDate string `json:"expiration_date"`
}

// WalletDetails describes a wallet's account and balance
type WalletDetails struct {
	AccountID string `json:"account_id"`
	Balance   string `json:"balance"`
}

// GetPaymentMethodResponse represents the response for getting a payment method
type GetPaymentMethodResponse struct {
	PaymentMethodID string                `json:"payment_method_id"`
	Type            string                `json:"type"`
	Name            string                `json:"name"`
	Card            *CardDetails          `json:"card,omitempty"`
	Wallet          *WalletDetails        `json:"wallet,omitempty"`
	Transactions    []TransactionResponse `json:"transactions"`
}

// GetPaymentMethod use case
type GetPaymentMethod struct {
	repository domain.PaymentMethodRepository
}

// NewGetPaymentMethod creates a new GetPaymentMethod use case
func NewGetPaymentMethod(repository domain.PaymentMethodRepository) *GetPaymentMethod {
	return &GetPaymentMethod{
		repository: repository,
	}
}

// Execute returns the payment method and its transaction history in call order
func (uc *GetPaymentMethod) Execute(ctx context.Context, query *GetPaymentMethodQuery) (*GetPaymentMethodResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "get_payment_method",
		trace.WithAttributes(attribute.String("payment_method_id", query.PaymentMethodID)),
	)
	defer span.End()

	if query.PaymentMethodID == "" {
		err := errors.New("payment method ID is required")
		span.RecordError(err)
		return nil, invalidCommand(err)
	}

	id, err := models.NewID(query.PaymentMethodID)
	if err != nil {
		span.RecordError(err)
		return nil, invalidCommand(errors.Wrap(err, "invalid payment method ID"))
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

	history := registration.Method.TransactionHistory()
	response := &GetPaymentMethodResponse{
		PaymentMethodID: registration.ID.String(),
		Type:            registration.Type.String(),
		Name:            registration.Method.Name(),
		Transactions:    make([]TransactionResponse, 0, len(history)),
	}

	for _, record := range history {
		response.Transactions = append(response.Transactions, toTransactionResponse(record))
	}

	switch m := registration.Method.(type) {
	case *domain.CreditCard:
		response.Card = &CardDetails{
			HolderName:     m.HolderName(),
			LastFour:       m.LastFour(),
			ExpirationDate: m.ExpirationDate(),
		}
	case *domain.Wallet:
		response.Wallet = &WalletDetails{
			AccountID: m.AccountID(),
			Balance:   m.Balance().StringFixed(2),
		}
	}

	span.SetAttributes(attribute.Int("transaction_count", len(history)))

	return response, nil
}
