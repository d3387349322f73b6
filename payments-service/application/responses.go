package application

import (
	"github.com/draftea/payment-simulator/payments-service/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidCommand marks errors caused by the caller's input
	ErrInvalidCommand = errors.New("invalid command")
)

func invalidCommand(err error) error {
	return errors.WithMessage(ErrInvalidCommand, err.Error())
}

// TransactionResponse is the outward view of a transaction record
type TransactionResponse struct {
	TransactionID string `json:"transaction_id"`
	Method        string `json:"method"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

func toTransactionResponse(record domain.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		TransactionID: record.ID.String(),
		Method:        record.MethodName,
		Amount:        record.Amount.StringFixed(2),
		Status:        record.Status.String(),
		Timestamp:     record.Timestamp,
	}
}

// balanceOf returns the wallet balance, or nil for methods without one
func balanceOf(method domain.PaymentMethod) *decimal.Decimal {
	wallet, ok := method.(*domain.Wallet)
	if !ok {
		return nil
	}
	balance := wallet.Balance()
	return &balance
}

func formatBalance(balance *decimal.Decimal) *string {
	if balance == nil {
		return nil
	}
	s := balance.StringFixed(2)
	return &s
}
