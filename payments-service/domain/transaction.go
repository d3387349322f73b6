package domain

import (
	"github.com/draftea/payment-simulator/shared/models"
	"github.com/shopspring/decimal"
)

// TimestampLayout is the layout used for TransactionRecord.Timestamp
const TimestampLayout = "2006-01-02 15:04:05"

// TransactionStatus represents the outcome recorded for a payment attempt
type TransactionStatus string

const (
	TransactionStatusFailed            TransactionStatus = "Failed"
	TransactionStatusDeclined          TransactionStatus = "Declined"
	TransactionStatusInsufficientFunds TransactionStatus = "Insufficient Funds"
	TransactionStatusApproved          TransactionStatus = "Approved"
	TransactionStatusCompleted         TransactionStatus = "Completed"
)

func (s TransactionStatus) String() string {
	return string(s)
}

// IsSuccessful reports whether the status ends a payment in the caller's favour
func (s TransactionStatus) IsSuccessful() bool {
	return s == TransactionStatusApproved || s == TransactionStatusCompleted
}

// TransactionRecord is one entry of a payment method's transaction history.
// Records are values; the history only ever appends them.
type TransactionRecord struct {
	ID         models.ID         `json:"id"`
	MethodName string            `json:"method"`
	Amount     decimal.Decimal   `json:"amount"`
	Status     TransactionStatus `json:"status"`
	Timestamp  string            `json:"timestamp"`
}
