package models

import (
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrNonFiniteAmount is returned when a float amount is NaN or infinite
var ErrNonFiniteAmount = errors.New("amount must be a finite number")

// ID represents a unique identifier
type ID string

// GenerateUUID creates a new UUID
func GenerateUUID() ID {
	return ID(uuid.New().String())
}

// NewID creates an ID from string
func NewID(id string) (ID, error) {
	_, err := uuid.Parse(id)
	if err != nil {
		return "", err
	}
	return ID(id), nil
}

// String returns string representation
func (id ID) String() string {
	return string(id)
}

// AmountFromFloat converts a float amount coming from an outer surface
// (JSON, config) into a decimal. NaN and infinities are rejected.
func AmountFromFloat(value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, ErrNonFiniteAmount
	}
	return decimal.NewFromFloat(value), nil
}

// FormatCurrency renders an amount with a dollar sign and two decimals
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
