package domain

import "github.com/pkg/errors"

var (
	// ErrUnsupportedOperation is returned when ProcessPayment is called on the
	// bare Method instead of a concrete payment method
	ErrUnsupportedOperation = errors.New("process payment is not implemented for this payment method")

	ErrUnsupportedPaymentMethodType = errors.New("unsupported payment method type")
	ErrPaymentMethodNotFound        = errors.New("payment method not found")
)
