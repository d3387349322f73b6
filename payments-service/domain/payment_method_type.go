package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

type PaymentMethodType string

const (
	PaymentMethodTypeCreditCard PaymentMethodType = "credit_card"
	PaymentMethodTypeWallet     PaymentMethodType = "wallet"
)

var allPaymentMethodTypes = map[string]PaymentMethodType{
	PaymentMethodTypeCreditCard.String(): PaymentMethodTypeCreditCard,
	PaymentMethodTypeWallet.String():     PaymentMethodTypeWallet,
}

func NewPaymentMethodType(value string) (*PaymentMethodType, error) {
	if value, ok := allPaymentMethodTypes[value]; ok {
		return &value, nil
	}
	return nil, errors.Wrap(ErrUnsupportedPaymentMethodType, fmt.Sprintf("unknown payment method type %q", value))
}

func (pt PaymentMethodType) String() string {
	return string(pt)
}
