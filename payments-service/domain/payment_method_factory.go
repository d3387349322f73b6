package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// PaymentMethodFactory creates payment methods based on type and creator with validation
type PaymentMethodFactory struct {
	opts []Option
}

// NewPaymentMethodFactory creates a factory; opts are applied to every
// method it builds, before any per-call options
func NewPaymentMethodFactory(opts ...Option) *PaymentMethodFactory {
	return &PaymentMethodFactory{opts: opts}
}

// CreatePaymentMethod creates a payment method based on the type and creator with validation
func (f *PaymentMethodFactory) CreatePaymentMethod(paymentType PaymentMethodType, creator *PaymentMethodCreator, opts ...Option) (PaymentMethod, error) {
	if creator == nil {
		return nil, errors.New("payment method creator cannot be nil")
	}

	all := make([]Option, 0, len(f.opts)+len(opts))
	all = append(all, f.opts...)
	all = append(all, opts...)

	switch paymentType {
	case PaymentMethodTypeCreditCard:
		return f.createCreditCard(creator, all)
	case PaymentMethodTypeWallet:
		return f.createWallet(creator, all)
	default:
		return nil, errors.Wrapf(ErrUnsupportedPaymentMethodType, "type %q", paymentType.String())
	}
}

// Card numbers are deliberately not validated here: a malformed card is a
// valid object that gets declined when charged.
func (f *PaymentMethodFactory) createCreditCard(creator *PaymentMethodCreator, opts []Option) (PaymentMethod, error) {
	if creator.CardNumber == nil {
		return nil, errors.New("card_number is required for credit card payment method")
	}

	if creator.HolderName == nil || strings.TrimSpace(*creator.HolderName) == "" {
		return nil, errors.New("holder_name is required for credit card payment method")
	}

	if creator.ExpirationDate != nil {
		opts = append(opts, WithExpirationDate(*creator.ExpirationDate))
	}

	return NewCreditCard(*creator.CardNumber, *creator.HolderName, opts...), nil
}

func (f *PaymentMethodFactory) createWallet(creator *PaymentMethodCreator, opts []Option) (PaymentMethod, error) {
	if creator.AccountID == nil {
		return nil, errors.New("account_id is required for wallet payment method")
	}

	if strings.TrimSpace(*creator.AccountID) == "" {
		return nil, errors.New("account_id cannot be empty")
	}

	return NewWallet(*creator.AccountID, opts...), nil
}
