package domain

// PaymentMethodCreator contains all possible fields for creating payment methods
// Fields are pointers to allow nil checking for validation
type PaymentMethodCreator struct {
	// Credit card fields
	CardNumber     *string
	HolderName     *string
	ExpirationDate *string

	// Wallet fields
	AccountID *string
}

// NewCreditCardCreator creates a creator for credit cards. An empty
// expirationDate keeps the default.
func NewCreditCardCreator(cardNumber, holderName, expirationDate string) *PaymentMethodCreator {
	creator := &PaymentMethodCreator{
		CardNumber: &cardNumber,
		HolderName: &holderName,
	}
	if expirationDate != "" {
		creator.ExpirationDate = &expirationDate
	}
	return creator
}

// NewWalletCreator creates a creator for wallets
func NewWalletCreator(accountID string) *PaymentMethodCreator {
	return &PaymentMethodCreator{
		AccountID: &accountID,
	}
}
