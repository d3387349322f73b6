package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// CreditCardMethodName is the method name credit cards log under
const CreditCardMethodName = "Credit Card"

// Three of the four equally likely outcomes approve the charge.
var cardOutcomes = [...]bool{true, true, true, false}

// CreditCard charges a card after a shape check on its number. The charge
// itself is a coin toss standing in for the card network.
type CreditCard struct {
	*Method

	cardNumber     string
	holderName     string
	expirationDate string

	mu     sync.Mutex
	random RandomSource
}

var _ PaymentMethod = (*CreditCard)(nil)

// NewCreditCard creates a card. The number is not checked here; malformed
// cards are only rejected when charged.
func NewCreditCard(cardNumber, holderName string, opts ...Option) *CreditCard {
	s := newSettings(opts)
	return &CreditCard{
		Method:         newMethod(CreditCardMethodName, s),
		cardNumber:     cardNumber,
		holderName:     holderName,
		expirationDate: s.expirationDate,
		random:         s.random,
	}
}

func (c *CreditCard) CardNumber() string {
	return c.cardNumber
}

func (c *CreditCard) HolderName() string {
	return c.holderName
}

func (c *CreditCard) ExpirationDate() string {
	return c.expirationDate
}

// LastFour returns the last four characters of the card number
func (c *CreditCard) LastFour() string {
	if len(c.cardNumber) <= 4 {
		return c.cardNumber
	}
	return c.cardNumber[len(c.cardNumber)-4:]
}

// ValidateCard reports whether the number is 15 or 16 decimal digits.
// There is no checksum or expiry validation.
func (c *CreditCard) ValidateCard() bool {
	if len(c.cardNumber) != 15 && len(c.cardNumber) != 16 {
		return false
	}
	for i := 0; i < len(c.cardNumber); i++ {
		if c.cardNumber[i] < '0' || c.cardNumber[i] > '9' {
			return false
		}
	}
	return true
}

// ProcessPayment charges the card. Failures are reported through the
// returned bool and the logged status; the error is always nil.
func (c *CreditCard) ProcessPayment(amount decimal.Decimal) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !amount.IsPositive() {
		c.notify("Invalid amount. Must be greater than zero.")
		c.LogTransaction(amount, TransactionStatusFailed)
		return false, nil
	}

	if !c.ValidateCard() {
		c.notify("Invalid card number. Transaction declined.")
		c.LogTransaction(amount, TransactionStatusDeclined)
		return false, nil
	}

	c.notify("Charging $%s to card ending in %s (%s)...", amount.StringFixed(2), c.LastFour(), c.holderName)

	approved := cardOutcomes[c.random.Intn(len(cardOutcomes))]
	status := TransactionStatusDeclined
	if approved {
		status = TransactionStatusApproved
	}
	c.LogTransaction(amount, status)
	return approved, nil
}
