package application

import (
	"time"

	"github.com/draftea/payment-simulator/payments-service/domain"
	"github.com/draftea/payment-simulator/shared/models"
)

const validPaymentMethodID = "550e8400-e29b-41d4-a716-446655440020"

type noSleep struct{}

func (noSleep) Sleep(time.Duration) {}

// constantRandom always draws the same outcome index
type constantRandom int

func (r constantRandom) Intn(n int) int {
	return int(r) % n
}

func newTestCard(cardNumber string, outcome int) *domain.CreditCard {
	return domain.NewCreditCard(cardNumber, "A. Smith",
		domain.WithNotifier(domain.NopNotifier),
		domain.WithRandomSource(constantRandom(outcome)),
	)
}

func newTestWallet() *domain.Wallet {
	return domain.NewWallet("buyer@example.com",
		domain.WithNotifier(domain.NopNotifier),
		domain.WithSleeper(noSleep{}),
	)
}

func newTestRegistration(paymentType domain.PaymentMethodType, method domain.PaymentMethod) *domain.Registration {
	return &domain.Registration{
		ID:     models.ID(validPaymentMethodID),
		Type:   paymentType,
		Method: method,
	}
}
