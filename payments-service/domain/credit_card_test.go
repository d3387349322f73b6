package domain

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditCard_ValidateCard(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		expected   bool
	}{
		{name: "16 digits", cardNumber: "4111111111111111", expected: true},
		{name: "15 digits", cardNumber: "378282246310005", expected: true},
		{name: "12 digits", cardNumber: "411111111111", expected: false},
		{name: "17 digits", cardNumber: "41111111111111112", expected: false},
		{name: "letters", cardNumber: "4111a11111111111", expected: false},
		{name: "spaces", cardNumber: "4111 1111 1111 11", expected: false},
		{name: "non ascii digits", cardNumber: "411111111111111٣", expected: false},
		{name: "empty", cardNumber: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := NewCreditCard(tt.cardNumber, "A. Smith", WithNotifier(NopNotifier))
			assert.Equal(t, tt.expected, card.ValidateCard())
		})
	}
}

func TestCreditCard_ProcessPayment(t *testing.T) {
	tests := []struct {
		name           string
		cardNumber     string
		amount         decimal.Decimal
		random         []int
		expectedOK     bool
		expectedStatus TransactionStatus
		expectedNotice string
	}{
		{
			name:           "zero amount fails",
			cardNumber:     "4111111111111111",
			amount:         decimal.Zero,
			random:         []int{0},
			expectedOK:     false,
			expectedStatus: TransactionStatusFailed,
			expectedNotice: "Invalid amount. Must be greater than zero.",
		},
		{
			name:           "negative amount fails even with a bad card",
			cardNumber:     "abc",
			amount:         decimal.NewFromInt(-5),
			random:         []int{0},
			expectedOK:     false,
			expectedStatus: TransactionStatusFailed,
			expectedNotice: "Invalid amount. Must be greater than zero.",
		},
		{
			name:           "short card number is declined",
			cardNumber:     "411111111111",
			amount:         decimal.NewFromInt(10),
			random:         []int{0},
			expectedOK:     false,
			expectedStatus: TransactionStatusDeclined,
			expectedNotice: "Invalid card number. Transaction declined.",
		},
		{
			name:           "network approves",
			cardNumber:     "4111111111111111",
			amount:         decimal.RequireFromString("25.5"),
			random:         []int{2},
			expectedOK:     true,
			expectedStatus: TransactionStatusApproved,
			expectedNotice: "Charging $25.50 to card ending in 1111 (A. Smith)...",
		},
		{
			name:           "network declines",
			cardNumber:     "378282246310005",
			amount:         decimal.NewFromInt(99),
			random:         []int{3},
			expectedOK:     false,
			expectedStatus: TransactionStatusDeclined,
			expectedNotice: "Charging $99.00 to card ending in 0005 (A. Smith)...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			card := NewCreditCard(tt.cardNumber, "A. Smith",
				WithNotifier(notifier),
				WithClock(fixedClock{now: testTime}),
				WithRandomSource(&sequenceRandom{values: tt.random}),
			)

			ok, err := card.ProcessPayment(tt.amount)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOK, ok)

			history := card.TransactionHistory()
			require.Len(t, history, 1)
			assert.Equal(t, tt.expectedStatus, history[0].Status)
			assert.Equal(t, CreditCardMethodName, history[0].MethodName)
			assert.True(t, history[0].Amount.Equal(tt.amount))

			messages := notifier.Messages()
			require.Len(t, messages, 2)
			assert.Equal(t, tt.expectedNotice, messages[0])
			assert.Contains(t, messages[1], "-> "+tt.expectedStatus.String())
		})
	}
}

func TestCreditCard_ApprovalRate(t *testing.T) {
	card := NewCreditCard("4111111111111111", "A. Smith",
		WithNotifier(NopNotifier),
		WithRandomSource(rand.New(rand.NewSource(42))),
	)

	const trials = 4000
	approved := 0
	for i := 0; i < trials; i++ {
		ok, err := card.ProcessPayment(decimal.NewFromInt(1))
		require.NoError(t, err)
		if ok {
			approved++
		}
	}

	rate := float64(approved) / trials
	assert.InDelta(t, 0.75, rate, 0.04)
	assert.Len(t, card.TransactionHistory(), trials)
}

func TestCreditCard_DefaultsAndAccessors(t *testing.T) {
	card := NewCreditCard("4111111111111111", "A. Smith", WithNotifier(NopNotifier))

	assert.Equal(t, "4111111111111111", card.CardNumber())
	assert.Equal(t, "A. Smith", card.HolderName())
	assert.Equal(t, DefaultExpirationDate, card.ExpirationDate())
	assert.Equal(t, "1111", card.LastFour())
	assert.Equal(t, CreditCardMethodName, card.Name())

	custom := NewCreditCard("12", "B", WithNotifier(NopNotifier), WithExpirationDate("01/31"))
	assert.Equal(t, "01/31", custom.ExpirationDate())
	assert.Equal(t, "12", custom.LastFour())
}

func TestCreditCard_HistoryGrowsInCallOrder(t *testing.T) {
	card := NewCreditCard("4111111111111111", "A. Smith",
		WithNotifier(NopNotifier),
		WithRandomSource(&sequenceRandom{values: []int{0, 3}}),
	)

	amounts := []decimal.Decimal{decimal.NewFromInt(-1), decimal.NewFromInt(5), decimal.NewFromInt(6)}
	for i, amount := range amounts {
		_, err := card.ProcessPayment(amount)
		require.NoError(t, err)
		assert.Len(t, card.TransactionHistory(), i+1)
	}

	history := card.TransactionHistory()
	assert.Equal(t, TransactionStatusFailed, history[0].Status)
	assert.Equal(t, TransactionStatusApproved, history[1].Status)
	assert.Equal(t, TransactionStatusDeclined, history[2].Status)
	for i, amount := range amounts {
		assert.True(t, history[i].Amount.Equal(amount))
	}
}

func TestNewSeededRandomSource_SharedBetweenCards(t *testing.T) {
	random := NewSeededRandomSource(7)
	first := NewCreditCard("4111111111111111", "A", WithRandomSource(random), WithNotifier(NopNotifier))
	second := NewCreditCard("4111111111111111", "B", WithRandomSource(random), WithNotifier(NopNotifier))

	var wg sync.WaitGroup
	for _, card := range []*CreditCard{first, second} {
		wg.Add(1)
		go func(c *CreditCard) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = c.ProcessPayment(decimal.NewFromInt(1))
			}
		}(card)
	}
	wg.Wait()

	assert.Len(t, first.TransactionHistory(), 100)
	assert.Len(t, second.TransactionHistory(), 100)
}
