package domain

import (
	"sync"
	"time"

	"github.com/draftea/payment-simulator/shared/clock"
	"github.com/shopspring/decimal"
)

// WalletMethodName is the method name wallets log under
const WalletMethodName = "Digital Wallet"

// Wallet pays from an account balance after a simulated round trip to the
// wallet provider. Outcomes are deterministic.
type Wallet struct {
	*Method

	accountID string
	latency   time.Duration
	sleeper   clock.Sleeper

	// mu is held for a whole payment, so payments on one wallet run serially
	mu      sync.Mutex
	balance decimal.Decimal
}

var _ PaymentMethod = (*Wallet)(nil)

// NewWallet creates a wallet holding the starting balance (500.00 unless
// overridden)
func NewWallet(accountID string, opts ...Option) *Wallet {
	s := newSettings(opts)
	return &Wallet{
		Method:    newMethod(WalletMethodName, s),
		accountID: accountID,
		latency:   s.latency,
		sleeper:   s.sleeper,
		balance:   s.startingBalance,
	}
}

func (w *Wallet) AccountID() string {
	return w.accountID
}

// Balance returns the current balance
func (w *Wallet) Balance() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// ProcessPayment debits the wallet. The simulated latency blocks the caller
// and cannot be cancelled. The error is always nil.
func (w *Wallet) ProcessPayment(amount decimal.Decimal) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !amount.IsPositive() {
		w.notify("Payment failed: Amount must be positive.")
		w.LogTransaction(amount, TransactionStatusFailed)
		return false, nil
	}

	if amount.GreaterThan(w.balance) {
		w.notify("Payment failed: Insufficient balance ($%s).", w.balance.StringFixed(2))
		w.LogTransaction(amount, TransactionStatusInsufficientFunds)
		return false, nil
	}

	w.notify("Connecting to wallet account %s...", w.accountID)
	w.sleeper.Sleep(w.latency)

	w.balance = w.balance.Sub(amount)
	w.notify("Processed wallet payment of $%s. Remaining balance: $%s", amount.StringFixed(2), w.balance.StringFixed(2))
	w.LogTransaction(amount, TransactionStatusCompleted)
	return true, nil
}
