package domain

import (
	"context"
	"fmt"
	"sync"

	"github.com/draftea/payment-simulator/shared/clock"
	"github.com/draftea/payment-simulator/shared/models"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the capability shared by every way of paying
type PaymentMethod interface {
	Name() string
	ProcessPayment(amount decimal.Decimal) (bool, error)
	TransactionHistory() []TransactionRecord
}

// Method holds the name and the append-only transaction log of a payment
// method. Concrete methods embed it and supply ProcessPayment.
type Method struct {
	name     string
	clock    clock.Clock
	notifier Notifier

	mu      sync.RWMutex
	history []TransactionRecord
}

var _ PaymentMethod = (*Method)(nil)

// NewMethod creates the shared part of a payment method
func NewMethod(name string, opts ...Option) *Method {
	s := newSettings(opts)
	return newMethod(name, s)
}

func newMethod(name string, s settings) *Method {
	return &Method{
		name:     name,
		clock:    s.clock,
		notifier: s.notifier,
		history:  make([]TransactionRecord, 0),
	}
}

// Name returns the method name used in records and notifications
func (m *Method) Name() string {
	return m.name
}

// ProcessPayment must be provided by concrete payment methods
func (m *Method) ProcessPayment(amount decimal.Decimal) (bool, error) {
	return false, ErrUnsupportedOperation
}

// LogTransaction appends a record stamped with the current time and emits a
// notification for it
func (m *Method) LogTransaction(amount decimal.Decimal, status TransactionStatus) TransactionRecord {
	record := TransactionRecord{
		ID:         models.GenerateUUID(),
		MethodName: m.name,
		Amount:     amount,
		Status:     status,
		Timestamp:  m.clock.Now().Format(TimestampLayout),
	}

	m.mu.Lock()
	m.history = append(m.history, record)
	m.mu.Unlock()

	m.notify("[%s] %s - %s -> %s", record.Timestamp, m.name, models.FormatCurrency(amount), status)
	return record
}

// TransactionHistory returns a copy of the log in call order
func (m *Method) TransactionHistory() []TransactionRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := make([]TransactionRecord, len(m.history))
	copy(history, m.history)
	return history
}

// LastTransaction returns the most recent record, if any
func (m *Method) LastTransaction() (TransactionRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.history) == 0 {
		return TransactionRecord{}, false
	}
	return m.history[len(m.history)-1], true
}

func (m *Method) notify(format string, args ...interface{}) {
	m.notifier.Notify(fmt.Sprintf(format, args...))
}

// Registration is a payment method known to the application, addressable by ID
type Registration struct {
	ID     models.ID
	Type   PaymentMethodType
	Method PaymentMethod

	mu sync.Mutex
}

// NewRegistration assigns a fresh ID to a payment method
func NewRegistration(paymentType PaymentMethodType, method PaymentMethod) *Registration {
	return &Registration{
		ID:     models.GenerateUUID(),
		Type:   paymentType,
		Method: method,
	}
}

// Process runs a payment and returns the record it appended. Calls on the
// same registration are serialized so the record always belongs to this call.
func (r *Registration) Process(amount decimal.Decimal) (bool, TransactionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ok, err := r.Method.ProcessPayment(amount)
	if err != nil {
		return false, TransactionRecord{}, err
	}

	history := r.Method.TransactionHistory()
	if len(history) == 0 {
		return ok, TransactionRecord{}, nil
	}
	return ok, history[len(history)-1], nil
}

// PaymentMethodRepository interface
type PaymentMethodRepository interface {
	Save(ctx context.Context, registration *Registration) error
	FindByID(ctx context.Context, id models.ID) (*Registration, error)
}
