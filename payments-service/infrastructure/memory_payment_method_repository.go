package infrastructure

import (
	"context"
	"sync"

	"github.com/draftea/payment-simulator/payments-service/domain"
	"github.com/draftea/payment-simulator/shared/models"
	"github.com/pkg/errors"
)

var _ domain.PaymentMethodRepository = (*MemoryPaymentMethodRepository)(nil)

// MemoryPaymentMethodRepository keeps registrations for the lifetime of the
// process
type MemoryPaymentMethodRepository struct {
	mu            sync.RWMutex
	registrations map[models.ID]*domain.Registration
}

// NewMemoryPaymentMethodRepository creates an empty repository
func NewMemoryPaymentMethodRepository() *MemoryPaymentMethodRepository {
	return &MemoryPaymentMethodRepository{
		registrations: make(map[models.ID]*domain.Registration),
	}
}

// Save stores a registration, replacing any previous one with the same ID
func (r *MemoryPaymentMethodRepository) Save(ctx context.Context, registration *domain.Registration) error {
	if registration == nil || registration.ID == "" {
		return errors.New("registration must have an ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations[registration.ID] = registration
	return nil
}

// FindByID returns nil, nil when the ID is unknown
func (r *MemoryPaymentMethodRepository) FindByID(ctx context.Context, id models.ID) (*domain.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.registrations[id], nil
}
