package infrastructure

import (
	"context"
	"time"

	"github.com/draftea/payment-simulator/shared/events"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

var _ events.Publisher = (*BreakerPublisher)(nil)

// BreakerSettings configures the circuit around a publisher
type BreakerSettings struct {
	Name                string
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

// BreakerPublisher stops calling a failing publisher for a while instead of
// paying its timeout on every payment
type BreakerPublisher struct {
	next    events.Publisher
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerPublisher wraps next with a circuit breaker
func NewBreakerPublisher(next events.Publisher, settings BreakerSettings, onStateChange func(name string, from, to gobreaker.State)) *BreakerPublisher {
	failures := settings.ConsecutiveFailures
	if failures == 0 {
		failures = 5
	}

	return &BreakerPublisher{
		next: next,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        settings.Name,
			MaxRequests: 1,
			Timeout:     settings.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			OnStateChange: onStateChange,
		}),
	}
}

// Publish forwards to the wrapped publisher unless the circuit is open
func (p *BreakerPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.next.Publish(ctx, evts...)
	})
	if err != nil {
		return errors.Wrapf(err, "publisher %s", p.breaker.Name())
	}
	return nil
}

// State returns the current circuit state
func (p *BreakerPublisher) State() gobreaker.State {
	return p.breaker.State()
}
