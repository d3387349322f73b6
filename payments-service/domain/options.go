package domain

import (
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/draftea/payment-simulator/shared/clock"
	"github.com/shopspring/decimal"
)

const (
	DefaultExpirationDate = "12/29"
	DefaultWalletLatency  = time.Second
)

// DefaultStartingBalance is the balance every new wallet starts with
var DefaultStartingBalance = decimal.NewFromInt(500)

// RandomSource draws the simulated network outcome of a card charge.
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewSeededRandomSource returns a RandomSource safe to share between
// methods. A zero seed uses the current time.
func NewSeededRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

type settings struct {
	clock           clock.Clock
	sleeper         clock.Sleeper
	notifier        Notifier
	random          RandomSource
	expirationDate  string
	startingBalance decimal.Decimal
	latency         time.Duration
}

func defaultSettings() settings {
	return settings{
		clock:           clock.System{},
		sleeper:         clock.System{},
		notifier:        NewWriterNotifier(os.Stdout),
		expirationDate:  DefaultExpirationDate,
		startingBalance: DefaultStartingBalance,
		latency:         DefaultWalletLatency,
	}
}

func newSettings(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.random == nil {
		s.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Option configures a payment method at construction time. Options that do
// not apply to a given method are ignored by it.
type Option func(*settings)

// WithClock sets the clock used to timestamp transaction records
func WithClock(c clock.Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithNotifier sets where status lines are emitted
func WithNotifier(n Notifier) Option {
	return func(s *settings) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithRandomSource sets the random source for card outcomes
func WithRandomSource(r RandomSource) Option {
	return func(s *settings) {
		if r != nil {
			s.random = r
		}
	}
}

// WithSleeper sets the sleeper used for the wallet's simulated latency
func WithSleeper(sl clock.Sleeper) Option {
	return func(s *settings) {
		if sl != nil {
			s.sleeper = sl
		}
	}
}

// WithLatency overrides the wallet's simulated network latency
func WithLatency(d time.Duration) Option {
	return func(s *settings) {
		if d >= 0 {
			s.latency = d
		}
	}
}

// WithStartingBalance overrides the wallet's initial balance
func WithStartingBalance(balance decimal.Decimal) Option {
	return func(s *settings) {
		s.startingBalance = balance
	}
}

// WithExpirationDate overrides the card's expiration date
func WithExpirationDate(date string) Option {
	return func(s *settings) {
		s.expirationDate = date
	}
}
