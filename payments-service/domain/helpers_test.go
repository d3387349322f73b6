package domain

import (
	"sync"
	"time"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type recordingSleeper struct {
	slept []time.Duration
}

func (s *recordingSleeper) Sleep(d time.Duration) {
	s.slept = append(s.slept, d)
}

// sequenceRandom returns the configured values in order, cycling
type sequenceRandom struct {
	values []int
	next   int
}

func (r *sequenceRandom) Intn(n int) int {
	v := r.values[r.next%len(r.values)] % n
	r.next++
	return v
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

var testTime = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
