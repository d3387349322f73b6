package clock

import "time"

// Clock provides the current wall-clock time
type Clock interface {
	Now() time.Time
}

// Sleeper blocks the caller for a duration
type Sleeper interface {
	Sleep(d time.Duration)
}

// System is the real clock and sleeper
type System struct{}

// Now returns time.Now
func (System) Now() time.Time {
	return time.Now()
}

// Sleep calls time.Sleep
func (System) Sleep(d time.Duration) {
	time.Sleep(d)
}
