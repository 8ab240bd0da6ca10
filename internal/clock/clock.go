// Package clock provides the monotonic time source used by the runtime loop
// and the input registry, plus a small stopwatch utility.
//
// All timestamps are time.Time values carrying Go's monotonic reading, so
// subtraction is safe across wall-clock adjustments. Absolute values have no
// meaning across process runs.
package clock

import "time"

// Clock is a monotonic time source.
//
// The runtime samples it once per iteration; the input registry stamps button
// press times with the sampled value. Injecting a Clock (rather than calling
// time.Now directly) keeps the loop and the input state machine fully
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

// System is the production Clock backed by time.Now.
type System struct{}

// Now returns the current monotonic time.
func (System) Now() time.Time {
	return time.Now()
}

// Manual is a Clock whose time only moves when Advance is called.
// Intended for tests.
type Manual struct {
	now time.Time
}

// NewManual creates a Manual clock starting at an arbitrary fixed instant.
func NewManual() *Manual {
	return &Manual{now: time.Unix(0, 0)}
}

// Now returns the clock's current instant.
func (m *Manual) Now() time.Time {
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Set moves the clock to t. Moving backwards is the caller's mistake; the
// clock does not guard against it.
func (m *Manual) Set(t time.Time) {
	m.now = t
}
