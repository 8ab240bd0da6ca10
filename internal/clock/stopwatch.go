package clock

import "time"

// Stopwatch measures elapsed time against a Clock.
//
// While running, Elapsed grows with the clock; once stopped, it freezes at
// the stop instant until restarted or reset.
type Stopwatch struct {
	clock   Clock
	start   time.Time
	end     time.Time
	running bool
}

// NewStopwatch creates a stopped stopwatch. Call Start to begin measuring.
func NewStopwatch(c Clock) *Stopwatch {
	now := c.Now()
	return &Stopwatch{clock: c, start: now, end: now}
}

// Start begins measuring. Calling Start on a running stopwatch does nothing.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.start = s.clock.Now()
	s.end = s.start
}

// Stop freezes the elapsed time at the current instant.
func (s *Stopwatch) Stop() {
	s.running = false
	s.end = s.clock.Now()
}

// Restart resets the start instant to now and keeps the stopwatch running.
func (s *Stopwatch) Restart() {
	s.start = s.clock.Now()
	s.end = s.start
	s.running = true
}

// Reset resets the start instant to now and stops the stopwatch.
func (s *Stopwatch) Reset() {
	s.start = s.clock.Now()
	s.end = s.start
	s.running = false
}

// Running reports whether the stopwatch is currently measuring.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the measured duration.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.clock.Now().Sub(s.start)
	}
	return s.end.Sub(s.start)
}

// ElapsedSeconds returns the measured duration in seconds.
func (s *Stopwatch) ElapsedSeconds() float64 {
	return s.Elapsed().Seconds()
}
