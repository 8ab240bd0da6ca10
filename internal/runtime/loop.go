package runtime

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/blomq/psygo/internal/clock"
	"github.com/blomq/psygo/internal/event"
	"github.com/blomq/psygo/internal/input"
)

// Config holds the loop timing parameters.
//
// FixedUpdateFrequency and MaxFixedUpdatesPerTick are contract-checked in
// New: zero or negative values are programmer errors and panic rather than
// being clamped, since silent clamping would hide the caller's bug.
type Config struct {
	// FixedUpdateFrequency is the simulation rate in Hz; the fixed timestep
	// is its reciprocal.
	FixedUpdateFrequency int
	// MaxFixedUpdatesPerTick caps catch-up iterations within one frame so a
	// slow machine cannot enter the spiral of death.
	MaxFixedUpdatesPerTick int
	// MaxFrameTime clamps the measured frame delta, in seconds, so pauses
	// and debugger stalls cannot flood the accumulator. Zero selects the
	// default of 1.0; negative values panic.
	MaxFrameTime float64
}

// DefaultMaxFrameTime is the frame delta clamp applied when Config leaves
// MaxFrameTime at zero.
const DefaultMaxFrameTime = 1.0

// Deps are the collaborators a Loop drives. Surface, Events, Input and
// Dispatcher are required; Clock defaults to the system clock and Log to the
// package default logger.
type Deps struct {
	Surface    Surface
	Events     event.Source
	Input      *input.Registry
	Dispatcher Dispatcher
	Clock      clock.Clock
	Log        *log.Logger
}

// Loop is the fixed-timestep main loop driver.
//
// The loop is single threaded: events, input sampling, fixed and variable
// updates and rendering all run synchronously on the goroutine that calls
// Run (or Tick). Cancellation is cooperative via Quit, honored at the top of
// the next iteration.
type Loop struct {
	surface    Surface
	events     event.Source
	input      *input.Registry
	dispatcher Dispatcher
	clock      clock.Clock
	log        *log.Logger

	step     float64
	maxSteps int
	maxFrame float64

	phase         Phase
	quitRequested bool
	lagging       bool
	accumulated   float64
	lastFrame     time.Time
	lastLagWarn   time.Time
}

// New creates a loop from validated config and collaborators. It panics on
// contract violations (bad timing parameters, missing collaborators).
func New(cfg Config, deps Deps) *Loop {
	if cfg.FixedUpdateFrequency <= 0 {
		panic(fmt.Sprintf("runtime: FixedUpdateFrequency must be positive, got %d", cfg.FixedUpdateFrequency))
	}
	if cfg.MaxFixedUpdatesPerTick < 1 {
		panic(fmt.Sprintf("runtime: MaxFixedUpdatesPerTick must be at least 1, got %d", cfg.MaxFixedUpdatesPerTick))
	}
	if cfg.MaxFrameTime < 0 {
		panic(fmt.Sprintf("runtime: MaxFrameTime must not be negative, got %v", cfg.MaxFrameTime))
	}
	if deps.Surface == nil || deps.Events == nil || deps.Input == nil || deps.Dispatcher == nil {
		panic("runtime: Surface, Events, Input and Dispatcher are required")
	}

	maxFrame := cfg.MaxFrameTime
	if maxFrame == 0 {
		maxFrame = DefaultMaxFrameTime
	}
	c := deps.Clock
	if c == nil {
		c = clock.System{}
	}
	logger := deps.Log
	if logger == nil {
		logger = log.Default()
	}

	return &Loop{
		surface:    deps.Surface,
		events:     deps.Events,
		input:      deps.Input,
		dispatcher: deps.Dispatcher,
		clock:      c,
		log:        logger,
		step:       1.0 / float64(cfg.FixedUpdateFrequency),
		maxSteps:   cfg.MaxFixedUpdatesPerTick,
		maxFrame:   maxFrame,
	}
}

// Run iterates until the loop stops, yielding briefly between iterations to
// reduce idle CPU usage. It returns an error if the loop was already started;
// a stopped loop cannot be restarted.
func (l *Loop) Run() error {
	if l.phase != PhaseNotStarted {
		return errors.New("runtime: loop already started")
	}
	for l.Tick() {
		// Courtesy yield, not a frame-rate limiter.
		time.Sleep(time.Millisecond)
	}
	return nil
}

// Tick executes one loop iteration and reports whether the loop is still
// running. Platforms that own their own frame callback (ebiten) call Tick
// once per frame instead of Run.
func (l *Loop) Tick() bool {
	if l.phase == PhaseStopped {
		return false
	}
	if l.phase == PhaseNotStarted {
		l.start()
	}
	if l.quitRequested {
		l.phase = PhaseStopped
		return false
	}

	now := l.clock.Now()
	frameDelta := now.Sub(l.lastFrame).Seconds()
	if frameDelta > l.maxFrame {
		frameDelta = l.maxFrame
	}
	l.lastFrame = now
	l.accumulated += frameDelta

	// Events first, then snapshot input for this frame.
	if l.pumpEvents(now) {
		l.phase = PhaseStopped
		return false
	}
	l.input.Tick(now)

	// Bounded catch-up.
	steps := 0
	for l.accumulated >= l.step && steps < l.maxSteps {
		l.accumulated -= l.step
		steps++
		l.dispatcher.FixedUpdate(l.step)
	}

	if l.accumulated >= l.step {
		// Still behind: drop the excess but keep the phase remainder so
		// interpolation stays continuous.
		l.accumulated = math.Mod(l.accumulated, l.step)
		l.lagging = true
		if now.Sub(l.lastLagWarn) >= time.Second {
			l.log.Warn("fixed update lagging, dropped extra steps",
				"stepsRun", steps, "fixedTimeStep", l.step)
			l.lastLagWarn = now
		}
	} else {
		l.lagging = false
		l.lastLagWarn = now
	}

	// Variable-step update for render-side logic.
	l.dispatcher.Update(frameDelta)

	// Interpolation factor for smooth rendering, always in [0, 1).
	alpha := l.accumulated / l.step
	l.surface.Clear()
	l.dispatcher.Render(l.surface, alpha)
	l.surface.Present()

	return true
}

// Quit requests cooperative termination. The current iteration completes;
// the loop stops at the top of the next one.
func (l *Loop) Quit() {
	l.quitRequested = true
}

// Phase returns the loop's lifecycle state.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Running reports whether the loop is still iterating.
func (l *Loop) Running() bool {
	return l.phase == PhaseRunning
}

// Lagging reports whether the last iteration hit the catch-up cap with
// simulation time still owed.
func (l *Loop) Lagging() bool {
	return l.lagging
}

// Interpolation returns the leftover accumulator fraction from the last
// iteration, in [0, 1).
func (l *Loop) Interpolation() float64 {
	return l.accumulated / l.step
}

// FixedTimeStep returns the fixed simulation timestep in seconds.
func (l *Loop) FixedTimeStep() float64 {
	return l.step
}

func (l *Loop) start() {
	l.phase = PhaseRunning
	l.lastFrame = l.clock.Now()
	l.lastLagWarn = l.lastFrame
}

// pumpEvents drains the event source once, routing device events into the
// input registry and every event to the dispatcher. A quit event ends the
// pump immediately and reports true.
func (l *Loop) pumpEvents(now time.Time) (quit bool) {
	for _, ev := range l.events.Poll() {
		switch e := ev.(type) {
		case event.Quit:
			return true
		case event.KeyDown:
			// OS key repeats must not restamp the press time.
			if !e.Repeat {
				l.input.KeyPress(e.Key, now)
			}
		case event.KeyUp:
			l.input.KeyRelease(e.Key)
		case event.MouseButtonDown:
			l.input.MousePress(e.Button, now)
		case event.MouseButtonUp:
			l.input.MouseRelease(e.Button)
		case event.GamepadButtonDown:
			l.input.GamepadPress(e.Joystick, e.Button, now)
		case event.GamepadButtonUp:
			l.input.GamepadRelease(e.Joystick, e.Button)
		case event.GamepadAxisMotion:
			l.input.AxisMotion(e.Joystick, e.Axis, e.Value)
		case event.GamepadRemoved:
			l.input.RemoveJoystick(e.Joystick)
		}
		l.dispatcher.HandleEvent(ev)
	}
	return false
}
