package countdown

import (
	"sync"
	"time"

	"tickdown/internal/core/model"
)

// State represents the current countdown mode.
type State string

const (
	// StateHolding means time remains but ticks are not advancing it,
	// either because Running is false or because the last processed
	// value matches the current one.
	StateHolding State = "holding"
	// StateActive means accepted ticks are consuming remaining time.
	StateActive State = "active"
	// StateFinished means the countdown reached zero and is stable there.
	StateFinished State = "finished"
)

// Machine owns one countdown's remaining duration and decides, per tick,
// whether to decrement, finish, or hold.
//
// All callbacks into the machine (Tick, EnterBackground, EnterForeground,
// Reconfigure) are expected to arrive serialized on the host's event
// goroutine; the mutex exists so a genuinely multithreaded host stays
// correct, not to make concurrent callers a supported pattern. Hooks are
// invoked without the lock held, so they may call back into the machine.
type Machine struct {
	mu          sync.Mutex
	clock       Clock
	config      model.Config
	remaining   time.Duration
	previous    time.Duration
	hasPrevious bool
	suspendedAt time.Time
	closed      bool
}

// New creates a machine initialized to the configured duration.
// A nil clock falls back to SystemClock.
func New(config model.Config, clock Clock) *Machine {
	if clock == nil {
		clock = SystemClock
	}
	return &Machine{
		clock:     clock,
		config:    config,
		remaining: clampDuration(config.InitialDuration),
	}
}

// Tick processes one scheduled second. A tick that finds the last
// processed value unchanged, or the running gate closed, is a no-op;
// the scheduler never needs to know whether the countdown is paused.
func (machine *Machine) Tick() {
	machine.mu.Lock()
	if machine.closed || !machine.config.Running ||
		(machine.hasPrevious && machine.previous == machine.remaining) {
		machine.mu.Unlock()
		return
	}
	remaining := machine.remaining
	previousWasOne := machine.hasPrevious && machine.previous == time.Second
	onFinish := machine.config.OnFinish
	onChange := machine.config.OnChange
	machine.mu.Unlock()

	// Finish fires before the state mutates. The second clause covers a
	// countdown that lands on zero without ever passing through 1s, such
	// as a zero or fractional initial duration.
	if remaining == time.Second || (remaining == 0 && !previousWasOne) {
		if onFinish != nil {
			onFinish()
		}
	}

	if remaining == 0 {
		machine.mu.Lock()
		if !machine.closed {
			machine.previous = 0
			machine.hasPrevious = true
		}
		machine.mu.Unlock()
		return
	}

	// The change hook reports the value at the start of the second being
	// consumed, not the remainder after it. Consumers depend on this.
	if onChange != nil {
		onChange(remaining)
	}

	machine.mu.Lock()
	if !machine.closed {
		machine.previous = remaining
		machine.hasPrevious = true
		machine.remaining = clampDuration(remaining - time.Second)
	}
	machine.mu.Unlock()
}

// EnterBackground records the suspension time so the next foreground
// transition can reconcile the ticks the host never delivered.
func (machine *Machine) EnterBackground() {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.closed {
		return
	}
	machine.suspendedAt = machine.clock.Now()
}

// EnterForeground applies the suspension correction and reports the
// elapsed time that was subtracted. While the running gate is closed no
// correction happens, matching the per-tick gate.
func (machine *Machine) EnterForeground() time.Duration {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.closed || machine.suspendedAt.IsZero() {
		machine.suspendedAt = time.Time{}
		return 0
	}
	suspendedAt := machine.suspendedAt
	machine.suspendedAt = time.Time{}
	if !machine.config.Running {
		return 0
	}
	elapsed := machine.clock.Now().Sub(suspendedAt)
	if elapsed < 0 {
		// Clock skew. Remaining must never increase.
		elapsed = 0
	}
	machine.previous = machine.remaining
	machine.hasPrevious = true
	machine.remaining = clampDuration(machine.remaining - elapsed)
	return elapsed
}

// Reconfigure replaces the configuration. A changed identity resets the
// countdown to the new initial duration; otherwise remaining is kept.
func (machine *Machine) Reconfigure(config model.Config) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.closed {
		return
	}
	identityChanged := config.Identity != machine.config.Identity
	machine.config = config
	if identityChanged {
		machine.resetLocked(config.InitialDuration)
	}
}

// Reset restores the configured initial duration.
func (machine *Machine) Reset() {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.closed {
		return
	}
	machine.resetLocked(machine.config.InitialDuration)
}

// SetRunning opens or closes the tick gate. The scheduler keeps firing
// either way; pausing is purely a data condition.
func (machine *Machine) SetRunning(running bool) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.closed {
		return
	}
	machine.config.Running = running
}

// Close tears the machine down. Ticks and lifecycle transitions arriving
// afterwards are no-ops, never faults.
func (machine *Machine) Close() {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	machine.closed = true
}

// Remaining returns the seconds left.
func (machine *Machine) Remaining() time.Duration {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.remaining
}

// Running reports whether the tick gate is open.
func (machine *Machine) Running() bool {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.config.Running
}

// Units returns the configured display components.
func (machine *Machine) Units() model.UnitSet {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.config.Units
}

// State derives the current mode from the stored values.
func (machine *Machine) State() State {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.remaining == 0 {
		return StateFinished
	}
	if machine.config.Running && !(machine.hasPrevious && machine.previous == machine.remaining) {
		return StateActive
	}
	return StateHolding
}

// Breakdown returns the current day/hour/minute/second components.
func (machine *Machine) Breakdown() Breakdown {
	return Split(machine.Remaining())
}

func (machine *Machine) resetLocked(initial time.Duration) {
	machine.previous = machine.remaining
	machine.hasPrevious = true
	machine.remaining = clampDuration(initial)
}

func clampDuration(value time.Duration) time.Duration {
	if value < 0 {
		return 0
	}
	return value
}
