package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickdown/internal/core/model"
)

type fakeClock struct {
	now time.Time
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

type hookRecorder struct {
	finishes int
	changes  []time.Duration
}

func (recorder *hookRecorder) config(identity string, initial time.Duration, running bool) model.Config {
	return model.Config{
		Identity:        identity,
		InitialDuration: initial,
		Running:         running,
		Units:           model.AllUnits(),
		OnFinish:        func() { recorder.finishes++ },
		OnChange:        func(value time.Duration) { recorder.changes = append(recorder.changes, value) },
	}
}

func TestTicksDecrementBySecondUntilZero(t *testing.T) {
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", 5*time.Second, true), nil)

	for expected := 5 * time.Second; expected > 0; expected -= time.Second {
		require.Equal(t, expected, machine.Remaining())
		machine.Tick()
		require.Equal(t, expected-time.Second, machine.Remaining())
	}

	// Holding at zero: the finishing tick already ran, further ticks only
	// stabilize and then skip.
	for i := 0; i < 4; i++ {
		machine.Tick()
		assert.Equal(t, time.Duration(0), machine.Remaining())
	}
	assert.Equal(t, StateFinished, machine.State())
}

func TestTickReportsPreDecrementValue(t *testing.T) {
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", 3*time.Second, true), nil)

	for i := 0; i < 6; i++ {
		machine.Tick()
	}

	// The change hook sees the value at the start of each consumed second.
	assert.Equal(t, []time.Duration{3 * time.Second, 2 * time.Second, time.Second}, recorder.changes)
}

func TestFinishFiresExactlyOncePerRun(t *testing.T) {
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", 2*time.Second, true), nil)

	for i := 0; i < 10; i++ {
		machine.Tick()
	}

	assert.Equal(t, 1, recorder.finishes)
	assert.Equal(t, time.Duration(0), machine.Remaining())
}

func TestZeroInitialDurationFinishesImmediately(t *testing.T) {
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", 0, true), nil)

	for i := 0; i < 3; i++ {
		machine.Tick()
	}

	assert.Equal(t, 1, recorder.finishes)
	assert.Empty(t, recorder.changes)
}

func TestNegativeInitialDurationClampsToZero(t *testing.T) {
	machine := New(model.Config{Identity: "a", InitialDuration: -30 * time.Second, Running: true}, nil)
	assert.Equal(t, time.Duration(0), machine.Remaining())
}

func TestFractionalDurationFinishes(t *testing.T) {
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", 2500*time.Millisecond, true), nil)

	machine.Tick()
	assert.Equal(t, 1500*time.Millisecond, machine.Remaining())
	machine.Tick()
	assert.Equal(t, 500*time.Millisecond, machine.Remaining())
	machine.Tick()
	assert.Equal(t, time.Duration(0), machine.Remaining())
	assert.Zero(t, recorder.finishes)

	// Never passed through exactly 1s; finish fires on the tick that finds
	// zero with a non-1s previous value.
	machine.Tick()
	assert.Equal(t, 1, recorder.finishes)
	machine.Tick()
	assert.Equal(t, 1, recorder.finishes)
}

func TestPausedTicksFreezeRemaining(t *testing.T) {
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", 10*time.Second, true), nil)

	machine.Tick()
	require.Equal(t, 9*time.Second, machine.Remaining())

	machine.SetRunning(false)
	for i := 0; i < 25; i++ {
		machine.Tick()
	}
	assert.Equal(t, 9*time.Second, machine.Remaining())
	assert.Equal(t, 1, len(recorder.changes))
	assert.Equal(t, StateHolding, machine.State())

	machine.SetRunning(true)
	machine.Tick()
	assert.Equal(t, 8*time.Second, machine.Remaining())
}

func TestUnchangedValueSkipsHooks(t *testing.T) {
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", time.Second, true), nil)

	for i := 0; i < 8; i++ {
		machine.Tick()
	}

	assert.Equal(t, 1, recorder.finishes)
	assert.Equal(t, []time.Duration{time.Second}, recorder.changes)
}

func TestIdentityChangeResetsRemaining(t *testing.T) {
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", 10*time.Second, true), nil)

	machine.Tick()
	machine.Tick()
	require.Equal(t, 8*time.Second, machine.Remaining())

	machine.Reconfigure(recorder.config("b", 42*time.Second, true))
	assert.Equal(t, 42*time.Second, machine.Remaining())

	machine.Reconfigure(recorder.config("c", -5*time.Second, true))
	assert.Equal(t, time.Duration(0), machine.Remaining())
}

func TestReconfigureSameIdentityKeepsRemaining(t *testing.T) {
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", 10*time.Second, true), nil)

	machine.Tick()
	machine.Reconfigure(recorder.config("a", 99*time.Second, true))
	assert.Equal(t, 9*time.Second, machine.Remaining())
}

func TestBackgroundResumeSubtractsElapsed(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", 100*time.Second, true), clock)

	machine.EnterBackground()
	clock.now = clock.now.Add(30400 * time.Millisecond)
	corrected := machine.EnterForeground()

	assert.Equal(t, 30400*time.Millisecond, corrected)
	assert.Equal(t, 69600*time.Millisecond, machine.Remaining())

	// The correction snapshots the pre-correction value, so the next tick
	// is processed rather than skipped.
	machine.Tick()
	assert.Equal(t, 68600*time.Millisecond, machine.Remaining())
	assert.Equal(t, []time.Duration{69600 * time.Millisecond}, recorder.changes)
}

func TestBackgroundLongerThanRemainingClampsToZero(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	machine := New(model.Config{Identity: "a", InitialDuration: 10 * time.Second, Running: true}, clock)

	machine.EnterBackground()
	clock.now = clock.now.Add(time.Hour)
	machine.EnterForeground()

	assert.Equal(t, time.Duration(0), machine.Remaining())
}

func TestClockSkewNeverIncreasesRemaining(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	machine := New(model.Config{Identity: "a", InitialDuration: 100 * time.Second, Running: true}, clock)

	machine.EnterBackground()
	clock.now = clock.now.Add(-time.Minute)
	corrected := machine.EnterForeground()

	assert.Equal(t, time.Duration(0), corrected)
	assert.Equal(t, 100*time.Second, machine.Remaining())
}

func TestNoCorrectionWhileNotRunning(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	machine := New(model.Config{Identity: "a", InitialDuration: 100 * time.Second, Running: false}, clock)

	machine.EnterBackground()
	clock.now = clock.now.Add(time.Minute)
	corrected := machine.EnterForeground()

	assert.Equal(t, time.Duration(0), corrected)
	assert.Equal(t, 100*time.Second, machine.Remaining())

	// suspendedAt was cleared even though no correction applied.
	clock.now = clock.now.Add(time.Minute)
	machine.SetRunning(true)
	assert.Equal(t, time.Duration(0), machine.EnterForeground())
	assert.Equal(t, 100*time.Second, machine.Remaining())
}

func TestForegroundWithoutBackgroundIsNoop(t *testing.T) {
	machine := New(model.Config{Identity: "a", InitialDuration: 100 * time.Second, Running: true}, nil)
	assert.Equal(t, time.Duration(0), machine.EnterForeground())
	assert.Equal(t, 100*time.Second, machine.Remaining())
}

func TestCallbacksAfterCloseAreNoops(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", 10*time.Second, true), clock)

	machine.Close()
	machine.Tick()
	machine.EnterBackground()
	clock.now = clock.now.Add(time.Minute)
	machine.EnterForeground()
	machine.Reset()

	assert.Equal(t, 10*time.Second, machine.Remaining())
	assert.Zero(t, recorder.finishes)
	assert.Empty(t, recorder.changes)
}

func TestResetFromFinishedRestartsRun(t *testing.T) {
	recorder := &hookRecorder{}
	machine := New(recorder.config("a", 2*time.Second, true), nil)

	for i := 0; i < 5; i++ {
		machine.Tick()
	}
	require.Equal(t, 1, recorder.finishes)
	require.Equal(t, StateFinished, machine.State())

	machine.Reset()
	assert.Equal(t, 2*time.Second, machine.Remaining())

	for i := 0; i < 5; i++ {
		machine.Tick()
	}
	assert.Equal(t, 2, recorder.finishes)
}

func TestRemainingNeverNegative(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	machine := New(model.Config{Identity: "a", InitialDuration: 1500 * time.Millisecond, Running: true}, clock)

	for i := 0; i < 4; i++ {
		machine.Tick()
		assert.GreaterOrEqual(t, machine.Remaining(), time.Duration(0))
	}

	machine.Reset()
	machine.EnterBackground()
	clock.now = clock.now.Add(time.Hour)
	machine.EnterForeground()
	assert.GreaterOrEqual(t, machine.Remaining(), time.Duration(0))
}

func TestMissingHooksAreSkippedSilently(t *testing.T) {
	machine := New(model.Config{Identity: "a", InitialDuration: 2 * time.Second, Running: true}, nil)
	for i := 0; i < 5; i++ {
		machine.Tick()
	}
	assert.Equal(t, time.Duration(0), machine.Remaining())
}

func TestStateTransitions(t *testing.T) {
	machine := New(model.Config{Identity: "a", InitialDuration: 2 * time.Second, Running: false}, nil)
	assert.Equal(t, StateHolding, machine.State())

	machine.SetRunning(true)
	assert.Equal(t, StateActive, machine.State())

	machine.Tick()
	machine.Tick()
	assert.Equal(t, StateFinished, machine.State())
}
