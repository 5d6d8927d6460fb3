package countdown

import (
	"sync"
	"time"
)

// Scheduler drives a Machine with a recurring tick for the machine's
// whole mounted lifetime. Pause gating lives in the machine, so the
// schedule itself never starts or stops with the running flag.
type Scheduler struct {
	mu       sync.Mutex
	machine  *Machine
	interval time.Duration
	stopCh   chan struct{}
	running  bool
}

// NewScheduler creates a scheduler for the given machine. A non-positive
// interval defaults to one second.
func NewScheduler(machine *Machine, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Scheduler{
		machine:  machine,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the ticking loop.
func (scheduler *Scheduler) Start() {
	scheduler.mu.Lock()
	if scheduler.running {
		scheduler.mu.Unlock()
		return
	}
	scheduler.running = true
	scheduler.mu.Unlock()

	go scheduler.run()
}

// Stop cancels the recurring tick. The loop exits and no further ticks
// fire; Machine.Close guards against anything already in flight.
func (scheduler *Scheduler) Stop() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if !scheduler.running {
		return
	}
	scheduler.running = false
	close(scheduler.stopCh)
}

func (scheduler *Scheduler) run() {
	ticker := time.NewTicker(scheduler.interval)
	defer ticker.Stop()

	for {
		select {
		case <-scheduler.stopCh:
			return
		case <-ticker.C:
			scheduler.machine.Tick()
		}
	}
}
