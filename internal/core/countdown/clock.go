package countdown

import "time"

// Clock supplies wall-clock time. The machine reads it only to measure
// time elapsed across host suspension, so it must keep advancing while
// the process is not scheduled.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
