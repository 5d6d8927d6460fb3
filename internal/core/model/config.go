package model

import "time"

// Unit identifies one displayable component of a countdown.
type Unit string

const (
	UnitDays    Unit = "days"
	UnitHours   Unit = "hours"
	UnitMinutes Unit = "minutes"
	UnitSeconds Unit = "seconds"
)

// Units lists all components in display order.
var Units = []Unit{UnitDays, UnitHours, UnitMinutes, UnitSeconds}

// UnitSet selects which components the presentation layer renders.
type UnitSet struct {
	Days    bool
	Hours   bool
	Minutes bool
	Seconds bool
}

// AllUnits returns a set with every component shown.
func AllUnits() UnitSet {
	return UnitSet{Days: true, Hours: true, Minutes: true, Seconds: true}
}

// Has reports whether the given unit is selected.
func (set UnitSet) Has(unit Unit) bool {
	switch unit {
	case UnitDays:
		return set.Days
	case UnitHours:
		return set.Hours
	case UnitMinutes:
		return set.Minutes
	case UnitSeconds:
		return set.Seconds
	}
	return false
}

// Config contains the runtime configuration for one countdown.
// Changing Identity resets the countdown to InitialDuration; every other
// field may be updated in place through Machine.Reconfigure.
type Config struct {
	Identity        string
	InitialDuration time.Duration
	Running         bool
	Units           UnitSet

	// Optional hooks. OnChange receives the remaining value as it stood
	// when the consumed second began. Both are invoked synchronously on
	// the goroutine that processes the tick.
	OnFinish func()
	OnChange func(time.Duration)
}
