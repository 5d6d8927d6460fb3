package countdown

import "time"

// Breakdown holds the integer day/hour/minute/second components of a
// remaining duration. Zero-padding and labels are the display layer's job.
type Breakdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Split converts a remaining duration into its display components.
// Fractional seconds are floored away; negative input counts as zero.
func Split(remaining time.Duration) Breakdown {
	if remaining < 0 {
		remaining = 0
	}
	total := int(remaining / time.Second)
	return Breakdown{
		Days:    total / 86400,
		Hours:   total / 3600 % 24,
		Minutes: total / 60 % 60,
		Seconds: total % 60,
	}
}
