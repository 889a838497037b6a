package domain

import (
	"fmt"
	"time"
)

// SlotTolerance is the symmetric distance a requested time may sit from a
// canonical slot and still be accepted. The same duration is the half-width
// of the conflict window used for table assignment, so two bookings more
// than 30 minutes apart never contend for a table.
const SlotTolerance = 30 * time.Minute

// ParseSlot parses a canonical "HH:MM" slot into minutes since midnight.
func ParseSlot(slot string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(slot, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse slot %q: %w", slot, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("slot %q is not a valid 24h time", slot)
	}
	return h*60 + m, nil
}

// IsTimeAllowed reports whether t falls within SlotTolerance (inclusive) of
// at least one slot. Comparison is on minutes-of-day in t's own location;
// the caller resolves the timezone. Malformed slots are skipped.
func IsTimeAllowed(slots []string, t time.Time) bool {
	in := t.Hour()*60 + t.Minute()
	tol := int(SlotTolerance.Minutes())
	for _, s := range slots {
		m, err := ParseSlot(s)
		if err != nil {
			continue
		}
		d := in - m
		if d < 0 {
			d = -d
		}
		if d <= tol {
			return true
		}
	}
	return false
}

// ConflictWindow returns the inclusive [t-30m, t+30m] interval during which
// a table assigned at t is considered occupied.
func ConflictWindow(t time.Time) (start, end time.Time) {
	return t.Add(-SlotTolerance), t.Add(SlotTolerance)
}
