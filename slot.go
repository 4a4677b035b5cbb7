package postpilot

import "time"

// DefaultSlotHours are the daily anchor hours eligible for publishing.
var DefaultSlotHours = []int{9, 12, 18}

// ReminderLead is how far ahead of the slot the reminder is set.
const ReminderLead = 15 * time.Minute

// Slot is a publishing time selected for a post, with its reminder time.
// Slots are derived from the current time and never persisted.
type Slot struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	ReminderAt  time.Time `json:"reminder_at"`
}

// NextSlot returns the next eligible publishing slot strictly after now,
// using DefaultSlotHours as the daily anchors.
func NextSlot(now time.Time) Slot {
	return NextSlotAt(now, DefaultSlotHours)
}

// NextSlotAt returns the earliest anchor today strictly after now, or the
// first anchor tomorrow if every anchor has already passed. Anchor hours
// must be sorted ascending. The result is in now's location.
func NextSlotAt(now time.Time, hours []int) Slot {
	if len(hours) == 0 {
		hours = DefaultSlotHours
	}
	year, month, day := now.Date()
	for _, h := range hours {
		anchor := time.Date(year, month, day, h, 0, 0, 0, now.Location())
		if anchor.After(now) {
			return newSlot(anchor)
		}
	}
	first := time.Date(year, month, day, hours[0], 0, 0, 0, now.Location())
	return newSlot(first.AddDate(0, 0, 1))
}

func newSlot(at time.Time) Slot {
	return Slot{
		ScheduledAt: at,
		ReminderAt:  at.Add(-ReminderLead),
	}
}

// Delay returns how long to wait from now until the slot. A non-positive
// result means the slot is already due.
func (s Slot) Delay(now time.Time) time.Duration {
	return s.ScheduledAt.Sub(now)
}
