package postpilot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(hour, min int) time.Time {
	return time.Date(2024, 1, 1, hour, min, 0, 0, time.Local)
}

func TestNextSlot(t *testing.T) {
	t.Run("before first anchor", func(t *testing.T) {
		slot := NextSlot(date(8, 0))
		require.Equal(t, date(9, 0), slot.ScheduledAt)
		require.Equal(t, date(8, 45), slot.ReminderAt)
	})

	t.Run("between anchors", func(t *testing.T) {
		slot := NextSlot(date(10, 30))
		require.Equal(t, date(12, 0), slot.ScheduledAt)
	})

	t.Run("after last anchor rolls to tomorrow", func(t *testing.T) {
		slot := NextSlot(date(19, 0))
		require.Equal(t, time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local), slot.ScheduledAt)
	})

	t.Run("anchor boundary is strictly after", func(t *testing.T) {
		slot := NextSlot(date(9, 0))
		require.Equal(t, date(12, 0), slot.ScheduledAt)

		slot = NextSlot(date(18, 0))
		require.Equal(t, time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local), slot.ScheduledAt)
	})

	t.Run("always strictly after now", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			for _, min := range []int{0, 1, 59} {
				now := date(hour, min)
				slot := NextSlot(now)
				require.True(t, slot.ScheduledAt.After(now), "slot %v not after %v", slot.ScheduledAt, now)
				require.Equal(t, ReminderLead, slot.ScheduledAt.Sub(slot.ReminderAt))
			}
		}
	})

	t.Run("custom anchors", func(t *testing.T) {
		slot := NextSlotAt(date(11, 0), []int{10, 14})
		require.Equal(t, date(14, 0), slot.ScheduledAt)

		slot = NextSlotAt(date(15, 0), []int{10, 14})
		require.Equal(t, time.Date(2024, 1, 2, 10, 0, 0, 0, time.Local), slot.ScheduledAt)
	})
}

func TestSlotDelay(t *testing.T) {
	slot := NextSlot(date(8, 0))
	require.Equal(t, time.Hour, slot.Delay(date(8, 0)))
	require.Negative(t, slot.Delay(date(9, 30)))
}
