package postpilot

import (
	"context"
	"time"
)

// StatusEvent provides context for a schedule status transition.
type StatusEvent struct {
	ScheduleID string
	Post       Post
	Status     ScheduleStatus
	Slot       *Slot
	Highlights []string
	At         time.Time
	Error      error
}

// ScheduleCallbacks receives status transitions while a schedule runs. The
// presentation layer uses this to surface progress without the schedule
// knowing about terminals or widgets.
type ScheduleCallbacks interface {
	OnStatusChange(ctx context.Context, event *StatusEvent)
}

// BaseScheduleCallbacks is a default implementation that does nothing.
type BaseScheduleCallbacks struct{}

func (BaseScheduleCallbacks) OnStatusChange(ctx context.Context, event *StatusEvent) {
	// noop
}

// CallbacksFunc adapts a function to the ScheduleCallbacks interface.
type CallbacksFunc func(ctx context.Context, event *StatusEvent)

func (f CallbacksFunc) OnStatusChange(ctx context.Context, event *StatusEvent) {
	f(ctx, event)
}
