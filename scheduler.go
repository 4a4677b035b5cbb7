package postpilot

import (
	"context"
	"errors"
	"sync"
)

// ErrSchedulerFull is returned by Submit when the scheduler is already
// running its maximum number of schedules.
var ErrSchedulerFull = errors.New("scheduler is full")

// ErrSchedulerClosed is returned by Submit after Shutdown has been called.
var ErrSchedulerClosed = errors.New("scheduler is shut down")

// Scheduler owns in-flight schedules. It bounds how many may run at once,
// cancels them on shutdown, and reports results through a callback. This
// replaces fire-and-forget goroutines per action: the owner can always
// enumerate and stop what it started.
type Scheduler struct {
	capacity int
	onDone   func(*Schedule, *Result, error)

	mutex   sync.Mutex
	running map[string]context.CancelFunc
	wg      sync.WaitGroup
	closed  bool
}

// SchedulerOptions configures a Scheduler.
type SchedulerOptions struct {
	// Capacity bounds concurrently running schedules. Zero means one.
	Capacity int

	// OnDone, if set, is called when a schedule reaches a terminal status.
	OnDone func(*Schedule, *Result, error)
}

func NewScheduler(opts SchedulerOptions) *Scheduler {
	if opts.Capacity <= 0 {
		opts.Capacity = 1
	}
	return &Scheduler{
		capacity: opts.Capacity,
		onDone:   opts.OnDone,
		running:  map[string]context.CancelFunc{},
	}
}

// Submit starts the schedule on its own goroutine. It returns
// ErrSchedulerFull when the capacity is reached and ErrSchedulerClosed after
// Shutdown. The foreground caller is never blocked by the schedule's wait.
func (s *Scheduler) Submit(ctx context.Context, schedule *Schedule) error {
	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return ErrSchedulerClosed
	}
	if len(s.running) >= s.capacity {
		s.mutex.Unlock()
		return ErrSchedulerFull
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.running[schedule.ID()] = cancel
	s.wg.Add(1)
	s.mutex.Unlock()

	go func() {
		defer s.wg.Done()
		result, err := schedule.Run(runCtx)

		s.mutex.Lock()
		delete(s.running, schedule.ID())
		s.mutex.Unlock()
		cancel()

		if s.onDone != nil {
			s.onDone(schedule, result, err)
		}
	}()
	return nil
}

// Cancel stops one in-flight schedule by ID. It reports whether a running
// schedule was found.
func (s *Scheduler) Cancel(scheduleID string) bool {
	s.mutex.Lock()
	cancel, ok := s.running[scheduleID]
	s.mutex.Unlock()

	if ok {
		cancel()
	}
	return ok
}

// Running returns the IDs of schedules that have not finished yet.
func (s *Scheduler) Running() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	ids := make([]string, 0, len(s.running))
	for id := range s.running {
		ids = append(ids, id)
	}
	return ids
}

// Shutdown cancels every in-flight schedule and waits for them to finish or
// for ctx to expire. No further submissions are accepted.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mutex.Lock()
	s.closed = true
	for _, cancel := range s.running {
		cancel()
	}
	s.mutex.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until every submitted schedule has finished.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
