package postpilot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"go.jetify.com/typeid"
)

// NewScheduleID returns a new unique ID for a schedule run.
func NewScheduleID() string {
	id, err := typeid.WithPrefix("post")
	if err != nil {
		panic(err)
	}
	return id.String()
}

// ScheduleStatus represents where a schedule is in its lifecycle.
type ScheduleStatus string

const (
	StatusPending    ScheduleStatus = "pending"
	StatusValidating ScheduleStatus = "validating"
	StatusGated      ScheduleStatus = "gated"
	StatusPreviewing ScheduleStatus = "previewing"
	StatusWaiting    ScheduleStatus = "waiting"
	StatusPublishing ScheduleStatus = "publishing"
	StatusLogged     ScheduleStatus = "logged"
	StatusRejected   ScheduleStatus = "rejected"
	StatusFailed     ScheduleStatus = "failed"
)

// Terminal reports whether the status is an end state.
func (s ScheduleStatus) Terminal() bool {
	switch s {
	case StatusLogged, StatusRejected, StatusFailed:
		return true
	}
	return false
}

// Result is the discriminated outcome of a schedule run.
type Result struct {
	ScheduleID string         `json:"schedule_id"`
	Status     ScheduleStatus `json:"status"`
	Slot       *Slot          `json:"slot,omitempty"`
	Highlights []string       `json:"highlights,omitempty"`
	Published  bool           `json:"published"`
	Record     *PostRecord    `json:"record,omitempty"`
	PreviewErr *ScheduleError `json:"preview_error,omitempty"`
	Err        *ScheduleError `json:"error,omitempty"`
}

// ScheduleOptions configures a new schedule.
type ScheduleOptions struct {
	Post       Post
	Gate       ContentGate
	Publisher  Publisher
	History    PostLog
	Viewer     MediaViewer
	Clock      Clock
	Logger     *slog.Logger
	Output     io.Writer
	SlotHours  []int
	Callbacks  ScheduleCallbacks
	ScheduleID string
}

// Schedule runs one post through the publishing workflow:
// Validating → Gated → Previewing → Waiting → Publishing → Logged, with
// Rejected and Failed terminals. A schedule runs at most once and does not
// survive a process restart.
type Schedule struct {
	id        string
	post      Post
	gate      ContentGate
	publisher Publisher
	history   PostLog
	viewer    MediaViewer
	clock     Clock
	logger    *slog.Logger
	out       io.Writer
	slotHours []int
	callbacks ScheduleCallbacks

	mutex   sync.RWMutex
	status  ScheduleStatus
	result  *Result
	started bool
}

// NewSchedule creates a schedule for the given post. Collaborators not set
// in opts get working defaults: an approve-all gate, a console publisher,
// a CSV history at DefaultHistoryPath, the host media viewer, and the
// system clock.
func NewSchedule(opts ScheduleOptions) (*Schedule, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Gate == nil {
		opts.Gate = NewApproveAllGate(opts.Logger)
	}
	if opts.Publisher == nil {
		opts.Publisher = NewConsolePublisher(opts.Output)
	}
	if opts.History == nil {
		opts.History = NewCSVPostLog(DefaultHistoryPath)
	}
	if opts.Viewer == nil {
		opts.Viewer = NewHostMediaViewer()
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if len(opts.SlotHours) == 0 {
		opts.SlotHours = DefaultSlotHours
	}
	if opts.Callbacks == nil {
		opts.Callbacks = BaseScheduleCallbacks{}
	}
	if opts.ScheduleID == "" {
		opts.ScheduleID = NewScheduleID()
	}
	return &Schedule{
		id:        opts.ScheduleID,
		post:      opts.Post,
		gate:      opts.Gate,
		publisher: opts.Publisher,
		history:   opts.History,
		viewer:    opts.Viewer,
		clock:     opts.Clock,
		logger:    opts.Logger.With("schedule_id", opts.ScheduleID),
		out:       opts.Output,
		slotHours: opts.SlotHours,
		callbacks: opts.Callbacks,
		status:    StatusPending,
	}, nil
}

// DefaultHistoryPath is where the CSV post history lives unless configured.
const DefaultHistoryPath = "post_history.csv"

// ID returns the schedule's unique ID.
func (s *Schedule) ID() string {
	return s.id
}

// Post returns the post being scheduled.
func (s *Schedule) Post() Post {
	return s.post
}

// Status returns the current schedule status.
func (s *Schedule) Status() ScheduleStatus {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.status
}

// Result returns the outcome of the run, or nil if the schedule has not
// reached a terminal status.
func (s *Schedule) Result() *Result {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.result == nil || !s.result.Status.Terminal() {
		return nil
	}
	return s.result
}

func (s *Schedule) setStatus(ctx context.Context, status ScheduleStatus) {
	s.mutex.Lock()
	s.status = status
	s.result.Status = status
	event := &StatusEvent{
		ScheduleID: s.id,
		Post:       s.post,
		Status:     status,
		Slot:       s.result.Slot,
		Highlights: s.result.Highlights,
		At:         s.clock.Now(),
	}
	if s.result.Err != nil {
		event.Error = s.result.Err
	}
	s.mutex.Unlock()

	s.callbacks.OnStatusChange(ctx, event)
}

func (s *Schedule) fail(ctx context.Context, err error) (*Result, error) {
	serr := ClassifyError(err)
	s.mutex.Lock()
	s.result.Err = serr
	s.mutex.Unlock()
	s.setStatus(ctx, StatusFailed)
	s.logger.Error("schedule failed", "kind", serr.Kind, "error", serr.Cause)
	return s.result, serr
}

// Run drives the schedule to a terminal status. It blocks until the selected
// slot arrives, so callers that must stay responsive run it on its own
// goroutine. Cancellation is honored while waiting; nothing is retried.
//
// A Rejected outcome returns a nil error: rejection is an outcome, not a
// failure. A history write failure after publishing returns the persistence
// error while Result.Published remains true.
func (s *Schedule) Run(ctx context.Context) (*Result, error) {
	s.mutex.Lock()
	if s.started {
		s.mutex.Unlock()
		return nil, fmt.Errorf("schedule %s already started", s.id)
	}
	s.started = true
	s.result = &Result{ScheduleID: s.id, Status: StatusPending}
	s.mutex.Unlock()

	// Validating
	s.setStatus(ctx, StatusValidating)
	if err := s.post.Validate(); err != nil {
		return s.fail(ctx, err)
	}

	// Gated
	s.setStatus(ctx, StatusGated)
	s.logger.Info("checking content appropriateness")
	ok, err := s.gate.IsAppropriate(ctx, s.post.Caption)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !ok {
		s.mutex.Lock()
		s.result.Err = NewScheduleError(KindRejectedContent, "content flagged as inappropriate")
		s.mutex.Unlock()
		s.setStatus(ctx, StatusRejected)
		s.logger.Info("content rejected by gate")
		return s.result, nil
	}
	highlights := ExtractHighlights(s.post.Caption)
	s.mutex.Lock()
	s.result.Highlights = highlights
	s.mutex.Unlock()
	if len(highlights) > 0 {
		color.New(color.FgYellow).Fprintf(s.out, "Highlights detected: %s\n", strings.Join(highlights, ", "))
	}

	// Previewing
	slot := NextSlotAt(s.clock.Now(), s.slotHours)
	s.mutex.Lock()
	s.result.Slot = &slot
	s.mutex.Unlock()
	s.setStatus(ctx, StatusPreviewing)
	RenderPreview(s.out, s.post, slot)
	if err := s.viewer.Open(ctx, s.post.MediaPath); err != nil {
		perr := WrapScheduleError(KindPreviewFailure, err)
		s.mutex.Lock()
		s.result.PreviewErr = perr
		s.mutex.Unlock()
		s.logger.Warn("media preview failed", "error", err)
	}
	color.New(color.FgCyan).Fprintf(s.out, "Post will be published at %s (reminder set for %s)\n",
		slot.ScheduledAt.Format(TimestampLayout), slot.ReminderAt.Format(TimestampLayout))

	// Waiting
	s.setStatus(ctx, StatusWaiting)
	if delay := slot.Delay(s.clock.Now()); delay > 0 {
		s.logger.Info("waiting for slot", "delay", delay.Round(time.Second))
		select {
		case <-ctx.Done():
			return s.fail(ctx, ctx.Err())
		case <-s.clock.After(delay):
		}
	}

	// Publishing
	s.setStatus(ctx, StatusPublishing)
	publishedAt := s.clock.Now()
	if err := s.publisher.Publish(ctx, s.post, publishedAt); err != nil {
		return s.fail(ctx, err)
	}
	s.mutex.Lock()
	s.result.Published = true
	s.mutex.Unlock()

	// Logged. The publish already happened, so a history failure is
	// reported without rolling back the published outcome.
	record := PostRecord{
		Timestamp: publishedAt,
		Platform:  s.post.Platform,
		Caption:   s.post.Caption,
		File:      s.post.MediaName(),
	}
	if err := s.history.Append(ctx, record); err != nil {
		if !IsKind(err, KindPersistence) {
			err = WrapScheduleError(KindPersistence, err)
		}
		return s.fail(ctx, err)
	}
	s.mutex.Lock()
	s.result.Record = &record
	s.mutex.Unlock()
	s.setStatus(ctx, StatusLogged)
	s.logger.Info("post logged", "platform", s.post.Platform, "file", record.File)
	return s.result, nil
}
