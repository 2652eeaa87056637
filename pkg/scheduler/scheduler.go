package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/weft-ui/weft/internal/errors"
)

// Priority determines which queue a task joins.
type Priority uint8

const (
	// PriorityHigh tasks run to completion on every drain, never time-sliced.
	PriorityHigh Priority = iota

	// PriorityNormal is the default priority. Effect re-runs land here.
	PriorityNormal

	// PriorityLow tasks run only after all Normal work, within the budget.
	PriorityLow

	numPriorities = 3
)

// String returns the string representation of the Priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// TaskID identifies a scheduled task. IDs are process-lifetime-unique and
// monotonically increasing; they are never reused.
type TaskID uint64

// task is a queued callback. Cancelled tasks stay in their queue slot and
// are skipped at pop time, which keeps Cancel O(1).
type task struct {
	id        TaskID
	fn        func()
	prio      Priority
	cancelled bool
}

// Config configures a Scheduler.
type Config struct {
	// FrameBudget is the rolling time budget for Normal and Low tasks per
	// drain. Defaults to 16ms (one frame).
	FrameBudget time.Duration

	// FrameInterval is the pacing of Loop. Defaults to FrameBudget.
	FrameInterval time.Duration

	// Clock returns the current time. Defaults to time.Now.
	// Injectable for budget tests.
	Clock func() time.Time

	// OnWake is called (outside any lock) when a task is scheduled while no
	// drain is armed. Hosts driving Flush themselves can use it to wake up.
	OnWake func()

	// Logger receives task panic reports. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics, when non-nil, receives counters and timings.
	Metrics *Metrics
}

// DefaultFrameBudget models one 60fps frame.
const DefaultFrameBudget = 16 * time.Millisecond

// Scheduler owns the three priority queues and the phase callback lists.
type Scheduler struct {
	mu       sync.Mutex
	queues   [numPriorities][]*task
	known    map[TaskID]*task
	lastID   TaskID
	layout   []func()
	paint    []func()
	idle     []func()
	armed    bool
	draining bool

	wakeCh  chan struct{}
	clock   func() time.Time
	budget  time.Duration
	pace    time.Duration
	onWake  func()
	log     *slog.Logger
	metrics *Metrics
}

// New creates a Scheduler with the given configuration.
func New(cfg Config) *Scheduler {
	if cfg.FrameBudget == 0 {
		cfg.FrameBudget = DefaultFrameBudget
	}
	if cfg.FrameInterval == 0 {
		cfg.FrameInterval = cfg.FrameBudget
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Scheduler{
		known:   make(map[TaskID]*task),
		wakeCh:  make(chan struct{}, 1),
		clock:   cfg.Clock,
		budget:  cfg.FrameBudget,
		pace:    cfg.FrameInterval,
		onWake:  cfg.OnWake,
		log:     cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// Schedule appends a callback to the queue for the given priority and arms a
// drain if none is pending. It returns the task's unique ID.
func (s *Scheduler) Schedule(fn func(), prio Priority) TaskID {
	if prio > PriorityLow {
		prio = PriorityLow
	}

	s.mu.Lock()
	s.lastID++
	t := &task{id: s.lastID, fn: fn, prio: prio}
	s.queues[prio] = append(s.queues[prio], t)
	s.known[t.id] = t

	wake := false
	if !s.armed && !s.draining {
		s.armed = true
		wake = true
	}
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.scheduled.WithLabelValues(prio.String()).Inc()
		s.metrics.depth.Inc()
	}
	if wake {
		s.wake()
	}
	return t.id
}

// Cancel removes a not-yet-run task from its queue.
// It returns false if the ID is unknown or the task already ran.
func (s *Scheduler) Cancel(id TaskID) bool {
	s.mu.Lock()
	t, ok := s.known[id]
	if ok {
		t.cancelled = true
		delete(s.known, id)
	}
	s.mu.Unlock()

	if ok && s.metrics != nil {
		s.metrics.cancelled.Inc()
		s.metrics.depth.Dec()
	}
	return ok
}

// Pending returns the number of queued, not-yet-cancelled tasks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.known)
}

// HasPending reports whether any task or phase callback is waiting.
func (s *Scheduler) HasPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.known) > 0 || len(s.layout) > 0 || len(s.paint) > 0 || len(s.idle) > 0
}

// Flush drains the queues for one frame.
//
// High tasks run to completion unconditionally. Normal and Low tasks are
// checked against the rolling budget before each task; on exhaustion the
// remaining tasks stay queued in FIFO order and a continuation is armed.
// After the queue drain the layout, paint, and idle phases run (see frame.go).
//
// Flush is a no-op when called reentrantly from inside a running drain.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.armed = false
	s.mu.Unlock()

	start := s.clock()
	deadline := start.Add(s.budget)

	// High is never time-sliced.
	for {
		t := s.pop(PriorityHigh)
		if t == nil {
			break
		}
		s.runTask(t)
	}

	// Normal and Low share the rolling budget.
	exhausted := false
	for _, prio := range []Priority{PriorityNormal, PriorityLow} {
		for {
			if s.clock().After(deadline) {
				exhausted = true
				break
			}
			t := s.pop(prio)
			if t == nil {
				break
			}
			s.runTask(t)
		}
		if exhausted {
			break
		}
	}

	s.runPhases(deadline)

	s.mu.Lock()
	s.draining = false
	wake := false
	if len(s.known) > 0 && !s.armed {
		// Budget exhausted or tasks scheduled mid-drain: arm a continuation.
		s.armed = true
		wake = true
	}
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.drainDuration.Observe(s.clock().Sub(start).Seconds())
	}
	if wake {
		s.wake()
	}
}

// Loop drives Flush at the frame interval until ctx is done.
// Wakes early when a task is scheduled into an idle scheduler.
func (s *Scheduler) Loop(ctx context.Context) {
	ticker := time.NewTicker(s.pace)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.wakeCh:
		case <-ticker.C:
		}
		s.Flush()
	}
}

// pop removes and returns the next runnable task at the given priority.
func (s *Scheduler) pop(prio Priority) *task {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.queues[prio]
	for len(q) > 0 {
		t := q[0]
		q = q[1:]
		if t.cancelled {
			continue
		}
		s.queues[prio] = q
		delete(s.known, t.id)
		if s.metrics != nil {
			s.metrics.depth.Dec()
		}
		return t
	}
	s.queues[prio] = q
	return nil
}

// runTask executes a task, recovering and reporting any panic so the drain
// continues with the next task.
func (s *Scheduler) runTask(t *task) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.FromPanic(r, "W301")
			s.log.Error("scheduled task panicked",
				"error", err,
				"task", uint64(t.id),
				"priority", t.prio.String(),
			)
			if s.metrics != nil {
				s.metrics.panics.Inc()
			}
		}
	}()

	t.fn()

	if s.metrics != nil {
		s.metrics.executed.WithLabelValues(t.prio.String()).Inc()
	}
}

// wake notifies the host that a drain is wanted.
func (s *Scheduler) wake() {
	if s.onWake != nil {
		s.onWake()
	}
	select {
	case s.wakeCh <- struct{}{}:
	default:
	}
}
