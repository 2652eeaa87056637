package scheduler

import (
	"time"

	"github.com/weft-ui/weft/internal/errors"
)

// AfterLayout registers a one-shot callback for the layout phase of the next
// frame. Callbacks never run synchronously inside the task drain; a callback
// registered by a running task fires in the same frame's layout phase, after
// the queue drain has finished.
func (s *Scheduler) AfterLayout(cb func()) {
	s.mu.Lock()
	s.layout = append(s.layout, cb)
	s.mu.Unlock()
}

// AfterPaint registers a one-shot callback for the paint phase of the next
// frame. The paint phase follows the layout phase.
func (s *Scheduler) AfterPaint(cb func()) {
	s.mu.Lock()
	s.paint = append(s.paint, cb)
	s.mu.Unlock()
}

// Idle registers a one-shot callback for the next idle window. Idle
// callbacks only run when frame budget remains after the paint phase;
// leftovers carry over to the next frame in order.
func (s *Scheduler) Idle(cb func()) {
	s.mu.Lock()
	s.idle = append(s.idle, cb)
	s.mu.Unlock()
}

// runPhases runs the layout, paint, and idle phases of one frame.
// The callback lists are snapshotted after the queue drain, so callbacks
// registered during any phase wait for the next frame.
func (s *Scheduler) runPhases(deadline time.Time) {
	s.mu.Lock()
	layout := s.layout
	paint := s.paint
	idle := s.idle
	s.layout = nil
	s.paint = nil
	s.idle = nil
	s.mu.Unlock()

	for _, cb := range layout {
		s.runPhaseCallback(cb, "layout")
	}
	for _, cb := range paint {
		s.runPhaseCallback(cb, "paint")
	}

	// Idle work only with leftover budget.
	ran := 0
	for ran < len(idle) && !s.clock().After(deadline) {
		s.runPhaseCallback(idle[ran], "idle")
		ran++
	}
	if rest := idle[ran:]; len(rest) > 0 {
		s.mu.Lock()
		s.idle = append(append([]func(){}, rest...), s.idle...)
		s.mu.Unlock()
	}
}

// runPhaseCallback executes a phase callback with panic isolation.
func (s *Scheduler) runPhaseCallback(cb func(), phase string) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.FromPanic(r, "W302")
			s.log.Error("phase callback panicked", "error", err, "phase", phase)
			if s.metrics != nil {
				s.metrics.panics.Inc()
			}
		}
	}()
	cb()
}
