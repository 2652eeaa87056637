package reactive

import (
	"sync"

	"github.com/weft-ui/weft/pkg/scheduler"
)

// Runtime holds the tracking state for one reactivity graph.
//
// The listener and owner fields are only touched on the runtime's driving
// goroutine. Notification state (batch depth, pending updates, pending
// effects) is mutex-protected because signal writes may arrive from fetch
// goroutines.
type Runtime struct {
	// sched receives effect re-runs at Normal priority.
	// May be nil; the host then drives RunPendingEffects itself.
	sched *scheduler.Scheduler

	// listener is what's currently tracking dependencies.
	// nil means reads don't create subscriptions.
	listener Listener

	// owner is the Owner that will own newly created effects.
	owner *Owner

	// root is the top of the owner hierarchy for this runtime.
	root *Owner

	mu sync.Mutex

	// batchDepth tracks nested Batch() calls. When > 0, signal
	// notifications queue instead of firing immediately.
	batchDepth int

	// pendingNotify accumulates listeners to notify when the outermost
	// batch completes. Deduplicated by ID before notification.
	pendingNotify []Listener

	// pendingEffects are effects waiting for the next scheduler turn.
	pendingEffects []*Effect

	// flushQueued is true while a drain task for pendingEffects is queued.
	flushQueued bool
}

// NewRuntime creates a reactivity runtime backed by the given scheduler.
// A nil scheduler is allowed; the host must then call RunPendingEffects
// after each turn.
func NewRuntime(sched *scheduler.Scheduler) *Runtime {
	rt := &Runtime{sched: sched}
	rt.root = NewOwner(rt, nil)
	rt.owner = rt.root
	return rt
}

// Scheduler returns the scheduler backing this runtime, or nil.
func (rt *Runtime) Scheduler() *scheduler.Scheduler {
	return rt.sched
}

// Root returns the root owner of this runtime.
func (rt *Runtime) Root() *Owner {
	return rt.root
}

// Listener returns the listener currently tracking dependencies, or nil.
func (rt *Runtime) Listener() Listener {
	return rt.listener
}

// Owner returns the owner that newly created effects will belong to.
func (rt *Runtime) Owner() *Owner {
	return rt.owner
}

// setListener sets the current listener and returns the previous one.
func (rt *Runtime) setListener(l Listener) Listener {
	old := rt.listener
	rt.listener = l
	return old
}

// setOwner sets the current owner and returns the previous one.
func (rt *Runtime) setOwner(o *Owner) *Owner {
	old := rt.owner
	rt.owner = o
	return old
}

// WithListener runs fn with the specified listener for tracking.
// Used internally to set up dependency tracking during effect execution.
func (rt *Runtime) WithListener(l Listener, fn func()) {
	old := rt.setListener(l)
	defer rt.setListener(old)
	fn()
}

// WithOwner runs fn with the specified owner as the current owner.
func (rt *Runtime) WithOwner(o *Owner, fn func()) {
	old := rt.setOwner(o)
	defer rt.setOwner(old)
	fn()
}

// scheduleEffect queues an effect for the next scheduler turn.
// Called from MarkDirty once per dirtying (the effect's pending flag
// guarantees at most one queue entry until it runs).
func (rt *Runtime) scheduleEffect(e *Effect) {
	rt.mu.Lock()
	rt.pendingEffects = append(rt.pendingEffects, e)
	queued := rt.flushQueued
	rt.flushQueued = true
	rt.mu.Unlock()

	if !queued && rt.sched != nil {
		rt.sched.Schedule(rt.RunPendingEffects, scheduler.PriorityNormal)
	}
}

// RunPendingEffects executes all effects queued since the last turn.
// Effects dirtied during this pass queue a fresh turn.
func (rt *Runtime) RunPendingEffects() {
	rt.mu.Lock()
	effects := rt.pendingEffects
	rt.pendingEffects = nil
	rt.flushQueued = false
	rt.mu.Unlock()

	for _, e := range effects {
		if e.pending.Load() {
			e.run()
		}
	}
}

// HasPendingEffects reports whether any effect is waiting for a turn.
func (rt *Runtime) HasPendingEffects() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.pendingEffects) > 0
}

// inBatch reports whether a batch is open, and queues the listener for
// end-of-batch notification when it is.
func (rt *Runtime) queueIfBatching(l Listener) bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.batchDepth == 0 {
		return false
	}
	rt.pendingNotify = append(rt.pendingNotify, l)
	return true
}

// Dispose tears down the runtime's owner hierarchy.
func (rt *Runtime) Dispose() {
	rt.root.Dispose()
}
