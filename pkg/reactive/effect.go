package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect is a reactive computation that re-runs when its dependencies change.
//
// Effects run synchronously when created, so subscriptions exist before any
// later write. The subscription set is entirely rebuilt on each run; stale
// subscriptions from untaken branches are dropped. An effect may return a
// Cleanup that runs before the next re-run and on disposal.
//
// Panics inside the effect body propagate to the caller; the reactivity
// graph performs no catching.
type Effect struct {
	id uint64
	rt *Runtime

	// fn is the effect body.
	fn func() Cleanup

	// cleanup is the cleanup function from the last run.
	cleanup Cleanup

	// sources are the signals/memos this effect currently depends on.
	sources   []*signalBase
	sourcesMu sync.Mutex

	// owner is the Owner that owns this effect.
	owner *Owner

	// pending indicates the effect is scheduled for a re-run.
	pending atomic.Bool

	// disposed indicates the effect has been disposed.
	disposed atomic.Bool
}

// NewEffect creates an effect under the runtime's current owner and runs it
// immediately. The returned effect's Dispose removes it from every
// subscriber set.
func NewEffect(rt *Runtime, fn func() Cleanup) *Effect {
	e := &Effect{
		id:    nextID(),
		rt:    rt,
		fn:    fn,
		owner: rt.Owner(),
	}

	if e.owner != nil {
		e.owner.registerEffect(e)
	}

	e.run()
	return e
}

// MarkDirty schedules the effect to re-run on the next scheduler turn.
// Implements the Listener interface. The pending flag guarantees the effect
// is queued at most once per turn no matter how many signals dirtied it.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}
	if e.pending.CompareAndSwap(false, true) {
		e.rt.scheduleEffect(e)
	}
}

// ID returns the unique identifier for this effect.
// Implements the Listener interface.
func (e *Effect) ID() uint64 {
	return e.id
}

// run executes the effect body, rebuilding the subscription set.
func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}

	e.pending.Store(false)

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	// Drop the previous run's subscriptions.
	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
	e.sourcesMu.Unlock()

	old := e.rt.setListener(e)
	defer e.rt.setListener(old)

	e.cleanup = e.fn()
}

// addSource records a dependency. Called by signals read during execution.
func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

// Dispose removes the effect from every subscriber set and runs its last
// cleanup. Disposal is idempotent.
func (e *Effect) Dispose() {
	if e.disposed.Swap(true) {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = nil
	e.sourcesMu.Unlock()
}

// IsDisposed reports whether the effect has been disposed.
func (e *Effect) IsDisposed() bool {
	return e.disposed.Load()
}

// OnMount runs fn once when the current scope is first executed.
// Equivalent to an effect with no reactive dependencies.
func OnMount(rt *Runtime, fn func()) {
	NewEffect(rt, func() Cleanup {
		fn()
		return nil
	})
}

// OnUnmount registers fn to run when the current owner is disposed,
// typically when the owning component unmounts.
func OnUnmount(rt *Runtime, fn func()) {
	if owner := rt.Owner(); owner != nil {
		owner.OnCleanup(fn)
	}
}
