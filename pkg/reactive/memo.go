package reactive

import (
	"sync"
	"sync/atomic"
)

// Memo is a cached derived value that tracks its own dependencies.
// Only the memo's internal computation may write the backing value;
// consumers read it like any signal. When a dependency changes, the memo is
// invalidated and recomputes lazily on the next read, so reading twice
// without an intervening dependency change runs the computation only once.
//
// Memos are themselves subscribable, which allows chains of derived values.
type Memo[T any] struct {
	base signalBase

	// compute produces the memo's value.
	compute func() T

	// value is the cached computed value.
	value   T
	valueMu sync.RWMutex

	// valid indicates whether the cached value is current.
	valid atomic.Bool

	// sources are the signals/memos this memo depends on.
	sources   []*signalBase
	sourcesMu sync.Mutex

	// equal determines whether a recompute changed the value.
	equal func(T, T) bool

	// computing guards against recursive recomputation on cyclic reads.
	computing atomic.Bool
}

// NewMemo creates a memo with the given computation. The computation does
// not run immediately; it runs lazily on first Get.
func NewMemo[T any](rt *Runtime, compute func() T) *Memo[T] {
	return &Memo[T]{
		base:    signalBase{id: nextID(), rt: rt},
		compute: compute,
	}
}

// Get returns the memo's value, recomputing if a dependency changed, and
// subscribes the current listener.
func (m *Memo[T]) Get() T {
	m.base.track()

	if !m.valid.Load() {
		m.recompute()
	}

	m.valueMu.RLock()
	value := m.value
	m.valueMu.RUnlock()
	return value
}

// Peek returns the memo's value without subscribing.
// Still recomputes if the cached value is stale.
func (m *Memo[T]) Peek() T {
	if !m.valid.Load() {
		m.recompute()
	}
	m.valueMu.RLock()
	value := m.value
	m.valueMu.RUnlock()
	return value
}

// MarkDirty invalidates the memo and propagates to subscribers.
// Implements the Listener interface.
func (m *Memo[T]) MarkDirty() {
	if m.valid.CompareAndSwap(true, false) {
		m.base.notifySubscribers()
	}
}

// ID returns the unique identifier for this memo.
// Implements the Listener interface.
func (m *Memo[T]) ID() uint64 {
	return m.base.id
}

// addSource records a dependency. Implements sourceTracker.
func (m *Memo[T]) addSource(source *signalBase) {
	m.sourcesMu.Lock()
	defer m.sourcesMu.Unlock()

	for _, s := range m.sources {
		if s == source {
			return
		}
	}
	m.sources = append(m.sources, source)
}

// WithEquals configures the memo with a custom equality function.
func (m *Memo[T]) WithEquals(fn func(T, T) bool) *Memo[T] {
	m.equal = fn
	return m
}

// recompute runs the computation, rebuilding the subscription set.
func (m *Memo[T]) recompute() {
	if m.computing.Swap(true) {
		// Already computing; a cyclic read sees the stale value.
		return
	}
	defer m.computing.Store(false)

	m.sourcesMu.Lock()
	for _, source := range m.sources {
		source.unsubscribe(m)
	}
	m.sources = m.sources[:0]
	m.sourcesMu.Unlock()

	old := m.base.rt.setListener(m)
	newValue := m.compute()
	m.base.rt.setListener(old)

	m.valueMu.Lock()
	m.value = newValue
	m.valueMu.Unlock()

	m.valid.Store(true)
}

// Ensure Memo participates in source tracking.
var _ sourceTracker = (*Memo[int])(nil)
var _ sourceTracker = (*Effect)(nil)
