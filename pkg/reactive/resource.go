package reactive

import "sync"

// Resource manages asynchronous data fetching driven by a tracked source.
//
// An internal effect tracks the source function; on any tracked change the
// resource sets loading=true, clears the error, and invokes the fetcher on a
// new goroutine. Settlement writes the data signal (success) or the error
// signal (failure) and clears loading.
//
// Every fetch carries a monotonic generation; a settlement from a superseded
// fetch is dropped, so stale responses never overwrite fresher state.
// In-flight fetches cannot be cancelled.
type Resource[T any] struct {
	rt *Runtime

	data    *Signal[T]
	err     *Signal[error]
	loading *Signal[bool]

	// effect drives refetching from the tracked source.
	effect *Effect

	mu   sync.Mutex
	gen  uint64
	last func() (T, error)
}

// NewResource creates a resource whose fetcher re-runs whenever the tracked
// source changes. The first fetch starts immediately.
func NewResource[S, T any](rt *Runtime, source func() S, fetcher func(S) (T, error)) *Resource[T] {
	r := &Resource[T]{
		rt:      rt,
		data:    NewSignal(rt, *new(T)),
		err:     NewSignal[error](rt, nil),
		loading: NewSignal(rt, false),
	}

	r.effect = NewEffect(rt, func() Cleanup {
		s := source() // tracked
		r.start(func() (T, error) { return fetcher(s) })
		return nil
	})

	return r
}

// start begins a new fetch generation.
func (r *Resource[T]) start(do func() (T, error)) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.last = do
	r.mu.Unlock()

	r.loading.Set(true)
	r.err.Set(nil)

	go func() {
		value, err := do()

		// The staleness check and the writes commit under one critical
		// section; a fetch that starts in between bumps gen first and this
		// settlement is dropped whole.
		r.mu.Lock()
		defer r.mu.Unlock()
		if gen != r.gen {
			return
		}

		if err != nil {
			r.err.Set(err)
		} else {
			r.data.Set(value)
		}
		r.loading.Set(false)
	}()
}

// Refetch re-runs the most recent fetch with the same source value.
func (r *Resource[T]) Refetch() {
	r.mu.Lock()
	do := r.last
	r.mu.Unlock()
	if do != nil {
		r.start(do)
	}
}

// Data returns the last successfully fetched value, subscribing the current
// listener.
func (r *Resource[T]) Data() T {
	return r.data.Get()
}

// Err returns the last fetch error, or nil. Cleared when a new fetch starts.
func (r *Resource[T]) Err() error {
	return r.err.Get()
}

// Loading reports whether a fetch is in flight.
func (r *Resource[T]) Loading() bool {
	return r.loading.Get()
}

// Dispose stops the driving effect. In-flight fetches still settle but any
// further source changes are ignored.
func (r *Resource[T]) Dispose() {
	r.effect.Dispose()
}
