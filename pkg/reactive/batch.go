package reactive

// Batch groups multiple signal writes into a single notification phase.
// All writes inside fn are collected, deduplicated by listener ID, and the
// affected listeners are notified once when the outermost batch completes.
// Batches nest.
func Batch(rt *Runtime, fn func()) {
	rt.mu.Lock()
	rt.batchDepth++
	rt.mu.Unlock()

	defer func() {
		rt.mu.Lock()
		rt.batchDepth--
		done := rt.batchDepth == 0
		var pending []Listener
		if done {
			pending = rt.pendingNotify
			rt.pendingNotify = nil
		}
		rt.mu.Unlock()

		if done {
			notifyDeduplicated(pending)
		}
	}()

	fn()
}

// notifyDeduplicated marks each distinct listener dirty exactly once.
func notifyDeduplicated(pending []Listener) {
	if len(pending) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(pending))
	for _, l := range pending {
		id := l.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		l.MarkDirty()
	}
}

// Untracked runs fn without tracking signal reads as dependencies.
// For single reads, Signal.Peek is clearer and cheaper.
func Untracked(rt *Runtime, fn func()) {
	old := rt.setListener(nil)
	defer rt.setListener(old)
	fn()
}
