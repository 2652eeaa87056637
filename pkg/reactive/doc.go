// Package reactive implements the fine-grained reactivity graph: signals,
// effects, memos, owners, and async resources.
//
// All tracking state (current listener, current owner, batch depth) lives on
// an explicit *Runtime rather than a shared global, so independent render
// targets never observe each other's tracking. A Runtime is single-threaded:
// reads, effect runs, and owner manipulation happen on the goroutine driving
// the runtime's scheduler. Signal writes are safe from other goroutines
// (resource fetches settle that way); the resulting effect runs are
// marshalled back through the scheduler at Normal priority.
package reactive
