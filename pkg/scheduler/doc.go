// Package scheduler provides the prioritized, frame-budgeted task queue that
// decides when reactive effects and deferred callbacks actually execute.
//
// Tasks are scheduled at one of three priorities (High, Normal, Low) into
// strict FIFO queues. A drain (one Flush call, modeling one frame) runs all
// High tasks unconditionally, then Normal and Low tasks against a rolling
// time budget. When the budget is exhausted, remaining tasks keep their FIFO
// order and a continuation is armed for the next frame.
//
// The scheduler is cooperative and single-threaded: every callback runs on
// the goroutine calling Flush (or Loop). Schedule and Cancel are safe to
// call from other goroutines, such as resource fetches.
package scheduler
