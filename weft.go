// Package weft provides the public API for the weft UI runtime.
//
// This is the recommended import for most applications:
//
//	import "github.com/weft-ui/weft"
//
// Usage:
//
//	app := weft.NewApp(weft.Config{})
//	count := weft.NewSignal(app.Runtime, 0)
//	view := weft.Define("Counter", func(_ weft.Props, _ []*weft.VNode) *weft.VNode {
//	    return weft.Button(
//	        weft.OnClick(func(weft.Event) { count.Update(func(n int) int { return n + 1 }) }),
//	        weft.Textf("clicked %d", count.Get()),
//	    )
//	})
//	app.Mount(weft.Comp(view, nil))
//	app.Run(ctx)
package weft

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/live"
	"github.com/weft-ui/weft/pkg/reactive"
	"github.com/weft-ui/weft/pkg/reconcile"
	"github.com/weft-ui/weft/pkg/scheduler"
	"github.com/weft-ui/weft/pkg/vdom"
)

// Core types re-exported for application code.
type (
	VNode     = vdom.VNode
	Prop      = vdom.Prop
	Props     = vdom.Props
	Component = vdom.Component
	Node      = dom.Node
	Event     = dom.Event
	Cleanup   = reactive.Cleanup
	Runtime   = reactive.Runtime
	Priority  = scheduler.Priority
)

// Scheduling priorities.
const (
	PriorityHigh   = scheduler.PriorityHigh
	PriorityNormal = scheduler.PriorityNormal
	PriorityLow    = scheduler.PriorityLow
)

// Reactive primitives.

// NewSignal creates a reactive signal on the given runtime.
func NewSignal[T any](rt *Runtime, initial T) *reactive.Signal[T] {
	return reactive.NewSignal(rt, initial)
}

// NewMemo creates a derived read-only value that tracks its dependencies.
func NewMemo[T any](rt *Runtime, compute func() T) *reactive.Memo[T] {
	return reactive.NewMemo(rt, compute)
}

// NewEffect runs fn now and re-runs it when any signal it read changes.
func NewEffect(rt *Runtime, fn func() Cleanup) *reactive.Effect {
	return reactive.NewEffect(rt, fn)
}

// NewResource tracks source and fetches asynchronously whenever it changes.
func NewResource[S, T any](rt *Runtime, source func() S, fetcher func(S) (T, error)) *reactive.Resource[T] {
	return reactive.NewResource(rt, source, fetcher)
}

// Batch coalesces notifications from multiple writes into one per listener.
var Batch = reactive.Batch

// Untracked runs fn without dependency tracking.
var Untracked = reactive.Untracked

// OnMount runs fn once, after the current scope's first render.
var OnMount = reactive.OnMount

// OnUnmount runs fn when the current scope is disposed.
var OnUnmount = reactive.OnUnmount

// Tree construction.

var (
	El       = vdom.El
	Text     = vdom.Text
	Textf    = vdom.Textf
	Fragment = vdom.Fragment
	Comp     = vdom.Comp
	Define   = vdom.Define
	Attr     = vdom.Attr
	On       = vdom.On
	Style    = vdom.Style
	Ref      = vdom.Ref
	Key      = vdom.Key
	If       = vdom.If
	IfElse   = vdom.IfElse
	When     = vdom.When
)

// Common element factories.

var (
	Div    = vdom.Div
	Span   = vdom.Span
	P      = vdom.P
	H1     = vdom.H1
	H2     = vdom.H2
	Ul     = vdom.Ul
	Li     = vdom.Li
	Button = vdom.Button
	Input  = vdom.Input
	A      = vdom.A
	Img    = vdom.Img
)

// Common props.

var (
	Class   = vdom.Class
	ID      = vdom.ID
	Href    = vdom.Href
	Src     = vdom.Src
	Value   = vdom.Value
	OnClick = vdom.OnClick
	OnInput = vdom.OnInput
)

// Suspend aborts the current render pass with a pending marker.
var Suspend = reconcile.Suspend

// ErrPending is returned from a render pass in which a component suspended.
var ErrPending = reconcile.ErrPending

// Config configures an App.
type Config struct {
	// Logger is used by every subsystem. Defaults to slog.Default.
	Logger *slog.Logger

	// FrameBudget bounds Normal/Low work per drain. Zero means the
	// scheduler default.
	FrameBudget time.Duration

	// Metrics enables scheduler metrics when non-nil.
	Metrics *scheduler.Metrics

	// CheckOrigin overrides the live mirror's WebSocket origin check.
	CheckOrigin func(origin string) bool
}

// App wires the runtime together: one scheduler, one reactivity graph,
// one reconciler, and a live mirror whose container is the render target.
type App struct {
	Runtime    *reactive.Runtime
	Scheduler  *scheduler.Scheduler
	Reconciler *reconcile.Reconciler
	Mirror     *live.Mirror

	log     *slog.Logger
	root    *reactive.Effect
	flushMu chan struct{} // capacity 1; non-empty while a flush is armed
}

// NewApp creates a fully wired application.
func NewApp(cfg Config) *App {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	sched := scheduler.New(scheduler.Config{
		FrameBudget: cfg.FrameBudget,
		Logger:      log,
		Metrics:     cfg.Metrics,
	})
	rt := reactive.NewRuntime(sched)

	app := &App{
		Runtime:   rt,
		Scheduler: sched,
		log:       log,
		flushMu:   make(chan struct{}, 1),
	}

	app.Mirror = live.New(live.Config{
		Logger:      log,
		CheckOrigin: cfg.CheckOrigin,
		OnEvent: func(target dom.Node, ev dom.Event) {
			// Client events come in on connection goroutines; dispatch on
			// the runtime loop at high priority.
			sched.Schedule(func() { target.Dispatch(ev) }, scheduler.PriorityHigh)
		},
	})
	app.Reconciler = reconcile.New(reconcile.Config{
		Document: app.Mirror.Document(),
		Runtime:  rt,
		Logger:   log,
	})
	return app
}

// Mount renders el into the app's container and keeps it current: any
// signal read during render re-renders through the scheduler.
func (a *App) Mount(el *VNode) {
	a.root = reactive.NewEffect(a.Runtime, func() Cleanup {
		err := a.Reconciler.Render(el, a.Mirror.Container())
		switch err {
		case nil, reconcile.ErrPending:
		default:
			a.log.Error("mount render failed", "error", err)
		}
		a.armFlush()
		return nil
	})
}

// armFlush schedules one mirror flush after the next paint phase.
func (a *App) armFlush() {
	select {
	case a.flushMu <- struct{}{}:
		a.Scheduler.AfterPaint(func() {
			<-a.flushMu
			a.Mirror.Flush(context.Background())
		})
	default:
	}
}

// Handler exposes the live mirror's HTTP surface.
func (a *App) Handler() http.Handler {
	return a.Mirror.Handler()
}

// Run drives the scheduler until ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.Scheduler.Loop(ctx)
}

// Close tears down the reactive graph.
func (a *App) Close() {
	if a.root != nil {
		a.root.Dispose()
	}
	a.Runtime.Dispose()
}
