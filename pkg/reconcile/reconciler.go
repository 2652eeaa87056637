package reconcile

import (
	stderrors "errors"
	"log/slog"

	"github.com/weft-ui/weft/internal/errors"
	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/reactive"
	"github.com/weft-ui/weft/pkg/vdom"
)

// ErrPending signals that a subtree is waiting on an async value. It is a
// suspension marker, not a render failure: callers coordinate with a
// suspense collaborator instead of reporting an error.
var ErrPending = stderrors.New("render pending")

// Suspend aborts the current render pass with ErrPending. Call it from a
// component whose data is not ready yet.
func Suspend() {
	panic(ErrPending)
}

// Config configures a Reconciler.
type Config struct {
	// Document creates host nodes.
	Document dom.Document

	// Runtime provides component scopes and ref scheduling. Required.
	Runtime *reactive.Runtime

	// Logger receives render failures. Defaults to slog.Default.
	Logger *slog.Logger
}

// Reconciler owns the committed trees and mounted records for its render
// targets. It is not safe for concurrent use; all calls must come from the
// runtime's driving goroutine.
type Reconciler struct {
	doc   dom.Document
	rt    *reactive.Runtime
	log   *slog.Logger
	arena arena

	// roots maps a container to the record of its committed tree.
	roots map[dom.Node]int
}

// New creates a reconciler.
func New(cfg Config) *Reconciler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{
		doc:   cfg.Document,
		rt:    cfg.Runtime,
		log:   log,
		roots: make(map[dom.Node]int),
	}
}

// Render mounts el into container, or diffs it against the tree previously
// committed there. A nil el unmounts the committed tree.
//
// Returns ErrPending when a component suspended; any other non-nil error
// means the subtree may be in an inconsistent state and only an external
// boundary's retry can recover it.
func (r *Reconciler) Render(el *vdom.VNode, container dom.Node) (err error) {
	initial := true
	defer func() {
		if v := recover(); v != nil {
			code := "W203"
			if initial {
				code = "W202"
			}
			err = errors.FromPanic(v, code)
		}
		if err != nil && err != ErrPending {
			r.log.Error("render failed", "error", err)
		}
	}()

	oldIdx, committed := r.roots[container]
	initial = !committed

	if !committed {
		if el == nil {
			return nil
		}
		idx, err := r.mount(el, container, nil)
		if err != nil {
			return err
		}
		r.roots[container] = idx
		return nil
	}

	newIdx, err := r.diff(oldIdx, el, container, true)
	if err != nil {
		return err
	}
	if newIdx == none {
		delete(r.roots, container)
	} else {
		r.roots[container] = newIdx
	}
	return nil
}

// invokeComponent runs a component's render function inside its owner
// scope. Panics are contained here: a suspension marker surfaces as
// ErrPending, anything else as a coded render failure.
func (r *Reconciler) invokeComponent(comp *vdom.Component, props vdom.Props, children []*vdom.VNode, owner *reactive.Owner) (out *vdom.VNode, err error) {
	defer func() {
		if v := recover(); v != nil {
			if e, ok := v.(error); ok && stderrors.Is(e, ErrPending) {
				err = ErrPending
				return
			}
			err = errors.FromPanic(v, "W201").WithDetail("component: " + comp.Name())
		}
	}()

	r.rt.WithOwner(owner, func() {
		out = comp.Render(props, children)
	})
	return out, nil
}

// deferRef schedules the ref callback for after the next layout phase.
// Without a scheduler the callback runs immediately.
func (r *Reconciler) deferRef(ref func(dom.Node), node dom.Node) {
	if sched := r.rt.Scheduler(); sched != nil {
		sched.AfterLayout(func() { ref(node) })
		return
	}
	ref(node)
}

// collectNodes appends the concrete host nodes a record contributes to its
// host parent, in tree order.
func (r *Reconciler) collectNodes(idx int, out *[]dom.Node) {
	rec := r.arena.get(idx)
	switch rec.el.Kind {
	case vdom.KindElement, vdom.KindText:
		*out = append(*out, rec.node)
	case vdom.KindFragment:
		for _, c := range rec.children {
			r.collectNodes(c, out)
		}
	case vdom.KindComponent:
		if rec.rendered != none {
			r.collectNodes(rec.rendered, out)
		}
	}
}

// firstNode returns the record's first concrete host node, or nil.
func (r *Reconciler) firstNode(idx int) dom.Node {
	var nodes []dom.Node
	r.collectNodes(idx, &nodes)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// nextSibling returns the node following n under parent, or nil if n is
// the last child or not attached to parent.
func nextSibling(parent, n dom.Node) dom.Node {
	kids := parent.Children()
	for i, k := range kids {
		if k == n {
			if i+1 < len(kids) {
				return kids[i+1]
			}
			return nil
		}
	}
	return nil
}
