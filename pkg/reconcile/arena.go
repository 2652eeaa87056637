package reconcile

import (
	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/reactive"
	"github.com/weft-ui/weft/pkg/vdom"
)

// none is the null record index.
const none = -1

// record pairs a committed tree node with what it produced in the host
// tree. Records refer to each other by arena index, so ownership stays
// with the reconciler and never leaks into host node lifetimes.
type record struct {
	// el is the committed tree node this record mounted. Updated on every
	// successful diff.
	el *vdom.VNode

	// node is the concrete host node. Set for elements and text; fragments
	// and components contribute their descendants' nodes instead.
	node dom.Node

	// children are the records of el's children, in order. For components
	// this is empty; the rendered output hangs off rendered instead.
	children []int

	// rendered is the record of a component's rendered output, or none.
	rendered int

	// owner is a component's persistent reactive scope.
	owner *reactive.Owner

	// ref is the element's current ref callback, invoked with nil at unmount.
	ref func(dom.Node)

	inUse bool
}

// arena is the mounted-record store. Indices are stable for the lifetime
// of the record; released slots are recycled.
type arena struct {
	recs []record
	free []int
}

func (a *arena) alloc(rec record) int {
	rec.inUse = true
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.recs[idx] = rec
		return idx
	}
	a.recs = append(a.recs, rec)
	return len(a.recs) - 1
}

func (a *arena) get(idx int) *record {
	return &a.recs[idx]
}

func (a *arena) release(idx int) {
	a.recs[idx] = record{}
	a.free = append(a.free, idx)
}
