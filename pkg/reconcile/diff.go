package reconcile

import (
	"reflect"
	"strconv"

	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/vdom"
)

// diff reconciles the record at oldIdx against newEl and returns the index
// of the surviving record, or none. reorderRoot controls whether a root
// fragment reorders its own nodes; below the root, ordering is owned by
// the nearest enclosing element's child reconciliation.
func (r *Reconciler) diff(oldIdx int, newEl *vdom.VNode, parent dom.Node, reorderRoot bool) (int, error) {
	if oldIdx == none && newEl == nil {
		return none, nil
	}
	if newEl == nil {
		r.unmount(oldIdx, true)
		return none, nil
	}
	if oldIdx == none {
		return r.mount(newEl, parent, nil)
	}

	oldEl := r.arena.get(oldIdx).el

	// Type boundary: full replace, no partial reuse. A matching key never
	// overrides this.
	if !vdom.SameType(oldEl, newEl) {
		anchor := r.firstNode(oldIdx)
		newIdx, err := r.mount(newEl, parent, anchor)
		if err != nil {
			return none, err
		}
		r.unmount(oldIdx, true)
		return newIdx, nil
	}

	switch newEl.Kind {
	case vdom.KindText:
		rec := r.arena.get(oldIdx)
		if oldEl.Text != newEl.Text {
			rec.node.SetText(newEl.Text)
		}
		rec.el = newEl
		return oldIdx, nil

	case vdom.KindElement:
		node := r.arena.get(oldIdx).node
		r.patchProps(oldIdx, node, oldEl.Props, newEl.Props)
		if err := r.reconcileChildren(oldIdx, node, newEl.Children, true); err != nil {
			return none, err
		}
		r.arena.get(oldIdx).el = newEl
		return oldIdx, nil

	case vdom.KindFragment:
		if err := r.reconcileChildren(oldIdx, parent, newEl.Children, reorderRoot); err != nil {
			return none, err
		}
		r.arena.get(oldIdx).el = newEl
		return oldIdx, nil

	case vdom.KindComponent:
		// The wrapper record persists; only the rendered output is diffed.
		rec := r.arena.get(oldIdx)
		owner := rec.owner
		rendered := rec.rendered

		out, err := r.invokeComponent(newEl.Comp, newEl.CompProps, newEl.Children, owner)
		if err != nil {
			return none, err
		}

		ri, err := r.diff(rendered, out, parent, reorderRoot)
		if err != nil {
			return none, err
		}
		rec = r.arena.get(oldIdx)
		rec.rendered = ri
		rec.el = newEl
		return oldIdx, nil
	}

	return oldIdx, nil
}

// propID identifies a prop across old and new lists. Kind is part of the
// identity, so an attribute and a style sharing a name never collide.
type propID struct {
	kind vdom.PropKind
	name string
}

// patchProps updates node over the union of old and new prop keys.
func (r *Reconciler) patchProps(idx int, node dom.Node, oldProps, newProps []vdom.Prop) {
	oldM := make(map[propID]vdom.Prop, len(oldProps))
	for _, p := range oldProps {
		oldM[propID{p.Kind, p.Name}] = p
	}
	newM := make(map[propID]vdom.Prop, len(newProps))
	for _, p := range newProps {
		newM[propID{p.Kind, p.Name}] = p
	}

	for id, op := range oldM {
		if _, ok := newM[id]; ok {
			continue
		}
		switch id.kind {
		case vdom.PropAttr:
			if _, present := vdom.EffectiveAttr(op.Value); present {
				node.RemoveAttr(id.name)
			}
		case vdom.PropStyle:
			node.RemoveStyle(id.name)
		case vdom.PropListener:
			node.RemoveListener(id.name)
		case vdom.PropRef:
			rec := r.arena.get(idx)
			if rec.ref != nil {
				rec.ref(nil)
				rec.ref = nil
			}
		}
	}

	for id, np := range newM {
		op, had := oldM[id]
		switch id.kind {
		case vdom.PropAttr:
			newVal, newPresent := vdom.EffectiveAttr(np.Value)
			oldVal, oldPresent := "", false
			if had {
				oldVal, oldPresent = vdom.EffectiveAttr(op.Value)
			}
			if !newPresent {
				if oldPresent {
					node.RemoveAttr(id.name)
				}
			} else if !oldPresent || oldVal != newVal {
				node.SetAttr(id.name, newVal)
			}

		case vdom.PropStyle:
			newVal, _ := vdom.EffectiveAttr(np.Value)
			oldVal := ""
			if had {
				oldVal, _ = vdom.EffectiveAttr(op.Value)
			}
			if !had || oldVal != newVal {
				node.SetStyle(id.name, newVal)
			}

		case vdom.PropListener:
			// Handlers are not comparable; the new one replaces any prior
			// listener for the event.
			node.AddListener(id.name, np.Handler)

		case vdom.PropRef:
			rec := r.arena.get(idx)
			old := rec.ref
			rec.ref = np.Ref
			switch {
			case old == nil:
				r.deferRef(np.Ref, node)
			case !sameFunc(old, np.Ref):
				// A replaced ref is told it lost the node before the new
				// one is told it gained it.
				old(nil)
				r.deferRef(np.Ref, node)
			}
		}
	}
}

// sameFunc reports whether two ref functions share a code pointer. A closure
// re-created from the same literal on every render keeps its registration;
// binding a different function swaps the ref.
func sameFunc(a, b func(dom.Node)) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// childKey places a child in the flat identity namespace: its explicit key
// when given, otherwise its position.
func childKey(el *vdom.VNode, pos int) string {
	if el.Key != "" {
		return "k:" + el.Key
	}
	return "i:" + strconv.Itoa(pos)
}

// reconcileChildren matches the record's children against newChildren,
// diffing matches in place, mounting the rest, unmounting leftovers, and
// finally moving host nodes into the new order.
func (r *Reconciler) reconcileChildren(idx int, parent dom.Node, newChildren []*vdom.VNode, reorder bool) error {
	oldChildren := r.arena.get(idx).children

	// Keys are snapshotted up front: diffing a match may release its record
	// (full replace on a type mismatch), after which the slot's element must
	// not be read again.
	oldKeys := make([]string, len(oldChildren))
	oldByKey := make(map[string]int, len(oldChildren))
	for i, ci := range oldChildren {
		k := childKey(r.arena.get(ci).el, i)
		oldKeys[i] = k
		oldByKey[k] = ci
	}

	visited := make(map[string]bool, len(newChildren))
	newRecs := make([]int, 0, len(newChildren))

	for i, child := range newChildren {
		k := childKey(child, i)
		if ci, ok := oldByKey[k]; ok && !visited[k] {
			visited[k] = true
			ni, err := r.diff(ci, child, parent, false)
			if err != nil {
				return err
			}
			newRecs = append(newRecs, ni)
			continue
		}
		ni, err := r.mount(child, parent, nil)
		if err != nil {
			return err
		}
		newRecs = append(newRecs, ni)
	}

	for i, ci := range oldChildren {
		if !visited[oldKeys[i]] {
			r.unmount(ci, true)
		}
	}

	r.arena.get(idx).children = newRecs

	if reorder {
		r.reorderChildren(idx, parent)
	}
	return nil
}

// reorderChildren walks the child records back to front, moving a host
// node only when it is not already immediately before its successor. An
// in-order list therefore produces zero moves.
func (r *Reconciler) reorderChildren(idx int, parent dom.Node) {
	children := r.arena.get(idx).children
	var anchor dom.Node

	for i := len(children) - 1; i >= 0; i-- {
		var nodes []dom.Node
		r.collectNodes(children[i], &nodes)
		for j := len(nodes) - 1; j >= 0; j-- {
			n := nodes[j]
			if n.Parent() != parent || nextSibling(parent, n) != anchor {
				parent.InsertBefore(n, anchor)
			}
			anchor = n
		}
	}
}
