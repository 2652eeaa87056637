package reconcile

import (
	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/reactive"
	"github.com/weft-ui/weft/pkg/vdom"
)

// mount realizes el under parent, inserting its concrete nodes before
// the given anchor (nil appends). Returns the new record's index.
func (r *Reconciler) mount(el *vdom.VNode, parent dom.Node, before dom.Node) (int, error) {
	switch el.Kind {
	case vdom.KindText:
		node := r.doc.CreateText(el.Text)
		parent.InsertBefore(node, before)
		return r.arena.alloc(record{el: el, node: node, rendered: none}), nil

	case vdom.KindElement:
		node := r.doc.CreateElement(el.Tag)
		idx := r.arena.alloc(record{el: el, node: node, rendered: none})

		for _, p := range el.Props {
			r.applyProp(idx, node, p)
		}

		for _, child := range el.Children {
			ci, err := r.mount(child, node, nil)
			if err != nil {
				return none, err
			}
			rec := r.arena.get(idx)
			rec.children = append(rec.children, ci)
		}

		parent.InsertBefore(node, before)
		if ref := r.arena.get(idx).ref; ref != nil {
			r.deferRef(ref, node)
		}
		return idx, nil

	case vdom.KindFragment:
		idx := r.arena.alloc(record{el: el, rendered: none})
		for _, child := range el.Children {
			ci, err := r.mount(child, parent, before)
			if err != nil {
				return none, err
			}
			rec := r.arena.get(idx)
			rec.children = append(rec.children, ci)
		}
		return idx, nil

	case vdom.KindComponent:
		owner := reactive.NewOwner(r.rt, r.rt.Owner())
		out, err := r.invokeComponent(el.Comp, el.CompProps, el.Children, owner)
		if err != nil {
			owner.Dispose()
			return none, err
		}

		idx := r.arena.alloc(record{el: el, owner: owner, rendered: none})
		if out != nil {
			ri, err := r.mount(out, parent, before)
			if err != nil {
				return none, err
			}
			r.arena.get(idx).rendered = ri
		}
		return idx, nil
	}

	return none, nil
}

// applyProp applies one prop to a freshly created element node. Ref props
// are recorded on the mounted record; deferral happens after children are
// mounted.
func (r *Reconciler) applyProp(idx int, node dom.Node, p vdom.Prop) {
	switch p.Kind {
	case vdom.PropAttr:
		if v, present := vdom.EffectiveAttr(p.Value); present {
			node.SetAttr(p.Name, v)
		}
	case vdom.PropStyle:
		if v, present := vdom.EffectiveAttr(p.Value); present {
			node.SetStyle(p.Name, v)
		}
	case vdom.PropListener:
		node.AddListener(p.Name, p.Handler)
	case vdom.PropRef:
		r.arena.get(idx).ref = p.Ref
	}
}

// unmount tears a record down: children innermost-first, then the record's
// own cleanups, then detachment. detach is false when an ancestor's node
// is being removed wholesale and individual detachment would be redundant.
func (r *Reconciler) unmount(idx int, detach bool) {
	rec := r.arena.get(idx)
	el := rec.el

	switch el.Kind {
	case vdom.KindText:
		if detach {
			r.detachNode(rec.node)
		}

	case vdom.KindElement:
		for _, c := range rec.children {
			r.unmount(c, false)
		}
		rec = r.arena.get(idx)
		if detach {
			r.detachNode(rec.node)
		}
		if rec.ref != nil {
			rec.ref(nil)
		}

	case vdom.KindFragment:
		// Fragment children sit directly in the host parent; each must
		// detach itself.
		for _, c := range rec.children {
			r.unmount(c, detach)
		}

	case vdom.KindComponent:
		if rec.rendered != none {
			r.unmount(rec.rendered, detach)
		}
		r.arena.get(idx).owner.Dispose()
	}

	r.arena.release(idx)
}

func (r *Reconciler) detachNode(node dom.Node) {
	if parent := node.Parent(); parent != nil {
		parent.RemoveChild(node)
	}
}
